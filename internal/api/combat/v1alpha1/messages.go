// Package combatv1alpha1 defines the CombatService wire contract: messages,
// the gRPC service descriptor and a client.
package combatv1alpha1

// Character is the wire form of a character handle
type Character struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int32  `json:"level"`
	HP    int32  `json:"hp"`
	AP    int32  `json:"ap"`
	DP    int32  `json:"dp"`
	// Exp is absent for mobs
	Exp       *int32  `json:"exp,omitempty"`
	Equipment []*Gear `json:"equipment,omitempty"`
}

// Gear is the wire form of a piece of gear. ID is empty for gear reported
// inside a character's equipment.
type Gear struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	AP   *int32 `json:"ap,omitempty"`
	DP   *int32 `json:"dp,omitempty"`
	HP   *int32 `json:"hp,omitempty"`
	Slot string `json:"slot"`
}

type GreetRequest struct {
	Name string `json:"name"`
}

type GreetResponse struct {
	Message string `json:"message"`
}

type CreateCharacterRequest struct {
	Name string `json:"name"`
}

type CreateCharacterResponse struct {
	Character *Character `json:"character"`
}

type CreateMobRequest struct {
	Name  string `json:"name"`
	Level int32  `json:"level"`
	HP    int32  `json:"hp"`
	AP    int32  `json:"ap"`
	DP    int32  `json:"dp"`
}

type CreateMobResponse struct {
	Character *Character `json:"character"`
}

type GetCharacterRequest struct {
	CharacterID string `json:"character_id"`
}

type GetCharacterResponse struct {
	Character *Character `json:"character"`
}

type ListCharactersRequest struct{}

type ListCharactersResponse struct {
	Characters []*Character `json:"characters"`
}

type DeleteCharacterRequest struct {
	CharacterID string `json:"character_id"`
}

type DeleteCharacterResponse struct{}

type CreateGearRequest struct {
	Name string `json:"name"`
	AP   *int32 `json:"ap,omitempty"`
	DP   *int32 `json:"dp,omitempty"`
	HP   *int32 `json:"hp,omitempty"`
	Slot string `json:"slot"`
}

type CreateGearResponse struct {
	Gear *Gear `json:"gear"`
}

type ListGearRequest struct {
	// Slot filters the listing when set
	Slot string `json:"slot,omitempty"`
}

type ListGearResponse struct {
	Gear []*Gear `json:"gear"`
}

type EquipItemRequest struct {
	CharacterID string `json:"character_id"`
	GearID      string `json:"gear_id"`
}

type EquipItemResponse struct {
	Character *Character `json:"character"`
}

type RemoveItemRequest struct {
	CharacterID string `json:"character_id"`
	Slot        string `json:"slot"`
}

type RemoveItemResponse struct {
	Character *Character `json:"character"`
	Removed   *Gear      `json:"removed,omitempty"`
}

type AttackRequest struct {
	AttackerID string `json:"attacker_id"`
	TargetID   string `json:"target_id"`
}

type AttackResponse struct {
	Damage   int32      `json:"damage"`
	Defeated bool       `json:"defeated"`
	Attacker *Character `json:"attacker"`
	Target   *Character `json:"target"`
}

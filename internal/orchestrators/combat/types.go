package combat

import (
	entity "github.com/KirkDiggler/rpg-combat/internal/entities/combat"
)

// CreateCharacterInput defines the request for creating a player character
type CreateCharacterInput struct {
	Name string
}

// CreateCharacterOutput defines the response for creating a player character
type CreateCharacterOutput struct {
	Character *entity.CharacterData
}

// CreateMobInput defines the request for creating a mob
type CreateMobInput struct {
	Name  string
	Level int32
	HP    int32
	AP    int32
	DP    int32
}

// CreateMobOutput defines the response for creating a mob
type CreateMobOutput struct {
	Character *entity.CharacterData
}

// RegisterCharacterInput defines the request for registering a character
// built outside the orchestrator
type RegisterCharacterInput struct {
	Character *entity.Character
}

// RegisterCharacterOutput defines the response for registering a character
type RegisterCharacterOutput struct {
	Character *entity.CharacterData
}

// GetCharacterInput defines the request for retrieving a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for retrieving a character
type GetCharacterOutput struct {
	Character *entity.CharacterData
}

// ListCharactersInput defines the request for listing characters
type ListCharactersInput struct{}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*entity.CharacterData
}

// DeleteCharacterInput defines the request for releasing a character handle
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for releasing a character handle
type DeleteCharacterOutput struct{}

// CreateGearInput defines the request for creating gear.
// Nil deltas leave the stat unmodified.
type CreateGearInput struct {
	Name string
	AP   *int32
	DP   *int32
	HP   *int32
	Slot entity.GearSlot
}

// CreateGearOutput defines the response for creating gear
type CreateGearOutput struct {
	Gear *entity.GearData
}

// ListGearInput defines the request for listing gear
type ListGearInput struct {
	Slot entity.GearSlot // optional filter
}

// ListGearOutput defines the response for listing gear
type ListGearOutput struct {
	Gear []*entity.GearData
}

// EquipItemInput defines the request for equipping gear
type EquipItemInput struct {
	CharacterID string
	GearID      string
}

// EquipItemOutput defines the response for equipping gear
type EquipItemOutput struct {
	Character *entity.CharacterData
}

// RemoveItemInput defines the request for unequipping a slot
type RemoveItemInput struct {
	CharacterID string
	Slot        entity.GearSlot
}

// RemoveItemOutput defines the response for unequipping a slot
type RemoveItemOutput struct {
	Character *entity.CharacterData
	// Removed is nil when the slot was already empty
	Removed *entity.GearData
}

// AttackInput defines the request for resolving one attack
type AttackInput struct {
	AttackerID string
	TargetID   string
}

// AttackOutput defines the response for resolving one attack
type AttackOutput struct {
	Damage   int32
	Defeated bool
	Attacker *entity.CharacterData
	Target   *entity.CharacterData
}

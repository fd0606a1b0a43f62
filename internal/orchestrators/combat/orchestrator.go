// Package combat implements the combat orchestrator. It resolves character
// and gear handles, serializes every mutation and publishes combat events.
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/KirkDiggler/rpg-combat/internal/orchestrators/combat Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	entity "github.com/KirkDiggler/rpg-combat/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
	"github.com/KirkDiggler/rpg-combat/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-combat/internal/repositories/combatant"
	"github.com/KirkDiggler/rpg-combat/internal/repositories/gear"
)

// Service defines the interface for combat operations
type Service interface {
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	CreateMob(ctx context.Context, input *CreateMobInput) (*CreateMobOutput, error)

	// RegisterCharacter stores a character built by the caller and returns its handle
	RegisterCharacter(ctx context.Context, input *RegisterCharacterInput) (*RegisterCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	CreateGear(ctx context.Context, input *CreateGearInput) (*CreateGearOutput, error)
	ListGear(ctx context.Context, input *ListGearInput) (*ListGearOutput, error)

	// EquipItem adds gear's deltas to a character. Gear already in the slot
	// is overwritten and its deltas stay applied.
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)

	// RemoveItem empties a slot; an empty slot is not an error
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)

	// Attack resolves one attack and stores the target's new hit points
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	CharacterRepo combatant.Repository
	GearRepo      gear.Repository
	IDGenerator   idgen.Generator
	EventBus      events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.GearRepo == nil {
		vb.RequiredField("GearRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	return vb.Build()
}

type orchestrator struct {
	characterRepo combatant.Repository
	gearRepo      gear.Repository
	idGen         idgen.Generator
	eventBus      events.EventBus

	// characters are not safe for concurrent use, so every
	// load-mutate-store cycle runs under this lock
	mu sync.Mutex
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		gearRepo:      cfg.GearRepo,
		idGen:         cfg.IDGenerator,
		eventBus:      cfg.EventBus,
	}, nil
}

// CreateCharacter accepts any name, empty included
func (o *orchestrator) CreateCharacter(
	ctx context.Context,
	input *CreateCharacterInput,
) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	data, err := o.register(ctx, entity.NewCharacter(input.Name))
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character created",
		"character_id", data.ID,
		"name", data.Name)

	return &CreateCharacterOutput{Character: data}, nil
}

// CreateMob accepts the stats as given
func (o *orchestrator) CreateMob(ctx context.Context, input *CreateMobInput) (*CreateMobOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	mob := entity.NewMob(input.Name, input.Level, input.HP, input.AP, input.DP)
	data, err := o.register(ctx, mob)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "mob created",
		"character_id", data.ID,
		"name", data.Name,
		"level", data.Level)

	return &CreateMobOutput{Character: data}, nil
}

func (o *orchestrator) RegisterCharacter(
	ctx context.Context,
	input *RegisterCharacterInput,
) (*RegisterCharacterOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	data, err := o.register(ctx, input.Character)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character registered",
		"character_id", data.ID,
		"name", data.Name,
		"mob", input.Character.IsMob())

	return &RegisterCharacterOutput{Character: data}, nil
}

func (o *orchestrator) register(ctx context.Context, c *entity.Character) (*entity.CharacterData, error) {
	data := c.ToData()
	data.ID = o.idGen.Generate()

	out, err := o.characterRepo.Create(ctx, combatant.CreateInput{CharacterData: data})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store character")
	}
	return out.CharacterData, nil
}

func (o *orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.characterRepo.Get(ctx, combatant.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}

	return &GetCharacterOutput{Character: out.CharacterData}, nil
}

func (o *orchestrator) ListCharacters(
	ctx context.Context,
	_ *ListCharactersInput,
) (*ListCharactersOutput, error) {
	out, err := o.characterRepo.List(ctx, combatant.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &ListCharactersOutput{Characters: out.Characters}, nil
}

func (o *orchestrator) DeleteCharacter(
	ctx context.Context,
	input *DeleteCharacterInput,
) (*DeleteCharacterOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, err := o.characterRepo.Delete(ctx, combatant.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}

	slog.InfoContext(ctx, "character released", "character_id", input.CharacterID)

	return &DeleteCharacterOutput{}, nil
}

func (o *orchestrator) CreateGear(ctx context.Context, input *CreateGearInput) (*CreateGearOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if !input.Slot.IsValid() {
		vb.InvalidField("slot", "unknown slot \""+input.Slot.String()+"\"")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	data := entity.NewGear(input.Name, input.AP, input.DP, input.HP, input.Slot).ToData()
	data.ID = o.idGen.Generate()

	out, err := o.gearRepo.Create(ctx, gear.CreateInput{GearData: &data})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store gear")
	}

	slog.InfoContext(ctx, "gear created",
		"gear_id", out.GearData.ID,
		"name", out.GearData.Name,
		"slot", out.GearData.Slot)

	return &CreateGearOutput{Gear: out.GearData}, nil
}

func (o *orchestrator) ListGear(ctx context.Context, input *ListGearInput) (*ListGearOutput, error) {
	listInput := gear.ListInput{}
	if input != nil {
		if input.Slot != "" && !input.Slot.IsValid() {
			return nil, errors.InvalidArgumentf("unknown slot %q", input.Slot)
		}
		listInput.Slot = input.Slot
	}

	out, err := o.gearRepo.List(ctx, listInput)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list gear")
	}

	return &ListGearOutput{Gear: out.Gear}, nil
}

func (o *orchestrator) EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	errors.ValidateRequired("gear_id", input.GearID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	gearOut, err := o.gearRepo.Get(ctx, gear.GetInput{ID: input.GearID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get gear")
	}

	character, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	item := entity.LoadGearFromData(*gearOut.GearData)
	character.EquipItem(item)

	data, err := o.store(ctx, input.CharacterID, character)
	if err != nil {
		return nil, err
	}

	o.publish(ctx, EventTypeEquip, input.CharacterID, map[string]any{
		ContextKeyGearID:   input.GearID,
		ContextKeyGearName: item.Name(),
		ContextKeySlot:     item.Slot().String(),
	})

	return &EquipItemOutput{Character: data}, nil
}

func (o *orchestrator) RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	if !input.Slot.IsValid() {
		vb.InvalidField("slot", "unknown slot \""+input.Slot.String()+"\"")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	character, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	removed, ok := character.RemoveItem(input.Slot)
	if !ok {
		// Nothing changed, so nothing to store or announce
		return &RemoveItemOutput{Character: withID(character.ToData(), input.CharacterID)}, nil
	}

	data, err := o.store(ctx, input.CharacterID, character)
	if err != nil {
		return nil, err
	}

	r := removed.ToData()

	o.publish(ctx, EventTypeUnequip, input.CharacterID, map[string]any{
		ContextKeyGearName: removed.Name(),
		ContextKeySlot:     input.Slot.String(),
	})

	return &RemoveItemOutput{Character: data, Removed: &r}, nil
}

func (o *orchestrator) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("attacker_id", input.AttackerID, vb)
	errors.ValidateRequired("target_id", input.TargetID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if input.AttackerID == input.TargetID {
		return nil, errors.InvalidArgument("attacker and target must be different characters").
			WithMeta("character_id", input.AttackerID)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	attacker, err := o.load(ctx, input.AttackerID)
	if err != nil {
		return nil, err
	}
	target, err := o.load(ctx, input.TargetID)
	if err != nil {
		return nil, err
	}

	result := attacker.ResolveAttack(target)

	targetData, err := o.store(ctx, input.TargetID, target)
	if err != nil {
		return nil, err
	}

	o.publishAttack(ctx, input, result)

	return &AttackOutput{
		Damage:   result.Damage,
		Defeated: result.Defeated,
		Attacker: withID(attacker.ToData(), input.AttackerID),
		Target:   targetData,
	}, nil
}

func (o *orchestrator) load(ctx context.Context, id string) (*entity.Character, error) {
	out, err := o.characterRepo.Get(ctx, combatant.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", id)
	}
	return entity.LoadCharacterFromData(out.CharacterData), nil
}

func (o *orchestrator) store(
	ctx context.Context,
	id string,
	character *entity.Character,
) (*entity.CharacterData, error) {
	out, err := o.characterRepo.Update(ctx, combatant.UpdateInput{
		CharacterData: withID(character.ToData(), id),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store character %s", id)
	}
	return out.CharacterData, nil
}

func withID(data *entity.CharacterData, id string) *entity.CharacterData {
	data.ID = id
	return data
}

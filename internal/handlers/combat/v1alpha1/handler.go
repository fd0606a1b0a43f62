// Package v1alpha1 handles the CombatService gRPC interface
package v1alpha1

import (
	"context"
	"log/slog"

	combatv1alpha1 "github.com/KirkDiggler/rpg-combat/internal/api/combat/v1alpha1"
	"github.com/KirkDiggler/rpg-combat/internal/bindings"
	entity "github.com/KirkDiggler/rpg-combat/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
	"github.com/KirkDiggler/rpg-combat/internal/orchestrators/combat"
)

// HandlerConfig holds dependencies for the combat handler
type HandlerConfig struct {
	CombatService combat.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.CombatService == nil {
		return errors.InvalidArgument("combat service is required")
	}
	return nil
}

// Handler implements the CombatService gRPC server
type Handler struct {
	combatv1alpha1.UnimplementedCombatServiceServer
	combatService combat.Service
}

// NewHandler creates a new combat handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		combatService: cfg.CombatService,
	}, nil
}

// Greet returns the demo greeting for a name
func (h *Handler) Greet(
	ctx context.Context,
	req *combatv1alpha1.GreetRequest,
) (*combatv1alpha1.GreetResponse, error) {
	msg := bindings.GreetingFor(req.Name)
	slog.DebugContext(ctx, "greeting host", "name", req.Name)

	return &combatv1alpha1.GreetResponse{Message: msg}, nil
}

// CreateCharacter creates a level 1 player character
func (h *Handler) CreateCharacter(
	ctx context.Context,
	req *combatv1alpha1.CreateCharacterRequest,
) (*combatv1alpha1.CreateCharacterResponse, error) {
	out, err := h.combatService.CreateCharacter(ctx, &combat.CreateCharacterInput{Name: req.Name})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &combatv1alpha1.CreateCharacterResponse{Character: convertCharacterToProto(out.Character)}, nil
}

// CreateMob creates a mob with caller supplied stats
func (h *Handler) CreateMob(
	ctx context.Context,
	req *combatv1alpha1.CreateMobRequest,
) (*combatv1alpha1.CreateMobResponse, error) {
	out, err := h.combatService.CreateMob(ctx, &combat.CreateMobInput{
		Name:  req.Name,
		Level: req.Level,
		HP:    req.HP,
		AP:    req.AP,
		DP:    req.DP,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &combatv1alpha1.CreateMobResponse{Character: convertCharacterToProto(out.Character)}, nil
}

// GetCharacter returns a character's current state
func (h *Handler) GetCharacter(
	ctx context.Context,
	req *combatv1alpha1.GetCharacterRequest,
) (*combatv1alpha1.GetCharacterResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.combatService.GetCharacter(ctx, &combat.GetCharacterInput{CharacterID: req.CharacterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &combatv1alpha1.GetCharacterResponse{Character: convertCharacterToProto(out.Character)}, nil
}

// ListCharacters returns every live character handle
func (h *Handler) ListCharacters(
	ctx context.Context,
	_ *combatv1alpha1.ListCharactersRequest,
) (*combatv1alpha1.ListCharactersResponse, error) {
	out, err := h.combatService.ListCharacters(ctx, &combat.ListCharactersInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	characters := make([]*combatv1alpha1.Character, 0, len(out.Characters))
	for _, c := range out.Characters {
		characters = append(characters, convertCharacterToProto(c))
	}

	return &combatv1alpha1.ListCharactersResponse{Characters: characters}, nil
}

// DeleteCharacter releases a character handle
func (h *Handler) DeleteCharacter(
	ctx context.Context,
	req *combatv1alpha1.DeleteCharacterRequest,
) (*combatv1alpha1.DeleteCharacterResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	_, err := h.combatService.DeleteCharacter(ctx, &combat.DeleteCharacterInput{CharacterID: req.CharacterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &combatv1alpha1.DeleteCharacterResponse{}, nil
}

// CreateGear registers a piece of gear
func (h *Handler) CreateGear(
	ctx context.Context,
	req *combatv1alpha1.CreateGearRequest,
) (*combatv1alpha1.CreateGearResponse, error) {
	slot, ok := entity.ParseGearSlot(req.Slot)
	if !ok {
		return nil, errors.ToGRPCError(errors.InvalidArgumentf("invalid slot: %q", req.Slot))
	}

	out, err := h.combatService.CreateGear(ctx, &combat.CreateGearInput{
		Name: req.Name,
		AP:   req.AP,
		DP:   req.DP,
		HP:   req.HP,
		Slot: slot,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &combatv1alpha1.CreateGearResponse{Gear: convertGearToProto(out.Gear)}, nil
}

// ListGear lists registered gear, optionally for one slot
func (h *Handler) ListGear(
	ctx context.Context,
	req *combatv1alpha1.ListGearRequest,
) (*combatv1alpha1.ListGearResponse, error) {
	input := &combat.ListGearInput{}
	if req.Slot != "" {
		slot, ok := entity.ParseGearSlot(req.Slot)
		if !ok {
			return nil, errors.ToGRPCError(errors.InvalidArgumentf("invalid slot: %q", req.Slot))
		}
		input.Slot = slot
	}

	out, err := h.combatService.ListGear(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	items := make([]*combatv1alpha1.Gear, 0, len(out.Gear))
	for _, g := range out.Gear {
		items = append(items, convertGearToProto(g))
	}

	return &combatv1alpha1.ListGearResponse{Gear: items}, nil
}

// EquipItem equips gear on a character
func (h *Handler) EquipItem(
	ctx context.Context,
	req *combatv1alpha1.EquipItemRequest,
) (*combatv1alpha1.EquipItemResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	if req.GearID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("gear_id is required"))
	}

	out, err := h.combatService.EquipItem(ctx, &combat.EquipItemInput{
		CharacterID: req.CharacterID,
		GearID:      req.GearID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &combatv1alpha1.EquipItemResponse{Character: convertCharacterToProto(out.Character)}, nil
}

// RemoveItem empties a slot on a character
func (h *Handler) RemoveItem(
	ctx context.Context,
	req *combatv1alpha1.RemoveItemRequest,
) (*combatv1alpha1.RemoveItemResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	slot, ok := entity.ParseGearSlot(req.Slot)
	if !ok {
		return nil, errors.ToGRPCError(errors.InvalidArgumentf("invalid slot: %q", req.Slot))
	}

	out, err := h.combatService.RemoveItem(ctx, &combat.RemoveItemInput{
		CharacterID: req.CharacterID,
		Slot:        slot,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &combatv1alpha1.RemoveItemResponse{
		Character: convertCharacterToProto(out.Character),
		Removed:   convertGearToProto(out.Removed),
	}, nil
}

// Attack resolves one attack between two characters
func (h *Handler) Attack(
	ctx context.Context,
	req *combatv1alpha1.AttackRequest,
) (*combatv1alpha1.AttackResponse, error) {
	if req.AttackerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("attacker_id is required"))
	}
	if req.TargetID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("target_id is required"))
	}

	out, err := h.combatService.Attack(ctx, &combat.AttackInput{
		AttackerID: req.AttackerID,
		TargetID:   req.TargetID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &combatv1alpha1.AttackResponse{
		Damage:   out.Damage,
		Defeated: out.Defeated,
		Attacker: convertCharacterToProto(out.Attacker),
		Target:   convertCharacterToProto(out.Target),
	}, nil
}

package combat

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	entity "github.com/KirkDiggler/rpg-combat/internal/entities/combat"
)

// Event types published on the bus
const (
	EventTypeEquip   = "combat.equip"
	EventTypeUnequip = "combat.unequip"
	EventTypeAttack  = "combat.attack"
)

// Keys set on the event context
const (
	ContextKeyDamage   = "damage"
	ContextKeyTargetHP = "target_hp"
	ContextKeyDefeated = "defeated"
	ContextKeyGearID   = "gear_id"
	ContextKeyGearName = "gear_name"
	ContextKeySlot     = "slot"
)

const entityTypeCharacter = "character"

// characterEntity identifies a character handle on the event bus
type characterEntity struct {
	id string
}

var _ core.Entity = (*characterEntity)(nil)

func (e *characterEntity) GetID() string {
	return e.id
}

func (e *characterEntity) GetType() string {
	return entityTypeCharacter
}

func (o *orchestrator) publishAttack(ctx context.Context, input *AttackInput, result entity.AttackResult) {
	event := events.NewGameEvent(EventTypeAttack,
		&characterEntity{id: input.AttackerID},
		&characterEntity{id: input.TargetID})
	event.Context().Set(ContextKeyDamage, result.Damage)
	event.Context().Set(ContextKeyTargetHP, result.TargetHP)
	event.Context().Set(ContextKeyDefeated, result.Defeated)

	o.send(ctx, event)
}

// publish announces a change to a single character
func (o *orchestrator) publish(ctx context.Context, eventType, characterID string, values map[string]any) {
	source := &characterEntity{id: characterID}
	event := events.NewGameEvent(eventType, source, source)
	for k, v := range values {
		event.Context().Set(k, v)
	}

	o.send(ctx, event)
}

// send never fails the operation: the character change is already stored
func (o *orchestrator) send(ctx context.Context, event events.Event) {
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish combat event",
			"event_type", event.Type(),
			"error", err)
	}
}

// SubscribeLogger logs every combat event at debug level and returns the
// subscription IDs.
func SubscribeLogger(bus events.EventBus) []string {
	logEvent := func(ctx context.Context, e events.Event) error {
		attrs := []any{"event_type", e.Type()}
		if e.Source() != nil {
			attrs = append(attrs, "source_id", e.Source().GetID())
		}
		if e.Target() != nil {
			attrs = append(attrs, "target_id", e.Target().GetID())
		}
		slog.DebugContext(ctx, "combat event", attrs...)
		return nil
	}

	ids := make([]string, 0, 3)
	for _, eventType := range []string{EventTypeEquip, EventTypeUnequip, EventTypeAttack} {
		ids = append(ids, bus.SubscribeFunc(eventType, 100, logEvent))
	}
	return ids
}

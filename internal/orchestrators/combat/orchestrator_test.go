package combat_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-combat/internal/bindings"
	entity "github.com/KirkDiggler/rpg-combat/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
	"github.com/KirkDiggler/rpg-combat/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-combat/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-combat/internal/repositories/combatant"
	"github.com/KirkDiggler/rpg-combat/internal/repositories/gear"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx          context.Context
	orchestrator combat.Service
	bus          events.EventBus
	published    []events.Event
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = events.NewBus()
	s.published = nil

	record := func(_ context.Context, e events.Event) error {
		s.published = append(s.published, e)
		return nil
	}
	for _, eventType := range []string{combat.EventTypeAttack, combat.EventTypeEquip, combat.EventTypeUnequip} {
		s.bus.SubscribeFunc(eventType, 0, record)
	}

	var err error
	s.orchestrator, err = combat.NewOrchestrator(&combat.Config{
		CharacterRepo: combatant.NewInMemory(),
		GearRepo:      gear.NewInMemory(),
		IDGenerator:   idgen.NewSequential("test"),
		EventBus:      s.bus,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) createHero() *entity.CharacterData {
	out, err := s.orchestrator.CreateCharacter(s.ctx, &combat.CreateCharacterInput{Name: "Eric"})
	s.Require().NoError(err)
	return out.Character
}

func (s *OrchestratorTestSuite) createGoblin() *entity.CharacterData {
	out, err := s.orchestrator.CreateMob(s.ctx, &combat.CreateMobInput{
		Name: "Goblin", Level: 3, HP: 9, AP: 3, DP: 3,
	})
	s.Require().NoError(err)
	return out.Character
}

func (s *OrchestratorTestSuite) createAxe() *entity.GearData {
	out, err := s.orchestrator.CreateGear(s.ctx, &combat.CreateGearInput{
		Name: "Axe", AP: entity.Mod(3), DP: entity.Mod(5), Slot: entity.SlotHand,
	})
	s.Require().NoError(err)
	return out.Gear
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_MissingDependencies() {
	_, err := combat.NewOrchestrator(&combat.Config{})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "CharacterRepo is required")
	s.Contains(err.Error(), "EventBus is required")

	_, err = combat.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateCharacter() {
	hero := s.createHero()

	s.Equal("test_1", hero.ID)
	s.Equal("Eric", hero.Name)
	s.Equal(int32(1), hero.Level)
	s.Equal(int32(20), hero.HP)
	s.Equal(int32(5), hero.AP)
	s.Equal(int32(5), hero.DP)
	s.Require().NotNil(hero.Exp)
	s.Equal(int32(0), *hero.Exp)

	got, err := s.orchestrator.GetCharacter(s.ctx, &combat.GetCharacterInput{CharacterID: hero.ID})
	s.Require().NoError(err)
	s.Equal(hero, got.Character)
}

func (s *OrchestratorTestSuite) TestCreateCharacter_EmptyNameAccepted() {
	out, err := s.orchestrator.CreateCharacter(s.ctx, &combat.CreateCharacterInput{Name: ""})

	s.Require().NoError(err)
	s.Equal("", out.Character.Name)
	s.Equal(int32(20), out.Character.HP)

	mob, err := s.orchestrator.CreateMob(s.ctx, &combat.CreateMobInput{Level: 1, HP: 1})
	s.Require().NoError(err)
	s.Equal("", mob.Character.Name)
}

func (s *OrchestratorTestSuite) TestRegisterCharacter() {
	out, err := s.orchestrator.RegisterCharacter(s.ctx, &combat.RegisterCharacterInput{
		Character: bindings.CreateNewMob("Goblin", 3, 9, 3, 3),
	})
	s.Require().NoError(err)
	s.Equal("test_1", out.Character.ID)
	s.Nil(out.Character.Exp)
	s.Equal(int32(9), out.Character.HP)

	hero, err := s.orchestrator.RegisterCharacter(s.ctx, &combat.RegisterCharacterInput{
		Character: bindings.CreateNewCharacter("Eric"),
	})
	s.Require().NoError(err)

	attack, err := s.orchestrator.Attack(s.ctx, &combat.AttackInput{AttackerID: hero.Character.ID, TargetID: out.Character.ID})
	s.Require().NoError(err)
	s.Equal(int32(4), attack.Damage)
	s.Equal(int32(5), attack.Target.HP)

	_, err = s.orchestrator.RegisterCharacter(s.ctx, &combat.RegisterCharacterInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateMob_AcceptsAnyStats() {
	out, err := s.orchestrator.CreateMob(s.ctx, &combat.CreateMobInput{Name: "Husk", Level: -1, HP: 0})

	s.Require().NoError(err)
	s.Nil(out.Character.Exp)
	s.Equal(int32(-1), out.Character.Level)
	s.Equal(int32(0), out.Character.HP)
}

func (s *OrchestratorTestSuite) TestCreateGear_Validation() {
	_, err := s.orchestrator.CreateGear(s.ctx, &combat.CreateGearInput{Name: "Crown", Slot: "head"})

	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), `slot is invalid: unknown slot "head"`)
}

func (s *OrchestratorTestSuite) TestListGear() {
	axe := s.createAxe()
	_, err := s.orchestrator.CreateGear(s.ctx, &combat.CreateGearInput{Name: "Boots", Slot: entity.SlotFoot})
	s.Require().NoError(err)

	out, err := s.orchestrator.ListGear(s.ctx, &combat.ListGearInput{Slot: entity.SlotHand})
	s.Require().NoError(err)
	s.Require().Len(out.Gear, 1)
	s.Equal(axe, out.Gear[0])

	all, err := s.orchestrator.ListGear(s.ctx, &combat.ListGearInput{})
	s.Require().NoError(err)
	s.Len(all.Gear, 2)

	_, err = s.orchestrator.ListGear(s.ctx, &combat.ListGearInput{Slot: "head"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestEquipAndRemoveItem() {
	hero := s.createHero()
	axe := s.createAxe()

	equipped, err := s.orchestrator.EquipItem(s.ctx, &combat.EquipItemInput{CharacterID: hero.ID, GearID: axe.ID})
	s.Require().NoError(err)
	s.Equal(int32(8), equipped.Character.AP)
	s.Equal(int32(10), equipped.Character.DP)
	s.Equal(int32(20), equipped.Character.HP)
	s.Equal("Axe", equipped.Character.Slots[entity.SlotHand].Name)

	removed, err := s.orchestrator.RemoveItem(s.ctx, &combat.RemoveItemInput{CharacterID: hero.ID, Slot: entity.SlotHand})
	s.Require().NoError(err)
	s.Require().NotNil(removed.Removed)
	s.Equal("Axe", removed.Removed.Name)
	s.Equal(int32(5), removed.Character.AP)
	s.Equal(int32(5), removed.Character.DP)
	s.Empty(removed.Character.Slots)

	s.Require().Len(s.published, 2)
	s.Equal(combat.EventTypeEquip, s.published[0].Type())
	s.Equal(combat.EventTypeUnequip, s.published[1].Type())
	s.Equal(hero.ID, s.published[1].Source().GetID())
}

func (s *OrchestratorTestSuite) TestEquipItem_OccupiedSlotKeepsPriorDeltas() {
	hero := s.createHero()
	axe := s.createAxe()
	dagger, err := s.orchestrator.CreateGear(s.ctx, &combat.CreateGearInput{
		Name: "Dagger", AP: entity.Mod(1), HP: entity.Mod(-2), Slot: entity.SlotHand,
	})
	s.Require().NoError(err)

	_, err = s.orchestrator.EquipItem(s.ctx, &combat.EquipItemInput{CharacterID: hero.ID, GearID: axe.ID})
	s.Require().NoError(err)

	out, err := s.orchestrator.EquipItem(s.ctx, &combat.EquipItemInput{CharacterID: hero.ID, GearID: dagger.Gear.ID})
	s.Require().NoError(err)

	s.Equal(int32(9), out.Character.AP)
	s.Equal(int32(10), out.Character.DP)
	s.Equal(int32(18), out.Character.HP)
	s.Equal("Dagger", out.Character.Slots[entity.SlotHand].Name)

	// The drift survives the round trip through the registry
	got, err := s.orchestrator.GetCharacter(s.ctx, &combat.GetCharacterInput{CharacterID: hero.ID})
	s.Require().NoError(err)
	s.Equal(int32(9), got.Character.AP)
	s.Equal(int32(10), got.Character.DP)
}

func (s *OrchestratorTestSuite) TestRemoveItem_EmptySlot() {
	hero := s.createHero()

	out, err := s.orchestrator.RemoveItem(s.ctx, &combat.RemoveItemInput{CharacterID: hero.ID, Slot: entity.SlotFoot})

	s.Require().NoError(err)
	s.Nil(out.Removed)
	s.Equal(hero, out.Character)
	s.Empty(s.published, "no change, no event")
}

func (s *OrchestratorTestSuite) TestEquipItem_NotFound() {
	hero := s.createHero()
	axe := s.createAxe()

	_, err := s.orchestrator.EquipItem(s.ctx, &combat.EquipItemInput{CharacterID: hero.ID, GearID: "gear_missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.EquipItem(s.ctx, &combat.EquipItemInput{CharacterID: "char_missing", GearID: axe.ID})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.EquipItem(s.ctx, &combat.EquipItemInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAttack() {
	hero := s.createHero()
	goblin := s.createGoblin()
	axe := s.createAxe()

	_, err := s.orchestrator.EquipItem(s.ctx, &combat.EquipItemInput{CharacterID: hero.ID, GearID: axe.ID})
	s.Require().NoError(err)
	s.published = nil

	out, err := s.orchestrator.Attack(s.ctx, &combat.AttackInput{AttackerID: hero.ID, TargetID: goblin.ID})
	s.Require().NoError(err)
	s.Equal(int32(7), out.Damage)
	s.False(out.Defeated)
	s.Equal(int32(2), out.Target.HP)
	s.Equal(goblin.ID, out.Target.ID)
	s.Equal(hero.ID, out.Attacker.ID)

	back, err := s.orchestrator.Attack(s.ctx, &combat.AttackInput{AttackerID: goblin.ID, TargetID: hero.ID})
	s.Require().NoError(err)
	s.Equal(int32(1), back.Damage)
	s.Equal(int32(19), back.Target.HP)

	finish, err := s.orchestrator.Attack(s.ctx, &combat.AttackInput{AttackerID: hero.ID, TargetID: goblin.ID})
	s.Require().NoError(err)
	s.True(finish.Defeated)

	stored, err := s.orchestrator.GetCharacter(s.ctx, &combat.GetCharacterInput{CharacterID: goblin.ID})
	s.Require().NoError(err)
	s.Equal(int32(-5), stored.Character.HP)

	s.Require().Len(s.published, 3)
	first := s.published[0]
	s.Equal(combat.EventTypeAttack, first.Type())
	s.Equal(hero.ID, first.Source().GetID())
	s.Equal(goblin.ID, first.Target().GetID())
	damage, ok := first.Context().Get(combat.ContextKeyDamage)
	s.True(ok)
	s.Equal(int32(7), damage)
}

func (s *OrchestratorTestSuite) TestAttack_SelfIsRejected() {
	hero := s.createHero()

	_, err := s.orchestrator.Attack(s.ctx, &combat.AttackInput{AttackerID: hero.ID, TargetID: hero.ID})

	s.True(errors.IsInvalidArgument(err))
	s.Equal(hero.ID, errors.GetMeta(err)["character_id"])
}

func (s *OrchestratorTestSuite) TestAttack_UnknownTarget() {
	hero := s.createHero()

	_, err := s.orchestrator.Attack(s.ctx, &combat.AttackInput{AttackerID: hero.ID, TargetID: "missing"})

	s.True(errors.IsNotFound(err))
	s.Empty(s.published)
}

func (s *OrchestratorTestSuite) TestDeleteCharacter() {
	hero := s.createHero()
	s.createGoblin()

	_, err := s.orchestrator.DeleteCharacter(s.ctx, &combat.DeleteCharacterInput{CharacterID: hero.ID})
	s.Require().NoError(err)

	_, err = s.orchestrator.GetCharacter(s.ctx, &combat.GetCharacterInput{CharacterID: hero.ID})
	s.True(errors.IsNotFound(err))

	list, err := s.orchestrator.ListCharacters(s.ctx, &combat.ListCharactersInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Characters, 1)
	s.Equal("Goblin", list.Characters[0].Name)
}

func (s *OrchestratorTestSuite) TestSubscribeLogger() {
	ids := combat.SubscribeLogger(s.bus)
	s.Len(ids, 3)
	for _, id := range ids {
		s.NotEmpty(id)
	}

	hero := s.createHero()
	goblin := s.createGoblin()
	_, err := s.orchestrator.Attack(s.ctx, &combat.AttackInput{AttackerID: hero.ID, TargetID: goblin.ID})
	s.Require().NoError(err)
	s.Len(s.published, 1)
}

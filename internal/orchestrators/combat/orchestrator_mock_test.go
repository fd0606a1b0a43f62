package combat_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	entity "github.com/KirkDiggler/rpg-combat/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
	"github.com/KirkDiggler/rpg-combat/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-combat/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-combat/internal/repositories/combatant"
	combatantmock "github.com/KirkDiggler/rpg-combat/internal/repositories/combatant/mock"
	"github.com/KirkDiggler/rpg-combat/internal/repositories/gear"
	gearmock "github.com/KirkDiggler/rpg-combat/internal/repositories/gear/mock"
)

type OrchestratorMockTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	ctx           context.Context
	mockCharacter *combatantmock.MockRepository
	mockGear      *gearmock.MockRepository
	orchestrator  combat.Service
}

func TestOrchestratorMockSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorMockTestSuite))
}

func (s *OrchestratorMockTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.mockCharacter = combatantmock.NewMockRepository(s.ctrl)
	s.mockGear = gearmock.NewMockRepository(s.ctrl)

	var err error
	s.orchestrator, err = combat.NewOrchestrator(&combat.Config{
		CharacterRepo: s.mockCharacter,
		GearRepo:      s.mockGear,
		IDGenerator:   idgen.NewSequential("char"),
		EventBus:      events.NewBus(),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorMockTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorMockTestSuite) TestCreateCharacter_StorageFailure() {
	s.mockCharacter.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, stderrors.New("out of memory"))

	out, err := s.orchestrator.CreateCharacter(s.ctx, &combat.CreateCharacterInput{Name: "Eric"})

	s.Nil(out)
	s.True(errors.IsInternal(err))
	s.Contains(err.Error(), "failed to store character")
}

func (s *OrchestratorMockTestSuite) TestCreateCharacter_StoresStartingStats() {
	s.mockCharacter.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input combatant.CreateInput) (*combatant.CreateOutput, error) {
			s.Equal("char_1", input.CharacterData.ID)
			s.Equal(int32(20), input.CharacterData.HP)
			return &combatant.CreateOutput{CharacterData: input.CharacterData}, nil
		})

	out, err := s.orchestrator.CreateCharacter(s.ctx, &combat.CreateCharacterInput{Name: "Eric"})

	s.Require().NoError(err)
	s.Equal("char_1", out.Character.ID)
}

func (s *OrchestratorMockTestSuite) TestAttack_TargetUpdateFails() {
	attacker := entity.NewCharacter("Eric").ToData()
	attacker.ID = "char_a"
	target := entity.NewMob("Goblin", 3, 9, 3, 3).ToData()
	target.ID = "char_t"

	s.mockCharacter.EXPECT().
		Get(s.ctx, combatant.GetInput{ID: "char_a"}).
		Return(&combatant.GetOutput{CharacterData: attacker}, nil)
	s.mockCharacter.EXPECT().
		Get(s.ctx, combatant.GetInput{ID: "char_t"}).
		Return(&combatant.GetOutput{CharacterData: target}, nil)
	s.mockCharacter.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input combatant.UpdateInput) (*combatant.UpdateOutput, error) {
			s.Equal("char_t", input.CharacterData.ID)
			s.Equal(int32(5), input.CharacterData.HP)
			return nil, errors.NotFound("character with ID char_t not found")
		})

	out, err := s.orchestrator.Attack(s.ctx, &combat.AttackInput{AttackerID: "char_a", TargetID: "char_t"})

	s.Nil(out)
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "failed to store character char_t")
}

func (s *OrchestratorMockTestSuite) TestEquipItem_GearLookupFails() {
	s.mockGear.EXPECT().
		Get(s.ctx, gear.GetInput{ID: "gear_1"}).
		Return(nil, errors.NotFound("gear with ID gear_1 not found"))

	out, err := s.orchestrator.EquipItem(s.ctx, &combat.EquipItemInput{CharacterID: "char_1", GearID: "gear_1"})

	s.Nil(out)
	s.True(errors.IsNotFound(err))
}

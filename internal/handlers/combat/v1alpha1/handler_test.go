package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	combatv1alpha1 "github.com/KirkDiggler/rpg-combat/internal/api/combat/v1alpha1"
	entity "github.com/KirkDiggler/rpg-combat/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
	"github.com/KirkDiggler/rpg-combat/internal/handlers/combat/v1alpha1"
	"github.com/KirkDiggler/rpg-combat/internal/orchestrators/combat"
	combatmock "github.com/KirkDiggler/rpg-combat/internal/orchestrators/combat/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockCombat *combatmock.MockService
	handler    *v1alpha1.Handler
	ctx        context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCombat = combatmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CombatService: s.mockCombat,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandler_RequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestGreet() {
	resp, err := s.handler.Greet(s.ctx, &combatv1alpha1.GreetRequest{Name: "Eric"})

	s.Require().NoError(err)
	s.Equal("Hello, Eric!", resp.Message)
}

func (s *HandlerTestSuite) TestCreateCharacter_EmptyNameForwarded() {
	s.mockCombat.EXPECT().
		CreateCharacter(s.ctx, &combat.CreateCharacterInput{Name: ""}).
		Return(&combat.CreateCharacterOutput{Character: &entity.CharacterData{
			ID: "char_1", Level: 1, HP: 20, AP: 5, DP: 5, Exp: entity.Mod(0),
		}}, nil)

	resp, err := s.handler.CreateCharacter(s.ctx, &combatv1alpha1.CreateCharacterRequest{})

	s.Require().NoError(err)
	s.Equal("char_1", resp.Character.ID)
	s.Equal("", resp.Character.Name)
}

func (s *HandlerTestSuite) TestCreateMob() {
	s.mockCombat.EXPECT().
		CreateMob(s.ctx, &combat.CreateMobInput{Name: "Goblin", Level: 3, HP: 9, AP: 3, DP: 3}).
		Return(&combat.CreateMobOutput{Character: &entity.CharacterData{
			ID: "char_2", Name: "Goblin", Level: 3, HP: 9, AP: 3, DP: 3,
		}}, nil)

	resp, err := s.handler.CreateMob(s.ctx, &combatv1alpha1.CreateMobRequest{
		Name: "Goblin", Level: 3, HP: 9, AP: 3, DP: 3,
	})

	s.Require().NoError(err)
	s.Equal("char_2", resp.Character.ID)
	s.Nil(resp.Character.Exp)
	s.Empty(resp.Character.Equipment)
}

func (s *HandlerTestSuite) TestEquipItem_ConvertsEquipment() {
	s.mockCombat.EXPECT().
		EquipItem(s.ctx, &combat.EquipItemInput{CharacterID: "char_1", GearID: "gear_1"}).
		Return(&combat.EquipItemOutput{
			Character: &entity.CharacterData{
				ID: "char_1", Name: "Eric", Level: 1, HP: 20, AP: 8, DP: 10,
				Exp: entity.Mod(0),
				Slots: map[entity.GearSlot]entity.GearData{
					entity.SlotHand: {Name: "Axe", AP: entity.Mod(3), DP: entity.Mod(5), Slot: entity.SlotHand},
					entity.SlotFoot: {Name: "Boots", Slot: entity.SlotFoot},
				},
			},
		}, nil)

	resp, err := s.handler.EquipItem(s.ctx, &combatv1alpha1.EquipItemRequest{CharacterID: "char_1", GearID: "gear_1"})

	s.Require().NoError(err)
	s.Equal(int32(8), resp.Character.AP)
	s.Require().Len(resp.Character.Equipment, 2)
	s.Equal("hand", resp.Character.Equipment[0].Slot)
	s.Equal("foot", resp.Character.Equipment[1].Slot)
	s.Equal(int32(3), *resp.Character.Equipment[0].AP)
}

func (s *HandlerTestSuite) TestRemoveItem_InvalidSlot() {
	_, err := s.handler.RemoveItem(s.ctx, &combatv1alpha1.RemoveItemRequest{CharacterID: "char_1", Slot: "head"})

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.InvalidArgument, st.Code())
	s.Contains(st.Message(), "invalid slot")
}

func (s *HandlerTestSuite) TestRemoveItem_EmptySlot() {
	s.mockCombat.EXPECT().
		RemoveItem(s.ctx, &combat.RemoveItemInput{CharacterID: "char_1", Slot: entity.SlotTorso}).
		Return(&combat.RemoveItemOutput{Character: &entity.CharacterData{ID: "char_1", HP: 20}}, nil)

	resp, err := s.handler.RemoveItem(s.ctx, &combatv1alpha1.RemoveItemRequest{CharacterID: "char_1", Slot: "Torso"})

	s.Require().NoError(err)
	s.Nil(resp.Removed)
	s.Equal(int32(20), resp.Character.HP)
}

func (s *HandlerTestSuite) TestAttack() {
	s.mockCombat.EXPECT().
		Attack(s.ctx, &combat.AttackInput{AttackerID: "char_1", TargetID: "char_2"}).
		Return(&combat.AttackOutput{
			Damage:   7,
			Attacker: &entity.CharacterData{ID: "char_1"},
			Target:   &entity.CharacterData{ID: "char_2", HP: 2},
		}, nil)

	resp, err := s.handler.Attack(s.ctx, &combatv1alpha1.AttackRequest{AttackerID: "char_1", TargetID: "char_2"})

	s.Require().NoError(err)
	s.Equal(int32(7), resp.Damage)
	s.False(resp.Defeated)
	s.Equal(int32(2), resp.Target.HP)
}

func (s *HandlerTestSuite) TestAttack_ValidationErrors() {
	testCases := []struct {
		name   string
		req    *combatv1alpha1.AttackRequest
		errMsg string
	}{
		{
			name:   "missing attacker",
			req:    &combatv1alpha1.AttackRequest{TargetID: "char_2"},
			errMsg: "attacker_id is required",
		},
		{
			name:   "missing target",
			req:    &combatv1alpha1.AttackRequest{AttackerID: "char_1"},
			errMsg: "target_id is required",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.handler.Attack(s.ctx, tc.req)

			st, ok := status.FromError(err)
			s.Require().True(ok)
			s.Equal(codes.InvalidArgument, st.Code())
			s.Equal(tc.errMsg, st.Message())
		})
	}
}

func (s *HandlerTestSuite) TestGetCharacter_NotFound() {
	s.mockCombat.EXPECT().
		GetCharacter(s.ctx, &combat.GetCharacterInput{CharacterID: "missing"}).
		Return(nil, errors.NotFound("character with ID missing not found"))

	_, err := s.handler.GetCharacter(s.ctx, &combatv1alpha1.GetCharacterRequest{CharacterID: "missing"})

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())
}

func (s *HandlerTestSuite) TestCreateGear() {
	s.mockCombat.EXPECT().
		CreateGear(s.ctx, &combat.CreateGearInput{
			Name: "Axe", AP: entity.Mod(3), DP: entity.Mod(5), Slot: entity.SlotHand,
		}).
		Return(&combat.CreateGearOutput{Gear: &entity.GearData{
			ID: "gear_1", Name: "Axe", AP: entity.Mod(3), DP: entity.Mod(5), Slot: entity.SlotHand,
		}}, nil)

	resp, err := s.handler.CreateGear(s.ctx, &combatv1alpha1.CreateGearRequest{
		Name: "Axe", AP: entity.Mod(3), DP: entity.Mod(5), Slot: "hand",
	})

	s.Require().NoError(err)
	s.Equal("gear_1", resp.Gear.ID)
	s.Equal("hand", resp.Gear.Slot)
	s.Nil(resp.Gear.HP)
}

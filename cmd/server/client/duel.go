package client

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	combatv1alpha1 "github.com/KirkDiggler/rpg-combat/internal/api/combat/v1alpha1"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
)

var (
	heroName  string
	mobName   string
	maxRounds int
)

var duelCmd = &cobra.Command{
	Use:   "duel",
	Short: "Run a hero against a goblin until one falls",
	Long: `Creates a hero and a level 3 goblin, arms the hero with an axe from the
gear catalog and trades blows until one side is defeated.`,
	RunE: runDuel,
}

func init() {
	duelCmd.Flags().StringVar(&heroName, "hero", "Eric", "Hero name")
	duelCmd.Flags().StringVar(&mobName, "mob", "Goblin", "Mob name")
	duelCmd.Flags().IntVar(&maxRounds, "max-rounds", 20, "Stop after this many rounds")
}

func runDuel(cmd *cobra.Command, _ []string) error {
	conn, err := createConnection()
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, err = RunDuel(ctx, combatv1alpha1.NewCombatServiceClient(conn), cmd.OutOrStdout(), DuelOptions{
		HeroName:  heroName,
		MobName:   mobName,
		MaxRounds: maxRounds,
	})
	return err
}

// DuelOptions configures RunDuel
type DuelOptions struct {
	HeroName  string
	MobName   string
	MaxRounds int
}

// DuelResult summarizes a finished duel
type DuelResult struct {
	Winner *combatv1alpha1.Character
	Loser  *combatv1alpha1.Character
	Rounds int
}

// RunDuel plays the hero against a level 3 goblin. The hero strikes first
// each round. A nil Winner means the round limit was hit.
func RunDuel(
	ctx context.Context,
	client combatv1alpha1.CombatServiceClient,
	out io.Writer,
	opts DuelOptions,
) (*DuelResult, error) {
	hero, err := client.CreateCharacter(ctx, &combatv1alpha1.CreateCharacterRequest{Name: opts.HeroName})
	if err != nil {
		return nil, callError(err, "failed to create hero")
	}
	mob, err := client.CreateMob(ctx, &combatv1alpha1.CreateMobRequest{
		Name: opts.MobName, Level: 3, HP: 9, AP: 3, DP: 3,
	})
	if err != nil {
		return nil, callError(err, "failed to create mob")
	}

	weapon, err := findOrCreateAxe(ctx, client)
	if err != nil {
		return nil, err
	}
	equipped, err := client.EquipItem(ctx, &combatv1alpha1.EquipItemRequest{
		CharacterID: hero.Character.ID,
		GearID:      weapon.ID,
	})
	if err != nil {
		return nil, callError(err, "failed to equip %s", weapon.Name)
	}

	attacker, defender := equipped.Character, mob.Character
	fmt.Fprintf(out, "%s (hp %d, ap %d, dp %d) vs %s (hp %d, ap %d, dp %d)\n",
		attacker.Name, attacker.HP, attacker.AP, attacker.DP,
		defender.Name, defender.HP, defender.AP, defender.DP)

	result := &DuelResult{}
	for result.Rounds < opts.MaxRounds {
		result.Rounds++
		for range 2 {
			resp, err := client.Attack(ctx, &combatv1alpha1.AttackRequest{
				AttackerID: attacker.ID,
				TargetID:   defender.ID,
			})
			if err != nil {
				rpcErr := errors.FromGRPCError(err)
				fmt.Fprintf(out, "round %d: attack failed: %s\n", result.Rounds, errors.GetMessage(rpcErr))
				return nil, errors.Wrapf(rpcErr, "round %d: %s failed to attack", result.Rounds, attacker.Name)
			}

			fmt.Fprintf(out, "round %d: %s hits %s for %d (hp %d)\n",
				result.Rounds, attacker.Name, resp.Target.Name, resp.Damage, resp.Target.HP)

			if resp.Defeated {
				result.Winner, result.Loser = resp.Attacker, resp.Target
				fmt.Fprintf(out, "%s wins after %d rounds\n", result.Winner.Name, result.Rounds)
				return result, nil
			}
			attacker, defender = resp.Target, resp.Attacker
		}
	}

	fmt.Fprintf(out, "no winner after %d rounds\n", result.Rounds)
	return result, nil
}

// findOrCreateAxe prefers the catalog's Axe so seeded servers are exercised
func findOrCreateAxe(ctx context.Context, client combatv1alpha1.CombatServiceClient) (*combatv1alpha1.Gear, error) {
	list, err := client.ListGear(ctx, &combatv1alpha1.ListGearRequest{Slot: "hand"})
	if err != nil {
		return nil, callError(err, "failed to list gear")
	}
	for _, g := range list.Gear {
		if g.Name == "Axe" {
			return g, nil
		}
	}

	ap, dp := int32(3), int32(5)
	created, err := client.CreateGear(ctx, &combatv1alpha1.CreateGearRequest{
		Name: "Axe", AP: &ap, DP: &dp, Slot: "hand",
	})
	if err != nil {
		return nil, callError(err, "failed to create axe")
	}
	return created.Gear, nil
}

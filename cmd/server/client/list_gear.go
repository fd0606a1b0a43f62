package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	combatv1alpha1 "github.com/KirkDiggler/rpg-combat/internal/api/combat/v1alpha1"
)

var gearSlot string

var listGearCmd = &cobra.Command{
	Use:   "list-gear",
	Short: "List the gear catalog",
	RunE:  runListGear,
}

func init() {
	listGearCmd.Flags().StringVar(&gearSlot, "slot", "", "Only list gear for this slot (torso, hand, foot)")
}

func runListGear(cmd *cobra.Command, _ []string) error {
	conn, err := createConnection()
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := combatv1alpha1.NewCombatServiceClient(conn).ListGear(ctx, &combatv1alpha1.ListGearRequest{Slot: gearSlot})
	if err != nil {
		return callError(err, "failed to list gear")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Found %d items:\n", len(resp.Gear))
	for _, g := range resp.Gear {
		fmt.Fprintf(out, "  %-16s %-6s ap=%s dp=%s hp=%s  (%s)\n",
			g.Name, g.Slot, formatMod(g.AP), formatMod(g.DP), formatMod(g.HP), g.ID)
	}
	return nil
}

func formatMod(v *int32) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%+d", *v)
}

package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	combatv1alpha1 "github.com/KirkDiggler/rpg-combat/internal/api/combat/v1alpha1"
)

var greetCmd = &cobra.Command{
	Use:   "greet [name]",
	Short: "Ask the server for a greeting",
	Args:  cobra.ExactArgs(1),
	RunE:  runGreet,
}

func runGreet(cmd *cobra.Command, args []string) error {
	conn, err := createConnection()
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := combatv1alpha1.NewCombatServiceClient(conn).Greet(ctx, &combatv1alpha1.GreetRequest{Name: args[0]})
	if err != nil {
		return callError(err, "failed to greet")
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
	return err
}

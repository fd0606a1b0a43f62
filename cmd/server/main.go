// Package main is the entry point for the combat gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-combat/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-combat",
	Short: "RPG combat gRPC server",
	Long:  `RPG combat serves characters, mobs, gear and attacks over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

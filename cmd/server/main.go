// Package main is the entry point for the rpg-trainer CLI and gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-trainer/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "rpg-trainer",
	Short: "Melee training route planner",
	Long: `rpg-trainer finds the fastest way to train attack, strength and defence
between two level triples, picking the best available gear for every level.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config file")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

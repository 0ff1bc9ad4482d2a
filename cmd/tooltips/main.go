// Package main is the entry point for the tooltips CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	envFile string
	logFile string
)

var rootCmd = &cobra.Command{
	Use:   "tooltips",
	Short: "Hover tooltips for RPG item lists",
	Long: `tooltips shows a floating summary of an item while the pointer rests on it.
It runs a terminal host with actor sheet, item directory and compendium panes,
and manages the items and settings it reads from Redis.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(previewCmd)
}

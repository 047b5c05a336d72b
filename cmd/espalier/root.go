package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "espalier",
	Short: "Espalier normalizes component markup for the renderer",
	Long: `Espalier rewrites author-facing component markup (popover, tooltip,
modal, trigger) into the canonical attribute and slot shape the downstream
rendering layer consumes.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the espalier config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

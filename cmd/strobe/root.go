package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "strobe",
	Short: "Strobe is a step-recording algorithm visualizer",
	Long:  `Strobe records algorithm executions into replayable step logs and plays them back in the terminal or over HTTP.`,
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
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the config file (default strobe.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

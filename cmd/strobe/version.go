package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/strobe"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of strobe",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("strobe version %s\n", strobe.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

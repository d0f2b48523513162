package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/strobe/internal/presentation/tui"
	"github.com/aretw0/strobe/pkg/domain"
	"github.com/aretw0/strobe/pkg/registry"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [family]",
	Short: "List the available algorithms",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var family domain.Family
		if len(args) > 0 {
			family = domain.Family(args[0])
		}

		entries := registry.Default().List(family)
		if len(entries) == 0 {
			fmt.Printf("No algorithms for family %q.\n", family)
			os.Exit(1)
		}

		current := domain.Family("")
		for _, entry := range entries {
			if entry.Family != current {
				current = entry.Family
				fmt.Printf("\n%s\n", current)
			}
			fmt.Printf("  %-12s %s\n", entry.Slug, entry.DisplayName)
		}
		fmt.Println()
	},
}

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <family> <algorithm>",
	Short: "Show an algorithm's complexity notes",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		entry, err := registry.Default().Lookup(domain.Family(args[0]), args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		render := tui.NewInfoRenderer()
		out, err := render(entry.Info)
		if err != nil {
			// Fall back to the raw markdown on render failure.
			out = entry.Info
		}
		fmt.Println(out)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(infoCmd)
}

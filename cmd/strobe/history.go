package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/strobe/internal/cli"
	"github.com/aretw0/strobe/internal/config"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded run performance",
	Long:  `Lists the performance records of completed runs. Records live in memory unless the config points at Redis, so an empty list is expected without one.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		clear, _ := cmd.Flags().GetBool("clear")

		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		store := cli.NewHistory(cfg)
		ctx := context.Background()

		if clear {
			if err := store.Clear(ctx); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("History cleared.")
			return
		}

		records, err := store.List(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if len(records) == 0 {
			fmt.Println("No runs recorded.")
			return
		}

		for _, r := range records {
			fmt.Printf("%s  %-12s %-10s  %4d comparisons  %4d mutations  %6.2fms  ~%dKB\n",
				r.Timestamp.Format(time.RFC3339),
				r.Family, r.Algorithm,
				r.Comparisons, r.Mutations,
				float64(r.GenerationTime)/float64(time.Millisecond),
				r.MemoryEstimateKB,
			)
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Bool("clear", false, "Clear the recorded history")
}

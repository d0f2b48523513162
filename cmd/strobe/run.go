package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/strobe/internal/cli"
	"github.com/aretw0/strobe/pkg/domain"
	"github.com/aretw0/strobe/pkg/session"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [family] [algorithm]",
	Short: "Record and replay one algorithm run",
	Long:  `Executes an algorithm, records its step log and replays it in the terminal. Positional arguments select the family and algorithm; a --preset overrides both.`,
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")
		preset, _ := cmd.Flags().GetString("preset")
		size, _ := cmd.Flags().GetInt("size")
		shape, _ := cmd.Flags().GetString("shape")
		seed, _ := cmd.Flags().GetInt64("seed")
		target, _ := cmd.Flags().GetInt("target")
		speed, _ := cmd.Flags().GetFloat64("speed")
		audio, _ := cmd.Flags().GetBool("audio")
		headless, _ := cmd.Flags().GetBool("headless")
		manual, _ := cmd.Flags().GetBool("manual")
		fps, _ := cmd.Flags().GetInt("fps")

		spec := session.RunSpec{
			Size:   size,
			Shape:  shape,
			Seed:   seed,
			Target: target,
			Speed:  speed,
			Audio:  audio,
		}
		if len(args) > 0 {
			spec.Family = domain.Family(args[0])
		}
		if len(args) > 1 {
			spec.Algorithm = args[1]
		}

		if preset == "" && (spec.Family == "" || spec.Algorithm == "") {
			fmt.Println("Error: select a family and algorithm, or use --preset.")
			os.Exit(1)
		}

		err := cli.Execute(cli.RunOptions{
			ConfigPath: configPath,
			Preset:     preset,
			Spec:       spec,
			Headless:   headless,
			Manual:     manual,
			Debug:      debug,
			FPS:        fps,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("preset", "", "Run a named preset from the config file")
	runCmd.Flags().Int("size", 0, "Input size (array length, node count)")
	runCmd.Flags().String("shape", "", "Array input shape: random, reversed, nearly-sorted")
	runCmd.Flags().Int64("seed", 0, "Input generation seed")
	runCmd.Flags().Int("target", 0, "Search target value")
	runCmd.Flags().Float64("speed", 0, "Playback speed multiplier")
	runCmd.Flags().Bool("audio", false, "Emit audio cue events")
	runCmd.Flags().Bool("headless", false, "Replay without rendering, print the summary only")
	runCmd.Flags().Bool("manual", false, "Step manually instead of playing")
	runCmd.Flags().Int("fps", 30, "Frame rate of the interactive loop")
}

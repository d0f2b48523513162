// Package cli implements the command surface: resolving run specs from
// flags and presets, then driving a controller against the terminal.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/strobe/internal/config"
	"github.com/aretw0/strobe/internal/presentation/tui"
	"github.com/aretw0/strobe/pkg/domain"
	"github.com/aretw0/strobe/pkg/playback"
	"github.com/aretw0/strobe/pkg/session"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	ConfigPath string
	Preset     string
	Spec       session.RunSpec

	Headless bool
	Manual   bool
	Debug    bool
	FPS      int
}

// Execute handles the run command: resolve the spec, build the
// controller and drive it to completion.
func Execute(opts RunOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	spec := cfg.Apply(opts.Spec)
	if opts.Preset != "" {
		spec, err = cfg.Preset(opts.Preset)
		if err != nil {
			return err
		}
	}

	logger := createLogger(opts.Debug)
	history := NewHistory(cfg)
	controller, err := createController(spec, history, logger, opts.Debug)
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	// A non-terminal stdout cannot host the frame loop.
	headless := opts.Headless || !term.IsTerminal(int(os.Stdout.Fd()))

	if !headless {
		tui.PrintBanner()
	}

	var runErr error
	switch {
	case headless:
		runErr = runHeadless(sigCtx, controller)
	case opts.Manual:
		runErr = runManual(sigCtx, controller)
	default:
		runErr = runInteractive(sigCtx, controller, opts.FPS)
	}

	if runErr == nil || isInterrupted(runErr) {
		printSummary(controller, headless)
	}
	return handleExecutionError(runErr)
}

// runHeadless replays the run under synthetic time, as fast as the host
// allows. Counters and the performance record are identical to a timed
// replay.
func runHeadless(ctx context.Context, c *playback.Controller) error {
	if err := c.Start(ctx); err != nil {
		return err
	}

	now := time.Unix(0, 0)
	interval := c.BaseDelay()
	for c.State() == domain.StateRunning {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.Tick(ctx, now)
		now = now.Add(interval)
	}
	return nil
}

// runInteractive plays the run in real time, redrawing the frame on
// every applied step.
func runInteractive(ctx context.Context, c *playback.Controller, fps int) error {
	if fps <= 0 {
		fps = 30
	}
	if err := c.Start(ctx); err != nil {
		return err
	}

	renderer := tui.NewRenderer()
	output := termenv.NewOutput(os.Stdout)
	output.HideCursor()
	defer output.ShowCursor()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	drawFrame(output, renderer, c)
	for c.State() == domain.StateRunning {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if c.Tick(ctx, now) {
				drawFrame(output, renderer, c)
			}
		}
	}
	return nil
}

// runManual starts paused and steps under keyboard control: enter steps
// forward, "b" steps backward, "q" quits.
func runManual(ctx context.Context, c *playback.Controller) error {
	if err := c.Start(ctx); err != nil {
		return err
	}
	c.Pause(ctx)

	renderer := tui.NewRenderer()
	output := termenv.NewOutput(os.Stdout)
	c.StepForward(ctx)
	drawFrame(output, renderer, c)
	printSystemMessage("Manual mode: enter=forward, b=back, q=quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch strings.TrimSpace(scanner.Text()) {
		case "q":
			return nil
		case "b":
			c.StepBackward(ctx)
		default:
			c.StepForward(ctx)
		}
		drawFrame(output, renderer, c)
		if c.State() == domain.StateCompleted {
			return nil
		}
	}
	return scanner.Err()
}

func drawFrame(output *termenv.Output, renderer *tui.Renderer, c *playback.Controller) {
	output.ClearScreen()

	cursor, total := c.Progress()
	step, _ := c.Current()
	fmt.Println(renderer.RenderStep(step))
	fmt.Println(renderer.RenderStats(cursor, total, c.Counters(), c.Speed()))
}

func printSummary(c *playback.Controller, quiet bool) {
	if c.State() != domain.StateCompleted {
		return
	}
	counters := c.Counters()
	if quiet {
		fmt.Printf("%s/%s: %d comparisons, %d mutations, generated in %s\n",
			c.Family(), c.Algorithm(), counters.Comparisons, counters.Mutations, c.GenerationTime())
		return
	}
	printSystemMessage("%s finished: %d comparisons, %d mutations, generated in %s.",
		c.Algorithm(), counters.Comparisons, counters.Mutations, c.GenerationTime())
}

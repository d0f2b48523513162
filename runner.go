package strobe

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aretw0/strobe/pkg/domain"
	"github.com/aretw0/strobe/pkg/playback"
)

// FrameRenderer transforms an applied step into the text written for
// its frame. This keeps terminal rendering out of the core package;
// hosts plug in their own (plain text, ANSI, markdown).
type FrameRenderer func(step domain.Step) string

// Runner replays a controller under synthetic time and writes one frame
// per applied step. It exists for hosts that want the playback ordering
// without real delays: tests, transcript dumps, piped output.
type Runner struct {
	Output   io.Writer
	Renderer FrameRenderer

	// Interval is the synthetic time advanced per tick. Zero uses the
	// controller's base delay, which applies every step.
	Interval time.Duration
}

// NewRunner creates a Runner writing plain step descriptions.
func NewRunner(output io.Writer) *Runner {
	return &Runner{
		Output: output,
		Renderer: func(step domain.Step) string {
			return step.Description
		},
	}
}

// Run starts the controller and replays it to completion, writing each
// applied step's frame to Output.
func (r *Runner) Run(ctx context.Context, c *playback.Controller) error {
	if r.Output == nil {
		return fmt.Errorf("output writer must be set")
	}
	renderer := r.Renderer
	if renderer == nil {
		renderer = func(step domain.Step) string { return step.Description }
	}

	if err := c.Start(ctx); err != nil {
		return err
	}

	interval := r.Interval
	if interval == 0 {
		interval = c.BaseDelay()
	}

	now := time.Unix(0, 0)
	for c.State() == domain.StateRunning {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.Tick(ctx, now) {
			step, _ := c.Current()
			if _, err := fmt.Fprintln(r.Output, renderer(step)); err != nil {
				return err
			}
		}
		now = now.Add(interval)
	}
	return nil
}

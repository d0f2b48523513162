package strobe

import (
	"github.com/aretw0/strobe/pkg/domain"
	"github.com/aretw0/strobe/pkg/playback"
	"github.com/aretw0/strobe/pkg/session"
)

// Version is the library version, surfaced by the CLI.
const Version = "0.1.0"

// RunSpec declares one run: algorithm selection plus input shape.
type RunSpec = session.RunSpec

// New builds a playback controller for a run spec. The controller is
// created stopped; call Start and drive it with Tick.
func New(spec RunSpec, opts ...playback.Option) (*playback.Controller, error) {
	return session.NewController(spec, opts...)
}

// Generate runs the executor once without playback and returns the
// recorded step log with its counters. Useful for analysis and testing
// hosts that do not animate.
func Generate(spec RunSpec) (*domain.Log, domain.Counters, error) {
	generate, err := session.NewGenerator(spec)
	if err != nil {
		return nil, domain.Counters{}, err
	}
	return generate()
}

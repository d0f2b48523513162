package strobe_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/strobe"
	"github.com/aretw0/strobe/pkg/domain"
)

func TestGenerate(t *testing.T) {
	log, counters, err := strobe.Generate(strobe.RunSpec{
		Family: domain.FamilySorting, Algorithm: "bubble", Size: 10, Seed: 5,
	})
	require.NoError(t, err)
	assert.Greater(t, log.Len(), 0)
	assert.Greater(t, counters.Comparisons, 0)

	last, ok := log.Last()
	require.True(t, ok)
	assert.True(t, last.Flags.Terminal)
}

func TestGenerate_UnknownAlgorithm(t *testing.T) {
	_, _, err := strobe.Generate(strobe.RunSpec{Family: domain.FamilySorting, Algorithm: "bogo"})
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}

func TestRunner_ReplaysEveryStep(t *testing.T) {
	controller, err := strobe.New(strobe.RunSpec{
		Family: domain.FamilySorting, Algorithm: "bubble", Size: 6, Seed: 3,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	runner := strobe.NewRunner(&buf)
	require.NoError(t, runner.Run(context.Background(), controller))

	assert.Equal(t, domain.StateCompleted, controller.State())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	cursor, total := controller.Progress()
	assert.Equal(t, total, len(lines))
	assert.Equal(t, total, cursor)
	assert.Equal(t, "Bubble Sort completed", lines[len(lines)-1])
}

func TestRunner_RequiresOutput(t *testing.T) {
	controller, err := strobe.New(strobe.RunSpec{Family: domain.FamilySorting, Algorithm: "bubble"})
	require.NoError(t, err)

	runner := &strobe.Runner{}
	assert.Error(t, runner.Run(context.Background(), controller))
}

func TestRunner_CustomRenderer(t *testing.T) {
	controller, err := strobe.New(strobe.RunSpec{
		Family: domain.FamilySearching, Algorithm: "binary", Size: 15, Seed: 1,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	runner := &strobe.Runner{
		Output: &buf,
		Renderer: func(step domain.Step) string {
			if step.Flags.Terminal {
				return "[end] " + step.Description
			}
			return step.Description
		},
	}
	require.NoError(t, runner.Run(context.Background(), controller))
	assert.Contains(t, buf.String(), "[end] ")
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/strobe/internal/config"
	"github.com/aretw0/strobe/pkg/domain"
)

const sampleYAML = `
listen: ":9090"
speed: 2.0
audio: true
redis:
  addr: "localhost:6379"
presets:
  quick-demo:
    family: sorting
    algorithm: quick
    size: 50
    shape: reversed
  maze:
    family: pathfinding
    algorithm: astar
    seed: 7
`

func TestParse_YAML(t *testing.T) {
	cfg, err := config.Parse([]byte(sampleYAML), ".yaml")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, 2.0, cfg.Speed)
	assert.True(t, cfg.Audio)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)

	spec, err := cfg.Preset("quick-demo")
	require.NoError(t, err)
	assert.Equal(t, domain.FamilySorting, spec.Family)
	assert.Equal(t, "quick", spec.Algorithm)
	assert.Equal(t, 50, spec.Size)
	assert.Equal(t, "reversed", spec.Shape)
	// Unset playback fields inherit the config defaults.
	assert.Equal(t, 2.0, spec.Speed)
	assert.True(t, spec.Audio)
}

func TestParse_JSON(t *testing.T) {
	data := []byte(`{"listen": ":7070", "presets": {"demo": {"family": "graph", "algorithm": "prim"}}}`)
	cfg, err := config.Parse(data, ".json")
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Listen)
	spec, err := cfg.Preset("demo")
	require.NoError(t, err)
	assert.Equal(t, domain.FamilyGraph, spec.Family)
}

func TestParse_Invalid(t *testing.T) {
	_, err := config.Parse([]byte("{not yaml"), ".yaml")
	assert.Error(t, err)

	_, err = config.Parse([]byte(`presets: {bad: {size: "many"}}`), ".yaml")
	assert.Error(t, err)
}

func TestLoad_MissingDefaultPathUsesDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, 1.0, cfg.Speed)
	assert.Empty(t, cfg.Presets)
}

func TestLoad_MissingExplicitPathFails(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strobe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Presets, 2)
}

func TestPreset_Unknown(t *testing.T) {
	_, err := config.Default().Preset("ghost")
	assert.Error(t, err)
}

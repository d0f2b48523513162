// Package config loads host configuration and named run presets from a
// YAML or JSON file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/strobe/pkg/session"
)

// DefaultPath is probed when no config file is given.
const DefaultPath = "strobe.yaml"

// Config is the host configuration: playback defaults plus named run
// presets selectable by name from the CLI.
type Config struct {
	Listen  string  `yaml:"listen" json:"listen"`
	Redis   Redis   `yaml:"redis" json:"redis"`
	Speed   float64 `yaml:"speed" json:"speed"`
	Audio   bool    `yaml:"audio" json:"audio"`
	Verbose bool    `yaml:"verbose" json:"verbose"`

	// HistoryFile persists records to a JSON file when no Redis is
	// configured. Empty keeps history in memory.
	HistoryFile string `yaml:"history_file" json:"history_file"`

	Presets map[string]session.RunSpec `yaml:"-" json:"-"`
}

// Redis configures the optional Redis-backed history store. An empty
// address keeps history in memory.
type Redis struct {
	Addr string `yaml:"addr" json:"addr"`
	Key  string `yaml:"key" json:"key"`
}

// file is the on-disk shape. Presets stay raw so mapstructure can
// decode them leniently into run specs.
type file struct {
	Listen      string                    `yaml:"listen" json:"listen"`
	Redis       Redis                     `yaml:"redis" json:"redis"`
	Speed       float64                   `yaml:"speed" json:"speed"`
	Audio       bool                      `yaml:"audio" json:"audio"`
	Verbose     bool                      `yaml:"verbose" json:"verbose"`
	HistoryFile string                    `yaml:"history_file" json:"history_file"`
	Presets     map[string]map[string]any `yaml:"presets" json:"presets"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Listen:  ":8080",
		Speed:   1.0,
		Presets: map[string]session.RunSpec{},
	}
}

// Load reads a configuration file. A missing file at the default path
// yields the defaults; an explicitly requested file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes config data. The extension selects the codec; anything
// but ".json" is treated as YAML.
func Parse(data []byte, ext string) (*Config, error) {
	var f file
	if strings.ToLower(ext) == ".json" {
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg := Default()
	if f.Listen != "" {
		cfg.Listen = f.Listen
	}
	cfg.Redis = f.Redis
	if f.Speed != 0 {
		cfg.Speed = f.Speed
	}
	cfg.Audio = f.Audio
	cfg.Verbose = f.Verbose
	cfg.HistoryFile = f.HistoryFile

	for name, raw := range f.Presets {
		var spec session.RunSpec
		if err := mapstructure.Decode(raw, &spec); err != nil {
			return nil, fmt.Errorf("failed to decode preset %q: %w", name, err)
		}
		cfg.Presets[name] = spec
	}
	return cfg, nil
}

// Preset resolves a named preset and applies the config's playback
// defaults to its unset fields.
func (c *Config) Preset(name string) (session.RunSpec, error) {
	spec, ok := c.Presets[name]
	if !ok {
		return session.RunSpec{}, fmt.Errorf("unknown preset %q", name)
	}
	return c.Apply(spec), nil
}

// Apply fills the config's playback defaults into a spec's zero fields.
func (c *Config) Apply(spec session.RunSpec) session.RunSpec {
	if spec.Speed == 0 {
		spec.Speed = c.Speed
	}
	if !spec.Audio {
		spec.Audio = c.Audio
	}
	return spec
}

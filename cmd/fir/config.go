package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// RunConfig is the contents of a run file:
//
//	patch = "sine"
//	sample-rate = 48000
//	frames = 64
//	state = "sine.cbor"
//
//	[params]
//	"/sine/freq" = 220.0
type RunConfig struct {
	Patch      string             `toml:"patch"`
	SampleRate int                `toml:"sample-rate"`
	Frames     int                `toml:"frames"`
	State      string             `toml:"state"`
	Params     map[string]float64 `toml:"params"`
}

const (
	defaultSampleRate = 48000
	defaultFrames     = 16
)

func defaultRunConfig() *RunConfig {
	return &RunConfig{
		SampleRate: defaultSampleRate,
		Frames:     defaultFrames,
		Params:     make(map[string]float64),
	}
}

// LoadRunConfig reads a run file on top of the defaults.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	cfg := defaultRunConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	if cfg.Params == nil {
		cfg.Params = make(map[string]float64)
	}

	return cfg, nil
}

func (c *RunConfig) Validate() error {
	if c.Patch == "" {
		return fmt.Errorf("no patch given")
	}

	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", c.SampleRate)
	}

	if c.Frames < 0 {
		return fmt.Errorf("frame count must not be negative, got %d", c.Frames)
	}

	return nil
}

// ParamNames returns the configured parameter names in a stable order.
func (c *RunConfig) ParamNames() []string {
	names := make([]string, 0, len(c.Params))
	for name := range c.Params {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// parseParam splits a "path=value" assignment.
func parseParam(s string) (string, float64, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return "", 0, fmt.Errorf("invalid parameter %q, expected path=value", s)
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid value for %s: %w", name, err)
	}

	return name, v, nil
}

// config.go - Process configuration: compile-time defaults, YAML overlay, flags

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortSonic
License: GPLv3 or later
*/

package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/intuitionamiga/SortSonic/sorter"
	"github.com/intuitionamiga/SortSonic/synth"
)

const (
	DEFAULT_WIDTH  = 1024
	DEFAULT_HEIGHT = 768
	DEFAULT_TPS    = 60
	MAX_TPS        = 1000
)

// Config holds every tunable of a run. Zero values are never valid; start
// from DefaultConfig.
type Config struct {
	Size         int     `yaml:"size"`
	Seed         uint64  `yaml:"seed"` // 0 seeds from the clock
	MaxFrequency float64 `yaml:"max_frequency"`
	SweepStep    int     `yaml:"sweep_step"`
	Volume       float64 `yaml:"volume"`
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	TPS          int     `yaml:"tps"`
	HUD          bool    `yaml:"hud"`
	Banner       bool    `yaml:"banner"`
}

func DefaultConfig() Config {
	return Config{
		Size:         sorter.MAX_SIZE,
		MaxFrequency: sorter.MAX_FREQUENCY,
		SweepStep:    sorter.DEFAULT_SWEEP_STEP,
		Volume:       synth.DEFAULT_VOLUME,
		Width:        DEFAULT_WIDTH,
		Height:       DEFAULT_HEIGHT,
		TPS:          DEFAULT_TPS,
		HUD:          true,
		Banner:       true,
	}
}

// LoadConfigFile overlays the YAML file at path onto cfg. Keys missing
// from the file keep their current value.
func LoadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.Size < 1 || c.Size > sorter.MAX_SIZE:
		return errors.Errorf("size %d out of range [1, %d]", c.Size, sorter.MAX_SIZE)
	case c.MaxFrequency <= 0:
		return errors.Errorf("max frequency must be positive, got %v", c.MaxFrequency)
	case c.SweepStep <= 0:
		return errors.Errorf("sweep step must be positive, got %d", c.SweepStep)
	case c.Volume < 0 || c.Volume > 1:
		return errors.Errorf("volume %v out of range [0, 1]", c.Volume)
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("invalid window size %dx%d", c.Width, c.Height)
	case c.TPS <= 0 || c.TPS > MAX_TPS:
		return errors.Errorf("tps %d out of range [1, %d]", c.TPS, MAX_TPS)
	}
	return nil
}

func (c Config) EngineOptions() sorter.Options {
	return sorter.Options{
		MaxFrequency: c.MaxFrequency,
		SweepStep:    c.SweepStep,
	}
}

func (c Config) StreamConfig() synth.StreamConfig {
	sc := synth.DefaultStreamConfig()
	sc.Volume = c.Volume
	return sc
}

func (c Config) DisplayConfig() DisplayConfig {
	return DisplayConfig{
		Width:       c.Width,
		Height:      c.Height,
		RefreshRate: c.TPS,
		ShowHUD:     c.HUD,
	}
}

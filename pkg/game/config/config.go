// Package config holds the settings of an exploration run.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Generate holds the settings of the random map generator
type Generate struct {
	Enabled bool `yaml:"enabled"`
	Rows    int  `yaml:"rows"`
	Cols    int  `yaml:"cols"`
	Doors   int  `yaml:"doors"`
}

// Config holds everything a run can be tuned with from a YAML file
type Config struct {
	// Map is the path of an ASCII map; empty means the built-in one
	Map string `yaml:"map"`

	// Generate draws a random map instead of reading one
	Generate Generate `yaml:"generate"`

	// Steps is the budget handed to the explorer
	Steps int `yaml:"steps"`

	// Seed drives the randomizer; 0 picks one from the clock
	Seed uint64 `yaml:"seed"`

	// Animate renders every step, waiting Delay between two
	Animate bool          `yaml:"animate"`
	Delay   time.Duration `yaml:"delay"`

	Language string `yaml:"language"`
	Verbose  bool   `yaml:"verbose"`

	// Dump is where a debug dump of the final state is written; empty skips it
	Dump string `yaml:"dump"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Generate: Generate{
			Rows:  20,
			Cols:  40,
			Doors: 3,
		},
		Steps:    1000,
		Delay:    100 * time.Millisecond,
		Language: "en",
	}
}

// Load loads a config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Steps <= 0 {
		return cfg, fmt.Errorf("config %s: steps must be positive, got %d", path, cfg.Steps)
	}

	return cfg, nil
}

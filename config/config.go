package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config drives the demo driver.
type Config struct {
	// Seed for the battle PRNG. Zero means generate one.
	Seed int64 `yaml:"seed" env:"SSB_SEED"`

	// DataDir overrides the embedded dex tables when set.
	DataDir string `yaml:"data_dir" env:"SSB_DATA_DIR"`
	// SetsFile overrides the embedded set table when set.
	SetsFile string `yaml:"sets_file" env:"SSB_SETS_FILE"`

	LogLevel string `yaml:"log_level" env:"SSB_LOG_LEVEL"`

	Demo DemoConfig `yaml:"demo"`
}

// DemoConfig describes the single set change the driver runs.
type DemoConfig struct {
	Set           string `yaml:"set"`
	Target        string `yaml:"target"`
	DamagePercent int    `yaml:"damage_percent"`
	PPUsed        int    `yaml:"pp_used"`
	ChangeAbility bool   `yaml:"change_ability"`
}

// Default returns Config with sensible defaults.
func Default() Config {
	return Config{
		LogLevel: "info",
		Demo: DemoConfig{
			Set:           "Brookeee",
			Target:        "Brookeee-Awakened",
			DamagePercent: 50,
			PPUsed:        3,
			ChangeAbility: true,
		},
	}
}

// Load reads path over the defaults, then applies SSB_* environment
// overrides. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Level maps LogLevel to a slog level, defaulting to Info.
func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

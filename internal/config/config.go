// Package config loads CLI-wide defaults for the minesweepr command,
// layering a config file (if present) under flag and environment overrides
// via viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the settings the CLI consults when a request doesn't pin
// them down explicitly.
type Config struct {
	Solver SolverConfig `mapstructure:"solver"`
	Log    LogConfig    `mapstructure:"log"`
}

// SolverConfig holds defaults for solve invocations that don't fully
// specify a mine model.
type SolverConfig struct {
	// DefaultMineProb is used when a request supplies rules but no
	// mine_prob / total_cells+total_mines at all.
	DefaultMineProb float64 `mapstructure:"default_mine_prob"`
	// OtherTag names the key for the aggregate uncharted-cell probability.
	// It is loaded but not applied: the solve command's responses always
	// use the key "_other" fixed in pkg/wire.
	OtherTag string `mapstructure:"other_tag"`
}

// LogConfig controls pipeline tracing.
type LogConfig struct {
	Trace bool `mapstructure:"trace"`
}

// Load reads configuration from configPath if given, falling back to the
// standard search locations, then to defaults. Environment variables
// prefixed MINESWEEPR_ override anything read from file.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("minesweepr")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/minesweepr")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("MINESWEEPR")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("solver.default_mine_prob", 0.1552) // classic Minesweeper Expert density
	v.SetDefault("solver.other_tag", "_other")
	v.SetDefault("log.trace", false)
}

// Package config loads runtime settings from .asdesign.yaml, ASDESIGN_*
// environment variables and command flags through viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/alexiusacademia/asdesign/internal/as1720"
)

// EnvPrefix is the prefix of environment overrides, e.g. ASDESIGN_STEEL_PHI
const EnvPrefix = "ASDESIGN"

// SteelConfig holds steel member defaults
type SteelConfig struct {
	Phi float64 `mapstructure:"phi"`
}

// TimberConfig holds timber member defaults
type TimberConfig struct {
	Category   int     `mapstructure:"category"`
	Duration   string  `mapstructure:"duration"`
	CreepRatio float64 `mapstructure:"creep_ratio"`
}

// DiagramConfig controls column curve sampling
type DiagramConfig struct {
	Samples   int     `mapstructure:"samples"`
	MaxLength float64 `mapstructure:"max_length"`
	Height    int     `mapstructure:"height"`
}

// Config holds all runtime configuration
type Config struct {
	SigFigs      int           `mapstructure:"sig_figs"`
	LogLevel     string        `mapstructure:"log_level"`
	LibraryDir   string        `mapstructure:"library_dir"`
	Nomenclature bool          `mapstructure:"nomenclature"`
	Steel        SteelConfig   `mapstructure:"steel"`
	Timber       TimberConfig  `mapstructure:"timber"`
	Diagram      DiagramConfig `mapstructure:"diagram"`
}

// SetDefaults registers built-in defaults on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("sig_figs", 3)
	v.SetDefault("log_level", "info")
	v.SetDefault("library_dir", "")
	v.SetDefault("nomenclature", false)
	v.SetDefault("steel.phi", 0.9)
	v.SetDefault("timber.category", 1)
	v.SetDefault("timber.duration", "permanent")
	v.SetDefault("timber.creep_ratio", as1720.DefaultCreepRatio)
	v.SetDefault("diagram.samples", 40)
	v.SetDefault("diagram.max_length", 10000.0)
	v.SetDefault("diagram.height", 15)
}

// BindEnv enables ASDESIGN_* overrides, with nested keys joined by underscores
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads configuration from the global viper instance, applying
// built-in defaults for any values not set by config file, environment,
// or flags.
func Load() (Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads configuration from v
func LoadFrom(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enum spellings
func (c Config) Validate() error {
	if c.SigFigs < 1 || c.SigFigs > 15 {
		return fmt.Errorf("config: sig_figs %d outside 1-15", c.SigFigs)
	}
	if c.Steel.Phi <= 0 || c.Steel.Phi > 1 {
		return fmt.Errorf("config: steel.phi %g outside (0, 1]", c.Steel.Phi)
	}
	if c.Timber.Category < 1 || c.Timber.Category > 3 {
		return fmt.Errorf("config: timber.category %d outside 1-3", c.Timber.Category)
	}
	if _, err := as1720.ParseDuration(c.Timber.Duration); err != nil {
		return fmt.Errorf("config: timber.duration: %w", err)
	}
	if c.Diagram.Samples < 2 {
		return fmt.Errorf("config: diagram.samples %d must be at least 2", c.Diagram.Samples)
	}
	if c.Diagram.MaxLength <= 0 {
		return fmt.Errorf("config: diagram.max_length %g must be positive", c.Diagram.MaxLength)
	}
	return nil
}

// TimberDuration returns the configured load duration
func (c Config) TimberDuration() as1720.Duration {
	d, err := as1720.ParseDuration(c.Timber.Duration)
	if err != nil {
		return as1720.Permanent
	}
	return d
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/asdesign/internal/as1720"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load()
	require.NoError(t, err)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"SigFigs", cfg.SigFigs, 3},
		{"LogLevel", cfg.LogLevel, "info"},
		{"LibraryDir", cfg.LibraryDir, ""},
		{"Nomenclature", cfg.Nomenclature, false},
		{"Steel.Phi", cfg.Steel.Phi, 0.9},
		{"Timber.Category", cfg.Timber.Category, 1},
		{"Timber.Duration", cfg.Timber.Duration, "permanent"},
		{"Timber.CreepRatio", cfg.Timber.CreepRatio, 0.25},
		{"Diagram.Samples", cfg.Diagram.Samples, 40},
		{"Diagram.MaxLength", cfg.Diagram.MaxLength, 10000.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
	assert.Equal(t, as1720.Permanent, cfg.TimberDuration())
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{"sig_figs", "ASDESIGN_SIG_FIGS", "5", func(c Config) any { return c.SigFigs }, 5},
		{"log_level", "ASDESIGN_LOG_LEVEL", "debug", func(c Config) any { return c.LogLevel }, "debug"},
		{"library_dir", "ASDESIGN_LIBRARY_DIR", "/opt/lib", func(c Config) any { return c.LibraryDir }, "/opt/lib"},
		{"steel.phi", "ASDESIGN_STEEL_PHI", "0.8", func(c Config) any { return c.Steel.Phi }, 0.8},
		{"timber.category", "ASDESIGN_TIMBER_CATEGORY", "2", func(c Config) any { return c.Timber.Category }, 2},
		{"timber.duration", "ASDESIGN_TIMBER_DURATION", "5days", func(c Config) any { return c.Timber.Duration }, "5days"},
		{"diagram.samples", "ASDESIGN_DIAGRAM_SAMPLES", "12", func(c Config) any { return c.Diagram.Samples }, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			BindEnv(v)
			t.Setenv(tt.envKey, tt.envVal)

			cfg, err := LoadFrom(v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tt.field(cfg))
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".asdesign.yaml")
	content := "sig_figs: 4\nsteel:\n  phi: 0.85\ntimber:\n  duration: 5months\ndiagram:\n  max_length: 6000\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.SigFigs)
	assert.Equal(t, 0.85, cfg.Steel.Phi)
	assert.Equal(t, as1720.FiveMonths, cfg.TimberDuration())
	assert.Equal(t, 6000.0, cfg.Diagram.MaxLength)
	// Untouched keys keep their defaults
	assert.Equal(t, 40, cfg.Diagram.Samples)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{"zero sig figs", "sig_figs", 0},
		{"phi above one", "steel.phi", 1.2},
		{"category four", "timber.category", 4},
		{"unknown duration", "timber.duration", "forever"},
		{"one sample", "diagram.samples", 1},
		{"negative length", "diagram.max_length", -1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.val)
			_, err := LoadFrom(v)
			assert.Error(t, err)
		})
	}
}

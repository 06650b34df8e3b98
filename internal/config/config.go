// Package config provides configuration management for mcpdeck using Viper.
package config

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/mcpdeck/mcpdeck/internal/location"
	"github.com/mcpdeck/mcpdeck/internal/paths"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// Profile is the active location profile name.
	Profile string `mapstructure:"profile" yaml:"profile"`

	// TemplatesDir and OutputDir override the XDG defaults.
	TemplatesDir string `mapstructure:"templates_dir" yaml:"templates_dir"`
	OutputDir    string `mapstructure:"output_dir" yaml:"output_dir"`

	// ProjectRoot pins the project root instead of detecting it from the
	// working directory.
	ProjectRoot string `mapstructure:"project_root" yaml:"project_root"`

	// SelectedTemplate and LastBatchTemplate remember the user's most
	// recent choices between runs.
	SelectedTemplate  string `mapstructure:"selected_template" yaml:"selected_template"`
	LastBatchTemplate string `mapstructure:"last_batch_template" yaml:"last_batch_template"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	// Environment variable support (MCPDECK_PROFILE, MCPDECK_OUTPUT_DIR, ...)
	viper.SetEnvPrefix("MCPDECK")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("profile", location.ProfileUnix)
	viper.SetDefault("templates_dir", paths.TemplatesDir())
	viper.SetDefault("output_dir", paths.OutputDir())
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}

// Set updates a key in the running Viper instance and persists the whole
// config file. Missing config directories are created on first save.
func Set(key string, value any) error {
	viper.Set(key, value)
	return Save()
}

// Save writes the current configuration to the config directory.
func Save() error {
	if err := paths.EnsureDir(paths.ConfigDir(), paths.DefaultDirPerm); err != nil {
		return err
	}
	if err := viper.WriteConfigAs(paths.ConfigPath()); err != nil {
		return errors.Wrap(err, "writing config file")
	}
	return nil
}

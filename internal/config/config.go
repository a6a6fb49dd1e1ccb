// Package config holds application constants and the optional user config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure of config.yaml. Every field is optional;
// zero values fall back to the package defaults. The file is only ever read:
// in-session changes (theme toggle, edits) are never written back.
type Config struct {
	Theme   string        `yaml:"theme"`
	Balance int64         `yaml:"balance"`
	Profile ProfileConfig `yaml:"profile"`
}

// ProfileConfig seeds the profile page identity fields.
type ProfileConfig struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Bio      string `yaml:"bio"`
	JoinDate string `yaml:"join_date"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme:   DefaultTheme,
		Balance: DefaultBalance,
		Profile: ProfileConfig{
			Name:     DefaultName,
			Email:    DefaultEmail,
			Bio:      DefaultBio,
			JoinDate: DefaultJoinDate,
		},
	}
}

// Load reads the config file at path and merges it over the defaults.
// A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = defaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if file.Theme != "" {
		cfg.Theme = file.Theme
	}
	if file.Balance > 0 {
		cfg.Balance = file.Balance
	}
	if file.Profile.Name != "" {
		cfg.Profile.Name = file.Profile.Name
	}
	if file.Profile.Email != "" {
		cfg.Profile.Email = file.Profile.Email
	}
	if file.Profile.Bio != "" {
		cfg.Profile.Bio = file.Profile.Bio
	}
	if file.Profile.JoinDate != "" {
		cfg.Profile.JoinDate = file.Profile.JoinDate
	}
	return cfg, nil
}

func defaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ConfigFile
	}
	return filepath.Join(base, AppName, ConfigFile)
}

// Package config resolves lifedash settings from an optional YAML file and
// LIFEDASH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix = "LIFEDASH"

	keyTimezone    = "timezone"
	keySnapshot    = "snapshot"
	keyLogUseCases = "log_use_cases"
	keyColor       = "color"
)

// Color modes accepted by the color setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the resolved runtime settings.
type Config struct {
	Timezone     string
	Location     *time.Location
	SnapshotPath string
	LogUseCases  bool
	Color        string
}

// DefaultPath returns ~/.lifedash.yaml, or "" when the home directory
// cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lifedash.yaml")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyTimezone, "UTC")
	v.SetDefault(keySnapshot, "")
	v.SetDefault(keyLogUseCases, false)
	v.SetDefault(keyColor, ColorAuto)
	return v
}

// Load reads configFile when given, otherwise the default path if it exists.
// A missing default file is not an error; a missing explicit file is.
func Load(configFile string) (*Config, error) {
	v := newViper()

	switch {
	case configFile != "":
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", configFile, err)
		}
	default:
		if path := DefaultPath(); path != "" {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				var notFound viper.ConfigFileNotFoundError
				if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
					return nil, fmt.Errorf("reading config %s: %w", path, err)
				}
			}
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Timezone:     strings.TrimSpace(v.GetString(keyTimezone)),
		SnapshotPath: v.GetString(keySnapshot),
		LogUseCases:  v.GetBool(keyLogUseCases),
		Color:        strings.ToLower(strings.TrimSpace(v.GetString(keyColor))),
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "UTC"
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	c.Location = loc

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want %s, %s or %s)", c.Color, ColorAuto, ColorAlways, ColorNever)
	}
	return nil
}

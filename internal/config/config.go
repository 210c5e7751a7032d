// Package config loads opendp run settings from a TOML file.
package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/OpenTraceLab/OpenTraceDP/pkg/errors"
)

// Config is a run configuration. Command-line flags override it.
type Config struct {
	Design              string `toml:"design"`
	Constraints         string `toml:"constraints"`
	ConstraintsRequired bool   `toml:"constraints_required"`
	Output              string `toml:"output"`

	Log  LogConfig  `toml:"log"`
	Grid GridConfig `toml:"grid"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type GridConfig struct {
	IgnoreGroups bool `toml:"ignore_groups"`
	MarkFixed    bool `toml:"mark_fixed"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Log:  LogConfig{Level: "info"},
		Grid: GridConfig{MarkFixed: true},
	}
}

// Load reads path over the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "config %s", path)
	}
	return Parse(string(data))
}

// Parse decodes TOML text over the defaults.
func Parse(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidInput, "config: unknown keys %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Validate checks the settings needed for a run.
func (c *Config) Validate() error {
	if c.Design == "" {
		return errors.New(errors.ErrCodeInvalidInput, "no design file given")
	}
	if c.ConstraintsRequired && c.Constraints == "" {
		return errors.New(errors.ErrCodeInvalidInput, "constraints are required but no file is given")
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, errors.Wrap(errors.ErrCodeInvalidInput, err, "log level %q", c.Log.Level)
	}
	return level, nil
}

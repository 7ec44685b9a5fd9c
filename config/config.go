// Package config loads completion settings from an optional TOML file and the
// environment. Zero values mean "use the engine default".
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/napalu/flagcomp/env"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

const (
	EnvConfigFile = "FLAGCOMP_CONFIG"
	EnvColumns    = "FLAGCOMP_COLUMNS"
	EnvLineBudget = "FLAGCOMP_LINE_BUDGET"
	EnvLanguage   = "FLAGCOMP_LANG"
	EnvDebug      = "FLAGCOMP_DEBUG"
)

var (
	ErrInvalidColumns    = errors.New("columns must not be negative")
	ErrInvalidLineBudget = errors.New("line budget must not be negative")
	ErrInvalidLanguage   = errors.New("invalid language tag")
	ErrInvalidValue      = errors.New("invalid environment value")
)

type Config struct {
	// Columns is the output width; 0 detects the terminal width
	Columns int `toml:"columns"`
	// LineBudget caps the listing length; 0 keeps the default of 98
	LineBudget int    `toml:"line_budget"`
	Language   string `toml:"language"`
	Debug      bool   `toml:"debug"`
}

// Load builds a Config from the file named by FLAGCOMP_CONFIG (if any) overlaid with the
// FLAGCOMP_* environment variables, and validates the result.
func Load(r env.Resolver) (*Config, error) {
	cfg := &Config{}
	if path := r.Get(EnvConfigFile); path != "" {
		var err error
		if cfg, err = LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(r); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

// LoadFile decodes a TOML file. Unknown keys are rejected so typos do not go unnoticed.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Decode(data)
}

func Decode(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides fields with any FLAGCOMP_* variables that are set
func (c *Config) ApplyEnv(r env.Resolver) error {
	if v, ok := r.Lookup(EnvColumns); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvColumns, v)
		}
		c.Columns = n
	}

	if v, ok := r.Lookup(EnvLineBudget); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvLineBudget, v)
		}
		c.LineBudget = n
	}

	if v, ok := r.Lookup(EnvLanguage); ok && v != "" {
		c.Language = v
	}

	if v, ok := r.Lookup(EnvDebug); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvDebug, v)
		}
		c.Debug = b
	}

	return nil
}

func (c *Config) Validate() error {
	if c.Columns < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidColumns, c.Columns)
	}
	if c.LineBudget < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLineBudget, c.LineBudget)
	}
	if c.Language != "" {
		if _, err := language.Parse(c.Language); err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidLanguage, c.Language, err)
		}
	}

	return nil
}

// Tag returns the configured language, or English when none is set or it does not parse
func (c *Config) Tag() language.Tag {
	if c.Language == "" {
		return language.English
	}

	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.English
	}

	return tag
}

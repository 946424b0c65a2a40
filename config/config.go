// Package config handles jsonflat configuration files.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reoring/jsonflat"
	"github.com/reoring/jsonflat/i18n"
	"github.com/reoring/jsonflat/source"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Output formats.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config represents a jsonflat.yaml configuration file.
type Config struct {
	Version        int    `yaml:"version"`
	Indent         string `yaml:"indent,omitempty"`
	Compact        bool   `yaml:"compact,omitempty"`
	Output         string `yaml:"output,omitempty"`
	Driver         string `yaml:"driver,omitempty"`
	MaxDepth       int    `yaml:"max_depth,omitempty"`
	MaxBytes       int64  `yaml:"max_bytes,omitempty"`
	OnDuplicateKey string `yaml:"on_duplicate_key,omitempty"`
	OnCollision    string `yaml:"on_collision,omitempty"`
	Lang           string `yaml:"lang,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Indent:  jsonflat.DefaultIndent,
		Output:  OutputJSON,
		Driver:  jsonflat.DefaultDriverName,
		Lang:    "en",
	}
}

// Load reads a Config from a file path. Fields missing from the file keep
// their Default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	cfg := Default()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	switch c.Output {
	case "", OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("unsupported output %q", c.Output)
	}
	if c.MaxDepth < 0 {
		return errors.New("max_depth must not be negative")
	}
	if c.MaxBytes < 0 {
		return errors.New("max_bytes must not be negative")
	}
	if _, err := jsonflat.ParseSeverity(c.OnDuplicateKey); err != nil {
		return fmt.Errorf("on_duplicate_key: %w", err)
	}
	if _, err := jsonflat.ParseSeverity(c.OnCollision); err != nil {
		return fmt.Errorf("on_collision: %w", err)
	}
	if _, err := source.ByName(c.Driver); err != nil {
		return fmt.Errorf("driver: %w", err)
	}
	return nil
}

// Options converts the configuration into jsonflat.Options. The issue sink
// is left for the caller to set.
func (c *Config) Options() (jsonflat.Options, error) {
	if err := c.Validate(); err != nil {
		return jsonflat.Options{}, err
	}
	drv, _ := source.ByName(c.Driver)
	dup, _ := jsonflat.ParseSeverity(c.OnDuplicateKey)
	col, _ := jsonflat.ParseSeverity(c.OnCollision)
	return jsonflat.Options{
		Driver: drv,
		Strictness: jsonflat.Strictness{
			OnDuplicateKey: dup,
			OnCollision:    col,
		},
		MaxDepth: c.MaxDepth,
		MaxBytes: c.MaxBytes,
		Format: jsonflat.FormatOpt{
			Indent:  c.Indent,
			Compact: c.Compact,
		},
	}, nil
}

// Translator returns the message translator for the configured language.
func (c *Config) Translator() i18n.Translator { return i18n.New(c.Lang) }

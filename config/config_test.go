package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/jsonflat"
)

func TestConfig_LoadAndSave(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "jsonflat.yaml")

	cfg := Config{
		Version:        1,
		Indent:         "    ",
		Output:         OutputYAML,
		Driver:         "go-json",
		MaxDepth:       16,
		MaxBytes:       1 << 20,
		OnDuplicateKey: "warn",
		OnCollision:    "error",
		Lang:           "ja",
	}
	require.NoError(t, cfg.Save(cfgPath))

	loaded, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, *loaded)
}

func TestConfig_LoadKeepsDefaults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "jsonflat.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("version: 1\ncompact: true\n"), 0o600))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.True(t, cfg.Compact)
	assert.Equal(t, jsonflat.DefaultIndent, cfg.Indent)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, jsonflat.DefaultDriverName, cfg.Driver)
}

func TestConfig_LoadRejectsUnknownFields(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "jsonflat.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("version: 1\nseparator: /\n"), 0o600))

	_, err := Load(cfgPath)
	assert.Error(t, err)
}

func TestConfig_LoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "default", mutate: func(*Config) {}},
		{name: "unsupported version", mutate: func(c *Config) { c.Version = 99 }, wantErr: "unsupported config version"},
		{name: "bad output", mutate: func(c *Config) { c.Output = "xml" }, wantErr: "unsupported output"},
		{name: "negative depth", mutate: func(c *Config) { c.MaxDepth = -1 }, wantErr: "max_depth"},
		{name: "negative bytes", mutate: func(c *Config) { c.MaxBytes = -1 }, wantErr: "max_bytes"},
		{name: "bad duplicate policy", mutate: func(c *Config) { c.OnDuplicateKey = "panic" }, wantErr: "on_duplicate_key"},
		{name: "bad collision policy", mutate: func(c *Config) { c.OnCollision = "merge" }, wantErr: "on_collision"},
		{name: "bad driver", mutate: func(c *Config) { c.Driver = "simdjson" }, wantErr: "driver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := Default()
	cfg.Driver = "go-json"
	cfg.Compact = true
	cfg.MaxDepth = 4
	cfg.OnCollision = "warn"

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, "go-json", opts.Driver.Name())
	assert.True(t, opts.Format.Compact)
	assert.Equal(t, 4, opts.MaxDepth)
	assert.Equal(t, jsonflat.Warn, opts.Strictness.OnCollision)
	assert.Equal(t, jsonflat.Ignore, opts.Strictness.OnDuplicateKey)

	out, err := jsonflat.New(opts).FlattenToText(`{"a":{"b":1}}`)
	require.NoError(t, err)
	assert.Equal(t, `{"a.b":1}`, out)
}

func TestConfig_Translator(t *testing.T) {
	cfg := Default()
	cfg.Lang = "ja"
	assert.NotEqual(t, "malformed input", cfg.Translator().Message(jsonflat.CodeMalformedInput, nil))
}

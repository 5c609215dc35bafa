// Package config loads the settings shared by this module's command-line
// tools, layering built-in defaults under a YAML file under environment
// variables, the way storbeck-augustus/pkg/config does for its own CLI.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix is the prefix env.Provider strips before lower-casing the
// remainder into a koanf key, e.g. BMH_LOG_LEVEL -> log_level.
const envPrefix = "BMH_"

// Config holds the settings common to bmhgrep, bmhbench, and bmhpatch:
// logging, color, the reader chunk size, and which one-shot algorithm a
// tool should exercise when more than one is available.
type Config struct {
	LogLevel  string `koanf:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string `koanf:"log_format" yaml:"log_format" validate:"omitempty,oneof=json text"`
	Color     bool   `koanf:"color" yaml:"color"`
	ChunkSize int    `koanf:"chunk_size" yaml:"chunk_size" validate:"gte=0"`
	Algorithm string `koanf:"algorithm" yaml:"algorithm" validate:"omitempty,oneof=horspool bm turbo"`
}

// Default returns the configuration used when no file, env var, or flag
// overrides a setting.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Color:     true,
		ChunkSize: 4096,
		Algorithm: "horspool",
	}
}

// Validate applies invariants that validator's struct tags can't express:
// today just that ChunkSize, when explicitly set to a nonzero value, must
// be large enough to hold any two-byte needle's lookbehind plus one byte
// of forward progress.
func (c *Config) Validate() error {
	if c.ChunkSize != 0 && c.ChunkSize < 2 {
		return fmt.Errorf("chunk_size must be 0 (use the built-in default) or >= 2, got %d", c.ChunkSize)
	}
	return nil
}

// Load builds a Config by merging, from lowest to highest priority: the
// built-in defaults, an optional YAML file at configPath, and environment
// variables prefixed BMH_ (BMH_LOG_LEVEL, BMH_CHUNK_SIZE, and so on).
// Command-line flags are expected to be applied by the caller on top of
// the result, since kong populates its own struct directly.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := Default()
	defaultsMap := map[string]interface{}{
		"log_level":  defaults.LogLevel,
		"log_format": defaults.LogFormat,
		"color":      defaults.Color,
		"chunk_size": defaults.ChunkSize,
		"algorithm":  defaults.Algorithm,
	}
	if err := k.Load(confmap.Provider(defaultsMap, "."), nil); err != nil {
		return nil, fmt.Errorf("config: loading defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: loading file %s: %w", configPath, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		s = strings.ToLower(s)
		return s
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config: loading environment: %w", err)
	}

	var out Config
	if err := k.UnmarshalWithConf("", &out, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	v := validator.New()
	if err := v.Struct(&out); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return &out, nil
}

// Package config loads rulepack's layered configuration: embedded defaults,
// then an optional .rulepack.toml in the working directory, then RULEPACK_*
// environment variables. Command-line flags override all of these at the
// command layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// PackConfig holds the defaults for the pack command.
type PackConfig struct {
	Input    string `koanf:"input" toml:"input"`
	Output   string `koanf:"output" toml:"output"`
	Compress string `koanf:"compress" toml:"compress"`
}

// UnpackConfig holds the defaults for the unpack command.
type UnpackConfig struct {
	Output string `koanf:"output" toml:"output"`
}

// PatternsConfig controls which files discovery picks up inside category
// directories.
type PatternsConfig struct {
	Glob string `koanf:"glob" toml:"glob"`
}

// Config is the fully resolved rulepack configuration.
type Config struct {
	Pack     PackConfig     `koanf:"pack" toml:"pack"`
	Unpack   UnpackConfig   `koanf:"unpack" toml:"unpack"`
	Patterns PatternsConfig `koanf:"patterns" toml:"patterns"`
}

// envPrefix is stripped from environment variables before they are mapped to
// config keys (RULEPACK_PACK_COMPRESS -> pack.compress).
const envPrefix = "RULEPACK_"

// configFileNames are probed in order in the working directory; the first
// one found wins.
var configFileNames = []string{".rulepack.toml", "rulepack.toml"}

// Default returns the compiled-in configuration with no file or environment
// layers applied.
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		// The embedded defaults are compile-time constants; failing to
		// parse them is a programming error.
		panic(fmt.Sprintf("config: invalid embedded defaults: %v", err))
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		panic(fmt.Sprintf("config: invalid embedded defaults: %v", err))
	}
	return &cfg
}

// Load resolves the configuration for the given working directory, applying
// the file and environment layers on top of the defaults. An empty dir means
// the current working directory.
func Load(dir string) (*Config, error) {
	if dir == "" {
		dir = "."
	}

	k, err := newLayered(dir)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return &cfg, nil
}

// newLayered assembles the koanf instance with all three layers.
func newLayered(dir string) (*koanf.Koanf, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Working-directory config file, if present
	for _, filename := range configFileNames {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
			}
			break
		}
	}

	// 3. Environment variables
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	return k, nil
}

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"pokerodds/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// random sources
const (
	SourcePCG    = "pcg"
	SourceCrypto = "crypto"
)

// Config provides configuration for pokerodds
type Config struct {
	loaded bool
	Equity struct {
		Iterations int `yaml:"iterations" envconfig:"iterations"`
		// Seed fixes the random sequence of every simulation, zero means random
		Seed   uint64 `yaml:"seed" envconfig:"seed"`
		Source string `yaml:"source" envconfig:"source"`
	} `yaml:"equity"`
	Settlement struct {
		PotMismatch bool `yaml:"potMismatch" envconfig:"pot_mismatch"`
	} `yaml:"settlement"`
	Log struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	var cfg Config
	cfg.Equity.Iterations = 2000
	cfg.Equity.Source = SourcePCG
	cfg.Settlement.PotMismatch = true
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults and the environment are used instead
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("POKERODDS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("pokerodds", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Validate returns an error if the configuration cannot be used
func (c Config) Validate() error {
	if c.Equity.Iterations < 1 {
		return fmt.Errorf("equity.iterations must be positive, got %d", c.Equity.Iterations)
	}

	switch c.Equity.Source {
	case SourcePCG, SourceCrypto:
	default:
		return fmt.Errorf("equity.source must be %q or %q, got %q", SourcePCG, SourceCrypto, c.Equity.Source)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	return nil
}

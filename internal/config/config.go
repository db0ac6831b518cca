package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"GopherNoise/perlin"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Backend names accepted in Config.Backend.
const (
	BackendPerlin      = "perlin"
	BackendGoPerlin    = "go-perlin"
	BackendOpenSimplex = "opensimplex"
)

// Config describes how to construct a noise source.
type Config struct {
	// Seed is optional; nil means seed from the clock.
	Seed      *int64  `json:"seed,omitempty" yaml:"seed,omitempty"`
	TableSize int     `json:"table_size" yaml:"table_size"`
	ZSlice    float64 `json:"z_slice" yaml:"z_slice"`
	Backend   string  `json:"backend" yaml:"backend"`
	LogLevel  string  `json:"log_level" yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		TableSize: perlin.DefaultTableSize,
		ZSlice:    perlin.DefaultZSlice,
		Backend:   BackendPerlin,
		LogLevel:  "info",
	}
}

// Load is LoadFile for optional files: a missing file yields Default.
func Load(path string) (Config, error) {
	cfg, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile reads a config file on top of Default. Files ending in .yaml or .yml
// are decoded as YAML, anything else as JSON.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error

	if c.TableSize <= 0 || c.TableSize&(c.TableSize-1) != 0 {
		err = multierr.Append(err, fmt.Errorf("table_size %d: %w", c.TableSize, perlin.ErrInvalidTableSize))
	}

	if math.IsNaN(c.ZSlice) || math.IsInf(c.ZSlice, 0) {
		err = multierr.Append(err, fmt.Errorf("z_slice %v is not finite", c.ZSlice))
	}

	switch c.Backend {
	case BackendPerlin, BackendGoPerlin, BackendOpenSimplex:
	default:
		err = multierr.Append(err, fmt.Errorf("unknown backend %q", c.Backend))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("unknown log_level %q", c.LogLevel))
	}

	return err
}

// SeedOr returns the configured seed, or one taken from clock when unset.
func (c Config) SeedOr(clock perlin.Clock) int64 {
	if c.Seed != nil {
		return *c.Seed
	}
	return clock.Now().UnixNano()
}

package minimize

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/qmc/formatter"
	"github.com/gnoswap-labs/qmc/internal/cache"
)

// DefaultConfigFile is looked up when no configuration path is given.
const DefaultConfigFile = ".qmc.yaml"

// Config represents the overall configuration of a run.
type Config struct {
	Name     string             `yaml:"name"`
	Notation formatter.Notation `yaml:"notation"`
	// Verify runs the independent checks on every solution.
	Verify bool `yaml:"verify"`
	// Workers bounds batch concurrency. Zero means one per CPU.
	Workers int         `yaml:"workers"`
	Cache   CacheConfig `yaml:"cache"`
}

// CacheConfig enables the on-disk result cache when Dir is set.
type CacheConfig struct {
	Dir    string        `yaml:"dir"`
	MaxAge time.Duration `yaml:"max_age"`
}

func DefaultConfig() Config {
	return Config{
		Name:     "qmc",
		Notation: formatter.DefaultNotation,
		Cache: CacheConfig{
			MaxAge: cache.DefaultMaxAge,
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults. A missing file
// yields the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		path = DefaultConfigFile
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to open configuration file: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, fmt.Errorf("failed to parse configuration file %s: %w", path, err)
	}
	if config.Workers < 0 {
		return config, fmt.Errorf("workers must not be negative, got %d", config.Workers)
	}
	return config, nil
}

// WriteConfig stores config as YAML at path.
func WriteConfig(path string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0o644)
}

// Package config holds the runtime configuration for the scanner. Defaults
// are usable without any file; a YAML file overrides them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel string `yaml:"log_level"`

	Camera struct {
		Device         int `yaml:"device"`
		PollIntervalMS int `yaml:"poll_interval_ms"`
	} `yaml:"camera"`

	Preprocess struct {
		GaussianKernel int       `yaml:"gaussian_kernel"`
		MorphKernel    int       `yaml:"morph_kernel"`
		Scales         []float64 `yaml:"scales"`
	} `yaml:"preprocess"`

	Generate struct {
		Size int `yaml:"size"`
	} `yaml:"generate"`
}

// Default returns the built-in configuration. Kernel sizes and rescale
// factors match the values the decode cascade was tuned with.
func Default() Config {
	var cfg Config
	cfg.LogLevel = "info"
	cfg.Camera.Device = 0
	cfg.Camera.PollIntervalMS = 100
	cfg.Preprocess.GaussianKernel = 5
	cfg.Preprocess.MorphKernel = 3
	cfg.Preprocess.Scales = []float64{0.5, 1.5, 2.0}
	cfg.Generate.Size = 256
	return cfg
}

// Load reads a YAML configuration file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Preprocess.GaussianKernel < 1 || c.Preprocess.GaussianKernel%2 == 0 {
		return fmt.Errorf("gaussian_kernel must be a positive odd number, got %d", c.Preprocess.GaussianKernel)
	}
	if c.Preprocess.MorphKernel < 1 {
		return fmt.Errorf("morph_kernel must be positive, got %d", c.Preprocess.MorphKernel)
	}
	for _, scale := range c.Preprocess.Scales {
		if scale <= 0 {
			return fmt.Errorf("rescale factor must be positive, got %v", scale)
		}
	}
	if c.Camera.PollIntervalMS < 1 {
		return fmt.Errorf("poll_interval_ms must be positive, got %d", c.Camera.PollIntervalMS)
	}
	if c.Generate.Size < 21 {
		return fmt.Errorf("generate size too small for a QR symbol: %d", c.Generate.Size)
	}
	return nil
}

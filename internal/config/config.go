package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "bmpresize.yml"

// Config holds defaults that flags may override.
type Config struct {
	Mode      string `yaml:"mode"`       // exact or legacy
	LogLevel  string `yaml:"log_level"`  // logrus level name
	LogFormat string `yaml:"log_format"` // text or json
	Workers   int    `yaml:"workers"`    // batch concurrency
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Mode:      "exact",
		LogLevel:  "warning",
		LogFormat: "text",
		Workers:   4,
	}
}

// Load reads path over the defaults. A missing file is not an error unless
// required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Mode {
	case "exact", "legacy":
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

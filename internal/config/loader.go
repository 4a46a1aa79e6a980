package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is consulted when CONFIG_PATH is unset.
const DefaultPath = "./config.yaml"

// Load resolves the config file from CONFIG_PATH and reads it with LoadPath.
// An unset CONFIG_PATH falls back to DefaultPath, and to environment only
// when that file is absent.
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return LoadPath(path)
	}
	if _, err := os.Stat(DefaultPath); err == nil {
		return LoadPath(DefaultPath)
	}
	return LoadPath("")
}

// LoadPath reads a YAML file overlaid with environment variables
// (ENV > YAML > env-default tags) and validates the result. An empty path
// reads the environment only. A named file that cannot be read is an error.
func LoadPath(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/codemods/apollo-migrate/core/logger"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Exclude lists directory names skipped during the tree walk,
	// in addition to the built-in defaults.
	Exclude []string `yaml:"exclude"`
	// Extensions lists recognized source file extensions.
	Extensions []string `yaml:"extensions"`
}

func Default() *Config {
	return &Config{
		Exclude: []string{
			".git", "node_modules", "dist", "build",
			".angular", "coverage", "tmp",
		},
		Extensions: []string{".ts"},
	}
}

// Load reads apollo-migrate.yaml from the project root when present and
// merges it over the defaults. A missing file is not an error.
func Load(root string) (*Config, error) {
	cfg := Default()

	filePath := filepath.Join(root, "apollo-migrate.yaml")
	if _, err := os.Stat(filePath); err != nil {
		logger.Debug("No config file found, using default config")
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	cfg.Exclude = append(cfg.Exclude, fileCfg.Exclude...)
	cfg.Extensions = append(cfg.Extensions, fileCfg.Extensions...)

	logger.Debug("Config file found: %s", filePath)
	logger.Debug("Config: %+v", cfg)

	return cfg, nil
}

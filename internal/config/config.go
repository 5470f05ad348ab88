package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/marcus/folio/internal/models"
)

const configFile = ".folio/config.json"

// Path returns the config file location for baseDir.
func Path(baseDir string) string {
	return filepath.Join(baseDir, configFile)
}

// Load reads the config from disk
func Load(baseDir string) (*models.Config, error) {
	data, err := os.ReadFile(Path(baseDir))
	if err != nil {
		if os.IsNotExist(err) {
			return &models.Config{}, nil
		}
		return nil, err
	}

	var cfg models.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configFile, err)
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *models.Config) error {
	configPath := Path(baseDir)

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// SetCatalog sets the default catalog path
func SetCatalog(baseDir, catalog string) error {
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}

	cfg.Catalog = catalog
	return Save(baseDir, cfg)
}

// ResolveCatalog returns the catalog path to use, absolute or relative to baseDir.
// An explicit override wins over the configured value.
func ResolveCatalog(baseDir string, cfg *models.Config, override string) string {
	path := override
	if path == "" {
		path = cfg.CatalogPath()
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// Package config loads the optional YAML settings file. Everything has a
// working default; a missing or broken config never stops the app.
package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// DataFile is the canonical JSON store location.
	DataFile string `yaml:"data_file"`
	// ExportDir is where CSV exports land.
	ExportDir string `yaml:"export_dir"`
	// PageSize is the number of rows per page on the home table.
	PageSize int `yaml:"page_size"`
}

// Default returns the built-in settings: data under the user config dir,
// exports to ~/Downloads, 20 rows per page.
func Default() Config {
	cfg := Config{PageSize: 20}
	if dir, err := os.UserConfigDir(); err == nil {
		cfg.DataFile = filepath.Join(dir, "worklog", "data.json")
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.ExportDir = filepath.Join(home, "Downloads")
	}
	return cfg
}

// DefaultPath returns ~/.config/worklog/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "worklog", "config.yaml"), nil
}

// Load reads the config file at path on top of the defaults. A missing
// file is normal; a malformed one is logged and ignored.
func Load(path string) Config {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg
	}
	if err != nil {
		slog.Warn("reading config", "path", path, "err", err)
		return cfg
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		slog.Warn("parsing config", "path", path, "err", err)
		return cfg
	}

	if file.DataFile != "" {
		cfg.DataFile = file.DataFile
	}
	if file.ExportDir != "" {
		cfg.ExportDir = file.ExportDir
	}
	if file.PageSize > 0 {
		cfg.PageSize = file.PageSize
	}
	return cfg
}

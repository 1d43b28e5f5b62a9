package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is the on-disk application configuration.
type File struct {
	// StartHour is the hour each day column begins at (0-23).
	StartHour int `yaml:"start_hour"`

	// SlotInterval is the slot width in minutes (5-30).
	SlotInterval int `yaml:"slot_interval"`

	// Theme selects the color theme by name.
	Theme string `yaml:"theme"`

	// DBPath overrides the default event database location.
	DBPath string `yaml:"db_path"`
}

// Default returns an in-memory default configuration.
func Default() *File {
	return &File{
		StartHour:    DefaultStartHour,
		SlotInterval: DefaultSlotInterval,
		Theme:        "default",
	}
}

// Normalize fills in zero values so partially-filled configs behave.
// It does not clamp SlotInterval; the slot generator owns that rule
// and logs a diagnostic when it corrects the value.
func (c *File) Normalize() {
	if c.StartHour < 0 || c.StartHour > 23 {
		c.StartHour = DefaultStartHour
	}
	if c.SlotInterval == 0 {
		c.SlotInterval = DefaultSlotInterval
	}
	if c.Theme == "" {
		c.Theme = "default"
	}
}

// Load reads the YAML config at path. A missing file is created with
// defaults so the first run leaves an editable config behind.
func Load(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}
	var cfg File
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes cfg to path, creating the parent directory if needed.
func Save(path string, cfg *File) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Package config provides YAML-based configuration loading for the editor
// binaries, with embedded defaults, environment overrides and validation.
package config

import (
	"path/filepath"
	"time"
)

// EditorConfig contains all configuration for an editing session.
type EditorConfig struct {
	DataDir          string  `yaml:"data_dir" validate:"required"`
	PixmapsDir       string  `yaml:"pixmaps_dir" validate:"required"`
	PlaceholderImage string  `yaml:"placeholder_image" validate:"required"`
	LevelMenu        string  `yaml:"level_menu" validate:"required"`
	LevelItems       string  `yaml:"level_items" validate:"required"`
	WorldMenu        string  `yaml:"world_menu" validate:"required"`
	WorldItems       string  `yaml:"world_items" validate:"required"`
	DBPath           string  `yaml:"db_path" validate:"required"`
	DisplayScale     float64 `yaml:"display_scale" validate:"gt=0"`
	FadeSeconds      float64 `yaml:"fade_seconds" validate:"gt=0"`
	LogLevel         string  `yaml:"log_level" validate:"oneof=debug info warn error"`
	FPS              int     `yaml:"fps" validate:"min=1,max=120"`
	ConfirmSave      bool    `yaml:"confirm_save"`
	ImageCacheSize   int     `yaml:"image_cache_size" validate:"min=0"`

	// Keys maps command names (as printed by core.Command.String) to the
	// key strings that trigger them. Missing commands keep their defaults.
	Keys map[string][]string `yaml:"keys"`
}

// Resolve joins p onto the data directory unless it is already absolute.
func (c EditorConfig) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.DataDir, p)
}

// TickInterval is the frame duration derived from FPS.
func (c EditorConfig) TickInterval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.FPS)
}

// FadeTimeout is the idle time before the editor panel starts fading.
func (c EditorConfig) FadeTimeout() float64 {
	return c.FadeSeconds
}

package config

import (
	_ "embed"
)

//go:embed defaults/editor.yaml
var defaultEditorYAML []byte

// DefaultEditorConfig returns the hardcoded editor configuration used when
// the embedded YAML cannot be parsed.
func DefaultEditorConfig() EditorConfig {
	return EditorConfig{
		DataDir:          "data",
		PixmapsDir:       "pixmaps",
		PlaceholderImage: "game/image_not_found.png",
		LevelMenu:        "editor/level_menu.xml",
		LevelItems:       "editor/level_items.xml",
		WorldMenu:        "editor/world_menu.xml",
		WorldItems:       "editor/world_items.xml",
		DBPath:           "~/.tsced/editor.db",
		DisplayScale:     1,
		FadeSeconds:      2,
		LogLevel:         "info",
		FPS:              30,
		ConfirmSave:      true,
		ImageCacheSize:   256,
		Keys: map[string][]string{
			"FastCopyUp":    {"ctrl+up"},
			"FastCopyDown":  {"ctrl+down"},
			"FastCopyLeft":  {"ctrl+left"},
			"FastCopyRight": {"ctrl+right"},
			"MoveUp":        {"shift+up"},
			"MoveDown":      {"shift+down"},
			"MoveLeft":      {"shift+left"},
			"MoveRight":     {"shift+right"},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultEditorYAML
}

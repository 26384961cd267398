package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Width:      32,
			Height:     24,
			TileSize:   16,
			SpriteSize: 32,
		},
		Scroll: ScrollConfig{
			Soft: true,
		},
		Input: InputConfig{
			ReleaseGraceMs: 250,
		},
		Storage: StorageConfig{
			Path: "~/.falling-tower/scores.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file, for
// writing a starter config.
func DefaultYAML() []byte {
	return defaultYAML
}

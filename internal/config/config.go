// Package config provides YAML-based configuration loading for the
// tower client and server.
package config

import (
	"fmt"
	"time"

	"github.com/hugomg/falling-tower/internal/game"
)

// Config contains all tunable settings.
type Config struct {
	Field   FieldConfig   `yaml:"field"`
	Scroll  ScrollConfig  `yaml:"scroll"`
	Input   InputConfig   `yaml:"input"`
	Storage StorageConfig `yaml:"storage"`
}

// FieldConfig defines the playing field geometry. All sizes are in
// pixels except the width and height, which are in tiles.
type FieldConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	TileSize   int `yaml:"tile_size"`
	SpriteSize int `yaml:"sprite_size"`
}

// ScrollConfig selects the camera behavior.
type ScrollConfig struct {
	// Soft enables sub-tick interpolation and pixel-smooth forced
	// scrolling. Hard mode moves the camera in whole tiles only.
	Soft bool `yaml:"soft"`
}

// InputConfig defines terminal input handling parameters.
type InputConfig struct {
	// ReleaseGraceMs is how long a key counts as held after its last
	// repeat event. Terminals report no key-up, so releases are
	// synthesized when the auto-repeat stream goes quiet.
	ReleaseGraceMs int `yaml:"release_grace_ms"`
}

// StorageConfig defines score persistence settings.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ReleaseGrace returns the key-release grace window as a duration.
func (c Config) ReleaseGrace() time.Duration {
	return time.Duration(c.Input.ReleaseGraceMs) * time.Millisecond
}

// Game maps the loaded settings onto a simulation configuration.
func (c Config) Game() game.Config {
	g := game.DefaultConfig()
	g.FieldWidth = c.Field.Width
	g.FieldHeight = c.Field.Height
	g.TileSize = c.Field.TileSize
	g.SpriteSize = c.Field.SpriteSize
	g.SoftScroll = c.Scroll.Soft
	return g
}

// Validate checks the loaded settings, delegating the geometry checks
// to the simulation.
func (c Config) Validate() error {
	if err := c.Game().Validate(); err != nil {
		return err
	}
	if c.Input.ReleaseGraceMs <= 0 {
		return fmt.Errorf("config: release_grace_ms must be positive, got %d", c.Input.ReleaseGraceMs)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("config: storage path must not be empty")
	}
	return nil
}

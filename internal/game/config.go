package game

import "fmt"

// fieldExtra is the number of rows above the visible field that must
// stay generated so a scroll step never exposes an ungenerated row.
const fieldExtra = 3

// Config holds the immutable parameters of one game session. All
// distances are in pixels unless noted otherwise.
type Config struct {
	FieldWidth  int // playing field width, in tiles (walls included)
	FieldHeight int // playing field height, in tiles
	TileSize    int // side of one square tile
	SpriteSize  int // side of the square avatar sprite
	FloorCap    int // capacity of the floor ring

	// SoftScroll selects the continuous camera mode with sub-tick
	// interpolation. Hard scroll moves the camera whole tiles at a
	// time, as the 1.0 series of the game did.
	SoftScroll bool
}

// DefaultConfig returns the classic field: 32x24 tiles of 16px, a 32px
// avatar and a 64-row floor ring.
func DefaultConfig() Config {
	return Config{
		FieldWidth:  32,
		FieldHeight: 24,
		TileSize:    16,
		SpriteSize:  32,
		FloorCap:    64,
		SoftScroll:  true,
	}
}

// Validate rejects configurations whose invariants do not hold. These
// are construction-time errors; a validated config never fails inside
// a tick.
func (c Config) Validate() error {
	if c.TileSize <= 0 || c.SpriteSize <= 0 {
		return fmt.Errorf("game: tile and sprite sizes must be positive")
	}
	if c.SpriteSize < c.TileSize {
		return fmt.Errorf("game: sprite size %d is smaller than tile size %d", c.SpriteSize, c.TileSize)
	}
	// The floor origin walks over [0, w-11] and platforms reach 4 tiles
	// past it on either side, so narrow fields cannot host the walk.
	if c.FieldWidth < 12 {
		return fmt.Errorf("game: field width %d is too narrow, need at least 12 tiles", c.FieldWidth)
	}
	if c.FieldHeight < 8 {
		return fmt.Errorf("game: field height %d is too short, need at least 8 tiles", c.FieldHeight)
	}
	// Every visible row plus the scroll lookahead must fit in the ring,
	// otherwise a row could be overwritten while still on screen.
	if min := c.FieldHeight + fieldExtra + 1; c.FloorCap < min {
		return fmt.Errorf("game: floor ring capacity %d is below the visible window of %d rows", c.FloorCap, min)
	}
	return nil
}

// Pixel limits of the playing field. The avatar x coordinate is the
// left edge of its sprite, so the right limit accounts for the sprite
// width.

func (c Config) leftLimit() int {
	return c.TileSize
}

func (c Config) rightLimit() int {
	return (c.FieldWidth-1)*c.TileSize - c.SpriteSize
}

// topLimit is the y coordinate that triggers a forced scroll.
func (c Config) topLimit() int {
	return 5 * c.TileSize
}

// botLimit is the y coordinate that ends the game.
func (c Config) botLimit() int {
	return c.FieldHeight * c.TileSize
}

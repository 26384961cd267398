package game

// Movement constants. All of them are calibrated against the fixed
// 25ms simulation tick; changing the tick duration requires rescaling
// every one of these.
const (
	maxSpeedX    = 32 // horizontal speed clamp, in half-pixels per tick
	standAccel   = 3  // horizontal acceleration while standing
	airAccel     = 2  // horizontal acceleration while airborne
	gravity      = 2  // vertical acceleration while falling
	maxFallSpeed = 16 // terminal velocity
	wallDamping  = 2  // kills the 1px flicker when running into a wall

	// The standing check is forgiving: the avatar counts as supported
	// while roughly a quarter of its width overlaps the platform. The
	// comparisons are inclusive on both sides.
	standLeftSlack  = 24
	standRightSlack = 8

	// A standing avatar swaps idle sprites every this many ticks.
	idlePeriod = 5
)

// avatar is the player's physics state. The position is the top-left
// corner of the sprite in pixels, relative to the top-left of the
// visible field. vy is in pixels per tick but vx is in half-pixels,
// which doubles the horizontal speed resolution without leaving
// integer arithmetic.
type avatar struct {
	x, y   int
	vx, vy int
	jump   int // remaining ticks of reduced gravity in the rising arc

	standing    bool
	facingRight bool
	idleVariant bool
	idleCount   int
}

// standingAt reports whether an avatar at (x, y) is supported by a
// floor. It reads only immutable session state and the authoritative
// vertical velocity, so the interpolated render path can share it with
// the tick without the two ever disagreeing.
func (s *Session) standingAt(x, y int) bool {
	if s.hero.vy < 0 {
		return false
	}
	ts := s.cfg.TileSize
	row := (y + s.cfg.SpriteSize) / ts
	if row >= s.cfg.FieldHeight {
		return false
	}
	fl := s.floors.At(s.scroll.offset - row)
	return fl.Left*ts-standLeftSlack <= x && x <= fl.Right*ts+standRightSlack
}

// snapToFloor aligns a vertical position to the tile grid after a
// landing.
func (s *Session) snapToFloor(y int) int {
	return (y / s.cfg.TileSize) * s.cfg.TileSize
}

// stepPhysics advances the avatar by one tick: integrate, bounce off
// the walls, settle on floors, then apply input and gravity.
func (s *Session) stepPhysics() {
	h := &s.hero
	cfg := &s.cfg

	h.x += h.vx / 2
	h.y += h.vy

	// Wall collisions set the x coordinate first. The walls are subtly
	// bouncy: the rebound distance is half the overshoot, minus a
	// damping constant so a slow run into the wall settles instead of
	// flickering by one pixel.
	if h.x < cfg.leftLimit() && h.vx <= 0 {
		h.x = cfg.leftLimit() + max(0, cfg.leftLimit()-h.x-wallDamping)/2
		h.vx = -h.vx / 2
	}
	if h.x > cfg.rightLimit() && h.vx >= 0 {
		h.x = cfg.rightLimit() - max(0, h.x-cfg.rightLimit()-wallDamping)/2
		h.vx = -h.vx / 2
	}

	// Floor collisions set the y coordinate. This must happen after the
	// wall collisions because the standing check depends on x.
	h.standing = s.standingAt(h.x, h.y)
	if h.standing {
		h.y = s.snapToFloor(h.y)
		h.vy = 0

		s.recordScore()

		h.idleCount++
		if h.idleCount >= idlePeriod {
			h.idleVariant = !h.idleVariant
			h.idleCount = 0
		}

		if s.joy.JumpHeld() {
			// Horizontal momentum buys extra hang time.
			h.jump = abs(h.vx)/4 + 7
			h.vy = -h.jump/2 - 12
			h.standing = true
			if !s.scroll.started {
				s.scroll.started = true
				s.scroll.speed = initialScrollSpeed
			}
		}
	}

	accel := airAccel
	if h.standing {
		accel = standAccel
	}
	switch s.joy.Direction() {
	case Left:
		h.vx = max(h.vx-accel, -maxSpeedX)
		h.facingRight = false
	case Right:
		h.vx = min(h.vx+accel, maxSpeedX)
		h.facingRight = true
	case Neutral:
		// Ground friction decays toward zero without overshoot. There
		// is no air friction.
		if h.standing {
			switch {
			case h.vx < -2:
				h.vx += standAccel
			case h.vx > 2:
				h.vx -= standAccel
			default:
				h.vx = 0
			}
		}
	}

	if !h.standing {
		if h.jump > 0 {
			// Rising arc: gravity is reduced while the jump budget
			// lasts, and the budget only burns down while the key is
			// still held. Releasing early ends the arc at once.
			h.vy = -h.jump/2 - 12
			if s.joy.JumpHeld() {
				h.jump--
			} else {
				h.jump = 0
			}
		} else {
			h.vy = min(h.vy+gravity, maxFallSpeed)
			h.jump = 0
		}
	}
}

// recordScore recomputes the climbed-rows score. It only ever raises
// the recorded value: falling back down does not take points away.
func (s *Session) recordScore() {
	n := int64((s.scroll.offset - (s.hero.y+s.cfg.SpriteSize)/s.cfg.TileSize) / 5)
	if n > s.score {
		s.score = n
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package game

import "time"

// FloorSpan is one visible platform segment, positioned both by its
// logical row index and by its row on screen (in tiles, negative for
// the lookahead rows above the field).
type FloorSpan struct {
	Row     int
	ScreenY int
	Left    int
	Right   int
}

// Snapshot is a read-only view of the session for rendering. X and Y
// are the avatar's pixel position as it should be drawn; CameraShift
// is how many extra pixels the whole world is shifted downward beyond
// the tile grid (always 0 in hard-scroll mode and at tick boundaries
// it reflects the partially accumulated scroll energy).
type Snapshot struct {
	X, Y        int
	CameraShift int

	Flying      bool
	FacingRight bool
	// Variant selects the secondary sprite: the idle-animation frame
	// while standing, or the falling frame while airborne.
	Variant bool

	Score       int64
	State       State
	FloorOffset int
	Floors      []FloorSpan
}

// Snapshot returns the authoritative render state, with no sub-tick
// prediction.
func (s *Session) Snapshot() Snapshot {
	return s.RenderSnapshot(0)
}

// RenderSnapshot returns the render state predicted sinceTick after
// the last simulation tick. In soft-scroll mode the avatar and camera
// positions are linearly interpolated and the standing state is
// re-derived for the predicted position; authoritative state is never
// mutated, so the call is idempotent and safe to repeat between ticks.
// In hard-scroll mode prediction is disabled and the authoritative
// position is returned as-is.
func (s *Session) RenderSnapshot(sinceTick time.Duration) Snapshot {
	snap := Snapshot{
		FacingRight: s.hero.facingRight,
		Score:       s.score,
		State:       s.state,
		FloorOffset: s.scroll.offset,
		Floors:      s.visibleFloors(),
	}

	if !s.cfg.SoftScroll {
		snap.X = s.hero.x
		snap.Y = s.hero.y
		snap.Flying = !s.hero.standing
		snap.Variant = s.hero.idleVariant
		if !s.hero.standing {
			snap.Variant = s.hero.vy > 0
		}
		return snap
	}

	dt := int(sinceTick / time.Millisecond)
	tick := int(TickDuration / time.Millisecond)

	// Predict the avatar position without scrolling.
	hx := s.hero.x + (s.hero.vx/2)*dt/tick
	hx = max(s.cfg.leftLimit(), min(s.cfg.rightLimit(), hx))
	hy := s.hero.y + s.hero.vy*dt/tick
	standing := s.standingAt(hx, hy)
	if standing {
		hy = s.snapToFloor(hy)
	}

	// Then layer the predicted camera motion on top: the pending
	// forced correction plus the fraction of a tile the scroll energy
	// has earned so far.
	count := s.scroll.count + dt*s.scroll.speed/tick
	sy := hy + s.scroll.forced + s.cfg.TileSize*count/scrollThreshold
	if !standing && sy < s.cfg.topLimit() {
		sy = s.cfg.topLimit()
	}

	snap.X = hx
	snap.Y = sy
	snap.CameraShift = sy - hy
	snap.Flying = !standing
	snap.Variant = s.hero.idleVariant
	if !standing {
		snap.Variant = s.hero.vy > 0
	}
	return snap
}

// visibleFloors collects the platform segments for every row that can
// appear on screen, including the lookahead rows above the field that
// scroll into view.
func (s *Session) visibleFloors() []FloorSpan {
	spans := make([]FloorSpan, 0, s.cfg.FieldHeight+fieldExtra)
	for y := -fieldExtra; y < s.cfg.FieldHeight; y++ {
		row := s.scroll.offset - y
		fl := s.floors.At(row)
		if fl.IsGap() {
			continue
		}
		spans = append(spans, FloorSpan{
			Row:     row,
			ScreenY: y,
			Left:    fl.Left,
			Right:   fl.Right,
		})
	}
	return spans
}

package game

// Scrolling constants. The scroll "energy" model decouples the camera
// speed from the tile grid: every tick adds speed to an accumulator
// and one discrete scroll step fires each time the accumulator crosses
// the threshold, so the average speed ramps smoothly even though the
// world only ever moves whole tiles.
const (
	maxScrollSpeed     = 5000  // accumulator increment per tick, at full ramp
	scrollThreshold    = 20000 // accumulator level that triggers one step
	initialScrollSpeed = 200   // ramp start, granted on the first jump
)

// scrollState tracks the camera. offset is the logical row index at
// the top of the visible field. forced accumulates pending camera
// correction in pixels when the avatar gets too close to the top; it
// is drained one tile per scroll step so the avatar's on-screen
// position never snaps.
type scrollState struct {
	offset  int
	forced  int
	count   int
	speed   int
	started bool // scrolling is armed by the first jump and never stops
}

// scrollStep advances the world by one tile: generate the next floor
// row, move the camera up one row and shift the avatar down to match.
func (s *Session) scrollStep() {
	s.floors.generate()
	s.scroll.offset++
	s.hero.y += s.cfg.TileSize
	if s.scroll.forced >= s.cfg.TileSize {
		s.scroll.forced -= s.cfg.TileSize
	}
}

// stepScroll runs the per-tick scrolling rules: ramp the speed, fire
// any earned scroll steps, then force extra steps if the avatar is
// about to leave the field through the top.
func (s *Session) stepScroll() {
	if s.scroll.started {
		s.scroll.speed = min(maxScrollSpeed, s.scroll.speed+1)
		s.scroll.count += s.scroll.speed
	}
	for s.scroll.count > scrollThreshold {
		s.scroll.count -= scrollThreshold
		s.scrollStep()
	}

	// The forced scroll only applies while airborne: while standing the
	// avatar's y snaps to the tile grid, and forcing a scroll then
	// would jump the camera by whole tiles at once.
	if s.cfg.SoftScroll {
		if !s.hero.standing {
			sy := s.hero.y + s.scroll.forced
			if sy < s.cfg.topLimit() {
				s.scroll.forced += s.cfg.topLimit() - sy
				s.scroll.count = 0
			}
		}
		for s.scroll.forced >= s.cfg.TileSize {
			s.scrollStep()
		}
	} else if !s.hero.standing {
		for s.hero.y < s.cfg.topLimit() {
			s.scrollStep()
		}
	}
}

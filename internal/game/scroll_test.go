package game

import (
	"testing"
	"time"
)

func TestForcedScrollKeepsAvatarOnScreen(t *testing.T) {
	for _, soft := range []bool{true, false} {
		cfg := DefaultConfig()
		cfg.SoftScroll = soft
		s := newTestSession(t, cfg, 11)

		// Launch the avatar far above the forced-scroll margin.
		s.HandleKey(KeyJump, true)
		s.Tick()
		s.hero.vy = -40
		s.hero.jump = 0

		for i := 0; i < 300 && s.State() == StateRunning; i++ {
			s.Tick()
			if y := s.hero.y + s.scroll.forced; y < 0 {
				t.Fatalf("soft=%v tick %d: avatar left the field upward (y=%d)", soft, i, y)
			}
		}
	}
}

func TestHardScrollForcesWholeTiles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SoftScroll = false
	s := newTestSession(t, cfg, 11)

	// In hard mode there is never a pending pixel correction and the
	// airborne avatar never crosses the top margin.
	s.HandleKey(KeyJump, true)
	s.Tick()
	s.hero.vy = -40

	for i := 0; i < 200 && s.State() == StateRunning; i++ {
		s.Tick()
		if s.scroll.forced != 0 {
			t.Fatalf("tick %d: forced = %d in hard-scroll mode", i, s.scroll.forced)
		}
		if !s.hero.standing && s.hero.y < s.cfg.topLimit() {
			t.Fatalf("tick %d: airborne avatar above the top margin (y=%d)", i, s.hero.y)
		}
	}
}

func TestSoftScrollDrainsForcedByTiles(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), 11)

	s.HandleKey(KeyJump, true)
	s.Tick()
	s.hero.vy = -40
	s.hero.jump = 0

	for i := 0; i < 300 && s.State() == StateRunning; i++ {
		s.Tick()
		// The forced accumulator is drained one tile per scroll step
		// within the same tick, so it never holds a whole tile.
		if s.scroll.forced >= s.cfg.TileSize {
			t.Fatalf("tick %d: forced = %d, a full tile left undrained", i, s.scroll.forced)
		}
		if s.scroll.forced < 0 {
			t.Fatalf("tick %d: forced went negative (%d)", i, s.scroll.forced)
		}
	}
}

func TestRenderSnapshotIdempotent(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), 4)

	s.HandleKey(KeyJump, true)
	tickN(s, 3)
	s.HandleKey(KeyJump, false)
	tickN(s, 2)

	heroBefore := s.hero
	scrollBefore := s.scroll

	for _, dt := range []time.Duration{0, 5 * time.Millisecond, 12 * time.Millisecond, 24 * time.Millisecond} {
		a := s.RenderSnapshot(dt)
		b := s.RenderSnapshot(dt)
		if a.X != b.X || a.Y != b.Y || a.CameraShift != b.CameraShift || a.Flying != b.Flying {
			t.Errorf("dt=%v: repeated interpolation disagreed: %+v vs %+v", dt, a, b)
		}
	}

	if s.hero != heroBefore || s.scroll != scrollBefore {
		t.Error("RenderSnapshot mutated authoritative state")
	}
}

func TestRenderSnapshotAtTickBoundary(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), 4)

	// At rest, with no scroll pending, the interpolated view must
	// coincide with the authoritative position.
	snap := s.RenderSnapshot(0)
	if snap.X != s.hero.x || snap.Y != s.hero.y || snap.CameraShift != 0 {
		t.Errorf("snapshot at rest = (%d,%d) shift %d, hero at (%d,%d)",
			snap.X, snap.Y, snap.CameraShift, s.hero.x, s.hero.y)
	}
	if snap.Flying {
		t.Error("standing avatar reported as flying")
	}
}

func TestRenderSnapshotPredictsMotion(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), 4)

	// Mid-fall, half a tick of prediction moves the avatar roughly
	// half a tick's worth of velocity.
	s.hero = avatar{x: s.hero.x, y: 10 * s.cfg.TileSize, vy: 8}

	now := s.RenderSnapshot(0)
	later := s.RenderSnapshot(TickDuration / 2)
	if later.Y <= now.Y {
		t.Errorf("falling avatar predicted upward: %d -> %d", now.Y, later.Y)
	}
	if dy := later.Y - now.Y; dy > 8 {
		t.Errorf("half-tick prediction moved %dpx, more than a full tick's fall", dy)
	}
}

func TestHardScrollSnapshotNeverInterpolates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SoftScroll = false
	s := newTestSession(t, cfg, 4)

	s.hero.vy = 8
	s.hero.standing = false

	snap := s.RenderSnapshot(20 * time.Millisecond)
	if snap.X != s.hero.x || snap.Y != s.hero.y || snap.CameraShift != 0 {
		t.Error("hard-scroll snapshot must return the authoritative position")
	}
}

func TestSnapshotFloors(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), 4)
	snap := s.Snapshot()

	if snap.FloorOffset != s.cfg.FieldHeight-4 {
		t.Errorf("FloorOffset = %d, want %d", snap.FloorOffset, s.cfg.FieldHeight-4)
	}

	foundRest := false
	for _, fs := range snap.Floors {
		if fs.ScreenY < -fieldExtra || fs.ScreenY >= s.cfg.FieldHeight {
			t.Errorf("floor span on screen row %d, outside the drawable range", fs.ScreenY)
		}
		if fs.Left > fs.Right {
			t.Errorf("gap row %d leaked into the snapshot", fs.Row)
		}
		if fs.Row == 0 {
			foundRest = true
			if fs.Left != 1 || fs.Right != s.cfg.FieldWidth-2 {
				t.Errorf("rest floor span = [%d,%d]", fs.Left, fs.Right)
			}
		}
	}
	if !foundRest {
		t.Error("initial snapshot should include the row-0 rest floor")
	}
}

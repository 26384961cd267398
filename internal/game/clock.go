package game

import "time"

// TickDuration is the fixed length of one simulation tick (40 ticks
// per second). Every physics constant in this package is calibrated
// against it.
const TickDuration = 25 * time.Millisecond

// maxCatchUp bounds how much wall-clock time a single Advance may
// convert into ticks, so a stalled host (debugger, suspended laptop)
// doesn't bury the player under a burst of catch-up frames.
const maxCatchUp = time.Second

// Clock converts variable wall-clock intervals into a whole number of
// fixed simulation ticks, keeping the remainder for the next call.
// This decouples simulation determinism from the host's render or poll
// rate: however irregular the Advance calls, the tick sequence is the
// same. Pausing is simply not calling Advance; the remainder carries
// across the pause so resuming causes no discontinuity.
type Clock struct {
	acc time.Duration
}

// Advance credits elapsed wall-clock time and returns how many full
// simulation ticks are now due.
func (c *Clock) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		return 0
	}
	if elapsed > maxCatchUp {
		elapsed = maxCatchUp
	}
	c.acc += elapsed
	n := int(c.acc / TickDuration)
	c.acc -= time.Duration(n) * TickDuration
	return n
}

// SinceTick returns the wall-clock time accumulated past the last due
// tick, for sub-tick render interpolation. Always below TickDuration.
func (c *Clock) SinceTick() time.Duration {
	return c.acc
}

// Reset drops any accumulated remainder.
func (c *Clock) Reset() {
	c.acc = 0
}

package game

// Key is a logical game key. The host input layer resolves physical
// bindings (arrows, WASD, keypad...) to these before the core ever
// sees an event, so several physical keys may map to the same Key and
// be held simultaneously.
type Key int

const (
	KeyJump Key = iota
	KeyLeft
	KeyRight
	numKeys
)

// Direction is the avatar's horizontal movement intent.
type Direction int

const (
	Neutral Direction = iota
	Left
	Right
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Neutral"
	}
}

// Joystick debounces raw press/release events into a movement intent.
// Each key tracks a press count rather than a boolean, so two physical
// keys bound to the same direction can be held and released in any
// order without producing a phantom release. When both directions are
// held the most recent press wins; releasing it hands control back to
// the other direction if that one is still down.
type Joystick struct {
	held [numKeys]int
	dir  Direction
}

// Press records a key-down event.
func (j *Joystick) Press(k Key) {
	if k < 0 || k >= numKeys {
		return
	}
	j.held[k]++
	switch k {
	case KeyLeft:
		j.dir = Left
	case KeyRight:
		j.dir = Right
	}
}

// Release records a key-up event. Releases without a matching press
// are ignored, as hosts may deliver spurious key-up events after a
// focus change.
func (j *Joystick) Release(k Key) {
	if k < 0 || k >= numKeys || j.held[k] == 0 {
		return
	}
	j.held[k]--
	if j.held[k] > 0 {
		return // another key bound to the same direction is still down
	}
	switch k {
	case KeyLeft:
		if j.held[KeyRight] > 0 {
			j.dir = Right
		} else {
			j.dir = Neutral
		}
	case KeyRight:
		if j.held[KeyLeft] > 0 {
			j.dir = Left
		} else {
			j.dir = Neutral
		}
	}
}

// Direction returns the current horizontal intent.
func (j *Joystick) Direction() Direction {
	return j.dir
}

// JumpHeld reports whether any jump-bound key is down.
func (j *Joystick) JumpHeld() bool {
	return j.held[KeyJump] > 0
}

// Reset clears all held keys, e.g. when a new game starts.
func (j *Joystick) Reset() {
	*j = Joystick{}
}

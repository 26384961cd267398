package game

import "testing"

func TestJoystickMostRecentWins(t *testing.T) {
	var j Joystick

	j.Press(KeyLeft)
	if j.Direction() != Left {
		t.Fatalf("after Left press, direction = %v", j.Direction())
	}

	j.Press(KeyRight)
	if j.Direction() != Right {
		t.Fatalf("Right press should win, direction = %v", j.Direction())
	}

	j.Release(KeyRight)
	if j.Direction() != Left {
		t.Fatalf("releasing Right should restore Left, direction = %v", j.Direction())
	}

	j.Release(KeyLeft)
	if j.Direction() != Neutral {
		t.Fatalf("all keys released, direction = %v", j.Direction())
	}
}

func TestJoystickMultipleKeysSameDirection(t *testing.T) {
	// Arrow key and WASD bound to the same direction: releasing one
	// while the other is still down must not go neutral.
	var j Joystick

	j.Press(KeyLeft) // left arrow
	j.Press(KeyLeft) // 'a'
	j.Release(KeyLeft)
	if j.Direction() != Left {
		t.Errorf("one of two Left keys released, direction = %v, want Left", j.Direction())
	}

	j.Release(KeyLeft)
	if j.Direction() != Neutral {
		t.Errorf("both Left keys released, direction = %v, want Neutral", j.Direction())
	}
}

func TestJoystickJumpCounter(t *testing.T) {
	var j Joystick

	j.Press(KeyJump) // space
	j.Press(KeyJump) // 'w'
	if !j.JumpHeld() {
		t.Fatal("jump should be held")
	}

	j.Release(KeyJump)
	if !j.JumpHeld() {
		t.Error("jump should still be held with one key down")
	}

	j.Release(KeyJump)
	if j.JumpHeld() {
		t.Error("jump should be released")
	}
}

func TestJoystickSpuriousRelease(t *testing.T) {
	var j Joystick

	j.Release(KeyLeft) // never pressed
	if j.Direction() != Neutral {
		t.Errorf("spurious release changed direction to %v", j.Direction())
	}

	j.Press(KeyRight)
	j.Release(KeyLeft) // still never pressed
	if j.Direction() != Right {
		t.Errorf("spurious release clobbered direction, got %v", j.Direction())
	}
}

func TestJoystickIgnoresUnknownKeys(t *testing.T) {
	var j Joystick

	j.Press(Key(99))
	j.Release(Key(-1))
	if j.Direction() != Neutral || j.JumpHeld() {
		t.Error("unknown keys must not change joystick state")
	}
}

func TestJoystickReleaseOrderIndependence(t *testing.T) {
	// Whatever order Left and Right are released in, the survivor (if
	// any) owns the direction.
	var j Joystick

	j.Press(KeyRight)
	j.Press(KeyLeft)
	j.Release(KeyRight) // releasing the non-dominant key
	if j.Direction() != Left {
		t.Errorf("direction = %v, want Left (still held)", j.Direction())
	}
	j.Release(KeyLeft)
	if j.Direction() != Neutral {
		t.Errorf("direction = %v, want Neutral", j.Direction())
	}
}

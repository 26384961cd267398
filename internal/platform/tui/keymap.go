package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hugomg/falling-tower/internal/game"
)

// mapGameKey translates a key message to a joystick key.
// Returns false for keys that don't drive the avatar.
func mapGameKey(msg tea.KeyMsg) (game.Key, bool) {
	switch msg.String() {
	case "left", "a", "h":
		return game.KeyLeft, true
	case "right", "d", "l":
		return game.KeyRight, true
	case " ", "up", "w", "k":
		return game.KeyJump, true
	}
	return 0, false
}

// keyTracker synthesizes key releases. Terminals only deliver key-down
// events, so a key counts as held from its first event until its
// auto-repeat stream has been quiet for the grace window.
type keyTracker struct {
	grace    time.Duration
	deadline map[game.Key]time.Time
}

func newKeyTracker(grace time.Duration) *keyTracker {
	return &keyTracker{
		grace:    grace,
		deadline: make(map[game.Key]time.Time),
	}
}

// Press records a key event, feeding a press into the session only on
// the first event of a held run. Repeats just extend the deadline.
func (t *keyTracker) Press(s *game.Session, k game.Key, now time.Time) {
	if _, held := t.deadline[k]; !held {
		s.HandleKey(k, true)
	}
	t.deadline[k] = now.Add(t.grace)
}

// Expire releases every key whose repeat stream has gone quiet.
func (t *keyTracker) Expire(s *game.Session, now time.Time) {
	for k, dl := range t.deadline {
		if now.After(dl) {
			delete(t.deadline, k)
			s.HandleKey(k, false)
		}
	}
}

// ReleaseAll releases every held key, for focus loss.
func (t *keyTracker) ReleaseAll(s *game.Session) {
	for k := range t.deadline {
		delete(t.deadline, k)
		s.HandleKey(k, false)
	}
}

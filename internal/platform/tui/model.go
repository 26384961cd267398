package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hugomg/falling-tower/internal/config"
	"github.com/hugomg/falling-tower/internal/game"
	"github.com/hugomg/falling-tower/internal/storage"
)

// playKeyMap defines the in-game key bindings for the help bar.
type playKeyMap struct {
	Move    key.Binding
	Jump    key.Binding
	Pause   key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k playKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Jump, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k playKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Jump},
		{k.Pause, k.Confirm, k.Quit},
	}
}

func defaultPlayKeyMap() playKeyMap {
	return playKeyMap{
		Move: key.NewBinding(
			key.WithKeys("left", "right", "a", "d", "h", "l"),
			key.WithHelp("←/→", "move"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space", "jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "continue"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the Bubble Tea model for playing the game.
type Model struct {
	cfg     config.Config
	gameCfg game.Config
	session *game.Session
	clock   game.Clock
	tracker *keyTracker
	screen  *Screen
	store   *storage.Store
	seed    string

	keys playKeyMap
	help help.Model

	lastFrame time.Time
	width     int
	height    int

	best      int64
	bestToday int64
	top       []storage.ScoreEntry

	quitting bool
}

// NewModel creates a new play model. The store may be nil, in which
// case scores are not persisted.
func NewModel(cfg config.Config, rng *game.RNG, seed string, store *storage.Store) (Model, error) {
	gameCfg := cfg.Game()

	session, err := game.NewSession(gameCfg, rng, func(score int64) {
		if store != nil && score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			store.SaveScore(score, seed)
		}
	})
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		cfg:     cfg,
		gameCfg: gameCfg,
		session: session,
		tracker: newKeyTracker(cfg.ReleaseGrace()),
		screen:  NewScreen(gameCfg.FieldWidth, gameCfg.FieldHeight),
		store:   store,
		seed:    seed,
		keys:    defaultPlayKeyMap(),
		help:    h,
	}
	m.loadScores()
	return m, nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.BlurMsg:
		// The terminal lost focus; drop held keys and pause.
		m.tracker.ReleaseAll(m.session)
		m.session.FocusLost()
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		switch m.session.State() {
		case game.StateRunning:
			m.session.Pause()
		case game.StatePaused:
			m.session.Resume()
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.acknowledge()
		return m, nil
	}

	if k, ok := mapGameKey(msg); ok {
		st := m.session.State()
		if st == game.StateGameOver || st == game.StateHighscores {
			// Any movement key skips the end-of-game screens too.
			m.acknowledge()
		}
		m.tracker.Press(m.session, k, time.Now())
	}

	return m, nil
}

// acknowledge advances past the game-over banner or restarts from the
// highscore screen, refreshing the cached scores on the way.
func (m *Model) acknowledge() {
	st := m.session.State()
	m.session.Acknowledge()
	if st == game.StateGameOver {
		m.loadScores()
	}
}

// handleFrame converts elapsed wall-clock time into simulation ticks
// and schedules the next frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.lastFrame.IsZero() {
		m.lastFrame = now
	}
	elapsed := now.Sub(m.lastFrame)
	m.lastFrame = now

	m.tracker.Expire(m.session, now)

	prev := m.session.State()
	for i := m.clock.Advance(elapsed); i > 0; i-- {
		m.session.Tick()
	}

	// The game-over banner advances to the highscore screen on its own;
	// make sure the scores shown there include this run.
	if prev != game.StateHighscores && m.session.State() == game.StateHighscores {
		m.loadScores()
	}

	return m, frameCmd()
}

// loadScores refreshes the cached leaderboard from storage.
func (m *Model) loadScores() {
	if m.store == nil {
		return
	}
	if best, err := m.store.HighScore(); err == nil {
		m.best = best
	}
	if best, err := m.store.BestToday(); err == nil {
		m.bestToday = best
	}
	if top, err := m.store.TopScores(10); err == nil {
		m.top = top
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.RenderSnapshot(m.clock.SinceTick())

	if snap.State == game.StateHighscores {
		return m.viewHighscores(snap)
	}

	drawWorld(m.screen, snap, m.gameCfg)

	switch snap.State {
	case game.StatePaused:
		drawBanner(m.screen, []string{"PAUSED", "p to resume"}, ColorBrightWhite)
	case game.StateGameOver:
		drawBanner(m.screen, []string{
			"GAME OVER",
			fmt.Sprintf("score %d", snap.Score),
		}, ColorRed)
	}

	header := headerStyle.Render(fmt.Sprintf("FALLING TOWER   score %d   best %d", snap.Score, m.best))
	body := header + "\n" + RenderScreen(m.screen) + "\n" + m.help.View(m.keys)

	return m.place(body)
}

// viewHighscores renders the leaderboard between games.
func (m Model) viewHighscores(snap game.Snapshot) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("HIGH SCORES"))
	b.WriteString("\n\n")

	if len(m.top) == 0 {
		b.WriteString(hintStyle.Render("No scores recorded yet."))
		b.WriteString("\n")
	} else {
		for i, e := range m.top {
			line := fmt.Sprintf("  #%-3d %8d   %s", i+1, e.Score, e.CreatedAt.Format("Jan 02 15:04"))
			if e.Score == snap.Score && snap.Score > 0 {
				line = headerStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Last run: %d   Best today: %d   All time: %d\n", snap.Score, m.bestToday, m.best))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("enter: new game   q: quit"))

	return m.place(b.String())
}

// place centers content in the terminal when the size is known.
func (m Model) place(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program with the given model.
func Run(m Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithReportFocus(), // Pause the game when the terminal loses focus
	)

	_, err := p.Run()
	return err
}

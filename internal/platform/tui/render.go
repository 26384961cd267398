package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hugomg/falling-tower/internal/game"
)

// colorStyles maps Color to lipgloss styles.
var colorStyles = map[Color]lipgloss.Style{
	ColorDefault:      lipgloss.NewStyle(),
	ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.Get(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// avatarSprite returns the 2x2 cell sprite for the avatar's pose. The
// simulation's sprite is two tiles square, which maps to a 2x2 block of
// terminal cells.
func avatarSprite(snap game.Snapshot) [2][2]rune {
	head := '>'
	if !snap.FacingRight {
		head = '<'
	}

	if snap.Flying {
		if snap.Variant {
			// Falling
			return [2][2]rune{{'o', head}, {'/', '\\'}}
		}
		// Rising
		return [2][2]rune{{'o', head}, {'\\', '/'}}
	}

	if snap.Variant {
		// Second idle frame shifts the stance
		return [2][2]rune{{'o', head}, {'|', '\\'}}
	}
	return [2][2]rune{{'o', head}, {'/', '|'}}
}

// drawWorld renders a snapshot onto the screen: side walls, platforms
// and the avatar. Pixel coordinates round to the nearest cell, so the
// soft-scroll interpolation shows up as earlier or later cell
// transitions.
func drawWorld(s *Screen, snap game.Snapshot, cfg game.Config) {
	s.Clear()
	ts := cfg.TileSize

	for y := 0; y < s.Height(); y++ {
		s.Set(0, y, '#', ColorGray)
		s.Set(cfg.FieldWidth-1, y, '#', ColorGray)
	}

	// The camera shift moves the whole world down by a sub-tile amount.
	shift := (snap.CameraShift + ts/2) / ts

	for _, fl := range snap.Floors {
		row := fl.ScreenY + shift
		color := ColorGreen
		if fl.Left == 1 && fl.Right == cfg.FieldWidth-2 {
			color = ColorCyan // resting floor spans the whole tower
		}
		for x := fl.Left; x <= fl.Right; x++ {
			s.Set(x, row, '=', color)
		}
	}

	cx := (snap.X + ts/2) / ts
	cy := (snap.Y + ts/2) / ts
	sprite := avatarSprite(snap)
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			s.Set(cx+dx, cy+dy, sprite[dy][dx], ColorBrightYellow)
		}
	}
}

// drawBanner draws a centered boxed message over the playfield.
func drawBanner(s *Screen, lines []string, c Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	width += 4

	top := (s.Height() - len(lines) - 2) / 2
	left := (s.Width() - width) / 2

	s.Set(left, top, '+', c)
	s.Set(left+width-1, top, '+', c)
	s.Set(left, top+len(lines)+1, '+', c)
	s.Set(left+width-1, top+len(lines)+1, '+', c)
	s.DrawHLine(left+1, top, width-2, '-', c)
	s.DrawHLine(left+1, top+len(lines)+1, width-2, '-', c)

	for i, l := range lines {
		s.DrawHLine(left+1, top+1+i, width-2, ' ', c)
		s.Set(left, top+1+i, '|', c)
		s.Set(left+width-1, top+1+i, '|', c)
		s.DrawText(left+(width-len(l))/2, top+1+i, l, c)
	}
}

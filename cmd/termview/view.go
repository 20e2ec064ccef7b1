package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"inertia/game"
)

// Rows reserved at the top for the status line
const statusRows = 1

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	stylePlayer  = styleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleEnemy   = styleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleMeteor  = styleDefault.Foreground(tcell.ColorGray)
	styleLaser   = styleDefault.Foreground(tcell.ColorYellow)
	styleEffect  = styleDefault.Foreground(tcell.ColorOrange)
	styleStatus  = styleDefault.Foreground(tcell.ColorAqua)
)

// project maps a world position onto the map area below the status line
func project(x, y, world float64, cols, rows int) (int, int, bool) {
	rows -= statusRows
	if cols <= 0 || rows <= 0 || world <= 0 {
		return 0, 0, false
	}
	if x < 0 || y < 0 || x > world || y > world {
		return 0, 0, false
	}

	col := int(x / world * float64(cols))
	row := int(y / world * float64(rows))
	col = min(col, cols-1)
	row = min(row, rows-1)
	return col, row + statusRows, true
}

// bodyGlyph picks the character for a body. Ships show their heading.
func bodyGlyph(b game.BodyState) (rune, tcell.Style) {
	switch b.Kind {
	case game.KindPlayer:
		return headingGlyph(b.Angle), stylePlayer
	case game.KindEnemy:
		return headingGlyph(b.Angle), styleEnemy
	}
	if b.Mass >= 4*game.DefaultMass {
		return 'O', styleMeteor
	}
	return 'o', styleMeteor
}

// headingGlyph quantizes an angle to one of four arrow-like runes
func headingGlyph(angle float64) rune {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	switch q := int(math.Floor((a + math.Pi/4) / (math.Pi / 2))); q % 4 {
	case 0:
		return '>'
	case 1:
		return 'v'
	case 2:
		return '<'
	default:
		return '^'
	}
}

func statusLine(snap *game.Snapshot, paused bool) string {
	line := fmt.Sprintf("Health: %.0f / %.0f  Enemies: %d  t=%.1fs",
		snap.PlayerHealth, snap.PlayerMaxHealth, snap.EnemiesRemaining, snap.Time)
	switch {
	case snap.GameOver():
		line += fmt.Sprintf("  [%s] r restart, q quit", snap.Outcome)
	case paused:
		line += "  [paused]"
	}
	return line
}

func drawSnapshot(screen tcell.Screen, snap *game.Snapshot, paused bool) {
	screen.Clear()
	cols, rows := screen.Size()

	for _, e := range snap.Effects {
		if col, row, ok := project(e.X, e.Y, snap.WorldSize, cols, rows); ok {
			screen.SetContent(col, row, '*', nil, styleEffect)
		}
	}
	for _, b := range snap.Bodies {
		if col, row, ok := project(b.X, b.Y, snap.WorldSize, cols, rows); ok {
			r, style := bodyGlyph(b)
			screen.SetContent(col, row, r, nil, style)
		}
	}
	for _, l := range snap.Lasers {
		if col, row, ok := project(l.X, l.Y, snap.WorldSize, cols, rows); ok {
			screen.SetContent(col, row, '·', nil, styleLaser)
		}
	}

	for i, r := range []rune(statusLine(snap, paused)) {
		if i >= cols {
			break
		}
		screen.SetContent(i, 0, r, nil, styleStatus)
	}
	screen.Show()
}

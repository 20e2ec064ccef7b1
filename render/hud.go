package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"inertia/game"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// drawText draws s with its top-left corner at x, y
func drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, hudFace, op)
}

// drawTextCentered draws s centered on x, y
func drawTextCentered(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	w, h := text.Measure(s, hudFace, 0)
	drawText(dst, s, x-w/2, y-h/2, clr)
}

// hudLines returns the status lines shown in the top-left corner
func hudLines(snap *game.Snapshot, paused bool) []string {
	lines := []string{
		fmt.Sprintf("Health: %.0f / %.0f", snap.PlayerHealth, snap.PlayerMaxHealth),
		fmt.Sprintf("Enemies Remaining: %d", snap.EnemiesRemaining),
	}
	if paused {
		lines = append(lines, "PAUSED (P to resume)")
	}
	return lines
}

// bannerText returns the game over message, or "" while the round runs
func bannerText(o game.Outcome) string {
	switch o {
	case game.OutcomeLost:
		return "GAME OVER - press R to restart"
	case game.OutcomeWon:
		return "ALL ENEMIES DESTROYED - press R to restart"
	}
	return ""
}

func (r *Renderer) drawHUD(screen *ebiten.Image, snap *game.Snapshot, paused bool) {
	for i, l := range hudLines(snap, paused) {
		drawText(screen, l, hudMarginX, hudMarginY+float64(i*hudLineGap), colorHUD)
	}

	if r.Debug.ShowGrid {
		stats := fmt.Sprintf("tick %d  t=%.1fs  bodies %d  lasers %d  cell %.0f",
			snap.Tick, snap.Time, len(snap.Bodies), len(snap.Lasers), snap.CellSize)
		drawText(screen, stats, hudMarginX, r.camera.Height-hudMarginY-13, colorHUD)
	}

	msg := bannerText(snap.Outcome)
	if msg == "" {
		return
	}
	w, _ := text.Measure(msg, hudFace, 0)
	cx, cy := r.camera.Width/2, r.camera.Height/2
	fillRect(screen, cx-w/2-20, cy-20, w+40, 40, colorBannerBack)
	drawTextCentered(screen, msg, cx, cy, colorBanner)
}

package render

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"inertia/game"
)

// radarBlip is a body projected onto the radar disc
type radarBlip struct {
	rx, ry  float64
	dist    float64
	offDisc bool
}

// projectBlip maps a world offset from the player onto the radar. Bodies
// beyond radar range sit on the rim.
func projectBlip(dx, dy float64) radarBlip {
	scale := radarRadius / radarRange
	dist := math.Hypot(dx, dy)
	b := radarBlip{rx: dx * scale, ry: dy * scale, dist: dist}

	edgeLimit := radarRadius - radarEdgeMargin
	if d := math.Hypot(b.rx, b.ry); d > edgeLimit {
		f := edgeLimit / d
		b.rx *= f
		b.ry *= f
		b.offDisc = dist > radarRange
	}
	return b
}

// drawRadar renders a disc in the bottom-right corner centered on the player
func (r *Renderer) drawRadar(screen *ebiten.Image, snap *game.Snapshot, player game.BodyState) {
	cx := r.camera.Width - radarRadius - radarMargin
	cy := r.camera.Height - radarRadius - radarMargin

	fillCircle(screen, cx, cy, radarRadius+radarEdgeMargin, colorRadarBackdrop)
	strokeCircle(screen, cx, cy, radarRadius, 1, colorRadarRing)

	for _, b := range snap.Bodies {
		if b.ID == player.ID {
			continue
		}
		blip := projectBlip(b.X-player.X, b.Y-player.Y)

		switch b.Kind {
		case game.KindMeteor:
			if !blip.offDisc {
				fillCircle(screen, cx+blip.rx, cy+blip.ry, 1, colorRadarMeteor)
			}
		case game.KindEnemy:
			fillCircle(screen, cx+blip.rx, cy+blip.ry, radarBlipSize, colorEnemy)
			if blip.offDisc {
				label := fmt.Sprintf("%.0f", blip.dist)
				lx := math.Max(cx-radarRadius, math.Min(cx+blip.rx+radarLabelOffsetX, cx+radarRadius-32))
				ly := math.Max(cy-radarRadius, math.Min(cy+blip.ry-radarLabelOffsetY, cy+radarRadius-12))
				drawText(screen, label, lx, ly, colorHUD)
			}
		}
	}

	r.drawTrail(screen, cx, cy, player)

	// Heading marker for the player
	hx, hy := rotatePoint(radarRadius*0.15, 0, player.Angle)
	line(screen, cx, cy, cx+hx, cy+hy, 1, colorRadarPlayer)
	fillCircle(screen, cx, cy, radarCenterDotSize, colorRadarPlayer)
}

// drawTrail draws the predicted course as segments fading with distance
// along the path
func (r *Renderer) drawTrail(screen *ebiten.Image, cx, cy float64, player game.BodyState) {
	if len(r.trail) < 2 {
		return
	}
	for i := 0; i < len(r.trail)-1; i++ {
		p1 := projectBlip(r.trail[i].X-player.X, r.trail[i].Y-player.Y)
		p2 := projectBlip(r.trail[i+1].X-player.X, r.trail[i+1].Y-player.Y)

		progress := float64(i) / float64(len(r.trail)-1)
		c := withAlpha(colorRadarPlayer, 1-progress*0.8)
		line(screen, cx+p1.rx, cy+p1.ry, cx+p2.rx, cy+p2.ry, 1, c)
	}
}

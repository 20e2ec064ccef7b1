package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// rotatePoint rotates a point around the origin by the given angle (in radians)
func rotatePoint(x, y, angle float64) (float64, float64) {
	sinA := math.Sin(angle)
	cosA := math.Cos(angle)
	return x*cosA - y*sinA, x*sinA + y*cosA
}

func line(dst *ebiten.Image, x1, y1, x2, y2, width float64, clr color.Color) {
	vector.StrokeLine(dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), clr, true)
}

func fillCircle(dst *ebiten.Image, cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), clr, true)
}

func strokeCircle(dst *ebiten.Image, cx, cy, r, width float64, clr color.Color) {
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r), float32(width), clr, true)
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, true)
}

func strokeRect(dst *ebiten.Image, x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), float32(width), clr, true)
}

// triangle strokes a ship hull centered on cx, cy facing angle, scaled by s
func triangle(dst *ebiten.Image, cx, cy, angle, s float64, clr color.Color) {
	nx, ny := rotatePoint(shipNoseOffset*s, 0, angle)
	lx, ly := rotatePoint(shipBackOffset*s, -shipHalfWidth*s, angle)
	rx, ry := rotatePoint(shipBackOffset*s, shipHalfWidth*s, angle)

	line(dst, cx+nx, cy+ny, cx+lx, cy+ly, 2, clr)
	line(dst, cx+lx, cy+ly, cx+rx, cy+ry, 2, clr)
	line(dst, cx+rx, cy+ry, cx+nx, cy+ny, 2, clr)
}

// withAlpha returns clr with its alpha scaled by f
func withAlpha(clr color.NRGBA, f float64) color.NRGBA {
	f = max(0, min(1, f))
	clr.A = uint8(float64(clr.A) * f)
	return clr
}

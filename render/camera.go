package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"inertia/game"
)

// Camera is the viewport into the world. X, Y is the world position of the
// top-left corner of the screen.
type Camera struct {
	X, Y   float64
	Zoom   float64
	Width  float64 // Viewport width in pixels
	Height float64 // Viewport height in pixels

	view    mgl64.Mat3
	inverse mgl64.Mat3
}

// NewCamera creates a camera at the world origin
func NewCamera(width, height float64) *Camera {
	c := &Camera{
		Zoom:   1.0,
		Width:  width,
		Height: height,
	}
	c.update()
	return c
}

// Resize changes the viewport size
func (c *Camera) Resize(width, height float64) {
	c.Width = width
	c.Height = height
	c.update()
}

// ViewSize returns the visible world extent
func (c *Camera) ViewSize() (float64, float64) {
	return c.Width / c.Zoom, c.Height / c.Zoom
}

// CenterOn centers the view on a point without showing anything outside
// a square world of the given size. A world smaller than the view pins the
// camera to the origin.
func (c *Camera) CenterOn(target game.Vec2, worldSize float64) {
	w, h := c.ViewSize()

	c.X = target.X - w/2
	c.Y = target.Y - h/2

	c.X = max(0, min(c.X, worldSize-w))
	c.Y = max(0, min(c.Y, worldSize-h))
	c.update()
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	v := c.view.Mul3x1(mgl64.Vec3{wx, wy, 1})
	return v[0], v[1]
}

// ScreenToWorld converts screen coordinates to world coordinates
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	v := c.inverse.Mul3x1(mgl64.Vec3{sx, sy, 1})
	return v[0], v[1]
}

// Visible reports whether a circle of radius r around a world point is on screen
func (c *Camera) Visible(wx, wy, r float64) bool {
	w, h := c.ViewSize()
	return wx+r >= c.X && wx-r <= c.X+w && wy+r >= c.Y && wy-r <= c.Y+h
}

func (c *Camera) update() {
	if c.Zoom <= 0 {
		c.Zoom = 1
	}
	c.view = mgl64.Scale2D(c.Zoom, c.Zoom).Mul3(mgl64.Translate2D(-c.X, -c.Y))
	c.inverse = mgl64.Translate2D(c.X, c.Y).Mul3(mgl64.Scale2D(1/c.Zoom, 1/c.Zoom))
}

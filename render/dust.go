package render

import (
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"inertia/game"
)

// dust is a background speck in screen space
type dust struct {
	pos    game.Vec2
	speed  float64
	radius float64
}

// dustField is a parallax layer that drifts against the player's velocity
type dustField struct {
	specks []dust
	width  float64
	height float64
}

func newDustField(width, height float64, rng *rand.Rand) *dustField {
	f := &dustField{
		specks: make([]dust, dustCount),
		width:  width,
		height: height,
	}
	span := f.span()
	for i := range f.specks {
		f.specks[i] = dust{
			pos: game.Vec2{
				X: width/2 + (rng.Float64()-0.5)*span,
				Y: height/2 + (rng.Float64()-0.5)*span,
			},
			speed:  dustMinSpeed + rng.Float64()*(dustMaxSpeed-dustMinSpeed),
			radius: 0.5 + rng.Float64()*1.5,
		}
	}
	return f
}

func (f *dustField) span() float64 {
	return math.Hypot(f.width, f.height) * dustSpanMultiplier
}

// update moves dust opposite to the player's velocity and wraps it in a
// torus around the screen center so it never runs out
func (f *dustField) update(dt float64, vel game.Vec2) {
	span := f.span()
	half := span * 0.5
	cx, cy := f.width/2, f.height/2

	for i := range f.specks {
		d := &f.specks[i]
		d.pos.X -= vel.X * dt * d.speed
		d.pos.Y -= vel.Y * dt * d.speed

		dx := d.pos.X - cx
		dy := d.pos.Y - cy
		if dx < -half {
			d.pos.X += span
		}
		if dx > half {
			d.pos.X -= span
		}
		if dy < -half {
			d.pos.Y += span
		}
		if dy > half {
			d.pos.Y -= span
		}
	}
}

func (f *dustField) draw(screen *ebiten.Image) {
	for _, d := range f.specks {
		if d.pos.X < 0 || d.pos.X > f.width || d.pos.Y < 0 || d.pos.Y > f.height {
			continue
		}
		fillCircle(screen, d.pos.X, d.pos.Y, d.radius, withAlpha(colorDust, 0.4+d.speed*2))
	}
}

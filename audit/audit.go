// Package audit measures how far the grid-neighborhood gravity strays from
// the full field. The simulation only sums attraction from bodies in the
// nearest five cells; the reference here is a Barnes-Hut sum over every body.
package audit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/barneshut"
	"gonum.org/v1/gonum/spatial/r2"

	"inertia/game"
)

// DefaultTheta is the Barnes-Hut opening angle used when none is given
const DefaultTheta = 0.5

// DefaultThreshold is the relative error above which a body counts as missed
const DefaultThreshold = 0.5

// Report summarizes one audit pass
type Report struct {
	Tick      uint64
	Bodies    int
	Theta     float64
	Threshold float64

	MeanRelError float64
	MaxRelError  float64

	// Missed counts bodies whose grid acceleration is off by more than Threshold
	Missed int
}

// String formats the report as a single log line
func (r Report) String() string {
	return fmt.Sprintf("tick=%d bodies=%d theta=%.2f mean_err=%.3f max_err=%.3f missed=%d (>%.0f%%)",
		r.Tick, r.Bodies, r.Theta, r.MeanRelError, r.MaxRelError, r.Missed, r.Threshold*100)
}

type particle struct {
	pos  r2.Vec
	mass float64
}

func (p *particle) Coord2() r2.Vec { return p.pos }
func (p *particle) Mass() float64  { return p.mass }

// flooredGravity matches the simulation's law: G*m1*m2/d^2 with d^2 floored
func flooredGravity(_, _ barneshut.Particle2, m1, m2 float64, v r2.Vec) r2.Vec {
	d2 := v.X*v.X + v.Y*v.Y
	if d2 == 0 {
		return r2.Vec{}
	}
	d := math.Sqrt(d2)
	if d2 < game.MinDistanceSq {
		d2 = game.MinDistanceSq
	}
	f := game.GravityConstant * m1 * m2 / d2
	return r2.Vec{X: v.X / d * f, Y: v.Y / d * f}
}

// Run compares every live body's grid acceleration against the full field
func Run(s *game.Simulation, theta, threshold float64) (Report, error) {
	forces := s.GridAttractions()
	report := Report{
		Tick:      s.TickCount(),
		Bodies:    len(forces),
		Theta:     theta,
		Threshold: threshold,
	}
	if len(forces) == 0 {
		return report, nil
	}

	particles := make([]barneshut.Particle2, len(forces))
	for i, f := range forces {
		particles[i] = &particle{pos: r2.Vec{X: f.Pos.X, Y: f.Pos.Y}, mass: f.Mass}
	}

	plane, err := barneshut.NewPlane(particles)
	if err != nil {
		return report, fmt.Errorf("failed to build Barnes-Hut plane: %w", err)
	}

	var sum float64
	for i, f := range forces {
		if f.Mass <= 0 {
			continue
		}
		force := plane.ForceOn(particles[i], theta, flooredGravity)
		full := game.Vec2{X: force.X / f.Mass, Y: force.Y / f.Mass}

		e := relativeError(f.Acc, full)
		sum += e
		report.MaxRelError = math.Max(report.MaxRelError, e)
		if e > threshold {
			report.Missed++
		}
	}
	report.MeanRelError = sum / float64(len(forces))
	return report, nil
}

// relativeError is |grid - full| / |full|. A body feeling nothing in either
// model has no error.
func relativeError(grid, full game.Vec2) float64 {
	ref := full.Magnitude()
	diff := grid.Sub(full).Magnitude()
	if ref == 0 {
		if diff == 0 {
			return 0
		}
		return 1
	}
	return diff / ref
}

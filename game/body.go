package game

import "math"

// checkBounds clamps the body into [1, size-1] on each axis. An axis that
// clamps loses its acceleration and bounces back at a quarter of its speed.
func (b *Body) checkBounds(size float64) {
	lo := BoundsMargin
	hi := size - BoundsMargin

	if b.Pos.X < lo {
		b.Pos.X = lo
		b.Vel.X = -b.Vel.X * EdgeRestitution
		b.Acc.X = 0
	}
	if b.Pos.X > hi {
		b.Pos.X = hi
		b.Vel.X = -b.Vel.X * EdgeRestitution
		b.Acc.X = 0
	}
	if b.Pos.Y < lo {
		b.Pos.Y = lo
		b.Vel.Y = -b.Vel.Y * EdgeRestitution
		b.Acc.Y = 0
	}
	if b.Pos.Y > hi {
		b.Pos.Y = hi
		b.Vel.Y = -b.Vel.Y * EdgeRestitution
		b.Acc.Y = 0
	}
}

// clampVelocity limits each velocity component to the terminal velocity
func (b *Body) clampVelocity() {
	b.Vel.X = math.Max(-TerminalVelocity, math.Min(TerminalVelocity, b.Vel.X))
	b.Vel.Y = math.Max(-TerminalVelocity, math.Min(TerminalVelocity, b.Vel.Y))
}

// rescale grows or shrinks the footprint logarithmically with the ratio of
// the new to the old pool (mass or health). Position stays the center.
func (b *Body) rescale(oldAmount, newAmount float64) {
	if oldAmount <= 0 || newAmount <= 0 {
		return
	}
	scale := math.Log(newAmount/oldAmount) / 2
	if scale <= -1 {
		return
	}
	b.Width = math.Max(1, math.Trunc(b.Width*scale+b.Width))
	b.Height = math.Max(1, math.Trunc(b.Height*scale+b.Height))
}

// attractionFrom returns the acceleration this body feels toward other
func (b *Body) attractionFrom(other *Body) Vec2 {
	distSq := b.Pos.DistanceSq(other.Pos)
	if distSq < MinDistanceSq {
		distSq = MinDistanceSq
	}
	force := GravityConstant * b.Mass * other.Mass / distSq

	// f = m * a
	magnitude := force / b.Mass

	dir := other.Pos.Sub(b.Pos)
	dir.SelfNormalize()
	dir.MulOn(magnitude)
	return dir
}

// overlapsNext reports whether the body's circle, moved one step along its
// velocity, overlaps other's circle at its current position
func (b *Body) overlapsNext(other *Body, dt float64) bool {
	next := b.Pos.Add(b.Vel.Mul(dt))
	return next.Distance(other.Pos) < b.Radius()+other.Radius()
}

// attraction sums gravity from every other body in the grid neighborhood
func (s *Simulation) attraction(b *Body) Vec2 {
	var acc Vec2
	s.cellBuf, s.nbrBuf = s.grid.Neighbors(b.Pos.X, b.Pos.Y, s.cellBuf, s.nbrBuf[:0])
	for _, other := range s.nbrBuf {
		if other == b || !other.alive {
			continue
		}
		acc.AddOn(b.attractionFrom(other))
	}
	return acc
}

// stepBody advances one body by dt
func (s *Simulation) stepBody(b *Body, dt float64) {
	size := s.cfg.WorldSize

	// Keep the body inside the grid before indexing it
	b.checkBounds(size)
	s.grid.Place(b)

	b.Acc = s.attraction(b)

	if b.Thrust && b.Controller != nil {
		b.Acc.AddOn(b.Controller.Thrust(s, b))
	}

	b.Vel.AddOn(b.Acc.Mul(dt))
	b.clampVelocity()

	s.resolveCollisions(b, dt)
	if !b.alive {
		return
	}

	b.Pos.AddOn(b.Vel.Mul(dt))
	b.checkBounds(size)

	if b.Controller != nil {
		b.Controller.Orient(s, b)
	}
}

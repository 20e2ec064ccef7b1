package game

import "math"

// fireLaser spawns a laser from shooter toward target. The bolt starts a
// short way in front of the shooter along angle and inherits its velocity.
func (s *Simulation) fireLaser(shooter *Body, target Vec2, angle float64) *Projectile {
	dir := target.Sub(shooter.Pos)
	dir.SelfNormalize()
	dir.MulOn(LaserVelocity)
	dir.AddOn(shooter.Vel)

	l := &Projectile{
		ID: s.allocID(),
		Pos: Vec2{
			X: shooter.Pos.X + MuzzleOffset*math.Cos(angle),
			Y: shooter.Pos.Y + MuzzleOffset*math.Sin(angle),
		},
		Vel:       dir,
		Angle:     angle,
		Shooter:   shooter,
		SpawnedAt: s.clock,
		Width:     LaserWidth,
		Height:    LaserHeight,
		alive:     true,
	}
	s.lasers = append(s.lasers, l)
	s.emit(Event{Kind: EventLaserFired, Pos: l.Pos, Source: shooter.ID})
	return l
}

// outOfBounds reports whether a point has left the playable area
func (s *Simulation) outOfBounds(p Vec2) bool {
	hi := s.cfg.WorldSize - BoundsMargin
	return p.X < BoundsMargin || p.X > hi || p.Y < BoundsMargin || p.Y > hi
}

// stepLaser moves a laser, expires it, or lands its single hit
func (s *Simulation) stepLaser(l *Projectile, dt float64) {
	if !l.alive {
		return
	}

	l.Pos.AddOn(l.Vel.Mul(dt))
	if s.clock-l.SpawnedAt > LaserLifetime || s.outOfBounds(l.Pos) {
		l.alive = false
		return
	}

	s.cellBuf, s.nbrBuf = s.grid.Neighbors(l.Pos.X, l.Pos.Y, s.cellBuf, s.nbrBuf[:0])
	for _, target := range s.nbrBuf {
		if target == l.Shooter || !target.alive {
			continue
		}
		if l.Pos.Distance(target.Pos) >= target.Radius() {
			continue
		}

		if !s.takeDamage(target, LaserDamage) {
			s.spawnEffect(SmallExplosion, target, l.Pos)
			s.emit(Event{Kind: EventSmallExplosion, Pos: l.Pos, Source: target.ID})
		}
		l.alive = false
		break
	}
	s.flushRemovals()
}

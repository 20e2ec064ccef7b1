package game

// Acquirer is implemented by controllers that lock onto a target when they
// come into contact range of one
type Acquirer interface {
	Acquire(target *Body)
}

// Observer is implemented by controllers that scan nearby meteors instead
// of absorbing them
type Observer interface {
	Observe(b, other *Body)
}

// resolveCollisions runs the protocols the body's kind takes part in.
// Meteors merge, ships collide hard, enemies also watch for incoming meteors.
func (s *Simulation) resolveCollisions(b *Body, dt float64) {
	b.checkBounds(s.cfg.WorldSize)

	switch b.Kind {
	case KindMeteor:
		s.absorbCollisions(b, dt)
	case KindPlayer:
		s.hardCollisions(b, dt)
	case KindEnemy:
		s.hardCollisions(b, dt)
		if b.alive {
			s.scanDanger(b)
		}
	}
}

// absorbCollisions merges overlapping meteors. The player is never absorbed.
func (s *Simulation) absorbCollisions(b *Body, dt float64) {
	s.cellBuf, s.nbrBuf = s.grid.Neighbors(b.Pos.X, b.Pos.Y, s.cellBuf, s.nbrBuf[:0])
	for _, other := range s.nbrBuf {
		if other == b || !other.alive || other.Kind != KindMeteor {
			continue
		}
		if !b.overlapsNext(other, dt) {
			continue
		}
		if s.absorb(b, other) == b {
			break
		}
	}
	s.flushRemovals()
}

// absorber picks which of two colliding bodies survives a merge.
// The heavier wins; on a tie a non-player beats the player, otherwise the active side wins.
func absorber(active, other *Body) (winner, loser *Body) {
	switch {
	case active.Mass > other.Mass:
		return active, other
	case other.Mass > active.Mass:
		return other, active
	case active.Kind == KindPlayer && other.Kind != KindPlayer:
		return other, active
	}
	return active, other
}

// absorb merges two bodies and returns the one that was absorbed
func (s *Simulation) absorb(active, other *Body) *Body {
	newMass := active.Mass + other.Mass
	inv := 1 / newMass

	pos := active.Pos.Mul(active.Mass).Add(other.Pos.Mul(other.Mass)).Mul(inv)
	vel := active.Vel.Mul(active.Mass).Add(other.Vel.Mul(other.Mass)).Mul(inv)
	acc := active.Acc.Mul(active.Mass).Add(other.Acc.Mul(other.Mass)).Mul(inv)

	winner, loser := absorber(active, other)
	winner.Pos = pos
	winner.Vel = vel
	winner.Acc = acc
	winner.rescale(winner.Mass, newMass)
	winner.Mass = newMass

	// Absorbed bodies vanish without an explosion
	loser.alive = false
	s.doomed = append(s.doomed, loser)
	return loser
}

// hardCollisions bounces a ship off everything it is about to overlap.
// Meteors it hits are destroyed; ships it hits collide back.
func (s *Simulation) hardCollisions(b *Body, dt float64) {
	s.cellBuf, s.nbrBuf = s.grid.Neighbors(b.Pos.X, b.Pos.Y, s.cellBuf, s.nbrBuf[:0])
	for _, other := range s.nbrBuf {
		if other == b || !other.alive {
			continue
		}
		if !s.collide(b, other, dt) {
			continue
		}

		if other.Kind == KindMeteor {
			s.destroy(other)
		} else {
			s.collide(other, b, dt)
		}

		if !b.alive {
			break
		}
	}
	s.flushRemovals()
}

// collide applies a hard collision to b from other and reports whether the
// two were overlapping. Only b's velocity changes. Controllable bodies take
// damage equal to the other body's mass.
func (s *Simulation) collide(b, other *Body, dt float64) bool {
	if acq, ok := b.Controller.(Acquirer); ok && other.Kind == KindPlayer {
		acq.Acquire(other)
	}

	if !b.overlapsNext(other, dt) {
		return false
	}

	fromOther := b.Pos.Sub(other.Pos)
	massRatio := other.Mass / b.Mass

	b.Vel.X = exchange(b.Vel.X, other.Vel.X, fromOther.X, massRatio)
	b.Vel.Y = exchange(b.Vel.Y, other.Vel.Y, fromOther.Y, massRatio)

	if b.Kind.Controllable() {
		s.takeDamage(b, other.Mass)
	}
	return true
}

// exchange resolves one axis of a hard collision. If the other body is
// behind us on this axis and moving our way its velocity carries over,
// scaled by the mass ratio when we were heading the other way. Otherwise we bounce.
func exchange(v, otherV, fromOther, massRatio float64) float64 {
	incoming := (fromOther > 0 && otherV > 0) || (fromOther < 0 && otherV < 0)
	if !incoming {
		return -v * EdgeRestitution
	}

	sameDirection := (v > 0 && otherV > 0) || (v < 0 && otherV < 0)
	if sameDirection {
		return v + otherV
	}
	return v + otherV*massRatio
}

// scanDanger lets an observing controller look at nearby meteors
func (s *Simulation) scanDanger(b *Body) {
	obs, ok := b.Controller.(Observer)
	if !ok {
		return
	}

	s.cellBuf, s.nbrBuf = s.grid.Neighbors(b.Pos.X, b.Pos.Y, s.cellBuf, s.nbrBuf[:0])
	for _, other := range s.nbrBuf {
		if other == b || !other.alive || other.Kind != KindMeteor {
			continue
		}
		obs.Observe(b, other)
	}
}

// DamageMultiplier returns the factor applied to damage taken by a kind
func (s *Simulation) DamageMultiplier(k Kind) float64 {
	if k == KindPlayer {
		if m := s.cfg.Tier().DamageMultiplier; m > 0 {
			return m
		}
	}
	return 1
}

// takeDamage drains mass from meteors or health from ships. It reports
// whether the body was destroyed; survivors shrink with the loss.
func (s *Simulation) takeDamage(b *Body, amount float64) bool {
	if b.Kind.Controllable() {
		old := b.Health
		b.Health -= amount * s.DamageMultiplier(b.Kind)
		if b.Health <= 0 {
			b.Health = 0
			s.destroy(b)
			return true
		}
		b.rescale(old, b.Health)
		return false
	}

	old := b.Mass
	b.Mass -= amount
	if b.Mass <= 0 {
		b.Mass = 0
		s.destroy(b)
		return true
	}
	b.rescale(old, b.Mass)
	return false
}

// destroy blows a body up and queues it for removal from the grid
func (s *Simulation) destroy(b *Body) {
	if !b.alive {
		return
	}
	b.alive = false
	s.spawnEffect(LargeExplosion, b, b.Pos)
	s.emit(Event{Kind: EventLargeExplosion, Pos: b.Pos, Source: b.ID})
	s.doomed = append(s.doomed, b)
}

// flushRemovals drops every body that died during the last scan from the grid
func (s *Simulation) flushRemovals() {
	for i, b := range s.doomed {
		s.grid.Remove(b)
		s.doomed[i] = nil
	}
	s.doomed = s.doomed[:0]
}

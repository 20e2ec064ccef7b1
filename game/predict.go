package game

// PredictPath extrapolates the player's course for steps of dt against the
// current field. Other bodies stay where they are and collisions are ignored.
// The first point is the player's current position. Returns nil without a
// live player.
func (s *Simulation) PredictPath(steps int, dt float64) []Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.player
	if p == nil || !p.alive || steps <= 0 || dt <= 0 {
		return nil
	}

	ghost := *p
	path := make([]Vec2, 0, steps+1)
	path = append(path, ghost.Pos)

	var cellBuf []int
	var nbrs []*Body
	for i := 0; i < steps; i++ {
		var acc Vec2
		cellBuf, nbrs = s.grid.Neighbors(ghost.Pos.X, ghost.Pos.Y, cellBuf, nbrs[:0])
		for _, other := range nbrs {
			if other == p || !other.alive {
				continue
			}
			acc.AddOn(ghost.attractionFrom(other))
		}
		if ghost.Thrust && ghost.Controller != nil {
			acc.AddOn(ghost.Controller.Thrust(s, &ghost))
		}

		ghost.Vel.AddOn(acc.Mul(dt))
		ghost.clampVelocity()
		ghost.Pos.AddOn(ghost.Vel.Mul(dt))
		ghost.checkBounds(s.cfg.WorldSize)

		path = append(path, ghost.Pos)
	}
	return path
}

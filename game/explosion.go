package game

// EffectKind selects the explosion animation
type EffectKind int

const (
	// SmallExplosion marks a laser impact on a body that survived
	SmallExplosion EffectKind = iota

	// LargeExplosion marks a destroyed body
	LargeExplosion
)

// Explosion animation timing
const (
	ExplosionFrames    = 17
	ExplosionFrameTime = 0.045 // seconds per frame
)

// Effect is a short-lived explosion that follows the body it is attached to
type Effect struct {
	ID     EntityID
	Kind   EffectKind
	Host   *Body
	Offset Vec2

	// Frame is the animation frame currently showing
	Frame int

	elapsed float64
}

// Pos returns the effect's current world position
func (e *Effect) Pos() Vec2 {
	return e.Host.Pos.Add(e.Offset)
}

// Done reports whether the animation has played out
func (e *Effect) Done() bool {
	return e.Frame >= ExplosionFrames
}

// advance moves the animation forward on simulation time
func (e *Effect) advance(dt float64) {
	e.elapsed += dt
	e.Frame = int(e.elapsed / ExplosionFrameTime)
}

// spawnEffect attaches an explosion to host at a world position
func (s *Simulation) spawnEffect(kind EffectKind, host *Body, at Vec2) {
	s.effects = append(s.effects, &Effect{
		ID:     s.allocID(),
		Kind:   kind,
		Host:   host,
		Offset: at.Sub(host.Pos),
	})
}

// advanceEffects steps every explosion and drops the finished ones
func (s *Simulation) advanceEffects(dt float64) {
	live := s.effects[:0]
	for _, e := range s.effects {
		e.advance(dt)
		if !e.Done() {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(s.effects); i++ {
		s.effects[i] = nil
	}
	s.effects = live
}

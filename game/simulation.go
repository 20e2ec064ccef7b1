package game

import (
	"fmt"
	"sync"
)

// Outcome is how a round ended
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLost
	OutcomeWon
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeLost:
		return "lost"
	case OutcomeWon:
		return "won"
	}
	return "none"
}

// BodySpec describes a body to spawn. Values are taken as given.
type BodySpec struct {
	Kind       Kind
	Mass       float64
	Health     float64
	Pos        Vec2
	Vel        Vec2
	Width      float64
	Height     float64
	Sprite     string
	Thrust     bool
	Controller Controller
}

// Simulation owns every body, laser and effect of one round and the grid
// indexing them. All methods are safe for concurrent use; a tick always runs
// to completion under the lock, so readers never see a half-stepped world.
type Simulation struct {
	mu sync.Mutex

	cfg  Config
	grid *Grid

	bodies  []*Body
	lasers  []*Projectile
	effects []*Effect
	events  []Event

	player        *Body
	playerControl *PlayerControl

	nextID EntityID

	// Simulation clock in seconds and the step of the tick in progress
	clock float64
	dt    float64
	ticks uint64

	enemiesSpawned int
	enemiesAlive   int
	outcome        Outcome

	// Scratch buffers reused by every neighborhood scan
	cellBuf []int
	nbrBuf  []*Body
	doomed  []*Body
}

// NewSimulation creates an empty world for the given configuration
func NewSimulation(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	return &Simulation{
		cfg:     cfg,
		grid:    NewGrid(cfg.WorldSize, cfg.WorldSize, cfg.CellSize),
		bodies:  make([]*Body, 0, 1024),
		lasers:  make([]*Projectile, 0, 256),
		effects: make([]*Effect, 0, 64),
		cellBuf: make([]int, 0, 5),
		nbrBuf:  make([]*Body, 0, 64),
		doomed:  make([]*Body, 0, 8),
	}, nil
}

// Config returns the configuration the world was built with
func (s *Simulation) Config() Config {
	return s.cfg
}

// Grid returns the spatial index. Callers must not mutate it.
func (s *Simulation) Grid() *Grid {
	return s.grid
}

func (s *Simulation) allocID() EntityID {
	s.nextID++
	return s.nextID
}

// SpawnBody adds a body to the world and indexes it
func (s *Simulation) SpawnBody(spec BodySpec) *Body {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spawnBody(spec)
}

func (s *Simulation) spawnBody(spec BodySpec) *Body {
	b := &Body{
		ID:         s.allocID(),
		Kind:       spec.Kind,
		Pos:        spec.Pos,
		Vel:        spec.Vel,
		Mass:       spec.Mass,
		Health:     spec.Health,
		MaxHealth:  spec.Health,
		Width:      spec.Width,
		Height:     spec.Height,
		Sprite:     spec.Sprite,
		Thrust:     spec.Thrust,
		Controller: spec.Controller,
		alive:      true,
		cell:       -1,
	}
	s.bodies = append(s.bodies, b)
	s.grid.Place(b)

	switch b.Kind {
	case KindPlayer:
		s.player = b
		if pc, ok := b.Controller.(*PlayerControl); ok {
			s.playerControl = pc
		}
	case KindEnemy:
		s.enemiesSpawned++
		s.enemiesAlive++
	}
	return b
}

// SpawnPlayer adds the player ship at pos
func (s *Simulation) SpawnPlayer(pos Vec2) *Body {
	return s.SpawnBody(BodySpec{
		Kind:       KindPlayer,
		Mass:       DefaultMass,
		Health:     DefaultHealth,
		Pos:        pos,
		Width:      ShipSize,
		Height:     ShipSize,
		Sprite:     "ship",
		Controller: NewPlayerControl(pos),
	})
}

// SpawnEnemy adds an enemy ship at pos
func (s *Simulation) SpawnEnemy(pos Vec2) *Body {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spawnEnemy(pos)
}

func (s *Simulation) spawnEnemy(pos Vec2) *Body {
	health := DefaultHealth / 2
	if m := s.cfg.Tier().HealthMultiplier; m > 0 {
		health *= m
	}
	return s.spawnBody(BodySpec{
		Kind:       KindEnemy,
		Mass:       DefaultMass,
		Health:     health,
		Pos:        pos,
		Width:      ShipSize,
		Height:     ShipSize,
		Sprite:     "enemy",
		Thrust:     true,
		Controller: NewEnemyControl(s.clock),
	})
}

// SpawnMeteor adds a meteor at pos moving at vel
func (s *Simulation) SpawnMeteor(pos, vel Vec2) *Body {
	return s.SpawnBody(BodySpec{
		Kind:   KindMeteor,
		Mass:   DefaultMass,
		Pos:    pos,
		Vel:    vel,
		Width:  MeteorSize,
		Height: MeteorSize,
		Sprite: "meteoroid",
	})
}

// FireLaser launches a laser from shooter toward target
func (s *Simulation) FireLaser(shooter *Body, target Vec2, angle float64) *Projectile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fireLaser(shooter, target, angle)
}

// SetThrust turns the player's engine on or off
func (s *Simulation) SetThrust(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player != nil {
		s.player.Thrust = on
	}
}

// Aim points the player at a world position
func (s *Simulation) Aim(target Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playerControl != nil {
		s.playerControl.Aim = target
	}
}

// Fire shoots a laser from the player at its aim point
func (s *Simulation) Fire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player == nil || !s.player.alive || s.playerControl == nil {
		return
	}
	aim := s.playerControl.Aim
	s.fireLaser(s.player, aim, aim.Sub(s.player.Pos).Heading())
}

// Tick advances the world by dt seconds: every live body, then every laser,
// then the explosion animations
func (s *Simulation) Tick(dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dt = dt
	s.clock += dt

	for i := 0; i < len(s.bodies); i++ {
		if b := s.bodies[i]; b.alive {
			s.stepBody(b, dt)
		}
	}

	// Lasers fired during this tick are stepped too
	for i := 0; i < len(s.lasers); i++ {
		s.stepLaser(s.lasers[i], dt)
	}

	s.advanceEffects(dt)
	s.sweep()
	s.checkGameOver()
	s.ticks++
}

// sweep compacts the arenas, dropping dead bodies and spent lasers
func (s *Simulation) sweep() {
	enemies := 0
	live := s.bodies[:0]
	for _, b := range s.bodies {
		if !b.alive {
			if b.cell >= 0 {
				s.grid.Remove(b)
			}
			continue
		}
		if b.Kind == KindEnemy {
			enemies++
		}
		live = append(live, b)
	}
	clear(s.bodies[len(live):])
	s.bodies = live
	s.enemiesAlive = enemies

	flying := s.lasers[:0]
	for _, l := range s.lasers {
		if l.alive {
			flying = append(flying, l)
		}
	}
	clear(s.lasers[len(flying):])
	s.lasers = flying
}

// checkGameOver latches the outcome once the player dies or the last enemy does
func (s *Simulation) checkGameOver() {
	if s.outcome != OutcomeNone {
		return
	}

	switch {
	case s.player != nil && !s.player.alive:
		s.outcome = OutcomeLost
	case s.enemiesSpawned > 0 && s.enemiesAlive == 0:
		s.outcome = OutcomeWon
	default:
		return
	}

	pos := Vec2{}
	if s.player != nil {
		pos = s.player.Pos
	}
	s.emit(Event{Kind: EventGameOver, Pos: pos})
}

// GameOver reports whether the round has ended
func (s *Simulation) GameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome != OutcomeNone
}

// Outcome returns how the round ended
func (s *Simulation) Outcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// EnemiesRemaining returns the number of live enemies as of the last tick
func (s *Simulation) EnemiesRemaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enemiesAlive
}

// Player returns the player body, or nil if none was spawned
func (s *Simulation) Player() *Body {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player
}

// Clock returns elapsed simulation time in seconds
func (s *Simulation) Clock() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock
}

// TickCount returns the number of completed ticks
func (s *Simulation) TickCount() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

// Bodies returns the live bodies in step order
func (s *Simulation) Bodies() []*Body {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Body, len(s.bodies))
	copy(out, s.bodies)
	return out
}

// Lasers returns the lasers in flight
func (s *Simulation) Lasers() []*Projectile {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Projectile, len(s.lasers))
	copy(out, s.lasers)
	return out
}

// Effects returns the running explosions
func (s *Simulation) Effects() []*Effect {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Effect, len(s.effects))
	copy(out, s.effects)
	return out
}

// BodyForce is the grid-local gravity felt by one body
type BodyForce struct {
	ID   EntityID
	Kind Kind
	Pos  Vec2
	Mass float64
	Acc  Vec2
}

// GridAttractions computes the neighborhood gravity for every live body
// without stepping the world
func (s *Simulation) GridAttractions() []BodyForce {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]BodyForce, 0, len(s.bodies))
	for _, b := range s.bodies {
		if !b.alive {
			continue
		}
		out = append(out, BodyForce{
			ID:   b.ID,
			Kind: b.Kind,
			Pos:  b.Pos,
			Mass: b.Mass,
			Acc:  s.attraction(b),
		})
	}
	return out
}

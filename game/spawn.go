package game

import (
	"math/rand"
	"time"
)

// Field generation constants
const (
	// SpawnClearance keeps new meteors and enemies off the player's row and column
	SpawnClearance = 200.0

	// MeteorMaxSpeed bounds each component of a new meteor's velocity
	MeteorMaxSpeed = 300.0

	maxSpawnAttempts = 1000
)

// NewRound builds and populates a world. A zero Seed in cfg seeds from the
// wall clock.
func NewRound(cfg Config) (*Simulation, error) {
	s, err := NewSimulation(cfg)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.Populate(rand.New(rand.NewSource(seed)))
	return s, nil
}

// Populate fills an empty world: the player at the center, then the meteor
// field, then the enemies, all sized by the difficulty tier
func (s *Simulation) Populate(rng *rand.Rand) {
	center := Vec2{X: s.cfg.WorldSize / 2, Y: s.cfg.WorldSize / 2}
	player := s.SpawnPlayer(center)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < s.cfg.MeteorCount(); i++ {
		pos := s.spawnPoint(rng, player.Pos)
		vel := Vec2{
			X: rng.Float64() * MeteorMaxSpeed * randomSign(rng),
			Y: rng.Float64() * MeteorMaxSpeed * randomSign(rng),
		}
		s.spawnBody(BodySpec{
			Kind:   KindMeteor,
			Mass:   DefaultMass,
			Pos:    pos,
			Vel:    vel,
			Width:  MeteorSize,
			Height: MeteorSize,
			Sprite: "meteoroid",
		})
	}

	for i := 0; i < s.cfg.Tier().EnemyCount; i++ {
		s.spawnEnemy(s.spawnPoint(rng, player.Pos))
	}
}

// spawnPoint picks a random point at least SpawnClearance away from avoid
// on both axes. Worlds too small to allow that take the last candidate.
func (s *Simulation) spawnPoint(rng *rand.Rand, avoid Vec2) Vec2 {
	var p Vec2
	for attempt := 0; attempt < maxSpawnAttempts; attempt++ {
		p = Vec2{
			X: rng.Float64() * s.cfg.WorldSize,
			Y: rng.Float64() * s.cfg.WorldSize,
		}
		if abs(p.X-avoid.X) >= SpawnClearance && abs(p.Y-avoid.Y) >= SpawnClearance {
			break
		}
	}
	p.X = max(BoundsMargin, min(p.X, s.cfg.WorldSize-BoundsMargin))
	p.Y = max(BoundsMargin, min(p.Y, s.cfg.WorldSize-BoundsMargin))
	return p
}

func randomSign(rng *rand.Rand) float64 {
	if rng.Float64() > 0.5 {
		return 1
	}
	return -1
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

package game

import (
	"math"
	"testing"
)

func TestLaserLifetime(t *testing.T) {
	s := newTestSim(t)
	s.SpawnPlayer(Vec2{X: 3500, Y: 3500})
	s.Aim(Vec2{X: 4500, Y: 3500})
	s.Fire()

	if n := len(s.Lasers()); n != 1 {
		t.Fatalf("Expected 1 laser after firing, got %d", n)
	}

	for i := 0; i < 70; i++ {
		s.Tick(0.02)
	}
	if n := len(s.Lasers()); n != 1 {
		t.Fatalf("Expected laser alive at 1.4s, got %d lasers", n)
	}

	for i := 0; i < 10; i++ {
		s.Tick(0.02)
	}
	if n := len(s.Lasers()); n != 0 {
		t.Errorf("Expected laser expired at 1.6s, got %d lasers", n)
	}
}

func TestFireLaserMuzzleAndVelocity(t *testing.T) {
	s := newTestSim(t)
	shooter := s.SpawnBody(BodySpec{Kind: KindEnemy, Mass: DefaultMass, Health: 50, Pos: Vec2{X: 2000, Y: 2000}, Vel: Vec2{X: 10, Y: 0}})

	l := s.FireLaser(shooter, Vec2{X: 2000, Y: 3000}, math.Pi/2)

	if !near(l.Pos.X, 2000) || !near(l.Pos.Y, 2000+MuzzleOffset) {
		t.Errorf("Expected laser %v ahead of the shooter, got %+v", MuzzleOffset, l.Pos)
	}
	if !near(l.Vel.X, 10) || !near(l.Vel.Y, LaserVelocity) {
		t.Errorf("Expected velocity (10, %v), got %+v", LaserVelocity, l.Vel)
	}

	events := s.DrainEvents()
	if len(events) != 1 || events[0].Kind != EventLaserFired {
		t.Errorf("Expected one laser-fired event, got %v", events)
	}
	if s.DrainEvents() != nil {
		t.Error("Expected event queue empty after drain")
	}
}

func TestLaserOutOfBounds(t *testing.T) {
	s := newTestSim(t)
	shooter := s.SpawnMeteor(Vec2{X: 6990, Y: 3500}, Vec2{})
	s.FireLaser(shooter, Vec2{X: 8000, Y: 3500}, 0)

	s.Tick(frame)

	if n := len(s.Lasers()); n != 0 {
		t.Errorf("Expected laser outside the world to be dropped, got %d", n)
	}
}

func TestLaserSingleHit(t *testing.T) {
	s := newTestSim(t)
	shooter := s.SpawnMeteor(Vec2{X: 500, Y: 500}, Vec2{})
	a := s.SpawnBody(BodySpec{Kind: KindEnemy, Mass: DefaultMass, Health: 50, Pos: Vec2{X: 3600, Y: 3500}, Width: ShipSize, Height: ShipSize})
	b := s.SpawnBody(BodySpec{Kind: KindEnemy, Mass: DefaultMass, Health: 50, Pos: Vec2{X: 3605, Y: 3500}, Width: ShipSize, Height: ShipSize})

	l := &Projectile{Pos: Vec2{X: 3590, Y: 3500}, Vel: Vec2{X: 600}, Shooter: shooter, alive: true}
	s.stepLaser(l, 0.01)

	if l.Alive() {
		t.Error("Expected laser consumed by the hit")
	}

	damaged := 0
	for _, e := range []*Body{a, b} {
		if e.Health < 50 {
			damaged++
			if e.Health != 50-LaserDamage {
				t.Errorf("Expected health %v, got %f", 50-LaserDamage, e.Health)
			}
		}
	}
	if damaged != 1 {
		t.Errorf("Expected exactly one body damaged, got %d", damaged)
	}

	effects := s.Effects()
	if len(effects) != 1 || effects[0].Kind != SmallExplosion {
		t.Errorf("Expected one small explosion, got %d effects", len(effects))
	}
}

func TestLaserIgnoresShooter(t *testing.T) {
	s := newTestSim(t)
	shooter := s.SpawnBody(BodySpec{Kind: KindEnemy, Mass: DefaultMass, Health: 50, Pos: Vec2{X: 3500, Y: 3500}, Width: ShipSize, Height: ShipSize})

	l := &Projectile{Pos: shooter.Pos, Vel: Vec2{X: 1}, Shooter: shooter, alive: true}
	s.stepLaser(l, 0.01)

	if !l.Alive() {
		t.Error("Expected laser to pass through its shooter")
	}
	if shooter.Health != 50 {
		t.Errorf("Expected shooter unharmed, got %f", shooter.Health)
	}
}

func TestLaserKillLeavesLargeExplosion(t *testing.T) {
	s := newTestSim(t)
	shooter := s.SpawnMeteor(Vec2{X: 500, Y: 500}, Vec2{})
	m := s.SpawnBody(BodySpec{Kind: KindMeteor, Mass: LaserDamage, Pos: Vec2{X: 3500, Y: 3500}, Width: MeteorSize, Height: MeteorSize})

	l := &Projectile{Pos: Vec2{X: 3495, Y: 3500}, Vel: Vec2{X: 100}, Shooter: shooter, alive: true}
	s.stepLaser(l, 0.01)

	if m.Alive() {
		t.Fatal("Expected meteor destroyed")
	}
	if m.Cell() != -1 {
		t.Error("Expected destroyed meteor removed from the grid")
	}
	effects := s.Effects()
	if len(effects) != 1 || effects[0].Kind != LargeExplosion {
		t.Errorf("Expected only a large explosion, got %d effects", len(effects))
	}
}

func TestEffectsExpire(t *testing.T) {
	s := newTestSim(t)
	host := s.SpawnMeteor(Vec2{X: 1000, Y: 1000}, Vec2{})
	s.spawnEffect(SmallExplosion, host, Vec2{X: 1010, Y: 1000})

	e := s.Effects()[0]
	if p := e.Pos(); !near(p.X, 1010) || !near(p.Y, 1000) {
		t.Errorf("Expected effect at (1010, 1000), got %+v", p)
	}

	host.Pos = Vec2{X: 2000, Y: 2000}
	if p := e.Pos(); !near(p.X, 2010) {
		t.Errorf("Expected effect to follow its host, got %+v", p)
	}

	s.advanceEffects(0.7)
	if len(s.Effects()) != 1 {
		t.Fatal("Expected effect still playing at 0.7s")
	}
	if e.Frame != 15 {
		t.Errorf("Expected frame 15, got %d", e.Frame)
	}

	s.advanceEffects(0.1)
	if len(s.Effects()) != 0 {
		t.Error("Expected effect finished after 17 frames")
	}
}

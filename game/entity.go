package game

// EntityID is a stable handle for a body or projectile.
// IDs are allocated by the owning Simulation and never reused within it.
type EntityID uint64

// InvalidEntityID represents an unset entity reference
const InvalidEntityID EntityID = 0

// Kind identifies what a body is and which collision protocols it runs
type Kind int

const (
	KindMeteor Kind = iota
	KindPlayer
	KindEnemy
	KindProjectile
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindMeteor:
		return "meteor"
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	}
	return "unknown"
}

// Controllable reports whether bodies of this kind carry a health pool,
// take hard collisions and can fire lasers
func (k Kind) Controllable() bool {
	return k == KindPlayer || k == KindEnemy
}

// Controller generates thrust for a body and decides where it faces.
// Thrust is only consulted while the body's Thrust flag is set.
type Controller interface {
	Thrust(s *Simulation, b *Body) Vec2
	Orient(s *Simulation, b *Body)
}

// Rect is an axis-aligned rectangle given by its top-left corner and size
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Body is a simulated mass: player ship, enemy ship or meteor
type Body struct {
	ID   EntityID
	Kind Kind

	Pos Vec2
	Vel Vec2
	Acc Vec2

	Mass float64

	// Facing in radians, measured from +X
	Angle float64

	// Thrust enables the controller's thrust contribution
	Thrust bool

	// Health pool, only meaningful for controllable kinds
	Health    float64
	MaxHealth float64

	// Footprint centered on Pos
	Width, Height float64

	// Sprite is an opaque asset key owned by the renderer
	Sprite string

	Controller Controller

	alive bool

	// Grid cell index, -1 when not indexed
	cell int
}

// Alive reports whether the body still takes part in the simulation
func (b *Body) Alive() bool {
	return b.alive
}

// Cell returns the grid cell index recorded for the body, or -1
func (b *Body) Cell() int {
	return b.cell
}

// Radius is the circle used by every overlap test: the mean of the half extents
func (b *Body) Radius() float64 {
	return (b.Width/2 + b.Height/2) / 2
}

// Bounds returns the footprint rectangle centered on the body's position
func (b *Body) Bounds() Rect {
	return Rect{
		X:      b.Pos.X - b.Width/2,
		Y:      b.Pos.Y - b.Height/2,
		Width:  b.Width,
		Height: b.Height,
	}
}

// Projectile is a laser bolt. Projectiles move but are not indexed in the grid.
type Projectile struct {
	ID      EntityID
	Pos     Vec2
	Vel     Vec2
	Angle   float64
	Shooter *Body

	// SpawnedAt is the simulation clock reading at creation
	SpawnedAt float64

	Width, Height float64

	alive bool
}

// Alive reports whether the laser is still in flight
func (p *Projectile) Alive() bool {
	return p.alive
}

// Bounds returns the laser's footprint rectangle
func (p *Projectile) Bounds() Rect {
	return Rect{
		X:      p.Pos.X - p.Width/2,
		Y:      p.Pos.Y - p.Height/2,
		Width:  p.Width,
		Height: p.Height,
	}
}

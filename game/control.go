package game

import "math"

// PlayerControl steers toward the aim point supplied by the input layer
type PlayerControl struct {
	// Aim is the world point the ship faces and thrusts toward
	Aim Vec2
}

// NewPlayerControl creates a player controller aiming at a point
func NewPlayerControl(aim Vec2) *PlayerControl {
	return &PlayerControl{Aim: aim}
}

// Thrust pushes toward the aim point. An axis already past the max thrust
// speed in the push direction gets no more push.
func (c *PlayerControl) Thrust(_ *Simulation, b *Body) Vec2 {
	push := c.Aim.Sub(b.Pos)
	push.SelfNormalize()
	push.MulOn(ThrustForce)

	if (b.Vel.X > MaxThrustVelocity && push.X > 0) || (b.Vel.X < -MaxThrustVelocity && push.X < 0) {
		push.X = 0
	}
	if (b.Vel.Y > MaxThrustVelocity && push.Y > 0) || (b.Vel.Y < -MaxThrustVelocity && push.Y < 0) {
		push.Y = 0
	}
	return push
}

// Orient faces the aim point
func (c *PlayerControl) Orient(_ *Simulation, b *Body) {
	to := c.Aim.Sub(b.Pos)
	if to.Magnitude() == 0 {
		return
	}
	b.Angle = to.Heading()
}

// EnemyControl dodges meteors on a collision course and, once it has met
// the player, hunts it with leading shots
type EnemyControl struct {
	target    *Body
	dangerous []*Body
	lastShot  float64
}

// NewEnemyControl creates an enemy controller. now is the simulation clock,
// which starts the fire cooldown.
func NewEnemyControl(now float64) *EnemyControl {
	return &EnemyControl{
		dangerous: make([]*Body, 0, 8),
		lastShot:  now,
	}
}

// Target returns the acquired target, or nil
func (c *EnemyControl) Target() *Body {
	return c.target
}

// Acquire locks onto a target
func (c *EnemyControl) Acquire(target *Body) {
	c.target = target
}

// collisionThreshold is the heading tolerance, in radians, for a given
// separation. Closer objects get a wider cone.
func collisionThreshold(dist float64) float64 {
	return 2 / math.Log10(math.Max(dist, 2))
}

// Observe flags other as dangerous when it is close and either body is
// heading at the other
func (c *EnemyControl) Observe(b, other *Body) {
	dist := math.Max(b.Pos.Distance(other.Pos), 2)
	if dist >= DangerRadius {
		return
	}

	th := collisionThreshold(dist)
	if other.Vel.Angle(b.Pos.Sub(other.Pos)) < th || b.Vel.Angle(other.Pos.Sub(b.Pos)) < th {
		c.dangerous = append(c.dangerous, other)
	}
}

// Dangerous returns the objects flagged since the last thrust
func (c *EnemyControl) Dangerous() []*Body {
	return c.dangerous
}

// Thrust steers away from flagged meteors and runs the attack decision
func (c *EnemyControl) Thrust(s *Simulation, b *Body) Vec2 {
	escape := c.avoid(b)
	if c.target != nil {
		c.attack(s, b)
	}
	return escape
}

// avoid sums an escape vector away from every flagged object, stronger for
// nearer ones, and clears the flags
func (c *EnemyControl) avoid(b *Body) Vec2 {
	if len(c.dangerous) == 0 {
		return Vec2{}
	}

	var escape Vec2
	for _, o := range c.dangerous {
		away := b.Pos.Sub(o.Pos).Normalize()

		// Never let the escape point back at the object
		if (o.Pos.Y < b.Pos.Y && away.Y < 0) || (o.Pos.Y > b.Pos.Y && away.Y > 0) {
			away.Y = -away.Y
		}
		if (o.Pos.X < b.Pos.X && away.X < 0) || (o.Pos.X > b.Pos.X && away.X > 0) {
			away.X = -away.X
		}

		strength := math.Min(ThrustForce/(b.Pos.Distance(o.Pos)*0.01), ThrustForce)
		away.SelfNormalize()
		away.MulOn(strength)
		escape.AddOn(away)
	}
	escape.SelfNormalize()
	escape.MulOn(ThrustForce)

	clear(c.dangerous)
	c.dangerous = c.dangerous[:0]
	return escape
}

// attack fires at where the target will be if it is in front, in range and
// the gun has cooled down
func (c *EnemyControl) attack(s *Simulation, b *Body) {
	t := c.target
	if !t.alive {
		c.target = nil
		return
	}

	dist := math.Max(b.Pos.Distance(t.Pos), 2)
	th := collisionThreshold(dist)

	lead := dist / LeadDivisor * s.dt
	anticipated := t.Pos.Add(t.Vel.Mul(lead))
	toAnticipated := anticipated.Sub(b.Pos)

	facing := Vec2{X: math.Cos(b.Angle), Y: math.Sin(b.Angle)}
	if facing.Angle(toAnticipated) >= th || dist >= AttackRange {
		return
	}
	if s.clock-c.lastShot <= EnemyCooldown {
		return
	}

	s.fireLaser(b, anticipated, toAnticipated.Heading())
	c.lastShot = s.clock
}

// Orient faces the direction of travel once the ship is moving
func (c *EnemyControl) Orient(_ *Simulation, b *Body) {
	if b.Vel.Magnitude() > FaceSpeedLimit {
		b.Angle = b.Vel.Heading()
	}
}

package game

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Physics constants
const (
	// TerminalVelocity caps each velocity component
	TerminalVelocity = 1400.0

	// GravityConstant scales every pairwise attraction
	GravityConstant = 100000.0

	// MinDistanceSq floors the squared separation used for gravity
	MinDistanceSq = 100.0

	// ThrustForce is the acceleration a controller can apply
	ThrustForce = 300.0

	// MaxThrustVelocity is the per-axis speed past which player thrust stops adding
	MaxThrustVelocity = 500.0

	// BoundsMargin keeps bodies one unit inside the world edge
	BoundsMargin = 1.0

	// EdgeRestitution is the fraction of speed kept (reversed) after hitting an edge or bouncing
	EdgeRestitution = 0.25
)

// Body defaults
const (
	DefaultMass   = 5.0
	DefaultHealth = 100.0

	ShipSize   = 40.0
	MeteorSize = 32.0
)

// Laser constants
const (
	LaserVelocity = 800.0
	LaserLifetime = 1.5 // seconds
	LaserDamage   = 10.0
	LaserWidth    = 16.0
	LaserHeight   = 4.0

	// MuzzleOffset is how far in front of the shooter a laser appears
	MuzzleOffset = 40.0
)

// Enemy behaviour constants
const (
	DangerRadius   = 500.0
	AttackRange    = 700.0
	EnemyCooldown  = 0.3 // seconds between shots
	LeadDivisor    = 20.0
	FaceSpeedLimit = 10.0
)

// World sizes
const (
	SmallWorld  = 5000.0
	MediumWorld = 7000.0
	LargeWorld  = 10000.0
)

// Grid cell sizes. Bigger cells see more neighbours per body.
const (
	LowQuality    = 600.0
	MediumQuality = 1000.0
	HighQuality   = 1500.0
)

// Difficulty selects a tier of the difficulty table
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// String returns the difficulty name
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// TierConfig holds the per-difficulty tuning values
type TierConfig struct {
	// EnemyCount is how many enemies are spawned
	EnemyCount int `json:"enemy_count"`

	// MeteorFrequency divides the world size to give the meteor count
	MeteorFrequency int `json:"meteor_frequency"`

	// HealthMultiplier scales enemy health
	HealthMultiplier float64 `json:"health_multiplier"`

	// DamageMultiplier scales damage taken by the player
	DamageMultiplier float64 `json:"damage_multiplier"`
}

// DefaultTiers returns the difficulty table
func DefaultTiers() map[Difficulty]TierConfig {
	return map[Difficulty]TierConfig{
		Easy:   {EnemyCount: 15, MeteorFrequency: 120, HealthMultiplier: 1, DamageMultiplier: 1},
		Medium: {EnemyCount: 30, MeteorFrequency: 70, HealthMultiplier: 1, DamageMultiplier: 2},
		Hard:   {EnemyCount: 60, MeteorFrequency: 10, HealthMultiplier: 1, DamageMultiplier: 3},
	}
}

// Config holds game configuration
type Config struct {
	// WorldSize is the side length of the square world
	WorldSize float64 `json:"world_size"`

	// CellSize is the side length of a grid cell
	CellSize float64 `json:"cell_size"`

	// Difficulty selects a row of Tiers
	Difficulty Difficulty `json:"difficulty"`

	// Seed drives field generation. Zero means time-seeded.
	Seed int64 `json:"seed"`

	// ScreenWidth is the window width in pixels
	ScreenWidth int `json:"screen_width"`

	// ScreenHeight is the window height in pixels
	ScreenHeight int `json:"screen_height"`

	// Tiers is the difficulty table
	Tiers map[Difficulty]TierConfig `json:"tiers"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		WorldSize:    MediumWorld,
		CellSize:     MediumQuality,
		Difficulty:   Easy,
		ScreenWidth:  1280,
		ScreenHeight: 720,
		Tiers:        DefaultTiers(),
	}
}

// Tier returns the tuning values for the configured difficulty
func (c Config) Tier() TierConfig {
	if t, ok := c.Tiers[c.Difficulty]; ok {
		return t
	}
	return DefaultTiers()[Easy]
}

// MeteorCount returns how many meteors a fresh field holds
func (c Config) MeteorCount() int {
	freq := c.Tier().MeteorFrequency
	if freq <= 0 {
		return 0
	}
	return int(c.WorldSize) / freq
}

// Validate checks that the configuration can build a world
func (c Config) Validate() error {
	if c.WorldSize <= 2*BoundsMargin {
		return fmt.Errorf("world size %.0f is too small", c.WorldSize)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %.0f", c.CellSize)
	}
	t, ok := c.Tiers[c.Difficulty]
	if !ok {
		return fmt.Errorf("no tier configured for difficulty %s", c.Difficulty)
	}
	if t.EnemyCount < 0 || t.MeteorFrequency <= 0 {
		return fmt.Errorf("tier %s needs a positive meteor frequency and enemy count, got %d / %d",
			c.Difficulty, t.MeteorFrequency, t.EnemyCount)
	}
	if t.HealthMultiplier <= 0 || t.DamageMultiplier <= 0 {
		return fmt.Errorf("tier %s multipliers must be positive, got %v / %v",
			c.Difficulty, t.HealthMultiplier, t.DamageMultiplier)
	}
	return nil
}

// LoadConfig reads a JSON file and overlays it on the defaults. Tier
// entries are merged field by field onto the default table.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var overlay struct {
		Tiers map[Difficulty]json.RawMessage `json:"tiers"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &overlay); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// Unmarshal replaced whole tier entries; rebuild them from the defaults
	cfg.Tiers = DefaultTiers()
	for d, raw := range overlay.Tiers {
		tier := cfg.Tiers[d]
		if err := json.Unmarshal(raw, &tier); err != nil {
			return cfg, fmt.Errorf("failed to parse tier %s in %s: %w", d, path, err)
		}
		cfg.Tiers[d] = tier
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseDifficulty converts a flag value to a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("unknown difficulty %q", s)
}

// ParseWorldSize converts a flag value to a world size
func ParseWorldSize(s string) (float64, error) {
	switch strings.ToLower(s) {
	case "small":
		return SmallWorld, nil
	case "medium":
		return MediumWorld, nil
	case "large":
		return LargeWorld, nil
	}
	return 0, fmt.Errorf("unknown world size %q", s)
}

// ParseQuality converts a flag value to a grid cell size
func ParseQuality(s string) (float64, error) {
	switch strings.ToLower(s) {
	case "low":
		return LowQuality, nil
	case "medium":
		return MediumQuality, nil
	case "high":
		return HighQuality, nil
	}
	return 0, fmt.Errorf("unknown quality %q", s)
}

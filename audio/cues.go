package audio

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"inertia/game"
)

const (
	sampleRate = beep.SampleRate(44100)

	laserDuration          = 120 * time.Millisecond
	smallExplosionDuration = 250 * time.Millisecond
	largeExplosionDuration = 700 * time.Millisecond

	// maxCuesPerBatch bounds how many sounds one drained event batch may start
	maxCuesPerBatch = 8
)

// Cues plays short procedural sounds for simulation events
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	seed        int64
}

// NewCues creates an uninitialized cue player. Play is a no-op until
// Initialize succeeds.
func NewCues() *Cues {
	return &Cues{
		mixer: &beep.Mixer{},
		seed:  time.Now().UnixNano(),
	}
}

// Initialize opens the speaker and starts the mixer
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// SetMuted silences or restores new cues
func (c *Cues) SetMuted(muted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = muted
}

// Close drops every playing sound
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// Play starts a sound for each event that has one
func (c *Cues) Play(events []game.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.muted || len(events) == 0 {
		return
	}

	started := 0
	speaker.Lock()
	defer speaker.Unlock()
	for _, e := range events {
		if started >= maxCuesPerBatch {
			return
		}
		s := c.streamerFor(e.Kind)
		if s == nil {
			continue
		}
		c.mixer.Add(s)
		started++
	}
}

// streamerFor builds the sound for an event kind, or nil if it is silent
func (c *Cues) streamerFor(kind game.EventKind) beep.Streamer {
	c.seed++
	switch kind {
	case game.EventLaserFired:
		return beep.Take(sampleRate.N(laserDuration), NewLaserGenerator(sampleRate))
	case game.EventSmallExplosion:
		return beep.Take(sampleRate.N(smallExplosionDuration), NewExplosionGenerator(sampleRate, false, c.seed))
	case game.EventLargeExplosion:
		return beep.Take(sampleRate.N(largeExplosionDuration), NewExplosionGenerator(sampleRate, true, c.seed))
	}
	return nil
}

// LaserGenerator produces a falling chirp
type LaserGenerator struct {
	sr    beep.SampleRate
	pos   int
	phase float64
}

// NewLaserGenerator creates a laser chirp generator
func NewLaserGenerator(sr beep.SampleRate) *LaserGenerator {
	return &LaserGenerator{sr: sr}
}

func (g *LaserGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 1400Hz falling to 400Hz across the cue
		freq := 400 + 1000*math.Exp(-t*25)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		envelope := math.Exp(-t * 18)
		sample := 0.2 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *LaserGenerator) Err() error {
	return nil
}

// ExplosionGenerator produces a noise burst over a low rumble
type ExplosionGenerator struct {
	sr    beep.SampleRate
	pos   int
	rng   *rand.Rand
	decay float64
	gain  float64
	low   float64
}

// NewExplosionGenerator creates an explosion generator. Large explosions
// ring longer and louder.
func NewExplosionGenerator(sr beep.SampleRate, large bool, seed int64) *ExplosionGenerator {
	g := &ExplosionGenerator{sr: sr, rng: rand.New(rand.NewSource(seed)), decay: 14, gain: 0.25}
	if large {
		g.decay = 5
		g.gain = 0.4
	}
	return g
}

func (g *ExplosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * g.decay)

		noise := g.rng.Float64()*2 - 1

		// One-pole low-pass for a duller boom
		g.low += 0.2 * (noise - g.low)
		rumble := 0.5 * math.Sin(2*math.Pi*55*t)

		sample := g.gain * envelope * (0.7*g.low + 0.3*rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ExplosionGenerator) Err() error {
	return nil
}

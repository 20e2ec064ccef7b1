package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"inertia/game"
)

// drain reads a streamer to the end and returns the left channel
func drain(s beep.Streamer) []float64 {
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
}

func energy(samples []float64) float64 {
	var sum float64
	for _, s := range samples {
		sum += s * s
	}
	return sum
}

func TestLaserGenerator(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(beep.Take(rate.N(laserDuration), NewLaserGenerator(rate)))

	if len(samples) != rate.N(laserDuration) {
		t.Fatalf("Expected %d samples, got %d", rate.N(laserDuration), len(samples))
	}
	for i, s := range samples {
		if math.IsNaN(s) || math.Abs(s) > 1 {
			t.Fatalf("Sample %d out of range: %f", i, s)
		}
	}

	quarter := len(samples) / 4
	if energy(samples[:quarter]) <= energy(samples[len(samples)-quarter:]) {
		t.Error("Expected the chirp to fade out")
	}
}

func TestExplosionGenerator(t *testing.T) {
	rate := beep.SampleRate(44100)
	n := rate.N(300 * time.Millisecond)

	small := drain(beep.Take(n, NewExplosionGenerator(rate, false, 7)))
	large := drain(beep.Take(n, NewExplosionGenerator(rate, true, 7)))

	for i := range small {
		if math.Abs(small[i]) > 1 || math.Abs(large[i]) > 1 {
			t.Fatalf("Sample %d out of range", i)
		}
	}

	tail := n / 3
	if energy(large[n-tail:]) <= energy(small[n-tail:]) {
		t.Error("Expected the large explosion to ring longer")
	}
}

func TestExplosionGeneratorDeterministic(t *testing.T) {
	rate := beep.SampleRate(44100)
	a := drain(beep.Take(1000, NewExplosionGenerator(rate, true, 99)))
	b := drain(beep.Take(1000, NewExplosionGenerator(rate, true, 99)))

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expected same seed to give same samples, differ at %d", i)
		}
	}

	c := drain(beep.Take(1000, NewExplosionGenerator(rate, true, 100)))
	same := 0
	for i := range a {
		if a[i] == c[i] {
			same++
		}
	}
	if same == len(a) {
		t.Error("Expected different seeds to give different noise")
	}
}

func TestStreamerFor(t *testing.T) {
	c := NewCues()

	tests := []struct {
		kind   game.EventKind
		silent bool
	}{
		{game.EventLaserFired, false},
		{game.EventSmallExplosion, false},
		{game.EventLargeExplosion, false},
		{game.EventGameOver, true},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := c.streamerFor(tt.kind) == nil; got != tt.silent {
				t.Errorf("Expected silent=%v, got %v", tt.silent, got)
			}
		})
	}
}

// Audio is optional; nothing may panic without a speaker
func TestCuesWithoutInitialization(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Cues panicked without initialization: %v", r)
		}
	}()

	c := NewCues()
	c.Play([]game.Event{{Kind: game.EventLaserFired}, {Kind: game.EventLargeExplosion}})
	c.SetMuted(true)
	c.Close()
}

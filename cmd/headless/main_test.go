package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"inertia/game"
)

func newRound(t *testing.T) *game.Simulation {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.Seed = 11
	sim, err := game.NewRound(cfg)
	if err != nil {
		t.Fatalf("NewRound failed: %v", err)
	}
	return sim
}

func TestRunRecordsEveryTick(t *testing.T) {
	sim := newRound(t)
	var buf bytes.Buffer

	sum, err := run(sim, options{ticks: 12, dt: 1.0 / 60.0, auditEvery: 5, theta: 0.5, threshold: 0.5}, &buf, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if sum.Ticks != 12 || sum.Recorded != 12 {
		t.Errorf("Expected 12 ticks recorded, got %d ticks %d recorded", sum.Ticks, sum.Recorded)
	}
	if sum.Audits != 2 {
		t.Errorf("Expected 2 audits, got %d", sum.Audits)
	}

	r := game.NewSnapshotReader(&buf)
	var last uint64
	n := 0
	for {
		snap, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		n++
		last = snap.Tick
	}
	if n != 12 || last != 12 {
		t.Errorf("Expected 12 snapshots ending at tick 12, got %d ending at %d", n, last)
	}
}

func TestRunStopsAtGameOver(t *testing.T) {
	sim := newRound(t)
	p := sim.Player()
	sim.SpawnBody(game.BodySpec{Kind: game.KindMeteor, Mass: 1000, Pos: p.Pos, Width: game.MeteorSize, Height: game.MeteorSize})

	sum, err := run(sim, options{ticks: 100, dt: 1.0 / 60.0}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Outcome != game.OutcomeLost {
		t.Errorf("Expected round lost, got %s", sum.Outcome)
	}
	if sum.Ticks >= 100 {
		t.Errorf("Expected early stop, ran %d ticks", sum.Ticks)
	}
	if sum.Recorded != 0 {
		t.Errorf("Expected nothing recorded without output, got %d", sum.Recorded)
	}
	if !strings.Contains(sum.String(), "outcome=lost") {
		t.Errorf("Unexpected summary %q", sum.String())
	}
}

func TestExecuteFinishesOutputs(t *testing.T) {
	dir := t.TempDir()
	profiler, err := game.NewProfiler(filepath.Join(dir, "profiles"), 0)
	if err != nil {
		t.Fatal(err)
	}
	profiler.SetCaptureDuration(30 * time.Millisecond)

	cfg := game.DefaultConfig()
	cfg.Seed = 3
	record := filepath.Join(dir, "run.msgpack")

	sum, err := execute(cfg, options{ticks: 30, dt: 1.0 / 60.0}, record, profiler)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if profiler.IsProfiling() {
		t.Error("Expected capture finished when execute returns")
	}
	cpu, _ := filepath.Glob(filepath.Join(dir, "profiles", "*.cpu.prof"))
	if len(cpu) != 1 {
		t.Errorf("Expected one CPU profile on disk, got %d", len(cpu))
	}

	f, err := os.Open(record)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	r := game.NewSnapshotReader(f)
	n := 0
	for {
		if _, err := r.Next(); err != nil {
			if !errors.Is(err, io.EOF) {
				t.Fatalf("Next failed: %v", err)
			}
			break
		}
		n++
	}
	if n != sum.Recorded || n != sum.Ticks {
		t.Errorf("Expected %d snapshots on disk, got %d", sum.Ticks, n)
	}
}

func TestExecuteBadRecordPath(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Seed = 3
	record := filepath.Join(t.TempDir(), "missing", "run.msgpack")

	if _, err := execute(cfg, options{ticks: 1, dt: 1.0 / 60.0}, record, nil); err == nil {
		t.Error("Expected error for an uncreatable recording")
	}
}

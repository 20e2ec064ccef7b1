// Command headless runs a round without a window at a fixed step, optionally
// recording snapshots and auditing the grid's gravity approximation.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"inertia/audit"
	"inertia/game"
)

type options struct {
	ticks      int
	dt         float64
	auditEvery int
	theta      float64
	threshold  float64
}

type summary struct {
	Ticks     int
	SimTime   float64
	Wall      time.Duration
	Outcome   game.Outcome
	Enemies   int
	Bodies    int
	Events    map[game.EventKind]int
	Recorded  int
	Audits    int
	WorstMean float64
}

func (s summary) String() string {
	return fmt.Sprintf("ticks=%d sim=%.2fs wall=%v outcome=%s enemies=%d bodies=%d lasers=%d explosions=%d recorded=%d audits=%d worst_mean_err=%.3f",
		s.Ticks, s.SimTime, s.Wall.Round(time.Millisecond), s.Outcome, s.Enemies, s.Bodies,
		s.Events[game.EventLaserFired],
		s.Events[game.EventSmallExplosion]+s.Events[game.EventLargeExplosion],
		s.Recorded, s.Audits, s.WorstMean)
}

func main() {
	var flags game.ConfigFlags
	flags.Register(flag.CommandLine)

	var opts options
	flag.IntVar(&opts.ticks, "ticks", 3600, "number of ticks to run")
	flag.Float64Var(&opts.dt, "dt", 1.0/60.0, "seconds per tick")
	flag.IntVar(&opts.auditEvery, "audit-every", 0, "run the gravity audit every N ticks (0 = off)")
	flag.Float64Var(&opts.theta, "theta", audit.DefaultTheta, "Barnes-Hut opening angle for the audit")
	flag.Float64Var(&opts.threshold, "threshold", audit.DefaultThreshold, "relative error counted as a miss")
	record := flag.String("record", "", "write msgpack snapshots to this file")
	profileDir := flag.String("profile", "", "capture CPU profiles of slow ticks into this directory")
	budget := flag.Duration("budget", 16*time.Millisecond, "tick duration that triggers a profile")
	captureFor := flag.Duration("capture", 5*time.Second, "length of each profile capture")
	flag.Parse()

	cfg, err := flags.Resolve()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if opts.ticks <= 0 || opts.dt <= 0 {
		fmt.Fprintln(os.Stderr, "ticks and dt must be positive")
		os.Exit(2)
	}

	var profiler *game.Profiler
	if *profileDir != "" {
		profiler, err = game.NewProfiler(*profileDir, *budget)
		if err != nil {
			log.Fatal(err)
		}
		profiler.SetCaptureDuration(*captureFor)
	}

	sum, err := execute(cfg, opts, *record, profiler)
	log.Println(sum)
	if err != nil {
		log.Fatal(err)
	}
}

// execute builds the round, runs it and finishes every output before
// returning: the recording is flushed and closed, and profile captures still
// in flight are waited for. record and profiler are optional.
func execute(cfg game.Config, opts options, record string, profiler *game.Profiler) (summary, error) {
	sim, err := game.NewRound(cfg)
	if err != nil {
		return summary{}, fmt.Errorf("failed to start round: %w", err)
	}

	var out io.Writer
	var f *os.File
	var bw *bufio.Writer
	if record != "" {
		f, err = os.Create(record)
		if err != nil {
			return summary{}, fmt.Errorf("failed to create recording: %w", err)
		}
		bw = bufio.NewWriter(f)
		out = bw
	}

	log.Printf("Running %d ticks: difficulty=%s world=%.0f cell=%.0f seed=%d",
		opts.ticks, cfg.Difficulty, cfg.WorldSize, cfg.CellSize, cfg.Seed)

	sum, runErr := run(sim, opts, out, profiler)

	if f != nil {
		flushErr := bw.Flush()
		closeErr := f.Close()
		if err := errors.Join(flushErr, closeErr); err != nil {
			return sum, fmt.Errorf("failed to write recording %s: %w", record, err)
		}
	}

	if profiler != nil {
		if profiler.IsProfiling() {
			log.Printf("Waiting for profile capture to finish")
		}
		profiler.Wait()
	}

	return sum, runErr
}

// run steps sim until the tick count is reached or the round ends.
// out and profiler may be nil.
func run(sim *game.Simulation, opts options, out io.Writer, profiler *game.Profiler) (summary, error) {
	sum := summary{Events: make(map[game.EventKind]int)}
	start := time.Now()

	var rec *game.SnapshotWriter
	if out != nil {
		rec = game.NewSnapshotWriter(out)
	}

	finish := func() summary {
		snap := sim.Snapshot()
		sum.SimTime = snap.Time
		sum.Outcome = snap.Outcome
		sum.Enemies = snap.EnemiesRemaining
		sum.Bodies = len(snap.Bodies)
		sum.Wall = time.Since(start)
		if rec != nil {
			sum.Recorded = rec.Count()
		}
		return sum
	}

	for sum.Ticks < opts.ticks {
		tickStart := time.Now()
		sim.Tick(opts.dt)
		if profiler != nil {
			profiler.Observe(time.Since(tickStart))
		}
		sum.Ticks++

		for _, e := range sim.DrainEvents() {
			sum.Events[e.Kind]++
		}

		if rec != nil {
			if err := rec.Write(sim.Snapshot()); err != nil {
				return finish(), err
			}
		}

		if opts.auditEvery > 0 && sum.Ticks%opts.auditEvery == 0 {
			report, err := audit.Run(sim, opts.theta, opts.threshold)
			if err != nil {
				return finish(), err
			}
			sum.Audits++
			sum.WorstMean = max(sum.WorstMean, report.MeanRelError)
			log.Println(report)
		}

		if sim.GameOver() {
			break
		}
	}

	return finish(), nil
}

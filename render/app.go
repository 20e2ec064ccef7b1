package render

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"inertia/game"
)

// EventSink receives the events drained after each tick
type EventSink interface {
	Play(events []game.Event)
}

// App adapts a simulation round to ebiten.Game
type App struct {
	cfg  game.Config
	sim  *game.Simulation
	snap *game.Snapshot

	timer    *game.TickTimer
	camera   *Camera
	renderer *Renderer
	debug    DebugState

	sink     EventSink
	profiler *game.Profiler

	paused bool

	// readInput is swapped out by tests
	readInput func() InputState
}

// NewApp builds the first round. sink and profiler may be nil.
func NewApp(cfg game.Config, sink EventSink, profiler *game.Profiler) (*App, error) {
	a := &App{
		cfg:       cfg,
		timer:     game.NewTickTimer(nil),
		camera:    NewCamera(float64(cfg.ScreenWidth), float64(cfg.ScreenHeight)),
		sink:      sink,
		profiler:  profiler,
		readInput: ReadInput,
	}
	a.renderer = NewRenderer(a.camera, &a.debug)

	if err := a.restart(); err != nil {
		return nil, err
	}
	return a, nil
}

// Simulation returns the round in progress
func (a *App) Simulation() *game.Simulation {
	return a.sim
}

// Paused reports whether the tick loop is paused
func (a *App) Paused() bool {
	return a.paused
}

func (a *App) restart() error {
	sim, err := game.NewRound(a.cfg)
	if err != nil {
		return fmt.Errorf("failed to start round: %w", err)
	}
	a.sim = sim
	a.snap = sim.Snapshot()
	a.paused = false
	a.timer.Start()
	log.Printf("New round: %s difficulty, world %.0f, %d bodies", a.cfg.Difficulty, a.cfg.WorldSize, len(a.snap.Bodies))
	return nil
}

// Update reads input and advances the simulation by the time since the last frame
func (a *App) Update() error {
	if err := a.handleInput(a.readInput()); err != nil {
		return err
	}
	a.step(a.timer.Lap())
	return nil
}

// handleInput applies one frame of input to the round
func (a *App) handleInput(in InputState) error {
	if in.ToggleDebug {
		a.debug.Toggle()
	}

	if a.sim.GameOver() {
		if in.Restart {
			return a.restart()
		}
		return nil
	}

	if in.TogglePause {
		a.paused = !a.paused
		if a.paused {
			a.timer.Pause()
		} else {
			a.timer.Resume()
		}
	}
	if a.paused {
		return nil
	}

	wx, wy := a.camera.ScreenToWorld(in.AimX, in.AimY)
	a.sim.Aim(game.Vec2{X: wx, Y: wy})
	a.sim.SetThrust(in.Thrust)
	if in.Fire {
		a.sim.Fire()
	}
	return nil
}

// step ticks the round and refreshes the snapshot the next Draw uses
func (a *App) step(dt float64) {
	if a.paused || dt <= 0 {
		return
	}

	start := time.Now()
	a.sim.Tick(dt)
	if a.profiler != nil {
		a.profiler.Observe(time.Since(start))
	}

	if events := a.sim.DrainEvents(); a.sink != nil && len(events) > 0 {
		a.sink.Play(events)
	}

	a.snap = a.sim.Snapshot()
	a.renderer.SetTrail(a.sim.PredictPath(trailSteps, trailStep))
	a.renderer.Update(dt, a.snap)
}

// Draw renders the latest snapshot
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Render(screen, a.snap, a.paused)
}

// Layout returns the configured screen size
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.ScreenWidth, a.cfg.ScreenHeight
}

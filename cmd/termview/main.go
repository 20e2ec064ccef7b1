// Command termview plays a round in the terminal. The whole world is
// downscaled onto the screen.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"inertia/game"
)

// Distance ahead of the player used as the aim point for arrow keys
const aimReach = 500

type session struct {
	cfg    game.Config
	screen tcell.Screen
	sim    *game.Simulation
	timer  *game.TickTimer

	heading float64
	thrust  bool
	paused  bool
}

func main() {
	var flags game.ConfigFlags
	flags.Register(flag.CommandLine)
	fps := flag.Int("fps", 30, "redraw rate")
	flag.Parse()

	cfg, err := flags.Resolve()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	screen.SetStyle(styleDefault)

	s := &session{cfg: cfg, screen: screen}
	if err := s.restart(); err != nil {
		screen.Fini()
		log.Fatalf("Failed to start round: %v", err)
	}

	err = s.run(time.Second / time.Duration(max(*fps, 1)))
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}

func (s *session) restart() error {
	sim, err := game.NewRound(s.cfg)
	if err != nil {
		return err
	}
	s.sim = sim
	s.timer = game.NewTickTimer(game.SystemTime{})
	s.timer.Start()
	s.heading = 0
	s.thrust = false
	s.paused = false
	return nil
}

func (s *session) run(frame time.Duration) error {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				quit, err := s.handleKey(ev)
				if err != nil || quit {
					return err
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}

		case <-ticker.C:
			dt := s.timer.Lap()
			if dt > 0 {
				s.sim.Tick(dt)
			}
			// No audio in the terminal
			s.sim.DrainEvents()
			drawSnapshot(s.screen, s.sim.Snapshot(), s.paused)
		}
	}
}

func (s *session) handleKey(ev *tcell.EventKey) (bool, error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyUp:
		s.turn(-math.Pi / 2)
	case tcell.KeyDown:
		s.turn(math.Pi / 2)
	case tcell.KeyLeft:
		s.turn(math.Pi)
	case tcell.KeyRight:
		s.turn(0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true, nil
		case 'r':
			if s.sim.GameOver() {
				return false, s.restart()
			}
		case 'p':
			if s.sim.GameOver() {
				break
			}
			s.paused = !s.paused
			if s.paused {
				s.timer.Pause()
			} else {
				s.timer.Resume()
			}
		case ' ':
			if !s.paused && !s.sim.GameOver() {
				s.thrust = !s.thrust
				s.sim.SetThrust(s.thrust)
			}
		case 'f':
			if !s.paused && !s.sim.GameOver() {
				s.sim.Fire()
			}
		}
	}
	return false, nil
}

// turn points the player's aim in a fixed direction
func (s *session) turn(heading float64) {
	if s.paused || s.sim.GameOver() {
		return
	}
	p := s.sim.Player()
	if p == nil {
		return
	}
	s.heading = heading
	s.sim.Aim(game.Vec2{
		X: p.Pos.X + math.Cos(heading)*aimReach,
		Y: p.Pos.Y + math.Sin(heading)*aimReach,
	})
}

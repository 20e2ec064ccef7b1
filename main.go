package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"inertia/audio"
	"inertia/game"
	"inertia/render"
)

func main() {
	var flags game.ConfigFlags
	flags.Register(flag.CommandLine)
	mute := flag.Bool("mute", false, "start with sound muted")
	profileDir := flag.String("profile", "", "capture CPU profiles of slow ticks into this directory")
	budget := flag.Duration("budget", 16*time.Millisecond, "tick duration that triggers a profile")
	flag.Parse()

	config, err := flags.Resolve()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cues := audio.NewCues()
	if err := cues.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	cues.SetMuted(*mute)
	defer cues.Close()

	var profiler *game.Profiler
	if *profileDir != "" {
		profiler, err = game.NewProfiler(*profileDir, *budget)
		if err != nil {
			log.Fatal(err)
		}
	}

	app, err := render.NewApp(config, cues, profiler)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Inertia")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
	if profiler != nil {
		profiler.Wait()
	}
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/iburimskiy/fireworks/internal/fireworks"
	"github.com/iburimskiy/fireworks/internal/game"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Uint64("seed", 0, "random seed (0 = time based)")
	debug := flag.Bool("debug", false, "show FPS and firework counts")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fatal(err)
		}
		cfg = loaded
		log.Printf("[Config] Loaded %s", *configPath)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	palette, err := cfg.ParsePalette()
	if err != nil {
		fatal(err)
	}

	sim := fireworks.NewSimulation(fireworks.NewSource(cfg.Seed), fireworks.Options{
		SpawnChance: cfg.SpawnChance,
		TrailAlpha:  cfg.TrailAlpha,
		Palette:     palette,
	})
	log.Printf("[Game] Starting %dx%d, seed %d", cfg.Window.Width, cfg.Window.Height, cfg.Seed)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.NewGame(sim, cfg.Window.Width, cfg.Window.Height, *debug)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
}

// fatal reports err in a native dialog before exiting.
func fatal(err error) {
	if dlgErr := zenity.Error(fmt.Sprintf("Fireworks failed to start:\n%v", err),
		zenity.Title("Fireworks"),
		zenity.ErrorIcon,
	); dlgErr != nil {
		log.Printf("[Game] Could not show error dialog: %v", dlgErr)
	}
	log.Fatal(err)
}

//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"forest-ca/internal/app"
	"forest-ca/internal/core"
	_ "forest-ca/internal/sims/forest"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	sim := factory(nil)

	interval := time.Duration(cfg.TickMS) * time.Millisecond
	sched, err := core.NewScheduler(sim, interval, cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, sched, cfg.Scale, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("forest-ca — " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

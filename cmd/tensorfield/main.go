//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"tensor-field/internal/app"
	"tensor-field/internal/core"
	"tensor-field/internal/logging"
	_ "tensor-field/internal/sims/tensorfield"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	logging.Init(cfg.Logging())

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %v)", cfg.Sim, core.SimNames())
	}
	sim, err := factory(cfg.SimConfig())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("tensor-field: " + sim.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"eca/internal/app"
	"eca/internal/config"
	"eca/internal/elementary"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	settings, err := config.Load(cfg.ConfigPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	engine := elementary.NewEngine(settings.Engine.Limits)

	game, err := app.New(engine, cfg)
	if err != nil {
		log.Fatalf("viewer: %v", err)
	}
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("eca — elementary cellular automata")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

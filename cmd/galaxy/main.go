//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"galaxy/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Params().Validate(); err != nil {
		log.Fatal(err)
	}

	game, err := app.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowTitle("galaxy")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

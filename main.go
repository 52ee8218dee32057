package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/juggler/config"
)

func main() {
	cfg, err := config.Load("juggler", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Pro Juggler")

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := runGame(game, func() error { return ebiten.RunGame(game) }); err != nil {
		log.Fatal(err)
	}
}

// runGame runs the game loop and always closes the game before returning,
// so a failed loop still stops the simulation before the process exits.
func runGame(game interface{ Close() }, run func() error) error {
	defer game.Close()
	return run()
}

package main

import (
	"log"

	"cubewire"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := cubewire.DefaultConfig()

	ebiten.SetWindowSize(int(cfg.DisplayWidth), int(cfg.DisplayHeight))
	ebiten.SetWindowTitle("cubewire")
	if err := ebiten.RunGame(cubewire.NewGame(cfg)); err != nil {
		log.Fatal(err)
	}
}

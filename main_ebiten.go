//go:build ebiten && !sdl2

package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ushitora-anqou/handmade/constant"
	"github.com/ushitora-anqou/handmade/game"
	"github.com/ushitora-anqou/handmade/window"
)

var errQuit = errors.New("quit")

type Game struct {
	handmade *game.Handmade
	wind     *window.EbitenWindow
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return constant.BACKBUFFER_WIDTH, constant.BACKBUFFER_HEIGHT
}

func (g *Game) Update() error {
	quit, event := g.wind.HandleEvents()
	if quit {
		return errQuit
	}
	if err := g.handmade.Update(event); err != nil {
		return err
	}
	return g.wind.UpdateScreen(g.handmade.Buffer())
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.ReplacePixels(g.wind.Pixels())
}

func run() error {
	if err := window.EbitenInitialize(); err != nil {
		return err
	}

	wind, err := window.NewEbitenWindow()
	if err != nil {
		return err
	}
	defer wind.Close()

	g := &Game{
		handmade: game.NewHandmade(wind.SoundOutput()),
		wind:     wind,
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return saveScreenshot(g.handmade)
}

func fatal(err error) {
	log.Fatal(err)
}

// Package ebitenview is an alternative live viewer built on ebiten. It
// consumes the same event stream as the SDL window.
package ebitenview

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"uk.ac.bris.cs/golengine/gol"
)

// Game implements ebiten.Game. Every screen pixel is one cell.
type Game struct {
	events <-chan gol.Event
	width  int
	height int
	pixels []byte
	turns  int
}

func NewGame(p gol.Params, events <-chan gol.Event) *Game {
	return &Game{
		events: events,
		width:  p.ImageWidth,
		height: p.ImageHeight,
		pixels: make([]byte, p.ImageWidth*p.ImageHeight*4),
	}
}

// Update applies queued events up to and including the next TurnComplete so
// each frame shows a whole generation.
func (g *Game) Update() error {
	for {
		select {
		case event, ok := <-g.events:
			if !ok {
				return ebiten.Termination
			}
			switch e := event.(type) {
			case gol.CellFlipped:
				g.flip(e.Cell.X, e.Cell.Y)
			case gol.TurnComplete:
				g.turns = e.CompletedTurns
				return nil
			default:
				if len(event.String()) > 0 {
					fmt.Printf("Completed Turns %-8v%v\n", event.GetCompletedTurns(), event)
				}
			}
		default:
			return nil
		}
	}
}

func (g *Game) flip(x, y int) {
	i := (y*g.width + x) * 4
	g.pixels[i+0] = ^g.pixels[i+0]
	g.pixels[i+1] = ^g.pixels[i+1]
	g.pixels[i+2] = ^g.pixels[i+2]
	g.pixels[i+3] = 0xFF
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.pixels)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until the event stream ends or the window
// is closed. Remaining events are drained so the simulation never blocks.
func Run(p gol.Params, events <-chan gol.Event) error {
	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(scale(p.ImageWidth), scale(p.ImageHeight))
	err := ebiten.RunGame(NewGame(p, events))
	for range events {
	}
	return err
}

func scale(n int) int {
	for n < 256 {
		n *= 2
	}
	return n
}

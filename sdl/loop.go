package sdl

import (
	"fmt"

	"uk.ac.bris.cs/golengine/gol"
)

// Run draws events on a window until the events channel is closed. It must be
// called from the main OS thread. Closing the window stops drawing but keeps
// draining events so the simulation is never blocked.
func Run(p gol.Params, events <-chan gol.Event) {
	w := NewWindow(int32(p.ImageWidth), int32(p.ImageHeight))
	open := true
	defer func() {
		if open {
			w.Destroy()
		}
	}()

	for event := range events {
		if open && w.PollEvent() {
			w.Destroy()
			open = false
		}
		switch e := event.(type) {
		case gol.CellFlipped:
			if open {
				w.FlipPixel(e.Cell.X, e.Cell.Y)
			}
		case gol.TurnComplete:
			if open {
				w.RenderFrame()
			}
		default:
			if len(event.String()) > 0 {
				fmt.Printf("Completed Turns %-8v%v\n", event.GetCompletedTurns(), event)
			}
		}
	}
}

package game

import (
	"log"

	"github.com/bedekelly/handmade/shared"
)

// Dispatcher applies events to the gradient state and the surface.
type Dispatcher struct {
	State   *shared.State
	Surface *Surface
}

// Dispatch handles a single event and reports whether the program
// should quit.
func (d *Dispatcher) Dispatch(event shared.Event) bool {
	switch ev := event.(type) {
	case shared.Quit:
		log.Println("Quitting program.")
		return true
	case shared.KeyDown:
		return d.keyDown(ev.Key)
	case shared.WindowResized:
		if err := d.Surface.Resize(ev.Width, ev.Height); err != nil {
			log.Printf("Window resize: %v", err)
		}
	case shared.WindowExposed:
		if err := d.Surface.Present(); err != nil {
			log.Printf("Window expose: %v", err)
		}
	default:
		// Key releases and anything else are ignored.
	}
	return false
}

// DispatchAll handles every event in the batch, even those after a
// quit, and reports whether any of them asked to quit.
func (d *Dispatcher) DispatchAll(events []shared.Event) bool {
	quit := false
	for _, ev := range events {
		if d.Dispatch(ev) {
			quit = true
		}
	}
	return quit
}

func (d *Dispatcher) keyDown(key shared.Key) bool {
	switch key {
	case 'q':
		log.Println("Quitting program.")
		return true
	case 'w':
		d.State.YOffset++
	case 's':
		d.State.YOffset--
	case 'a':
		d.State.XOffset++
	case 'd':
		d.State.XOffset--
	}
	return false
}

package engine

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/bedekelly/handmade/shared"
)

// Input drains the SDL event queue. It implements game.EventSource.
type Input struct{}

// PollEvent returns the next event the game understands, skipping the
// rest, or nil once the SDL queue is empty.
func (Input) PollEvent() shared.Event {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if ev, ok := Translate(event); ok {
			return ev
		}
	}
	return nil
}

// Translate converts an SDL event into a game event.
func Translate(event sdl.Event) (shared.Event, bool) {
	switch ev := event.(type) {
	case *sdl.QuitEvent:
		return shared.Quit{}, true
	case *sdl.KeyboardEvent:
		key := shared.Key(ev.Keysym.Sym)
		switch ev.Type {
		case sdl.KEYDOWN:
			return shared.KeyDown{Key: key}, true
		case sdl.KEYUP:
			return shared.KeyUp{Key: key}, true
		}
	case *sdl.WindowEvent:
		switch ev.Event {
		case sdl.WINDOWEVENT_RESIZED:
			return shared.WindowResized{Width: int(ev.Data1), Height: int(ev.Data2)}, true
		case sdl.WINDOWEVENT_EXPOSED:
			return shared.WindowExposed{}, true
		}
	}
	return nil, false
}

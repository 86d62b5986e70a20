package shared

// Key is a character key code. SDL keycodes for printable keys are the
// lowercase character itself.
type Key rune

// Event is one input or window event taken off the platform queue.
type Event interface {
	event()
}

// Quit is sent when the window is closed.
type Quit struct{}

// KeyDown is a key press, including auto-repeats.
type KeyDown struct {
	Key Key
}

// KeyUp is a key release.
type KeyUp struct {
	Key Key
}

// WindowResized carries the new client size of the window.
type WindowResized struct {
	Width, Height int
}

// WindowExposed asks for the window contents to be shown again.
type WindowExposed struct{}

func (Quit) event()          {}
func (KeyDown) event()       {}
func (KeyUp) event()         {}
func (WindowResized) event() {}
func (WindowExposed) event() {}

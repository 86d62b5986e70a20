package shared

// State contains the scroll position of the gradient. The dispatcher
// writes it and the frame loop reads it when rendering.
type State struct {
	XOffset int
	YOffset int
}

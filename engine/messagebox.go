package engine

import (
	"log"

	"github.com/veandco/go-sdl2/sdl"
)

// ShowMessageBox shows a modal information box with no parent window and
// blocks until it is dismissed. Failing to show it is not fatal.
func ShowMessageBox(title, text string) {
	if err := sdl.ShowSimpleMessageBox(sdl.MESSAGEBOX_INFORMATION, title, text, nil); err != nil {
		log.Printf("Message box: %v", err)
	}
}

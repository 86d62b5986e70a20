package engine

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// InitError is returned when SDL itself fails to start.
type InitError struct {
	Code int
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("Error code: %d: %v", e.Code, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// CreateError is returned when the window or renderer cannot be created.
type CreateError struct {
	Resource string
	Err      error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("Something's gone wrong with creating a %s.\n%v", e.Resource, e.Err)
}

func (e *CreateError) Unwrap() error { return e.Err }

type Engine struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Running  bool
}

func NewEngine(cfg Config) (*Engine, error) {
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		// go-sdl2 only surfaces SDL_Init's failure as an error; SDL
		// itself returns -1.
		return nil, &InitError{Code: -1, Err: err}
	}

	if cfg.MessageBox {
		ShowMessageBox(cfg.Title, "This is "+cfg.Title)
	}

	window, err := sdl.CreateWindow(cfg.Title,
		int32(sdl.WINDOWPOS_UNDEFINED),
		int32(sdl.WINDOWPOS_UNDEFINED),
		cfg.Width, cfg.Height, windowFlags(cfg))
	if err != nil {
		sdl.Quit()
		return nil, &CreateError{Resource: "window", Err: err}
	}

	// First driver that supports no particular flags.
	renderer, err := sdl.CreateRenderer(window, -1, 0)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, &CreateError{Resource: "renderer", Err: err}
	}

	return &Engine{
		Window:   window,
		Renderer: renderer,
		Running:  true,
	}, nil
}

func windowFlags(cfg Config) uint32 {
	var flags uint32
	if cfg.Resizable {
		flags |= uint32(sdl.WINDOW_RESIZABLE)
	}
	if cfg.Borderless {
		flags |= uint32(sdl.WINDOW_BORDERLESS)
	}
	return flags
}

// Size returns the current size of the window's client area.
func (e *Engine) Size() (width, height int) {
	w, h := e.Window.GetSize()
	return int(w), int(h)
}

func (e *Engine) Shutdown() {
	e.Running = false
	if e.Renderer != nil {
		e.Renderer.Destroy()
	}
	if e.Window != nil {
		e.Window.Destroy()
	}
	sdl.Quit()
}

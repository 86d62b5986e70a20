package engine

import (
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/bedekelly/handmade/game"
)

// Display streams textures to a renderer. It implements game.Device.
type Display struct {
	Renderer *sdl.Renderer
	// Caption is drawn in the top left corner on every present.
	Caption string
}

func NewDisplay(renderer *sdl.Renderer) *Display {
	return &Display{Renderer: renderer}
}

// CreateTexture allocates a streaming ARGB8888 texture.
func (d *Display) CreateTexture(width, height int) (game.Texture, error) {
	tex, err := d.Renderer.CreateTexture(
		uint32(sdl.PIXELFORMAT_ARGB8888),
		sdl.TEXTUREACCESS_STREAMING,
		int32(width), int32(height))
	if err != nil {
		return nil, err
	}
	return &streamingTexture{tex: tex}, nil
}

// Present stretches the texture over the whole window and shows it.
func (d *Display) Present(t game.Texture) error {
	st, ok := t.(*streamingTexture)
	if !ok {
		return game.ErrNotReady
	}
	if err := d.Renderer.Copy(st.tex, nil, nil); err != nil {
		return err
	}
	if d.Caption != "" {
		gfx.StringRGBA(d.Renderer, 8, 8, d.Caption, 255, 255, 255, 255)
	}
	d.Renderer.Present()
	return nil
}

type streamingTexture struct {
	tex *sdl.Texture
}

// Lock is write-only: the returned pixels are not the previous contents.
func (t *streamingTexture) Lock() ([]byte, int, error) {
	return t.tex.Lock(nil)
}

func (t *streamingTexture) Unlock() {
	t.tex.Unlock()
}

func (t *streamingTexture) Destroy() error {
	return t.tex.Destroy()
}

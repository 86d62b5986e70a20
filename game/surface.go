package game

import (
	"errors"
	"fmt"
)

// ErrNotReady is returned when the surface has no texture to draw into
// or present, e.g. after a failed resize.
var ErrNotReady = errors.New("surface has no texture")

// Texture is a lockable block of pixel memory owned by the platform.
type Texture interface {
	// Lock gives write access to the pixels and returns the row pitch
	// in bytes. The slice is only valid until Unlock.
	Lock() ([]byte, int, error)
	Unlock()
	Destroy() error
}

// Device creates textures and shows them in the window.
type Device interface {
	CreateTexture(width, height int) (Texture, error)
	Present(t Texture) error
}

// Surface is the offscreen buffer the gradient is drawn into before it
// is copied to the window.
type Surface struct {
	Width  int
	Height int
	Pitch  int

	device  Device
	texture Texture
}

func NewSurface(device Device) *Surface {
	return &Surface{device: device}
}

// Resize drops the current texture and allocates a new one of exactly
// width by height, even when the size has not changed. If allocation
// fails the surface is left without a texture until the next
// successful resize. A failure to destroy the old texture does not stop
// the new one being created; it is still reported.
func (s *Surface) Resize(width, height int) error {
	released := s.Release()
	s.Width = width
	s.Height = height
	s.Pitch = 0

	if width <= 0 || height <= 0 {
		return fmt.Errorf("resize surface to %dx%d: invalid size", width, height)
	}
	tex, err := s.device.CreateTexture(width, height)
	if err != nil {
		return fmt.Errorf("resize surface to %dx%d: %w", width, height, err)
	}
	s.texture = tex
	return released
}

// Ready reports whether the surface holds a texture.
func (s *Surface) Ready() bool {
	return s.texture != nil
}

// Draw locks the texture, hands its pixels to fn and unlocks it again,
// publishing whatever fn wrote.
func (s *Surface) Draw(fn func(pixels []byte, pitch int)) error {
	if s.texture == nil {
		return ErrNotReady
	}
	pixels, pitch, err := s.texture.Lock()
	if err != nil {
		return fmt.Errorf("lock texture: %w", err)
	}
	defer s.texture.Unlock()

	if len(pixels) < s.Height*pitch || pitch < s.Width*4 {
		return fmt.Errorf("lock texture: %d bytes with pitch %d too small for %dx%d",
			len(pixels), pitch, s.Width, s.Height)
	}
	s.Pitch = pitch
	fn(pixels, pitch)
	return nil
}

// Present shows the last published contents of the surface.
func (s *Surface) Present() error {
	if s.texture == nil {
		return ErrNotReady
	}
	return s.device.Present(s.texture)
}

// Release destroys the texture, if any.
func (s *Surface) Release() error {
	if s.texture == nil {
		return nil
	}
	tex := s.texture
	s.texture = nil
	if err := tex.Destroy(); err != nil {
		return fmt.Errorf("destroy texture: %w", err)
	}
	return nil
}

package game

import (
	"errors"

	"github.com/bedekelly/handmade/shared"
)

type fakeTexture struct {
	width, height int
	pitch         int
	pixels        []byte
	locked        bool
	locks         int
	destroyed     bool
}

func (t *fakeTexture) Lock() ([]byte, int, error) {
	if t.locked {
		return nil, 0, errors.New("already locked")
	}
	t.locked = true
	t.locks++
	return t.pixels, t.pitch, nil
}

func (t *fakeTexture) Unlock() { t.locked = false }

func (t *fakeTexture) Destroy() error {
	t.destroyed = true
	return nil
}

func (t *fakeTexture) pixel(x, y int) []byte {
	i := y*t.pitch + x*4
	return t.pixels[i : i+4]
}

// fakeDevice hands out textures with rows padded by padding bytes and a
// guard region after the last row.
type fakeDevice struct {
	padding  int
	guard    int
	fail     error
	textures []*fakeTexture
	presents []*fakeTexture
}

const guardByte = 0xAB

func (d *fakeDevice) CreateTexture(width, height int) (Texture, error) {
	if d.fail != nil {
		return nil, d.fail
	}
	pitch := width*4 + d.padding
	buf := make([]byte, height*pitch+d.guard)
	for i := range buf {
		buf[i] = guardByte
	}
	t := &fakeTexture{width: width, height: height, pitch: pitch, pixels: buf}
	d.textures = append(d.textures, t)
	return t, nil
}

func (d *fakeDevice) Present(t Texture) error {
	d.presents = append(d.presents, t.(*fakeTexture))
	return nil
}

func (d *fakeDevice) last() *fakeTexture {
	return d.textures[len(d.textures)-1]
}

type fakeEvents struct {
	current []shared.Event
}

func (e *fakeEvents) PollEvent() shared.Event {
	if len(e.current) == 0 {
		return nil
	}
	ev := e.current[0]
	e.current = e.current[1:]
	return ev
}

func (e *fakeEvents) queue(events ...shared.Event) {
	e.current = append(e.current, events...)
}

type fakeClock struct {
	now  uint64
	freq uint64
	tick uint64
}

func (c *fakeClock) Counter() uint64 {
	c.now += c.tick
	return c.now
}

func (c *fakeClock) Frequency() uint64 { return c.freq }

var errBadSize = errors.New("texture too large")

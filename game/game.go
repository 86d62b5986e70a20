package game

import (
	"fmt"
	"io"
	"log"

	"github.com/bedekelly/handmade/shared"
)

// EventSource hands out pending events one at a time and returns nil
// once the queue is empty.
type EventSource interface {
	PollEvent() shared.Event
}

// Clock is a high resolution tick counter.
type Clock interface {
	Counter() uint64
	Frequency() uint64
}

// FrameStats describes how long the last frame took.
type FrameStats struct {
	Elapsed    uint64 // clock ticks since the previous frame
	MsPerFrame float64
	FPS        float64
}

// String formats the stats the way they are shown in the window.
func (s FrameStats) String() string {
	return fmt.Sprintf("%.3f ms  %.1f fps", s.MsPerFrame, s.FPS)
}

// Game represents the running program: its state, the surface it draws
// into and where its events and timings come from.
type Game struct {
	Events  EventSource
	Surface *Surface
	State   shared.State
	Clock   Clock

	// Out receives the per-frame timing report. Nil discards it.
	Out io.Writer

	// OnFrame, if set, is called with each frame's timings.
	OnFrame func(FrameStats)

	lastCounter uint64
	started     bool
	batch       []shared.Event
}

func NewGame(events EventSource, surface *Surface, clock Clock, out io.Writer) *Game {
	return &Game{
		Events:  events,
		Surface: surface,
		Clock:   clock,
		Out:     out,
	}
}

// Run steps the game until it is asked to quit.
func (g *Game) Run() {
	for g.Step() {
	}
}

// Step runs one frame: drain events, draw the gradient, present it and
// report the frame time. It returns false once a quit was requested, in
// which case nothing is drawn.
func (g *Game) Step() bool {
	if !g.started {
		g.lastCounter = g.Clock.Counter()
		g.started = true
	}
	d := Dispatcher{State: &g.State, Surface: g.Surface}

	g.batch = g.batch[:0]
	for ev := g.Events.PollEvent(); ev != nil; ev = g.Events.PollEvent() {
		g.batch = append(g.batch, ev)
	}
	if d.DispatchAll(g.batch) {
		return false
	}

	if g.Surface.Ready() {
		err := g.Surface.Draw(func(pixels []byte, pitch int) {
			RenderGradient(pixels, g.Surface.Width, g.Surface.Height, pitch, g.State.XOffset, g.State.YOffset)
		})
		if err != nil {
			log.Printf("Render: %v", err)
		} else if err := g.Surface.Present(); err != nil {
			log.Printf("Present: %v", err)
		}
	}

	g.report()
	return true
}

func (g *Game) report() {
	now := g.Clock.Counter()
	stats := frameStats(now-g.lastCounter, g.Clock.Frequency())
	g.lastCounter = now

	if g.Out != nil {
		fmt.Fprintf(g.Out, "Frame rendered in %.3fms.\n", stats.MsPerFrame)
		fmt.Fprintf(g.Out, "That's %.1ffps to you and me.\n", stats.FPS)
	}
	if g.OnFrame != nil {
		g.OnFrame(stats)
	}
}

func frameStats(elapsed, freq uint64) FrameStats {
	s := FrameStats{Elapsed: elapsed}
	if freq > 0 {
		s.MsPerFrame = 1000 * float64(elapsed) / float64(freq)
	}
	if elapsed > 0 {
		s.FPS = float64(freq) / float64(elapsed)
	}
	return s
}

package engine

import "github.com/veandco/go-sdl2/sdl"

// PerfClock reads SDL's high resolution performance counter.
type PerfClock struct{}

func (PerfClock) Counter() uint64   { return sdl.GetPerformanceCounter() }
func (PerfClock) Frequency() uint64 { return sdl.GetPerformanceFrequency() }

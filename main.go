package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/bedekelly/handmade/engine"
	"github.com/bedekelly/handmade/game"
)

func init() {
	// SDL video calls must stay on the thread that initialised it.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	eng, err := engine.NewEngine(engine.DefaultConfig())
	if err != nil {
		var initErr *engine.InitError
		if errors.As(err, &initErr) {
			fmt.Println(initErr)
			return initErr.Code
		}
		fmt.Println(err)
		return -1
	}
	defer eng.Shutdown()

	display := engine.NewDisplay(eng.Renderer)
	surface := game.NewSurface(display)
	defer func() {
		if err := surface.Release(); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	}()

	// No resize event arrives at startup, so size the surface to the
	// window by hand.
	width, height := eng.Size()
	if err := surface.Resize(width, height); err != nil {
		log.Printf("Initial resize: %v", err)
	}

	g := game.NewGame(engine.Input{}, surface, engine.PerfClock{}, os.Stdout)
	g.OnFrame = func(s game.FrameStats) {
		display.Caption = s.String()
	}
	g.Run()
	return 0
}

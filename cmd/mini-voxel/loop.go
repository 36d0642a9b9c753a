package main

import (
	"log"
	"time"

	"mini-voxel/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// slowFrame is the frame time above which the profiler's top entries are logged.
const slowFrame = 50 * time.Millisecond

func (a *app) run() {
	last := time.Now()
	for !a.window.ShouldClose() {
		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		a.tick(dt)

		if d := time.Since(now); d > slowFrame {
			log.Printf("slow frame %.1fms (render %.1fms, %d cubes): %s",
				ms(d), ms(profiling.SumWithPrefix("renderer.")), a.blocks.Drawn, profiling.TopN(4))
		}
		frames.Add(1)
		a.limiter.Wait()
	}
}

func (a *app) tick(dt float64) {
	profiling.ResetFrame()

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	in := a.input.Poll(a.window)
	if in.Quit {
		a.window.SetShouldClose(true)
	}

	a.session.Update(in, dt)
	a.renderer.Render(a.session, dt)

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

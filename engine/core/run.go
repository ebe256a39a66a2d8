package core

import (
	"log"
	"runtime"
	"time"
)

// tick is the fixed update step.
const tick = time.Second / 60

// Run wires the platform window + renderer and executes the main loop:
// poll input, clear, draw, swap.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	// window owns the context; the renderer shuts down first
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{Window: win, Renderer: rend, Input: NewInput(), start: time.Now()}
	win.SetEventCallback(func(ev Event) { handleEvent(eng, app, ev) })

	app.OnStart(eng)

	var (
		accum   time.Duration
		prev    = time.Now()
		clear   = cfg.ClearColor
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()
		processInput(eng.Input, win)

		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.update(eng, dt)
			accum -= tick
			steps++
		}
		alpha := float64(accum) / float64(tick)

		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		eng.Layers.render(eng, alpha)
		app.OnRender(eng, alpha)

		win.SwapBuffers()
	}

	app.OnShutdown(eng)
	eng.Layers.Clear(eng)
	log.Println("Engine exit")
	return nil
}

func handleEvent(eng *Engine, app App, ev Event) {
	switch e := ev.(type) {
	case EventResize:
		// Minimized windows report 0x0.
		if e.W > 0 && e.H > 0 {
			fw, fh := eng.Window.FramebufferSize()
			if fw > 0 && fh > 0 {
				eng.Renderer.Resize(fw, fh)
			}
		}
	case EventCloseRequested:
		eng.Window.RequestClose()
	}
	eng.Input.Handle(ev)
	if eng.Layers.dispatch(eng, ev) {
		return
	}
	app.OnEvent(eng, ev)
}

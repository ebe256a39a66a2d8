// Command window opens a GL 3.3 core window and clears it every frame.
// Escape closes it.
package main

import (
	"log"

	"github.com/hubastard/firstgl/engine/core"
	"github.com/hubastard/firstgl/engine/platform"
)

type App struct{}

func (a *App) OnStart(e *core.Engine)                 {}
func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event)  {}
func (a *App) OnShutdown(e *core.Engine)              {}

func main() {
	cfg, err := platform.LoadConfig("firstgl.toml", "Hello Window")
	if err != nil {
		log.Fatal(err)
	}
	if err := platform.RunGL(&App{}, cfg, nil); err != nil {
		log.Fatal(err)
	}
}

// Command shaderfile draws a triangle whose shaders are read from
// assets/shaders/basic.{vert,frag} when present, falling back to the copies
// embedded in the binary. Space toggles the green pulse, W inverts the
// colour, A and D slide the triangle.
package main

import (
	"embed"
	"log"
	"math"
	"os"

	"github.com/hubastard/firstgl/engine/assets"
	"github.com/hubastard/firstgl/engine/colors"
	"github.com/hubastard/firstgl/engine/core"
	glbackend "github.com/hubastard/firstgl/engine/gfx/gl"
	"github.com/hubastard/firstgl/engine/platform"
)

//go:embed shaders/*.vert shaders/*.frag
var embedded embed.FS

var vertices = []float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

// shaderSource prefers the on-disk asset so shaders can be edited without
// rebuilding.
func shaderSource(name string) assets.Source {
	disk := assets.LoadShader(name)
	if _, err := os.Stat(disk.Name()); err == nil {
		return disk
	}
	return assets.FS(embedded, "shaders/"+name)
}

type App struct {
	r       *glbackend.RendererGL
	program *glbackend.ShaderProgram
	mesh    *glbackend.Mesh

	pulse   bool
	invert  bool
	offset  float32
	elapsed float64
}

func (a *App) OnStart(e *core.Engine) {
	a.program = a.r.Program(shaderSource("basic.vert"), shaderSource("basic.frag"))
	if err := a.program.Err(); err != nil {
		log.Printf("basic shader unusable, drawing will be blank: %v", err)
	}
	a.mesh = a.r.Mesh(vertices)
	a.pulse = true

	a.program.Use()
	base := colors.Orange.Vec4()
	a.program.SetVec4("baseColor", &base)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.elapsed += dt
	const speed = 0.75
	if e.Input.IsKeyDown(core.KeyA) {
		a.offset -= float32(speed * dt)
	}
	if e.Input.IsKeyDown(core.KeyD) {
		a.offset += float32(speed * dt)
	}
	a.offset = max(-0.5, min(0.5, a.offset))
}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	green := float32(math.Sin(a.elapsed*2)/2 + 0.5)

	var invert int32
	if a.invert {
		invert = 1
	}

	a.program.Use()
	a.program.SetFloat("greenValue", green)
	a.program.SetFloat("xOffset", a.offset)
	a.program.SetBool("pulse", a.pulse)
	a.program.SetInt("invert", invert)
	a.r.Draw(a.program, a.mesh)
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down {
		return
	}
	switch k.Key {
	case core.KeySpace:
		a.pulse = !a.pulse
	case core.KeyW:
		a.invert = !a.invert
	}
}

func (a *App) OnShutdown(e *core.Engine) {}

func main() {
	cfg, err := platform.LoadConfig("firstgl.toml", "Shaders from files")
	if err != nil {
		log.Fatal(err)
	}
	app := &App{}
	if err := platform.RunGL(app, cfg, func(r *glbackend.RendererGL) { app.r = r }); err != nil {
		log.Fatal(err)
	}
}

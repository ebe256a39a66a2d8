// Command triangle draws one orange triangle from shader sources compiled
// into the binary.
package main

import (
	"log"

	"github.com/hubastard/firstgl/engine/assets"
	"github.com/hubastard/firstgl/engine/core"
	glbackend "github.com/hubastard/firstgl/engine/gfx/gl"
	"github.com/hubastard/firstgl/engine/platform"
)

const vertexSource = `#version 330 core
layout (location = 0) in vec3 aPos;
void main()
{
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const fragmentSource = `#version 330 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0f, 0.5f, 0.2f, 1.0f);
}
`

var vertices = []float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

type App struct {
	r       *glbackend.RendererGL
	program *glbackend.ShaderProgram
	mesh    *glbackend.Mesh
}

func (a *App) OnStart(e *core.Engine) {
	a.program = a.r.Program(
		assets.String("triangle.vert", vertexSource),
		assets.String("triangle.frag", fragmentSource),
	)
	a.mesh = a.r.Mesh(vertices)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	a.r.Draw(a.program, a.mesh)
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {}
func (a *App) OnShutdown(e *core.Engine)             {}

func main() {
	cfg, err := platform.LoadConfig("firstgl.toml", "Hello Triangle")
	if err != nil {
		log.Fatal(err)
	}
	app := &App{}
	if err := platform.RunGL(app, cfg, func(r *glbackend.RendererGL) { app.r = r }); err != nil {
		log.Fatal(err)
	}
}

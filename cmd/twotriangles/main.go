// Command twotriangles draws two triangles side by side, each with its own
// program: both share the vertex stage, one fragment stage is orange and
// the other yellow.
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

const defaultFragSource = `#version 330 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0f, 0.5f, 0.2f, 1.0f);
}
`

const yellowFragSource = `#version 330 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0f, 1.0f, 0.0f, 1.0f);
}
`

var (
	firstTriangle = []float32{
		-1.0, -0.5, 0.0,
		0.0, -0.5, 0.0,
		-0.5, 0.5, 0.0,
	}
	secondTriangle = []float32{
		0.0, -0.5, 0.0,
		1.0, -0.5, 0.0,
		0.5, 0.5, 0.0,
	}
)

// triangleLayer draws one mesh with one program.
type triangleLayer struct {
	r       *glbackend.RendererGL
	program *glbackend.ShaderProgram
	mesh    *glbackend.Mesh
}

func (l *triangleLayer) OnAttach(e *core.Engine)             {}
func (l *triangleLayer) OnDetach(e *core.Engine)             {}
func (l *triangleLayer) OnUpdate(e *core.Engine, dt float64) {}
func (l *triangleLayer) OnRender(e *core.Engine, alpha float64) {
	l.r.Draw(l.program, l.mesh)
}
func (l *triangleLayer) OnEvent(e *core.Engine, ev core.Event) bool { return false }

type App struct {
	r *glbackend.RendererGL
}

func (a *App) OnStart(e *core.Engine) {
	vs := assets.String("shared.vert", vertexSource)

	for _, t := range []struct {
		frag  assets.Source
		verts []float32
	}{
		{assets.String("default.frag", defaultFragSource), firstTriangle},
		{assets.String("yellow.frag", yellowFragSource), secondTriangle},
	} {
		sp := a.r.Program(vs, t.frag)
		if err := sp.Err(); err != nil {
			log.Printf("%s: program %d did not link", t.frag.Name(), sp.ID())
		}
		e.Layers.Push(e, &triangleLayer{r: a.r, program: sp, mesh: a.r.Mesh(t.verts)})
	}
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event)  {}
func (a *App) OnShutdown(e *core.Engine)              {}

func main() {
	cfg, err := platform.LoadConfig("firstgl.toml", "And then I saw her face")
	if err != nil {
		log.Fatal(err)
	}
	app := &App{}
	if err := platform.RunGL(app, cfg, func(r *glbackend.RendererGL) { app.r = r }); err != nil {
		log.Fatal(err)
	}
}

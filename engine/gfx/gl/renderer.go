package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/firstgl/engine/assets"
	"github.com/hubastard/firstgl/engine/core"
)

var _ core.Renderer = (*RendererGL)(nil)

// RendererGL owns the driver and every GL object created through it, and
// releases them on Shutdown.
type RendererGL struct {
	drv      Driver
	programs []*ShaderProgram
	meshes   []*Mesh
}

// NewRendererGL expects the window's context to be current and loaded.
func NewRendererGL(_ core.Window, _ core.Config) (*RendererGL, error) {
	return &RendererGL{drv: NewDriver()}, nil
}

// Driver returns the context handle used for shader programs.
func (r *RendererGL) Driver() Driver { return r.drv }

// Program builds a shader program and keeps it for Shutdown.
func (r *RendererGL) Program(vertex, fragment assets.Source, opts ...Option) *ShaderProgram {
	sp := NewShaderProgram(r.drv, vertex, fragment, opts...)
	r.programs = append(r.programs, sp)
	return sp
}

// Mesh uploads positions and keeps the buffers for Shutdown.
func (r *RendererGL) Mesh(positions []float32) *Mesh {
	m := NewMesh(positions)
	r.meshes = append(r.meshes, m)
	return m
}

// Draw makes sp current and draws m with it.
func (r *RendererGL) Draw(sp *ShaderProgram, m *Mesh) {
	sp.Use()
	m.Draw()
}

func (r *RendererGL) Shutdown() {
	for _, sp := range r.programs {
		sp.Delete()
	}
	for _, m := range r.meshes {
		m.Delete()
	}
	r.programs, r.meshes = nil, nil
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

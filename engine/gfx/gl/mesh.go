package glbackend

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Mesh is static, non-indexed triangle geometry: tightly packed vec3
// positions bound to attribute location 0.
type Mesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

// NewMesh uploads positions (x, y, z per vertex) with GL_STATIC_DRAW.
func NewMesh(positions []float32) *Mesh {
	m := &Mesh{count: int32(len(positions) / 3)}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)

	// layout(location = 0) in vec3 aPos;
	const stride = 3 * 4 // bytes
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

// Count returns the number of vertices.
func (m *Mesh) Count() int32 { return m.count }

func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}

func (m *Mesh) Delete() {
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}

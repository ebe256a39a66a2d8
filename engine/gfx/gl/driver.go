package glbackend

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Stage identifies a programmable pipeline stage.
type Stage int

const (
	StageVertex Stage = iota + 1
	StageFragment
)

// String returns the tag used in diagnostics.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "VERTEX"
	case StageFragment:
		return "FRAGMENT"
	default:
		return "UNKNOWN"
	}
}

// GL returns the shader type enum for glCreateShader.
func (s Stage) GL() uint32 {
	switch s {
	case StageVertex:
		return gl.VERTEX_SHADER
	case StageFragment:
		return gl.FRAGMENT_SHADER
	default:
		return 0
	}
}

// Driver is the slice of the GL API the shader loader and renderer need.
// Every method must be called on the thread that owns the current context.
type Driver interface {
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32, bufSize int32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32, bufSize int32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform3fv(location int32, v *[3]float32)
	Uniform4fv(location int32, v *[4]float32)
	UniformMatrix4fv(location int32, m *[4][4]float32)
}

// glDriver forwards to the go-gl bindings. gl.Init must have run.
type glDriver struct{}

// NewDriver returns the Driver backed by the current OpenGL context.
func NewDriver() Driver { return glDriver{} }

func (glDriver) CreateShader(stage Stage) uint32 { return gl.CreateShader(stage.GL()) }

func (glDriver) ShaderSource(shader uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csrc, nil)
}

func (glDriver) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (glDriver) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (glDriver) ShaderInfoLog(shader uint32, bufSize int32) string {
	return infoLog(bufSize, func(n int32, buf *uint8) { gl.GetShaderInfoLog(shader, n, nil, buf) })
}

func (glDriver) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (glDriver) CreateProgram() uint32               { return gl.CreateProgram() }
func (glDriver) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (glDriver) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }
func (glDriver) LinkProgram(program uint32)          { gl.LinkProgram(program) }

func (glDriver) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (glDriver) ProgramInfoLog(program uint32, bufSize int32) string {
	return infoLog(bufSize, func(n int32, buf *uint8) { gl.GetProgramInfoLog(program, n, nil, buf) })
}

func (glDriver) DeleteProgram(program uint32) { gl.DeleteProgram(program) }
func (glDriver) UseProgram(program uint32)    { gl.UseProgram(program) }

func (glDriver) UniformLocation(program uint32, name string) int32 {
	cname, free := gl.Strs(name + "\x00")
	defer free()
	return gl.GetUniformLocation(program, *cname)
}

func (glDriver) Uniform1i(location int32, v int32)   { gl.Uniform1i(location, v) }
func (glDriver) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }

func (glDriver) Uniform3fv(location int32, v *[3]float32) { gl.Uniform3fv(location, 1, &v[0]) }
func (glDriver) Uniform4fv(location int32, v *[4]float32) { gl.Uniform4fv(location, 1, &v[0]) }

func (glDriver) UniformMatrix4fv(location int32, m *[4][4]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0][0])
}

func infoLog(bufSize int32, fetch func(int32, *uint8)) string {
	if bufSize <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(bufSize))
	buf := gl.Str(log)
	fetch(bufSize, buf)
	return gl.GoStr(buf)
}

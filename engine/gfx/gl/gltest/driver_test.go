package gltest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	glbackend "github.com/hubastard/firstgl/engine/gfx/gl"
)

func compile(d *Driver, stage glbackend.Stage, src string) uint32 {
	sh := d.CreateShader(stage)
	d.ShaderSource(sh, src)
	d.CompileShader(sh)
	return sh
}

func TestCompileRules(t *testing.T) {
	cases := []struct {
		name string
		src  string
		ok   bool
	}{
		{"valid", "#version 330 core\nvoid main() { }\n", true},
		{"empty", "   \n", false},
		{"no version", "void main() { }", false},
		{"open brace", "#version 330 core\nvoid main() {\n", false},
		{"stray paren", "#version 330 core\nvoid main()) { }", false},
		{"no main", "#version 330 core\nout vec4 c;\n", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDriver()
			sh := compile(d, glbackend.StageVertex, tc.src)
			assert.Equal(t, tc.ok, d.ShaderCompiled(sh))
			if tc.ok {
				assert.Empty(t, d.ShaderInfoLog(sh, 1024))
			} else {
				assert.Contains(t, d.ShaderInfoLog(sh, 1024), "ERROR")
			}
		})
	}
}

func TestDeleteAttachedShaderIsDeferred(t *testing.T) {
	d := NewDriver()
	vs := compile(d, glbackend.StageVertex, "#version 330 core\nvoid main() { }")
	fs := compile(d, glbackend.StageFragment, "#version 330 core\nvoid main() { }")
	prog := d.CreateProgram()
	d.AttachShader(prog, vs)
	d.AttachShader(prog, fs)
	d.LinkProgram(prog)
	require.True(t, d.ProgramLinked(prog))

	d.DeleteShader(vs)
	assert.Equal(t, 2, d.LiveShaders())

	d.DetachShader(prog, vs)
	assert.Equal(t, 1, d.LiveShaders())

	d.DeleteShader(fs)
	d.DeleteProgram(prog)
	assert.Zero(t, d.LiveShaders())
	assert.Zero(t, d.LivePrograms())
}

func TestLinkNeedsBothStages(t *testing.T) {
	d := NewDriver()
	vs := compile(d, glbackend.StageVertex, "#version 330 core\nvoid main() { }")
	prog := d.CreateProgram()
	d.AttachShader(prog, vs)
	d.LinkProgram(prog)

	assert.False(t, d.ProgramLinked(prog))
	assert.Contains(t, d.ProgramInfoLog(prog, 1024), "ERROR")
	assert.Equal(t, int32(-1), d.UniformLocation(prog, "anything"))
}

func TestUniformLocations(t *testing.T) {
	d := NewDriver()
	vs := compile(d, glbackend.StageVertex, "#version 330 core\nuniform mat4 model;\nvoid main() { }")
	fs := compile(d, glbackend.StageFragment, "#version 330 core\nuniform vec4 color;\nvoid main() { }")
	prog := d.CreateProgram()
	d.AttachShader(prog, vs)
	d.AttachShader(prog, fs)
	d.LinkProgram(prog)
	require.True(t, d.ProgramLinked(prog))

	assert.Equal(t, int32(0), d.UniformLocation(prog, "color"))
	assert.Equal(t, int32(1), d.UniformLocation(prog, "model"))
	assert.Equal(t, int32(-1), d.UniformLocation(prog, "missing"))

	// Writes without a current program are dropped.
	d.Uniform1f(0, 1)
	assert.Equal(t, 1, d.DroppedWrites)

	d.UseProgram(prog)
	d.Uniform4fv(0, &[4]float32{1, 0, 0, 1})
	v, ok := d.Uniform(prog, "color")
	require.True(t, ok)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, v)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", truncate("abc", 0))
	assert.Equal(t, "ab", truncate("abc", 3))
	assert.Equal(t, "abc", truncate("abc", 4))
}

package assets

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vert = "#version 330 core\nvoid main() { gl_Position = vec4(0.0); }\n"

func TestStringSource(t *testing.T) {
	src := String("inline.vert", vert+"\x00")
	assert.Equal(t, "inline.vert", src.Name())

	text, err := src.Load()
	require.NoError(t, err)
	assert.Equal(t, vert, text)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shader.vert")
	require.NoError(t, os.WriteFile(path, []byte(vert), 0o644))

	text, err := File(path).Load()
	require.NoError(t, err)
	assert.Equal(t, vert, text)
}

func TestFileSourceMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.frag")

	text, err := File(path).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.frag")
	assert.Empty(t, text)
}

func TestFSSource(t *testing.T) {
	fsys := fstest.MapFS{
		"shaders/basic.frag": &fstest.MapFile{Data: []byte("frag")},
	}

	text, err := FS(fsys, "shaders/basic.frag").Load()
	require.NoError(t, err)
	assert.Equal(t, "frag", text)

	_, err = FS(fsys, "shaders/none.frag").Load()
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadShaderPath(t *testing.T) {
	assert.Equal(t, filepath.Join("assets", "shaders", "basic.vert"), LoadShader("basic.vert").Name())
}

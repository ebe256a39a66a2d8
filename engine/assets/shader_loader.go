package assets

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Source yields the text of one shader stage.
type Source interface {
	Name() string
	Load() (string, error)
}

type stringSource struct{ name, text string }

// String wraps shader text embedded in the program.
func String(name, text string) Source { return stringSource{name: name, text: text} }

func (s stringSource) Name() string          { return s.name }
func (s stringSource) Load() (string, error) { return trimNul(s.text), nil }

type fileSource struct{ path string }

// File reads shader text from a path on disk.
func File(path string) Source { return fileSource{path: path} }

func (s fileSource) Name() string { return s.path }

func (s fileSource) Load() (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", s.path, err)
	}
	return trimNul(string(b)), nil
}

type fsSource struct {
	fsys fs.FS
	path string
}

// FS reads shader text from fsys, typically an embed.FS.
func FS(fsys fs.FS, path string) Source { return fsSource{fsys: fsys, path: path} }

func (s fsSource) Name() string { return s.path }

func (s fsSource) Load() (string, error) {
	b, err := fs.ReadFile(s.fsys, s.path)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", s.path, err)
	}
	return trimNul(string(b)), nil
}

// LoadShader returns the source for assets/shaders/<name>.
func LoadShader(name string) Source {
	return File(filepath.Join("assets", "shaders", name))
}

// The driver appends its own terminator, so trailing NULs from C-style
// literals are dropped here.
func trimNul(s string) string { return strings.TrimRight(s, "\x00") }

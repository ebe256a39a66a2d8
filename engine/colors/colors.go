package colors

import "github.com/bloeys/gglm/gglm"

type Color [4]float32

var (
	White  = Color{1, 1, 1, 1}
	Black  = Color{0, 0, 0, 1}
	Red    = Color{1, 0, 0, 1}
	Green  = Color{0, 1, 0, 1}
	Blue   = Color{0, 0, 1, 1}
	Yellow = Color{1, 1, 0, 1}
	Orange = Color{1, 0.5, 0.2, 1}
	// Teal is the clear color used by every exercise.
	Teal = Color{0.2, 0.3, 0.3, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Vec4 converts c for ShaderProgram.SetVec4.
func (c Color) Vec4() gglm.Vec4 { return gglm.Vec4{Data: c} }

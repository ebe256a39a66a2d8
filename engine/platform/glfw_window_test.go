package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/hubastard/firstgl/engine/core"
)

func TestTranslateKey(t *testing.T) {
	assert.Equal(t, core.KeyEscape, translateKey(glfw.KeyEscape))
	assert.Equal(t, core.KeyD, translateKey(glfw.KeyD))
	assert.Equal(t, core.KeyUnknown, translateKey(glfw.KeyF1))
}

func TestTranslateMods(t *testing.T) {
	assert.Equal(t, core.ModNone, translateMods(0))
	assert.Equal(t, core.ModShift|core.ModSuper, translateMods(glfw.ModShift|glfw.ModSuper))
	assert.Equal(t, core.ModCtrl|core.ModAlt, translateMods(glfw.ModControl|glfw.ModAlt))
}

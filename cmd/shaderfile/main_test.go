package main

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	glbackend "github.com/hubastard/firstgl/engine/gfx/gl"
	"github.com/hubastard/firstgl/engine/gfx/gl/gltest"
)

func TestEmbeddedShadersLink(t *testing.T) {
	drv := gltest.NewDriver()
	var out bytes.Buffer

	sp := glbackend.NewShaderProgram(drv, shaderSource("basic.vert"), shaderSource("basic.frag"),
		glbackend.WithLogger(log.New(&out, "", 0)))
	require.True(t, sp.Valid(), out.String())
	assert.Empty(t, out.String())

	sp.Use()
	for _, name := range []string{"xOffset", "baseColor", "greenValue", "pulse", "invert"} {
		assert.NotEqual(t, int32(-1), drv.UniformLocation(sp.ID(), name), name)
	}

	sp.SetBool("pulse", true)
	v, ok := drv.Uniform(sp.ID(), "pulse")
	require.True(t, ok)
	assert.Equal(t, int32(1), v)
}

package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestNewSessionToken(t *testing.T) {
	t1, err := NewSessionToken()
	require.NoError(t, err)
	t2, err := NewSessionToken()
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2)
	assert.Equal(t, 32, len(t1), "24 bytes en base64 url sin padding")
	assert.NotContains(t, t1, "+")
	assert.NotContains(t, t1, "/")
	assert.NotContains(t, t1, "=")
}

func TestRenderQRPNG(t *testing.T) {
	token, err := NewSessionToken()
	require.NoError(t, err)

	png, err := RenderQRPNG(token, 256)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestRenderQRPNG_TamanoPorDefecto(t *testing.T) {
	png, err := RenderQRPNG("abc", 0)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))

	png, err = RenderQRPNG("abc", -10)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

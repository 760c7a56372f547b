package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRSVPPayloadIsDeterministic(t *testing.T) {
	a := BuildRSVPPayload(7, 42, "secret")
	b := BuildRSVPPayload(7, 42, "secret")
	assert.Equal(t, a, b)
	assert.Equal(t, "evt:7:gst:42:secret", a)

	// different token, different payload
	assert.NotEqual(t, a, BuildRSVPPayload(7, 42, "other"))
}

func TestBuildSharePayload(t *testing.T) {
	p := BuildSharePayload(7, "nonce-1")
	assert.Equal(t, "evt:7:share:nonce-1", p)
	assert.NotEqual(t, p, BuildSharePayload(7, "nonce-2"))
}

func TestRenderQRCode(t *testing.T) {
	dir := t.TempDir()

	path, err := RenderQRCode("evt:1:gst:2:secret", dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, ".png"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	// PNG magic
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])

	_, err = RenderQRCode("", dir)
	assert.Error(t, err)
}

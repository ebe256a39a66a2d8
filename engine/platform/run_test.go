package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigTitle(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "none.toml"), "Hello Window")
	require.NoError(t, err)
	assert.Equal(t, "Hello Window", cfg.Title)

	path := filepath.Join(dir, "firstgl.toml")
	require.NoError(t, os.WriteFile(path, []byte(`title = "Mine"`), 0o644))
	cfg, err = LoadConfig(path, "Hello Window")
	require.NoError(t, err)
	assert.Equal(t, "Mine", cfg.Title)
}

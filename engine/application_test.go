package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadApplicationConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadApplicationConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultApplicationConfig(), config)
}

func TestLoadApplicationConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
name = "Orbit"
start_width = 1920
start_height = 1080
log_level = "debug"
gravity = [0.0, -3.71, 0.0]
`), 0o644))

	config, err := LoadApplicationConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Orbit", config.Name)
	assert.Equal(t, uint32(1920), config.StartWidth)
	assert.Equal(t, uint32(1080), config.StartHeight)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, float32(-3.71), config.Gravity[1])
	// Untouched fields keep their defaults.
	assert.Equal(t, "assets", config.AssetDir)
	assert.Equal(t, uint32(100), config.StartPosX)
}

func TestLoadApplicationConfigRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = [oops"), 0o644))

	_, err := LoadApplicationConfig(path)
	assert.Error(t, err)
}

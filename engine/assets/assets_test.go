package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/kepler/engine/core"
	"github.com/spaghettifunk/kepler/engine/renderer/metadata"
)

func newTestManager(t *testing.T) (*AssetManager, string) {
	t.Helper()
	dir := t.TempDir()
	materialsDir := filepath.Join(dir, "materials")
	require.NoError(t, os.MkdirAll(materialsDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(materialsDir, "crate.toml"),
		[]byte("name = \"crate\"\nroughness = 0.8\n"),
		0o644,
	))

	am, err := NewAssetManager()
	require.NoError(t, err)
	require.NoError(t, am.Initialize(dir))
	t.Cleanup(func() { am.Shutdown() })
	return am, dir
}

func TestLoadAssetByRelativeName(t *testing.T) {
	am, _ := newTestManager(t)

	resource, err := am.LoadAsset(filepath.Join("materials", "crate.toml"), metadata.ResourceTypeMaterial, nil)
	require.NoError(t, err)

	config, ok := resource.Data.(*metadata.MaterialConfig)
	require.True(t, ok)
	assert.Equal(t, "crate", config.Name)
	assert.Equal(t, float32(0.8), config.Roughness)
}

func TestLoadAssetUnknownFile(t *testing.T) {
	am, _ := newTestManager(t)

	_, err := am.LoadAsset("materials/missing.toml", metadata.ResourceTypeMaterial, nil)
	assert.ErrorIs(t, err, core.ErrResourceNotFound)
}

func TestInitializeToleratesMissingDirectory(t *testing.T) {
	am, err := NewAssetManager()
	require.NoError(t, err)
	require.NoError(t, am.Initialize(filepath.Join(t.TempDir(), "nope")))
	require.NoError(t, am.Shutdown())
}

func TestWatcherPicksUpNewFile(t *testing.T) {
	am, dir := newTestManager(t)

	path := filepath.Join(dir, "materials", "wall.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = \"wall\"\n"), 0o644))

	select {
	case changed := <-am.Events:
		assert.Equal(t, path, changed)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher never reported the new file")
	}

	resource, err := am.LoadAsset(filepath.Join("materials", "wall.toml"), metadata.ResourceTypeMaterial, nil)
	require.NoError(t, err)
	assert.Equal(t, "wall", resource.Data.(*metadata.MaterialConfig).Name)
}

func TestShutdownIsIdempotent(t *testing.T) {
	am, _ := newTestManager(t)
	require.NoError(t, am.Shutdown())
	require.NoError(t, am.Shutdown())
}

func TestDetermineAssetType(t *testing.T) {
	assert.Equal(t, metadata.ResourceTypeImage, determineAssetType("textures/grass.png"))
	assert.Equal(t, metadata.ResourceTypeImage, determineAssetType("textures/dirt.jpg"))
	assert.Equal(t, metadata.ResourceTypeMaterial, determineAssetType("materials/crate.toml"))
	assert.Equal(t, metadata.ResourceTypeBitmapFont, determineAssetType("fonts/ubuntu.fnt"))
	assert.Equal(t, metadata.ResourceTypeText, determineAssetType("notes.txt"))
	assert.Equal(t, metadata.ResourceTypeNone, determineAssetType("archive.zip"))
}

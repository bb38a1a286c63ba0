package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/kepler/engine/core"
	"github.com/spaghettifunk/kepler/engine/renderer/metadata"
)

func TestBeginFrameBeforeInitializeIsBooting(t *testing.T) {
	backend := NewHeadlessBackend()
	assert.ErrorIs(t, backend.BeginFrame(0.016), core.ErrBackendBooting)
}

func TestFrameLifecycle(t *testing.T) {
	backend := NewHeadlessBackend()
	require.NoError(t, backend.Initialize("test", 800, 600))

	geometry, err := backend.CreateGeometry(metadata.GenerateCubeConfig(1, 1, 1, "cube", "default"))
	require.NoError(t, err)

	require.NoError(t, backend.BeginFrame(0.016))
	require.NoError(t, backend.DrawGeometry(&metadata.GeometryRenderData{Geometry: geometry}))
	require.NoError(t, backend.EndFrame(0.016))

	assert.Equal(t, uint64(1), backend.FrameNumber())
	assert.Equal(t, uint64(1), backend.DrawCount())
}

func TestDrawOutsideFrameFails(t *testing.T) {
	backend := NewHeadlessBackend()
	require.NoError(t, backend.Initialize("test", 800, 600))

	geometry, err := backend.CreateGeometry(metadata.GenerateCubeConfig(1, 1, 1, "cube", "default"))
	require.NoError(t, err)

	assert.Error(t, backend.DrawGeometry(&metadata.GeometryRenderData{Geometry: geometry}))
}

func TestDrawUnknownGeometryFails(t *testing.T) {
	backend := NewHeadlessBackend()
	require.NoError(t, backend.Initialize("test", 800, 600))
	require.NoError(t, backend.BeginFrame(0.016))

	stray := &metadata.Geometry{InternalID: 9999, Name: "stray"}
	assert.Error(t, backend.DrawGeometry(&metadata.GeometryRenderData{Geometry: stray}))
}

func TestEndFrameWithoutBeginFails(t *testing.T) {
	backend := NewHeadlessBackend()
	require.NoError(t, backend.Initialize("test", 800, 600))
	assert.Error(t, backend.EndFrame(0.016))
}

func TestCreateGeometryRequiresVertices(t *testing.T) {
	backend := NewHeadlessBackend()
	require.NoError(t, backend.Initialize("test", 800, 600))

	_, err := backend.CreateGeometry(nil)
	assert.Error(t, err)
	_, err = backend.CreateGeometry(&metadata.GeometryConfig{Name: "empty"})
	assert.Error(t, err)
}

func TestDestroyedGeometryCannotBeDrawn(t *testing.T) {
	backend := NewHeadlessBackend()
	require.NoError(t, backend.Initialize("test", 800, 600))

	geometry, err := backend.CreateGeometry(metadata.GenerateCubeConfig(1, 1, 1, "cube", "default"))
	require.NoError(t, err)
	backend.DestroyGeometry(geometry)

	require.NoError(t, backend.BeginFrame(0.016))
	assert.Error(t, backend.DrawGeometry(&metadata.GeometryRenderData{Geometry: geometry}))
}

func TestTextureCreateBumpsGeneration(t *testing.T) {
	backend := NewHeadlessBackend()
	texture := metadata.NewTexture("checker", 2, 2, 4)
	generation := texture.Generation

	require.NoError(t, backend.TextureCreate(texture.Pixels, texture))
	assert.Equal(t, generation+1, texture.Generation)
}

package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/kepler/engine/renderer/metadata"
)

func TestDrawFrameSkipsBootingBackend(t *testing.T) {
	backend := NewHeadlessBackend()
	r := NewRenderer(backend)

	err := r.DrawFrame(&metadata.RenderPacket{DeltaTime: 0.016})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), backend.FrameNumber())
}

func TestDrawFrameSubmitsEveryViewGeometry(t *testing.T) {
	backend := NewHeadlessBackend()
	r := NewRenderer(backend)
	require.NoError(t, r.Initialize("test", 800, 600))

	cube, err := r.CreateGeometry(metadata.GenerateCubeConfig(1, 1, 1, "cube", "default"))
	require.NoError(t, err)

	packet := &metadata.RenderPacket{
		DeltaTime: 0.016,
		Views: []*metadata.RenderViewPacket{
			{ViewName: "world", Geometries: []*metadata.GeometryRenderData{{Geometry: cube}}},
			{ViewName: "shadow", Geometries: []*metadata.GeometryRenderData{{Geometry: cube}}},
			nil,
		},
	}
	require.NoError(t, r.DrawFrame(packet))

	assert.Equal(t, uint64(1), backend.FrameNumber())
	assert.Equal(t, uint64(2), backend.DrawCount())
}

func TestNilBackendFallsBackToHeadless(t *testing.T) {
	r := NewRenderer(nil)
	require.NoError(t, r.Initialize("test", 800, 600))
	require.NoError(t, r.DrawFrame(&metadata.RenderPacket{DeltaTime: 0.016}))
	require.NoError(t, r.Shutdown())
}

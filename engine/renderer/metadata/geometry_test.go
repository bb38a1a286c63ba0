package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCubeConfigCounts(t *testing.T) {
	config := GenerateCubeConfig(2, 4, 6, "crate", "default")

	assert.Equal(t, uint32(24), config.VertexCount)
	assert.Equal(t, uint32(36), config.IndexCount)
	assert.Equal(t, "crate", config.Name)
	assert.Equal(t, "default", config.MaterialName)

	assert.Equal(t, float32(-1), config.MinExtents.X)
	assert.Equal(t, float32(-2), config.MinExtents.Y)
	assert.Equal(t, float32(-3), config.MinExtents.Z)
	assert.Equal(t, float32(1), config.MaxExtents.X)
	assert.Equal(t, float32(2), config.MaxExtents.Y)
	assert.Equal(t, float32(3), config.MaxExtents.Z)
}

func TestGenerateCubeConfigIndicesInRange(t *testing.T) {
	config := GenerateCubeConfig(1, 1, 1, "cube", "default")

	require.Len(t, config.Indices, 36)
	for _, index := range config.Indices {
		assert.Less(t, index, config.VertexCount)
	}
}

func TestGenerateCubeConfigNormalsAreUnitLength(t *testing.T) {
	config := GenerateCubeConfig(3, 3, 3, "cube", "default")

	for _, vertex := range config.Vertices {
		assert.InDelta(t, 1.0, float64(vertex.Normal.Length()), 1e-6)
	}
}

func TestGenerateCubeConfigZeroDimensionsDefaultToOne(t *testing.T) {
	config := GenerateCubeConfig(0, 0, 0, "cube", "default")

	assert.Equal(t, float32(-0.5), config.MinExtents.X)
	assert.Equal(t, float32(0.5), config.MaxExtents.Y)
}

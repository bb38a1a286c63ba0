package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/kepler/engine/renderer/metadata"
)

func writeMaterialFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "material.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMaterialLoaderParsesTOML(t *testing.T) {
	path := writeMaterialFile(t, `
name = "crate"
shader = "Shader.Builtin.World"
albedo = [0.7, 0.5, 0.3]
roughness = 0.8
metallic = 0.1
emissive = 0.0
`)

	loader := &MaterialLoader{}
	resource, err := loader.Load(path, metadata.ResourceTypeMaterial, nil)
	require.NoError(t, err)
	require.NotNil(t, resource)
	assert.Equal(t, metadata.ResourceTypeMaterial, resource.Type)

	config, ok := resource.Data.(*metadata.MaterialConfig)
	require.True(t, ok)
	assert.Equal(t, "crate", config.Name)
	assert.Equal(t, "Shader.Builtin.World", config.ShaderName)
	assert.Equal(t, float32(0.7), config.Albedo[0])
	assert.Equal(t, float32(0.8), config.Roughness)
	assert.Equal(t, float32(0.1), config.Metallic)
}

func TestMaterialLoaderRejectsMissingName(t *testing.T) {
	path := writeMaterialFile(t, `roughness = 0.5`)

	loader := &MaterialLoader{}
	_, err := loader.Load(path, metadata.ResourceTypeMaterial, nil)
	assert.Error(t, err)
}

func TestMaterialLoaderRejectsInvalidTOML(t *testing.T) {
	path := writeMaterialFile(t, `name = [broken`)

	loader := &MaterialLoader{}
	_, err := loader.Load(path, metadata.ResourceTypeMaterial, nil)
	assert.Error(t, err)
}

func TestMaterialLoaderUnloadClearsData(t *testing.T) {
	path := writeMaterialFile(t, `name = "crate"`)

	loader := &MaterialLoader{}
	resource, err := loader.Load(path, metadata.ResourceTypeMaterial, nil)
	require.NoError(t, err)

	require.NoError(t, loader.Unload(resource))
	assert.Nil(t, resource.Data)
	assert.Equal(t, uint64(0), resource.DataSize)
}

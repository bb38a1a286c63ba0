package renderer

import "github.com/spaghettifunk/kepler/engine/renderer/metadata"

// RendererBackend is the seam between the engine and a graphics API. The
// engine only talks to the backend through this interface; swapping the
// implementation changes how frames reach the screen, not how they are
// assembled.
type RendererBackend interface {
	Initialize(appName string, appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint16) error
	BeginFrame(deltaTime float64) error
	EndFrame(deltaTime float64) error
	CreateGeometry(config *metadata.GeometryConfig) (*metadata.Geometry, error)
	DestroyGeometry(geometry *metadata.Geometry)
	DrawGeometry(data *metadata.GeometryRenderData) error
	TextureCreate(pixels []uint8, texture *metadata.Texture) error
	TextureDestroy(texture *metadata.Texture)
}

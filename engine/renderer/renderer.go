package renderer

import (
	"github.com/spaghettifunk/kepler/engine/core"
	"github.com/spaghettifunk/kepler/engine/renderer/metadata"
)

// Renderer drives a RendererBackend through the frame lifecycle. It draws
// whatever the view system packed into the frame's RenderPacket and holds
// no scene state of its own.
type Renderer struct {
	backend RendererBackend
}

// NewRenderer wraps the given backend. A nil backend falls back to the
// headless one.
func NewRenderer(backend RendererBackend) *Renderer {
	if backend == nil {
		backend = NewHeadlessBackend()
	}
	return &Renderer{backend: backend}
}

func (r *Renderer) Initialize(appName string, appWidth, appHeight uint32) error {
	return r.backend.Initialize(appName, appWidth, appHeight)
}

func (r *Renderer) Shutdown() error {
	return r.backend.Shutdown()
}

func (r *Renderer) OnResize(width, height uint16) error {
	return r.backend.Resized(width, height)
}

// DrawFrame submits every view of the packet in order. A booting backend
// is not an error; the frame is simply skipped.
func (r *Renderer) DrawFrame(packet *metadata.RenderPacket) error {
	if err := r.backend.BeginFrame(packet.DeltaTime); err != nil {
		if err == core.ErrBackendBooting {
			return nil
		}
		core.LogError("begin frame failed: %s", err.Error())
		return err
	}

	for _, view := range packet.Views {
		if view == nil {
			continue
		}
		for _, data := range view.Geometries {
			if err := r.backend.DrawGeometry(data); err != nil {
				core.LogError("view '%s' draw failed: %s", view.ViewName, err.Error())
				return err
			}
		}
	}

	if err := r.backend.EndFrame(packet.DeltaTime); err != nil {
		core.LogError("end frame failed, application shutting down: %s", err.Error())
		return err
	}
	return nil
}

func (r *Renderer) CreateGeometry(config *metadata.GeometryConfig) (*metadata.Geometry, error) {
	return r.backend.CreateGeometry(config)
}

func (r *Renderer) DestroyGeometry(geometry *metadata.Geometry) {
	r.backend.DestroyGeometry(geometry)
}

func (r *Renderer) TextureCreate(pixels []uint8, texture *metadata.Texture) error {
	return r.backend.TextureCreate(pixels, texture)
}

func (r *Renderer) TextureDestroy(texture *metadata.Texture) {
	r.backend.TextureDestroy(texture)
}

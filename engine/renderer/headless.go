package renderer

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/kepler/engine/core"
	"github.com/spaghettifunk/kepler/engine/renderer/metadata"
)

// HeadlessBackend keeps uploaded resources in memory and counts draw
// calls without touching a graphics API. It is the default backend of the
// engine until a real one is registered, and what the tests run against.
type HeadlessBackend struct {
	mu          sync.Mutex
	initialized bool
	width       uint32
	height      uint32
	inFrame     bool
	frameNumber uint64
	drawCount   uint64
	geometries  map[uint32]*metadata.GeometryConfig
}

func NewHeadlessBackend() *HeadlessBackend {
	return &HeadlessBackend{
		geometries: make(map[uint32]*metadata.GeometryConfig),
	}
}

func (b *HeadlessBackend) Initialize(appName string, appWidth, appHeight uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.initialized = true
	b.width = appWidth
	b.height = appHeight
	core.LogInfo("headless render backend initialized for '%s' (%dx%d)", appName, appWidth, appHeight)
	return nil
}

func (b *HeadlessBackend) Shutdown() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id := range b.geometries {
		if err := core.IdentifierReleaseID(id); err != nil {
			core.LogWarn(err.Error())
		}
	}
	b.geometries = make(map[uint32]*metadata.GeometryConfig)
	b.initialized = false
	return nil
}

func (b *HeadlessBackend) Resized(width, height uint16) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.width = uint32(width)
	b.height = uint32(height)
	return nil
}

func (b *HeadlessBackend) BeginFrame(deltaTime float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.initialized {
		return core.ErrBackendBooting
	}
	b.inFrame = true
	return nil
}

func (b *HeadlessBackend) EndFrame(deltaTime float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.inFrame {
		return fmt.Errorf("end of frame without a matching begin")
	}
	b.inFrame = false
	b.frameNumber++
	return nil
}

func (b *HeadlessBackend) CreateGeometry(config *metadata.GeometryConfig) (*metadata.Geometry, error) {
	if config == nil || len(config.Vertices) == 0 {
		return nil, fmt.Errorf("geometry config has no vertices")
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	id := core.IdentifierAcquireNewID(config)
	b.geometries[id] = config

	return &metadata.Geometry{
		ID:          id,
		InternalID:  id,
		Generation:  0,
		Name:        config.Name,
		Center:      config.Center,
		VertexCount: config.VertexCount,
		IndexCount:  config.IndexCount,
	}, nil
}

func (b *HeadlessBackend) DestroyGeometry(geometry *metadata.Geometry) {
	if geometry == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.geometries, geometry.InternalID)
	if err := core.IdentifierReleaseID(geometry.InternalID); err != nil {
		core.LogWarn(err.Error())
	}
}

func (b *HeadlessBackend) DrawGeometry(data *metadata.GeometryRenderData) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.inFrame {
		return fmt.Errorf("draw outside of a frame")
	}
	if data == nil || data.Geometry == nil {
		return fmt.Errorf("draw with no geometry")
	}
	if _, ok := b.geometries[data.Geometry.InternalID]; !ok {
		return fmt.Errorf("geometry '%s' was never uploaded", data.Geometry.Name)
	}
	b.drawCount++
	return nil
}

func (b *HeadlessBackend) TextureCreate(pixels []uint8, texture *metadata.Texture) error {
	if texture == nil {
		return fmt.Errorf("texture is nil")
	}
	texture.Generation++
	return nil
}

func (b *HeadlessBackend) TextureDestroy(texture *metadata.Texture) {}

// DrawCount reports the number of successful draw calls since startup.
func (b *HeadlessBackend) DrawCount() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.drawCount
}

// FrameNumber reports the number of completed frames.
func (b *HeadlessBackend) FrameNumber() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frameNumber
}

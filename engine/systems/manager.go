package systems

import (
	"github.com/spaghettifunk/kepler/engine/ecs"
	"github.com/spaghettifunk/kepler/engine/math"
	"github.com/spaghettifunk/kepler/engine/renderer"
	"github.com/spaghettifunk/kepler/engine/renderer/components"
	"github.com/spaghettifunk/kepler/engine/renderer/metadata"
	"github.com/spaghettifunk/kepler/engine/renderer/views"
)

// SystemManager wires the rendering-side systems together and owns their
// lifecycle. The simulation side (registry, physics) lives on the engine.
type SystemManager struct {
	appName string
	width   uint32
	height  uint32

	RendererSystem   *renderer.Renderer
	CameraSystem     *CameraSystem
	RenderViewSystem *RenderViewSystem

	// Light shared by the shadow and GI views.
	Sun *metadata.DirectionalLight
}

func NewSystemManager(appName string, width, height uint32, backend renderer.RendererBackend) (*SystemManager, error) {
	cs, err := NewCameraSystem(&CameraSystemConfig{
		MaxCameraCount: 100,
	})
	if err != nil {
		return nil, err
	}

	rvs, err := NewRenderViewSystem()
	if err != nil {
		return nil, err
	}

	return &SystemManager{
		appName:          appName,
		width:            width,
		height:           height,
		RendererSystem:   renderer.NewRenderer(backend),
		CameraSystem:     cs,
		RenderViewSystem: rvs,
		Sun: &metadata.DirectionalLight{
			Direction: math.NewVec3(-0.4, -1.0, -0.2),
			Colour:    math.NewVec3(1.0, 0.95, 0.9),
			Intensity: 1.0,
		},
	}, nil
}

// Initialize boots the backend and registers the built-in forward
// pipeline views against the default camera.
func (sm *SystemManager) Initialize() error {
	if err := sm.RendererSystem.Initialize(sm.appName, sm.width, sm.height); err != nil {
		return err
	}

	camera := sm.CameraSystem.GetDefault()
	if err := sm.RenderViewSystem.Register(views.NewWorldView("world", sm.width, sm.height, camera)); err != nil {
		return err
	}
	if err := sm.RenderViewSystem.Register(views.NewShadowView("shadow", sm.Sun)); err != nil {
		return err
	}
	if err := sm.RenderViewSystem.Register(views.NewBloomView("bloom", sm.width, sm.height)); err != nil {
		return err
	}
	if err := sm.RenderViewSystem.Register(views.NewGlobalIlluminationView("global_illumination", sm.width, sm.height, camera, sm.Sun)); err != nil {
		return err
	}
	return nil
}

func (sm *SystemManager) Shutdown() error {
	if err := sm.RenderViewSystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.CameraSystem.Shutdown(); err != nil {
		return err
	}
	return sm.RendererSystem.Shutdown()
}

func (sm *SystemManager) OnResize(width, height uint32) error {
	sm.width = width
	sm.height = height
	sm.RenderViewSystem.OnResize(width, height)
	return sm.RendererSystem.OnResize(uint16(width), uint16(height))
}

// BuildFrame assembles the frame packet from the registry.
func (sm *SystemManager) BuildFrame(registry *ecs.Registry, deltaTime float64) *metadata.RenderPacket {
	return sm.RenderViewSystem.BuildPacket(registry, deltaTime)
}

// DrawFrame submits a previously built packet.
func (sm *SystemManager) DrawFrame(packet *metadata.RenderPacket) error {
	return sm.RendererSystem.DrawFrame(packet)
}

// DefaultCamera is a convenience used by games that just want to fly around.
func (sm *SystemManager) DefaultCamera() *components.Camera {
	return sm.CameraSystem.GetDefault()
}

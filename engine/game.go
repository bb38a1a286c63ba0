package engine

import (
	"github.com/spaghettifunk/kepler/engine/assets"
	"github.com/spaghettifunk/kepler/engine/ecs"
	"github.com/spaghettifunk/kepler/engine/renderer/metadata"
	"github.com/spaghettifunk/kepler/engine/systems"
)

// Game bundles the callbacks a host application plugs into the engine
// loop. The engine fills in Registry, SystemManager and AssetManager
// before calling FnInitialize.
type Game struct {
	ApplicationConfig *ApplicationConfig
	Registry          *ecs.Registry
	SystemManager     *systems.SystemManager
	AssetManager      *assets.AssetManager
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnRender          Render
	FnOnResize        OnResize
}

type Initialize func() error
type Update func(deltaTime float64) error
type Render func(packet *metadata.RenderPacket, deltaTime float64) error
type OnResize func(width uint32, height uint32) error

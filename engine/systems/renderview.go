package systems

import (
	"fmt"

	"github.com/spaghettifunk/kepler/engine/core"
	"github.com/spaghettifunk/kepler/engine/ecs"
	"github.com/spaghettifunk/kepler/engine/renderer/metadata"
	"github.com/spaghettifunk/kepler/engine/renderer/views"
)

// RenderViewSystem owns the registered render views and builds the full
// frame packet in registration order.
type RenderViewSystem struct {
	views   map[string]views.RenderView
	ordered []views.RenderView
}

func NewRenderViewSystem() (*RenderViewSystem, error) {
	return &RenderViewSystem{
		views: make(map[string]views.RenderView),
	}, nil
}

func (rvs *RenderViewSystem) Shutdown() error {
	rvs.views = make(map[string]views.RenderView)
	rvs.ordered = nil
	return nil
}

func (rvs *RenderViewSystem) Register(view views.RenderView) error {
	if view == nil {
		return fmt.Errorf("cannot register a nil render view")
	}
	name := view.Name()
	if _, exists := rvs.views[name]; exists {
		return fmt.Errorf("render view '%s' is already registered", name)
	}
	rvs.views[name] = view
	rvs.ordered = append(rvs.ordered, view)
	core.LogDebug("registered render view '%s'", name)
	return nil
}

func (rvs *RenderViewSystem) Get(name string) views.RenderView {
	return rvs.views[name]
}

func (rvs *RenderViewSystem) OnResize(width, height uint32) {
	for _, view := range rvs.ordered {
		view.OnResize(width, height)
	}
}

// BuildPacket asks every view for its packet. A view that fails to build
// is skipped with an error log, not a dead frame.
func (rvs *RenderViewSystem) BuildPacket(registry *ecs.Registry, deltaTime float64) *metadata.RenderPacket {
	packet := &metadata.RenderPacket{
		DeltaTime: deltaTime,
		Views:     make([]*metadata.RenderViewPacket, 0, len(rvs.ordered)),
	}
	for _, view := range rvs.ordered {
		viewPacket, err := view.BuildPacket(registry, deltaTime)
		if err != nil {
			core.LogError("render view '%s' failed to build its packet: %s", view.Name(), err.Error())
			continue
		}
		packet.Views = append(packet.Views, viewPacket)
	}
	return packet
}

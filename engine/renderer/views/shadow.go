package views

import (
	"github.com/spaghettifunk/kepler/engine/ecs"
	"github.com/spaghettifunk/kepler/engine/math"
	"github.com/spaghettifunk/kepler/engine/renderer/metadata"
)

// ShadowView renders scene depth from the directional light's point of
// view into an orthographic frustum centered on the origin.
type ShadowView struct {
	name       string
	light      *metadata.DirectionalLight
	extent     float32
	projection math.Mat4
}

func NewShadowView(name string, light *metadata.DirectionalLight) *ShadowView {
	extent := float32(100.0)
	return &ShadowView{
		name:       name,
		light:      light,
		extent:     extent,
		projection: math.NewMat4Orthographic(-extent, extent, -extent, extent, 0.1, 2*extent),
	}
}

func (v *ShadowView) Name() string {
	return v.name
}

func (v *ShadowView) Type() metadata.RenderViewKnownType {
	return metadata.RenderViewKnownTypeShadow
}

// OnResize is a no-op: the shadow map resolution is fixed, not tied to
// the window.
func (v *ShadowView) OnResize(width, height uint32) {}

func (v *ShadowView) BuildPacket(registry *ecs.Registry, deltaTime float64) (*metadata.RenderViewPacket, error) {
	lightPosition := v.light.Direction.Normalized().MulScalar(-v.extent)
	view := math.NewMat4LookAt(lightPosition, math.NewVec3Zero(), math.NewVec3Up())

	return &metadata.RenderViewPacket{
		ViewName:         v.name,
		Type:             v.Type(),
		ViewMatrix:       view,
		ProjectionMatrix: v.projection,
		ViewPosition:     lightPosition,
		Geometries:       collectGeometries(registry),
	}, nil
}

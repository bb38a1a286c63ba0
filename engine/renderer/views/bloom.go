package views

import (
	"github.com/spaghettifunk/kepler/engine/ecs"
	"github.com/spaghettifunk/kepler/engine/renderer/metadata"
)

// BloomView collects only emissive geometry; its passes extract and blur
// the bright fragments that get composited over the world pass.
type BloomView struct {
	name   string
	width  uint32
	height uint32
	// Threshold below which a material contributes nothing to bloom.
	Threshold float32
}

func NewBloomView(name string, width, height uint32) *BloomView {
	return &BloomView{
		name:      name,
		width:     width,
		height:    height,
		Threshold: 0.0,
	}
}

func (v *BloomView) Name() string {
	return v.name
}

func (v *BloomView) Type() metadata.RenderViewKnownType {
	return metadata.RenderViewKnownTypeBloom
}

func (v *BloomView) OnResize(width, height uint32) {
	v.width = width
	v.height = height
}

func (v *BloomView) BuildPacket(registry *ecs.Registry, deltaTime float64) (*metadata.RenderViewPacket, error) {
	var emissive []*metadata.GeometryRenderData
	for _, entity := range registry.EntitiesWith(ecs.KindTransform, ecs.KindMesh) {
		mesh := registry.Mesh(entity)
		if mesh.Geometry == nil || mesh.Material == nil {
			continue
		}
		if mesh.Material.Emissive <= v.Threshold {
			continue
		}
		emissive = append(emissive, &metadata.GeometryRenderData{
			Model:    registry.Transform(entity).ModelMatrix(),
			Geometry: mesh.Geometry,
			Material: mesh.Material,
		})
	}

	return &metadata.RenderViewPacket{
		ViewName:   v.name,
		Type:       v.Type(),
		Geometries: emissive,
	}, nil
}

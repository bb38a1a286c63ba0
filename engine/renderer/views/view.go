package views

import (
	"github.com/spaghettifunk/kepler/engine/ecs"
	"github.com/spaghettifunk/kepler/engine/renderer/metadata"
)

// RenderView assembles one RenderViewPacket per frame from component data.
// Builders read the registry and never write to it; simulation state stays
// untouched by rendering.
type RenderView interface {
	Name() string
	Type() metadata.RenderViewKnownType
	OnResize(width, height uint32)
	BuildPacket(registry *ecs.Registry, deltaTime float64) (*metadata.RenderViewPacket, error)
}

// collectGeometries gathers the drawable geometry of every entity carrying
// a transform: meshes first, then terrains (which render with their own
// wireframe flag).
func collectGeometries(registry *ecs.Registry) []*metadata.GeometryRenderData {
	var out []*metadata.GeometryRenderData

	for _, entity := range registry.EntitiesWith(ecs.KindTransform, ecs.KindMesh) {
		mesh := registry.Mesh(entity)
		if mesh.Geometry == nil {
			continue
		}
		out = append(out, &metadata.GeometryRenderData{
			Model:    registry.Transform(entity).ModelMatrix(),
			Geometry: mesh.Geometry,
			Material: mesh.Material,
		})
	}

	for _, entity := range registry.EntitiesWith(ecs.KindTransform, ecs.KindTerrain) {
		terrain := registry.Terrain(entity)
		if terrain.Geometry == nil {
			continue
		}
		out = append(out, &metadata.GeometryRenderData{
			Model:     registry.Transform(entity).ModelMatrix(),
			Geometry:  terrain.Geometry,
			Wireframe: terrain.Wireframe,
		})
	}

	return out
}

package metadata

import (
	"github.com/spaghettifunk/kepler/engine/math"
)

// DefaultGeometryName is the name of the default geometry.
const DefaultGeometryName string = "default"

// GeometryConfig represents the configuration for a geometry, typically
// produced by a generator or loader and consumed by the renderer backend.
type GeometryConfig struct {
	VertexCount uint32
	Vertices    []math.Vertex3D
	IndexCount  uint32
	Indices     []uint32

	Center     math.Vec3
	MinExtents math.Vec3
	MaxExtents math.Vec3

	Name         string
	MaterialName string
}

// Geometry represents actual geometry in the world. Typically (but not
// always, depending on use) paired with a material.
type Geometry struct {
	ID uint32
	// InternalID is used by the renderer backend to map to its own resources.
	InternalID uint32
	// Generation is incremented every time the geometry changes.
	Generation  uint16
	Center      math.Vec3
	Name        string
	VertexCount uint32
	IndexCount  uint32
	Material    *Material
}

// GeometryRenderData is everything a backend needs to draw one geometry.
type GeometryRenderData struct {
	Model    math.Mat4
	Geometry *Geometry
	Material *Material
	// Wireframe requests line rendering, used by the terrain debug view.
	Wireframe bool
}

// GenerateCubeConfig builds an axis-aligned cube centered on the origin,
// four vertices and two triangles per face. Zero dimensions default to one.
func GenerateCubeConfig(width, height, depth float32, name, materialName string) *GeometryConfig {
	if width == 0 {
		width = 1.0
	}
	if height == 0 {
		height = 1.0
	}
	if depth == 0 {
		depth = 1.0
	}

	hw, hh, hd := width*0.5, height*0.5, depth*0.5

	// Per face: normal, then the four corners in fan order.
	faces := []struct {
		normal  math.Vec3
		corners [4]math.Vec3
	}{
		{math.NewVec3(0, 0, 1), [4]math.Vec3{
			math.NewVec3(-hw, -hh, hd), math.NewVec3(hw, -hh, hd), math.NewVec3(hw, hh, hd), math.NewVec3(-hw, hh, hd)}},
		{math.NewVec3(0, 0, -1), [4]math.Vec3{
			math.NewVec3(hw, -hh, -hd), math.NewVec3(-hw, -hh, -hd), math.NewVec3(-hw, hh, -hd), math.NewVec3(hw, hh, -hd)}},
		{math.NewVec3(-1, 0, 0), [4]math.Vec3{
			math.NewVec3(-hw, -hh, -hd), math.NewVec3(-hw, -hh, hd), math.NewVec3(-hw, hh, hd), math.NewVec3(-hw, hh, -hd)}},
		{math.NewVec3(1, 0, 0), [4]math.Vec3{
			math.NewVec3(hw, -hh, hd), math.NewVec3(hw, -hh, -hd), math.NewVec3(hw, hh, -hd), math.NewVec3(hw, hh, hd)}},
		{math.NewVec3(0, 1, 0), [4]math.Vec3{
			math.NewVec3(-hw, hh, hd), math.NewVec3(hw, hh, hd), math.NewVec3(hw, hh, -hd), math.NewVec3(-hw, hh, -hd)}},
		{math.NewVec3(0, -1, 0), [4]math.Vec3{
			math.NewVec3(-hw, -hh, -hd), math.NewVec3(hw, -hh, -hd), math.NewVec3(hw, -hh, hd), math.NewVec3(-hw, -hh, hd)}},
	}

	uvs := [4]math.Vec2{
		math.NewVec2(0, 0), math.NewVec2(1, 0), math.NewVec2(1, 1), math.NewVec2(0, 1),
	}

	vertices := make([]math.Vertex3D, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, face := range faces {
		base := uint32(len(vertices))
		for i, corner := range face.corners {
			vertices = append(vertices, math.Vertex3D{
				Position: corner,
				Normal:   face.normal,
				Texcoord: uvs[i],
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return &GeometryConfig{
		VertexCount:  uint32(len(vertices)),
		Vertices:     vertices,
		IndexCount:   uint32(len(indices)),
		Indices:      indices,
		Center:       math.NewVec3Zero(),
		MinExtents:   math.NewVec3(-hw, -hh, -hd),
		MaxExtents:   math.NewVec3(hw, hh, hd),
		Name:         name,
		MaterialName: materialName,
	}
}

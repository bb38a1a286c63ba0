package metadata

import "github.com/spaghettifunk/kepler/engine/math"

// RenderViewKnownType enumerates the built-in views of the forward pipeline.
type RenderViewKnownType int

const (
	// RenderViewKnownTypeWorld renders lit world geometry.
	RenderViewKnownTypeWorld RenderViewKnownType = iota
	// RenderViewKnownTypeShadow renders depth from the light's perspective.
	RenderViewKnownTypeShadow
	// RenderViewKnownTypeBloom extracts and blurs bright fragments.
	RenderViewKnownTypeBloom
	// RenderViewKnownTypeGlobalIllumination accumulates the screen-space
	// indirect-light approximation.
	RenderViewKnownTypeGlobalIllumination
)

// RenderViewConfig describes a view to be registered with the view system.
type RenderViewConfig struct {
	Type   RenderViewKnownType
	Name   string
	Width  uint32
	Height uint32
	Passes []RenderViewPassConfig
}

type RenderViewPassConfig struct {
	Name string
}

// RenderViewPacket is the output of one view for one frame: the geometry
// list plus the matrices the backend needs to draw it.
type RenderViewPacket struct {
	ViewName         string
	Type             RenderViewKnownType
	ViewMatrix       math.Mat4
	ProjectionMatrix math.Mat4
	ViewPosition     math.Vec3
	AmbientColour    math.Vec4
	Geometries       []*GeometryRenderData
}

// RenderPacket is everything the renderer draws in a single frame. Built
// fresh each frame from component data; the builders only borrow pointers
// for the duration of the render call and never mutate physics state.
type RenderPacket struct {
	DeltaTime float64
	Views     []*RenderViewPacket
}

// DirectionalLight drives the shadow pass and the GI bounce tint.
type DirectionalLight struct {
	Direction math.Vec3
	Colour    math.Vec3
	Intensity float32
}

package views

import (
	"github.com/spaghettifunk/kepler/engine/ecs"
	"github.com/spaghettifunk/kepler/engine/math"
	"github.com/spaghettifunk/kepler/engine/renderer/components"
	"github.com/spaghettifunk/kepler/engine/renderer/metadata"
)

// GlobalIlluminationView accumulates a coarse indirect-light approximation
// at half resolution. It shares the world camera so the bounce buffer
// lines up with the lit pass.
type GlobalIlluminationView struct {
	name       string
	camera     *components.Camera
	light      *metadata.DirectionalLight
	projection math.Mat4
	fov        float32
	nearClip   float32
	farClip    float32
}

func NewGlobalIlluminationView(name string, width, height uint32, camera *components.Camera, light *metadata.DirectionalLight) *GlobalIlluminationView {
	v := &GlobalIlluminationView{
		name:     name,
		camera:   camera,
		light:    light,
		fov:      math.DegToRad(45.0),
		nearClip: 0.1,
		farClip:  1000.0,
	}
	v.OnResize(width, height)
	return v
}

func (v *GlobalIlluminationView) Name() string {
	return v.name
}

func (v *GlobalIlluminationView) Type() metadata.RenderViewKnownType {
	return metadata.RenderViewKnownTypeGlobalIllumination
}

// OnResize halves the target resolution; indirect light is low frequency
// and does not need full-size buffers.
func (v *GlobalIlluminationView) OnResize(width, height uint32) {
	width /= 2
	height /= 2
	if height == 0 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	v.projection = math.NewMat4Perspective(v.fov, aspect, v.nearClip, v.farClip)
}

func (v *GlobalIlluminationView) BuildPacket(registry *ecs.Registry, deltaTime float64) (*metadata.RenderViewPacket, error) {
	ambient := math.NewVec4(
		v.light.Colour.X*v.light.Intensity,
		v.light.Colour.Y*v.light.Intensity,
		v.light.Colour.Z*v.light.Intensity,
		1.0,
	)

	return &metadata.RenderViewPacket{
		ViewName:         v.name,
		Type:             v.Type(),
		ViewMatrix:       v.camera.GetView(),
		ProjectionMatrix: v.projection,
		ViewPosition:     v.camera.GetPosition(),
		AmbientColour:    ambient,
		Geometries:       collectGeometries(registry),
	}, nil
}

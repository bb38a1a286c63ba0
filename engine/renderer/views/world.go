package views

import (
	"github.com/spaghettifunk/kepler/engine/ecs"
	"github.com/spaghettifunk/kepler/engine/math"
	"github.com/spaghettifunk/kepler/engine/renderer/components"
	"github.com/spaghettifunk/kepler/engine/renderer/metadata"
)

// WorldView is the main lit pass of the forward pipeline.
type WorldView struct {
	name          string
	camera        *components.Camera
	fov           float32
	nearClip      float32
	farClip       float32
	projection    math.Mat4
	ambientColour math.Vec4
}

func NewWorldView(name string, width, height uint32, camera *components.Camera) *WorldView {
	v := &WorldView{
		name:          name,
		camera:        camera,
		fov:           math.DegToRad(45.0),
		nearClip:      0.1,
		farClip:       1000.0,
		ambientColour: math.NewVec4(0.25, 0.25, 0.25, 1.0),
	}
	v.OnResize(width, height)
	return v
}

func (v *WorldView) Name() string {
	return v.name
}

func (v *WorldView) Type() metadata.RenderViewKnownType {
	return metadata.RenderViewKnownTypeWorld
}

func (v *WorldView) OnResize(width, height uint32) {
	if height == 0 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	v.projection = math.NewMat4Perspective(v.fov, aspect, v.nearClip, v.farClip)
}

func (v *WorldView) BuildPacket(registry *ecs.Registry, deltaTime float64) (*metadata.RenderViewPacket, error) {
	return &metadata.RenderViewPacket{
		ViewName:         v.name,
		Type:             v.Type(),
		ViewMatrix:       v.camera.GetView(),
		ProjectionMatrix: v.projection,
		ViewPosition:     v.camera.GetPosition(),
		AmbientColour:    v.ambientColour,
		Geometries:       collectGeometries(registry),
	}, nil
}

package components

import (
	"github.com/spaghettifunk/kepler/engine/math"
)

// DEFAULT_CAMERA_NAME is the name of the fallback camera that always exists.
const DEFAULT_CAMERA_NAME string = "default"

// Camera holds a position and Euler rotation and lazily rebuilds its view
// matrix. Use the setters so the dirty flag stays honest.
type Camera struct {
	Position      math.Vec3
	EulerRotation math.Vec3
	isDirty       bool
	viewMatrix    math.Mat4
}

type CameraLookup struct {
	ReferenceCount uint16
	Camera         *Camera
}

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

func (c *Camera) Reset() {
	c.Position = math.NewVec3Zero()
	c.EulerRotation = math.NewVec3Zero()
	c.isDirty = false
	c.viewMatrix = math.NewMat4Identity()
}

func (c *Camera) GetPosition() math.Vec3 {
	return c.Position
}

func (c *Camera) SetPosition(position math.Vec3) {
	c.Position = position
	c.isDirty = true
}

func (c *Camera) GetEulerRotation() math.Vec3 {
	return c.EulerRotation
}

func (c *Camera) SetEulerRotation(rotation math.Vec3) {
	c.EulerRotation = rotation
	c.isDirty = true
}

// GetView rebuilds the view matrix when position or rotation changed since
// the last call.
func (c *Camera) GetView() math.Mat4 {
	if c.isDirty {
		rotation := math.NewMat4EulerXYZ(c.EulerRotation.X, c.EulerRotation.Y, c.EulerRotation.Z)
		translation := math.NewMat4Translation(c.Position)
		c.viewMatrix = rotation.Mul(translation).Inverse()
		c.isDirty = false
	}
	return c.viewMatrix
}

func (c *Camera) Forward() math.Vec3 {
	return c.GetView().Forward()
}

func (c *Camera) Backward() math.Vec3 {
	return c.GetView().Backward()
}

func (c *Camera) Left() math.Vec3 {
	return c.GetView().Left()
}

func (c *Camera) Right() math.Vec3 {
	return c.GetView().Right()
}

func (c *Camera) MoveForward(amount float32) {
	c.Position = c.Position.Add(c.Forward().MulScalar(amount))
	c.isDirty = true
}

func (c *Camera) MoveBackward(amount float32) {
	c.Position = c.Position.Add(c.Backward().MulScalar(amount))
	c.isDirty = true
}

func (c *Camera) MoveLeft(amount float32) {
	c.Position = c.Position.Add(c.Left().MulScalar(amount))
	c.isDirty = true
}

func (c *Camera) MoveRight(amount float32) {
	c.Position = c.Position.Add(c.Right().MulScalar(amount))
	c.isDirty = true
}

func (c *Camera) MoveUp(amount float32) {
	c.Position = c.Position.Add(math.NewVec3Up().MulScalar(amount))
	c.isDirty = true
}

func (c *Camera) MoveDown(amount float32) {
	c.Position = c.Position.Add(math.NewVec3Down().MulScalar(amount))
	c.isDirty = true
}

func (c *Camera) Yaw(amount float32) {
	c.EulerRotation.Y += amount
	c.isDirty = true
}

func (c *Camera) Pitch(amount float32) {
	c.EulerRotation.X += amount

	// Avoid gimbal lock.
	limit := math.DegToRad(89.0)
	c.EulerRotation.X = math.Clamp(c.EulerRotation.X, -limit, limit)

	c.isDirty = true
}

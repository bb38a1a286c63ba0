package ecs

import (
	"github.com/spaghettifunk/kepler/engine/math"
	"github.com/spaghettifunk/kepler/engine/renderer/metadata"
)

// TransformComponent describes where an entity sits in the world.
// Rotation is stored as Euler angles in degrees.
type TransformComponent struct {
	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3
}

func NewTransform(position, rotation, scale math.Vec3) TransformComponent {
	return TransformComponent{
		Position: position,
		Rotation: rotation,
		Scale:    scale,
	}
}

func NewTransformAt(position math.Vec3) TransformComponent {
	return NewTransform(position, math.NewVec3Zero(), math.NewVec3One())
}

// ModelMatrix builds the world matrix for this transform. The order is
// fixed: translate, then rotate around X, Y, Z, then scale. Box colliders
// assume positive scale components; zero or negative scale is undefined.
func (t *TransformComponent) ModelMatrix() math.Mat4 {
	model := math.NewMat4Translation(t.Position)
	model = model.Mul(math.NewMat4EulerX(math.DegToRad(t.Rotation.X)))
	model = model.Mul(math.NewMat4EulerY(math.DegToRad(t.Rotation.Y)))
	model = model.Mul(math.NewMat4EulerZ(math.DegToRad(t.Rotation.Z)))
	model = model.Mul(math.NewMat4Scale(t.Scale))
	return model
}

// PhysicsComponent holds per-entity simulation state. It is attached at
// entity creation and mutated in place by the physics system every tick.
type PhysicsComponent struct {
	Velocity     math.Vec3
	Acceleration math.Vec3
	Mass         float32
	UseGravity   bool
	IsGrounded   bool
	// Restitution is the bounciness: 0 fully inelastic, 1 fully elastic.
	Restitution float32
	// Friction in [0,1], applied tangentially on contact.
	Friction float32
}

func NewPhysics(useGravity bool, mass float32) PhysicsComponent {
	return PhysicsComponent{
		Acceleration: math.NewVec3(0.0, -9.81, 0.0),
		Mass:         mass,
		UseGravity:   useGravity,
		Restitution:  0.5,
		// High by default so grounded bodies slide rather than stop dead;
		// terrain contact multiplies x/z velocity by this every tick.
		Friction: 0.98,
	}
}

type ColliderShape uint8

const (
	ColliderSphere ColliderShape = iota
	ColliderBox
	// ColliderMesh is declared but has no dedicated collision routine.
	// Mesh colliders always fall back to the sphere approximation; this
	// is permanent behavior, not a placeholder.
	ColliderMesh
)

// ColliderComponent describes an entity's collision volume. Radius is used
// by the sphere routine and by every fallback path; Size feeds the box
// routine (half-extents are Size * transform scale * 0.5).
type ColliderComponent struct {
	Shape  ColliderShape
	Radius float32
	Size   math.Vec3
	// Center is a local offset. Current collision routines ignore it and
	// treat the entity origin as the collider center.
	Center math.Vec3
}

func NewCollider(shape ColliderShape) ColliderComponent {
	return ColliderComponent{
		Shape:  shape,
		Radius: 0.5,
		Size:   math.NewVec3One(),
	}
}

// MeshComponent ties an entity to renderable geometry. Traversed by registry
// queries but never touched by the physics system.
type MeshComponent struct {
	Geometry *metadata.Geometry
	Material *metadata.Material
}

// TerrainComponent holds a heightfield grid of Width x Height cells.
// Heightmap stores raw, unscaled samples in row-major order and must have
// exactly Width*Height entries once populated by the terrain generator.
type TerrainComponent struct {
	Width       int
	Height      int
	Scale       float32
	HeightScale float32
	Heightmap   []float32
	Geometry    *metadata.Geometry
	Wireframe   bool
}

func NewTerrain(width, height int, scale, heightScale float32) TerrainComponent {
	return TerrainComponent{
		Width:       width,
		Height:      height,
		Scale:       scale,
		HeightScale: heightScale,
	}
}

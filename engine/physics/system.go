package physics

import (
	"github.com/spaghettifunk/kepler/engine/ecs"
	"github.com/spaghettifunk/kepler/engine/math"
)

// System advances the simulation one tick at a time. It keeps no per-entity
// state of its own; every Update is a pure transform over registry data,
// executed on the caller's goroutine with no internal locking.
type System struct {
	gravity math.Vec3
}

func NewSystem() *System {
	return &System{
		gravity: math.NewVec3(0.0, -9.81, 0.0),
	}
}

// SetGravity overrides the world gravity vector.
func (s *System) SetGravity(gravity math.Vec3) {
	s.gravity = gravity
}

// Update runs one simulation tick over the registry. deltaTime is in
// seconds and is taken as-is: a very large step produces proportionally
// large position steps and may tunnel through thin colliders.
//
// Per tick, in order: gravity and integration for every {Transform, Physics}
// entity, terrain collision per entity while it integrates, then a single
// all-pairs object collision sweep once every entity has moved.
func (s *System) Update(registry *ecs.Registry, deltaTime float64) {
	dt := float32(deltaTime)

	entities := registry.EntitiesWith(ecs.KindTransform, ecs.KindPhysics)

	for _, entity := range entities {
		transform := registry.Transform(entity)
		phys := registry.Physics(entity)
		collider := registry.Collider(entity)

		if transform == nil || phys == nil {
			continue
		}

		if phys.UseGravity && !phys.IsGrounded {
			s.applyGravity(phys, dt)
		}

		integrate(transform, phys, dt)

		if collider == nil {
			continue
		}
		for _, terrainEntity := range registry.EntitiesWith(ecs.KindTerrain, ecs.KindTransform) {
			terrain := registry.Terrain(terrainEntity)
			terrainTransform := registry.Transform(terrainEntity)
			if terrain == nil || terrainTransform == nil {
				continue
			}
			resolveTerrainCollision(transform, phys, collider, terrain, terrainTransform)
		}
	}

	s.handleObjectCollisions(registry, entities)
}

func (s *System) applyGravity(phys *ecs.PhysicsComponent, dt float32) {
	phys.Velocity = phys.Velocity.Add(s.gravity.MulScalar(dt))
}

// integrate steps the position with semi-implicit Euler: the velocity has
// already been updated this tick, so the new velocity moves the body.
func integrate(transform *ecs.TransformComponent, phys *ecs.PhysicsComponent, dt float32) {
	transform.Position = transform.Position.Add(phys.Velocity.MulScalar(dt))
}

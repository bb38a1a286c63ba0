package physics

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/kepler/engine/ecs"
	"github.com/spaghettifunk/kepler/engine/math"
)

const (
	// groundedNormalY: a contact normal pointing this much upward counts
	// as support from below for the grounding heuristic.
	groundedNormalY float32 = 0.7
	// minTangentLength: below this there is no meaningful sliding
	// direction and friction is skipped.
	minTangentLength float32 = 0.001
)

// contact describes a detected overlap between two colliders. The normal
// points from A towards B; penetration is the overlap depth along it.
type contact struct {
	normal      math.Vec3
	penetration float32
}

// handleObjectCollisions performs the all-pairs sweep over the integrated
// entity set. Pairs missing any of transform, physics or collider are
// skipped. O(n²); the demo scenes stay small enough that no broadphase
// structure is warranted.
func (s *System) handleObjectCollisions(registry *ecs.Registry, entities []ecs.Entity) {
	for i := 0; i < len(entities); i++ {
		for j := i + 1; j < len(entities); j++ {
			entityA := entities[i]
			entityB := entities[j]

			transformA := registry.Transform(entityA)
			physicsA := registry.Physics(entityA)
			colliderA := registry.Collider(entityA)

			transformB := registry.Transform(entityB)
			physicsB := registry.Physics(entityB)
			colliderB := registry.Collider(entityB)

			if transformA == nil || physicsA == nil || colliderA == nil ||
				transformB == nil || physicsB == nil || colliderB == nil {
				continue
			}

			var c contact
			var colliding bool

			switch {
			case colliderA.Shape == ecs.ColliderSphere && colliderB.Shape == ecs.ColliderSphere:
				colliding = checkSphereSphere(transformA, colliderA, transformB, colliderB, &c)
			case colliderA.Shape == ecs.ColliderBox && colliderB.Shape == ecs.ColliderBox:
				colliding = checkBoxBox(transformA, colliderA, transformB, colliderB, &c)
			default:
				// Mixed pairs (and mesh colliders) fall back to the
				// sphere approximation on each collider's radius.
				colliding = checkSphereSphere(transformA, colliderA, transformB, colliderB, &c)
			}

			if colliding {
				resolveCollision(transformA, physicsA, transformB, physicsB, c)
			}
		}
	}
}

// checkSphereSphere reports an overlap between two spheres. Coincident
// centers have no separation axis, so the pair is skipped rather than
// producing a NaN normal.
func checkSphereSphere(transformA *ecs.TransformComponent, colliderA *ecs.ColliderComponent,
	transformB *ecs.TransformComponent, colliderB *ecs.ColliderComponent, c *contact) bool {
	delta := transformB.Position.Sub(transformA.Position)
	distance := delta.Length()
	minDistance := colliderA.Radius + colliderB.Radius

	if distance >= minDistance {
		return false
	}
	if distance == 0 {
		return false
	}

	c.normal = delta.Normalized()
	c.penetration = minDistance - distance
	return true
}

// checkBoxBox tests two boxes as axis-aligned volumes. Box rotation is
// ignored for collision purposes even though boxes may visually rotate.
// The resolution axis is the one with minimum overlap; the comparison
// chain uses strict less-than, so equal overlaps resolve to the later axis.
func checkBoxBox(transformA *ecs.TransformComponent, colliderA *ecs.ColliderComponent,
	transformB *ecs.TransformComponent, colliderB *ecs.ColliderComponent, c *contact) bool {
	halfSizeA := colliderA.Size.Mul(transformA.Scale).MulScalar(0.5)
	halfSizeB := colliderB.Size.Mul(transformB.Scale).MulScalar(0.5)

	delta := transformB.Position.Sub(transformA.Position)

	overlapX := halfSizeA.X + halfSizeB.X - math32.Abs(delta.X)
	overlapY := halfSizeA.Y + halfSizeB.Y - math32.Abs(delta.Y)
	overlapZ := halfSizeA.Z + halfSizeB.Z - math32.Abs(delta.Z)

	if overlapX <= 0 || overlapY <= 0 || overlapZ <= 0 {
		return false
	}

	switch {
	case overlapX < overlapY && overlapX < overlapZ:
		c.penetration = overlapX
		c.normal = math.NewVec3(axisSign(delta.X), 0.0, 0.0)
	case overlapY < overlapZ:
		c.penetration = overlapY
		c.normal = math.NewVec3(0.0, axisSign(delta.Y), 0.0)
	default:
		c.penetration = overlapZ
		c.normal = math.NewVec3(0.0, 0.0, axisSign(delta.Z))
	}
	return true
}

// axisSign picks the normal direction from the center delta on the chosen
// axis. A zero delta defaults to positive.
func axisSign(delta float32) float32 {
	if delta > 0 {
		return 1.0
	}
	if delta < 0 {
		return -1.0
	}
	return 1.0
}

// resolveCollision separates the pair and applies the collision impulse,
// friction and the grounding heuristic. The same routine runs regardless
// of which detection path produced the contact.
//
// Note: the impulse scalar divides by the mass sum rather than the sum of
// inverse masses, so heavier pairs react more softly than a conserving
// solver would.
func resolveCollision(transformA *ecs.TransformComponent, physicsA *ecs.PhysicsComponent,
	transformB *ecs.TransformComponent, physicsB *ecs.PhysicsComponent, c contact) {
	// Separate the objects. Each body moves proportionally to the other
	// body's mass share, so a heavy body barely budges.
	totalMass := physicsA.Mass + physicsB.Mass
	if totalMass > 0 {
		ratioA := physicsB.Mass / totalMass
		ratioB := physicsA.Mass / totalMass

		transformA.Position = transformA.Position.Sub(c.normal.MulScalar(c.penetration * ratioA))
		transformB.Position = transformB.Position.Add(c.normal.MulScalar(c.penetration * ratioB))
	}

	relativeVelocity := physicsB.Velocity.Sub(physicsA.Velocity)
	velocityAlongNormal := relativeVelocity.Dot(c.normal)

	// Separating or parallel contacts need no impulse.
	if velocityAlongNormal >= 0 {
		return
	}

	restitution := math32.Min(physicsA.Restitution, physicsB.Restitution)

	impulseScalar := -(1.0 + restitution) * velocityAlongNormal
	impulseScalar /= physicsA.Mass + physicsB.Mass

	impulse := c.normal.MulScalar(impulseScalar)
	physicsA.Velocity = physicsA.Velocity.Sub(impulse.MulScalar(physicsB.Mass))
	physicsB.Velocity = physicsB.Velocity.Add(impulse.MulScalar(physicsA.Mass))

	// Friction acts along the tangent of the relative motion.
	tangent := relativeVelocity.Sub(c.normal.MulScalar(velocityAlongNormal))
	if tangent.Length() > minTangentLength {
		tangent = tangent.Normalized()
		friction := math32.Min(physicsA.Friction, physicsB.Friction)
		frictionImpulse := relativeVelocity.Dot(tangent) * friction

		frictionVector := tangent.MulScalar(frictionImpulse)
		physicsA.Velocity = physicsA.Velocity.Add(frictionVector.MulScalar(physicsB.Mass))
		physicsB.Velocity = physicsB.Velocity.Sub(frictionVector.MulScalar(physicsA.Mass))
	}

	// A mostly-upward normal means the contact came from below. Mark any
	// body that is no longer moving down as grounded for this tick; the
	// flag resets next tick unless re-triggered.
	if c.normal.Y > groundedNormalY {
		if physicsA.Velocity.Y <= 0 {
			physicsA.IsGrounded = true
		}
		if physicsB.Velocity.Y <= 0 {
			physicsB.IsGrounded = true
		}
	}
}

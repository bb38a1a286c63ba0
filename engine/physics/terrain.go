package physics

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/kepler/engine/ecs"
	"github.com/spaghettifunk/kepler/engine/math"
)

// restThreshold: vertical speeds below this after a terrain bounce are
// zeroed so bodies settle instead of jittering forever.
const restThreshold float32 = 0.1

// HeightAt returns the terrain height in world units under (worldX, worldZ).
// Sampling is bilinear over the four surrounding heightmap cells; grid
// indices are clamped to the edges, so coordinates far outside the terrain
// return the nearest edge height rather than reading out of bounds. An
// unpopulated heightmap reads as flat at the terrain's world Y.
func HeightAt(terrain *ecs.TerrainComponent, terrainTransform *ecs.TransformComponent, worldX, worldZ float32) float32 {
	if len(terrain.Heightmap) == 0 || terrain.Width <= 0 || terrain.Height <= 0 {
		return terrainTransform.Position.Y
	}

	// The grid is centered on the terrain's world position.
	localX := worldX - terrainTransform.Position.X
	localZ := worldZ - terrainTransform.Position.Z

	gridX := localX/terrain.Scale + float32(terrain.Width)/2.0
	gridZ := localZ/terrain.Scale + float32(terrain.Height)/2.0

	// Clamp in continuous grid space so samples past any edge blend edge
	// cells with in-range weights instead of extrapolating.
	gridX = math.Clamp(gridX, 0, float32(terrain.Width-1))
	gridZ = math.Clamp(gridZ, 0, float32(terrain.Height-1))

	x0 := clampInt(int(gridX), 0, terrain.Width-1)
	z0 := clampInt(int(gridZ), 0, terrain.Height-1)
	x1 := minInt(terrain.Width-1, x0+1)
	z1 := minInt(terrain.Height-1, z0+1)

	fracX := gridX - float32(x0)
	fracZ := gridZ - float32(z0)

	h00 := terrain.Heightmap[z0*terrain.Width+x0] * terrain.HeightScale
	h10 := terrain.Heightmap[z0*terrain.Width+x1] * terrain.HeightScale
	h01 := terrain.Heightmap[z1*terrain.Width+x0] * terrain.HeightScale
	h11 := terrain.Heightmap[z1*terrain.Width+x1] * terrain.HeightScale

	height := h00*(1-fracX)*(1-fracZ) +
		h10*fracX*(1-fracZ) +
		h01*(1-fracX)*fracZ +
		h11*fracX*fracZ

	return height + terrainTransform.Position.Y
}

// resolveTerrainCollision tests and resolves one body against one terrain.
// Every collider shape reduces to the sphere case: boxes and meshes use
// their sphere radius fallback.
//
// Resolution only fires while the body is moving down, so a body already
// bouncing up is not re-snapped mid-flight. When the body is clear of the
// terrain the grounded flag is forced off, whatever the object-collision
// pass decided earlier.
func resolveTerrainCollision(transform *ecs.TransformComponent, phys *ecs.PhysicsComponent,
	collider *ecs.ColliderComponent, terrain *ecs.TerrainComponent, terrainTransform *ecs.TransformComponent) {
	terrainHeight := HeightAt(terrain, terrainTransform, transform.Position.X, transform.Position.Z)

	objectBottom := transform.Position.Y - collider.Radius
	if objectBottom <= terrainHeight {
		if phys.Velocity.Y < 0 {
			transform.Position.Y = terrainHeight + collider.Radius
			phys.Velocity.Y = -phys.Velocity.Y * phys.Restitution
			phys.IsGrounded = true

			phys.Velocity.X *= phys.Friction
			phys.Velocity.Z *= phys.Friction

			// Kill very small bounces.
			if math32.Abs(phys.Velocity.Y) < restThreshold {
				phys.Velocity.Y = 0.0
			}
		}
	} else {
		phys.IsGrounded = false
	}
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

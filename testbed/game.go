package testbed

import (
	"fmt"

	"github.com/spaghettifunk/kepler/engine"
	"github.com/spaghettifunk/kepler/engine/core"
	"github.com/spaghettifunk/kepler/engine/ecs"
	"github.com/spaghettifunk/kepler/engine/math"
	"github.com/spaghettifunk/kepler/engine/renderer/components"
	"github.com/spaghettifunk/kepler/engine/renderer/metadata"
	"github.com/spaghettifunk/kepler/engine/terrain"
)

const terrainSeed uint64 = 1337

// GameState is the demo scene: a procedural terrain, a stack of falling
// crates, four static walls and one heavier ball.
type GameState struct {
	WorldCamera *components.Camera

	terrainEntity ecs.Entity
	crates        []ecs.Entity
	walls         []ecs.Entity
	ball          ecs.Entity

	cameraSpeed float32
	turnSpeed   float32
}

func NewTestGame() *engine.Game {
	config, err := engine.LoadApplicationConfig("kepler.toml")
	if err != nil {
		core.LogWarn("bad config file, using defaults: %s", err.Error())
		config = engine.DefaultApplicationConfig()
	}
	config.Name = "Kepler Testbed"

	g := &engine.Game{
		ApplicationConfig: config,
		State: &GameState{
			cameraSpeed: 25.0,
			turnSpeed:   2.0,
		},
	}
	g.FnInitialize = gameInitialize(g)
	g.FnUpdate = gameUpdate(g)
	g.FnRender = gameRender(g)
	g.FnOnResize = gameOnResize(g)
	return g
}

func gameInitialize(g *engine.Game) engine.Initialize {
	return func() error {
		core.LogInfo("booting testbed...")
		state := g.State.(*GameState)
		registry := g.Registry

		state.WorldCamera = g.SystemManager.DefaultCamera()
		state.WorldCamera.SetPosition(math.NewVec3(0, 20, 45))
		state.WorldCamera.SetEulerRotation(math.NewVec3(-0.3, 0, 0))

		if err := buildTerrain(g, state); err != nil {
			return err
		}
		if err := buildCrates(g, state); err != nil {
			return err
		}
		if err := buildWalls(g, state); err != nil {
			return err
		}
		if err := buildBall(g, state); err != nil {
			return err
		}

		core.LogDebug("testbed scene ready: %d crates, %d walls", len(state.crates), len(state.walls))
		return nil
	}
}

func buildTerrain(g *engine.Game, state *GameState) error {
	terrainComponent := ecs.NewTerrain(128, 128, 1.0, 6.0)

	generator := terrain.NewGenerator(terrainSeed)
	if err := generator.Generate(&terrainComponent); err != nil {
		return err
	}

	geometryConfig, err := terrain.BuildGeometryConfig(&terrainComponent, "terrain", "grass")
	if err != nil {
		return err
	}
	geometry, err := g.SystemManager.RendererSystem.CreateGeometry(geometryConfig)
	if err != nil {
		return err
	}
	terrainComponent.Geometry = geometry

	entity := g.Registry.CreateEntity()
	g.Registry.AddTransform(entity, ecs.NewTransformAt(math.NewVec3Zero()))
	g.Registry.AddTerrain(entity, terrainComponent)
	state.terrainEntity = entity
	return nil
}

// loadMaterial pulls a TOML material from the asset tree, falling back to
// a flat-colored one when the file is missing.
func loadMaterial(g *engine.Game, name string, fallbackAlbedo math.Vec3) *metadata.Material {
	resource, err := g.AssetManager.LoadAsset(fmt.Sprintf("materials/%s.toml", name), metadata.ResourceTypeMaterial, nil)
	if err != nil {
		core.LogDebug("material '%s' not on disk, using fallback: %s", name, err.Error())
		return &metadata.Material{
			Name:      name,
			Albedo:    fallbackAlbedo,
			Roughness: 0.8,
		}
	}
	config := resource.Data.(*metadata.MaterialConfig)
	return metadata.MaterialFromConfig(config)
}

func buildCrates(g *engine.Game, state *GameState) error {
	material := loadMaterial(g, "crate", math.NewVec3(0.7, 0.5, 0.3))

	geometryConfig := metadata.GenerateCubeConfig(1.0, 1.0, 1.0, "crate_cube", material.Name)
	geometry, err := g.SystemManager.RendererSystem.CreateGeometry(geometryConfig)
	if err != nil {
		return err
	}

	positions := []math.Vec3{
		{X: -3, Y: 18, Z: 0},
		{X: 0, Y: 22, Z: 1},
		{X: 2, Y: 26, Z: -1},
		{X: -1, Y: 30, Z: 2},
		{X: 4, Y: 34, Z: 0},
	}
	for _, position := range positions {
		entity := g.Registry.CreateEntity()
		g.Registry.AddTransform(entity, ecs.NewTransformAt(position))
		g.Registry.AddPhysics(entity, ecs.NewPhysics(true, 1.0))

		collider := ecs.NewCollider(ecs.ColliderBox)
		// Half the cube diagonal, for the sphere fallback in mixed contacts.
		collider.Radius = 0.866
		g.Registry.AddCollider(entity, collider)

		g.Registry.AddMesh(entity, ecs.MeshComponent{
			Geometry: geometry,
			Material: material,
		})
		state.crates = append(state.crates, entity)
	}
	return nil
}

func buildWalls(g *engine.Game, state *GameState) error {
	material := loadMaterial(g, "wall", math.NewVec3(0.6, 0.6, 0.65))

	geometryConfig := metadata.GenerateCubeConfig(1.0, 1.0, 1.0, "wall_cube", material.Name)
	geometry, err := g.SystemManager.RendererSystem.CreateGeometry(geometryConfig)
	if err != nil {
		return err
	}

	// Four walls boxing the play area in. Static: no gravity, zero mass.
	walls := []struct {
		position math.Vec3
		scale    math.Vec3
	}{
		{math.NewVec3(0, 10, -20), math.NewVec3(40, 8, 1)},
		{math.NewVec3(0, 10, 20), math.NewVec3(40, 8, 1)},
		{math.NewVec3(-20, 10, 0), math.NewVec3(1, 8, 40)},
		{math.NewVec3(20, 10, 0), math.NewVec3(1, 8, 40)},
	}
	for _, wall := range walls {
		entity := g.Registry.CreateEntity()
		g.Registry.AddTransform(entity, ecs.NewTransform(wall.position, math.NewVec3Zero(), wall.scale))
		g.Registry.AddPhysics(entity, ecs.NewPhysics(false, 0.0))

		collider := ecs.NewCollider(ecs.ColliderBox)
		g.Registry.AddCollider(entity, collider)

		g.Registry.AddMesh(entity, ecs.MeshComponent{
			Geometry: geometry,
			Material: material,
		})
		state.walls = append(state.walls, entity)
	}
	return nil
}

func buildBall(g *engine.Game, state *GameState) error {
	material := loadMaterial(g, "ball", math.NewVec3(0.9, 0.3, 0.2))
	material.Emissive = 0.5

	geometryConfig := metadata.GenerateCubeConfig(2.0, 2.0, 2.0, "ball_proxy", material.Name)
	geometry, err := g.SystemManager.RendererSystem.CreateGeometry(geometryConfig)
	if err != nil {
		return err
	}

	entity := g.Registry.CreateEntity()
	g.Registry.AddTransform(entity, ecs.NewTransformAt(math.NewVec3(1, 40, 1)))
	g.Registry.AddPhysics(entity, ecs.NewPhysics(true, 2.0))

	collider := ecs.NewCollider(ecs.ColliderSphere)
	collider.Radius = 1.0
	g.Registry.AddCollider(entity, collider)

	g.Registry.AddMesh(entity, ecs.MeshComponent{
		Geometry: geometry,
		Material: material,
	})
	state.ball = entity
	return nil
}

func gameUpdate(g *engine.Game) engine.Update {
	return func(deltaTime float64) error {
		state := g.State.(*GameState)
		camera := state.WorldCamera
		dt := float32(deltaTime)

		if core.InputIsKeyDown(core.KEY_A) || core.InputIsKeyDown(core.KEY_LEFT) {
			camera.Yaw(state.turnSpeed * dt)
		}
		if core.InputIsKeyDown(core.KEY_D) || core.InputIsKeyDown(core.KEY_RIGHT) {
			camera.Yaw(-state.turnSpeed * dt)
		}
		if core.InputIsKeyDown(core.KEY_UP) {
			camera.Pitch(state.turnSpeed * dt)
		}
		if core.InputIsKeyDown(core.KEY_DOWN) {
			camera.Pitch(-state.turnSpeed * dt)
		}
		if core.InputIsKeyDown(core.KEY_W) {
			camera.MoveForward(state.cameraSpeed * dt)
		}
		if core.InputIsKeyDown(core.KEY_S) {
			camera.MoveBackward(state.cameraSpeed * dt)
		}
		if core.InputIsKeyDown(core.KEY_Q) {
			camera.MoveLeft(state.cameraSpeed * dt)
		}
		if core.InputIsKeyDown(core.KEY_E) {
			camera.MoveRight(state.cameraSpeed * dt)
		}
		if core.InputIsKeyDown(core.KEY_SPACE) {
			camera.MoveUp(state.cameraSpeed * dt)
		}
		if core.InputIsKeyDown(core.KEY_X) {
			camera.MoveDown(state.cameraSpeed * dt)
		}

		if core.InputIsKeyUp(core.KEY_P) && core.InputWasKeyDown(core.KEY_P) {
			position := camera.GetPosition()
			core.LogDebug("camera pos: [%.2f, %.2f, %.2f]", position.X, position.Y, position.Z)
		}

		// R respawns the crates above the terrain.
		if core.InputIsKeyUp(core.KEY_R) && core.InputWasKeyDown(core.KEY_R) {
			for i, entity := range state.crates {
				if transform := g.Registry.Transform(entity); transform != nil {
					transform.Position = math.NewVec3(float32(i)*2-4, 25+float32(i)*4, 0)
				}
				if body := g.Registry.Physics(entity); body != nil {
					body.Velocity = math.NewVec3Zero()
					body.IsGrounded = false
				}
			}
		}

		return nil
	}
}

func gameRender(g *engine.Game) engine.Render {
	return func(packet *metadata.RenderPacket, deltaTime float64) error {
		// The view system already packed the frame; nothing extra to add.
		return nil
	}
}

func gameOnResize(g *engine.Game) engine.OnResize {
	return func(width, height uint32) error {
		core.LogDebug("testbed resized to %dx%d", width, height)
		return nil
	}
}

package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spaghettifunk/kepler/engine/assets"
	"github.com/spaghettifunk/kepler/engine/core"
	"github.com/spaghettifunk/kepler/engine/ecs"
	"github.com/spaghettifunk/kepler/engine/math"
	"github.com/spaghettifunk/kepler/engine/physics"
	"github.com/spaghettifunk/kepler/engine/platform"
	"github.com/spaghettifunk/kepler/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to be initialized
	EngineStageBootComplete
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	currentStage  Stage
	gameInstance  *Game
	isRunning     bool
	isSuspended   bool
	platform      *platform.Platform
	assetManager  *assets.AssetManager
	systemManager *systems.SystemManager
	registry      *ecs.Registry
	physicsSystem *physics.System
	width         uint32
	height        uint32
	clock         *core.Clock
	lastTime      float64
}

func New(g *Game) (*Engine, error) {
	if g == nil {
		return nil, fmt.Errorf("engine needs a game instance")
	}
	if g.ApplicationConfig == nil {
		g.ApplicationConfig = DefaultApplicationConfig()
	}
	config := g.ApplicationConfig

	am, err := assets.NewAssetManager()
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	sm, err := systems.NewSystemManager(config.Name, config.StartWidth, config.StartHeight, nil)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	registry := ecs.NewRegistry()

	ps := physics.NewSystem()
	ps.SetGravity(math.NewVec3(config.Gravity[0], config.Gravity[1], config.Gravity[2]))

	// The game sees the same registry and systems the engine drives.
	g.Registry = registry
	g.SystemManager = sm
	g.AssetManager = am

	return &Engine{
		currentStage:  EngineStageUninitialized,
		gameInstance:  g,
		clock:         core.NewClock(),
		platform:      platform.New(),
		assetManager:  am,
		systemManager: sm,
		registry:      registry,
		physicsSystem: ps,
		isRunning:     true,
		isSuspended:   false,
		width:         config.StartWidth,
		height:        config.StartHeight,
		lastTime:      0,
	}, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageBooting
	config := e.gameInstance.ApplicationConfig

	core.SetLogLevel(core.ParseLogLevel(config.LogLevel))

	if err := core.InputInitialize(); err != nil {
		return err
	}
	if !core.EventSystemInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}
	if err := core.MetricsInitialize(); err != nil {
		return err
	}

	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e.onEvent)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, e.onKey)
	core.EventRegister(core.EVENT_CODE_KEY_RELEASED, e.onKey)
	core.EventRegister(core.EVENT_CODE_RESIZED, e.onResized)

	if err := e.platform.Startup(config.Name,
		config.StartPosX, config.StartPosY,
		config.StartWidth, config.StartHeight); err != nil {
		return err
	}
	e.currentStage = EngineStageBootComplete

	e.currentStage = EngineStageInitializing
	assetDir := config.AssetDir
	if !filepath.IsAbs(assetDir) {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		assetDir = filepath.Join(wd, assetDir)
	}
	if err := e.assetManager.Initialize(assetDir); err != nil {
		return err
	}

	if err := e.systemManager.Initialize(); err != nil {
		return err
	}

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			return err
		}
	}
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
			return err
		}
	}
	e.currentStage = EngineStageInitialized
	return nil
}

func (e *Engine) Run() error {
	e.currentStage = EngineStageRunning
	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	// process queued events off the main thread
	go core.ProcessEvents()

	for e.isRunning {
		if !e.platform.PumpMessages() {
			e.isRunning = false
		}

		if e.isSuspended {
			continue
		}

		e.clock.Update()
		currentTime := e.clock.Elapsed()
		delta := currentTime - e.lastTime
		frameStartTime := platform.GetAbsoluteTime()

		// Simulation first, then the game's own update, then rendering.
		e.physicsSystem.Update(e.registry, delta)

		if e.gameInstance.FnUpdate != nil {
			if err := e.gameInstance.FnUpdate(delta); err != nil {
				core.LogError("game update failed, shutting down: %s", err.Error())
				e.isRunning = false
				break
			}
		}

		packet := e.systemManager.BuildFrame(e.registry, delta)

		if e.gameInstance.FnRender != nil {
			if err := e.gameInstance.FnRender(packet, delta); err != nil {
				core.LogError("game render failed, shutting down: %s", err.Error())
				e.isRunning = false
				break
			}
		}

		if err := e.systemManager.DrawFrame(packet); err != nil {
			e.isRunning = false
			break
		}

		frameElapsedTime := platform.GetAbsoluteTime() - frameStartTime
		core.MetricsUpdate(frameElapsedTime)

		// NOTE: Input update/state copying should always be handled after
		// any input has been recorded, as the last thing in the frame.
		core.InputUpdate(delta)

		e.lastTime = currentTime
	}

	return nil
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	e.isRunning = false

	if err := core.EventSystemShutdown(); err != nil {
		return err
	}
	if err := core.InputShutdown(); err != nil {
		return err
	}
	if err := e.assetManager.Shutdown(); err != nil {
		return err
	}
	if err := e.systemManager.Shutdown(); err != nil {
		return err
	}
	return e.platform.Shutdown()
}

func (e *Engine) onEvent(context core.EventContext) {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("application quit event received, shutting down")
		e.isRunning = false
	}
}

func (e *Engine) onKey(context core.EventContext) {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong payload for event type %#x", uint16(context.Type))
		return
	}

	if context.Type == core.EVENT_CODE_KEY_PRESSED && ke.KeyCode == core.KEY_ESCAPE {
		// Technically firing an event to itself, but there may be other
		// listeners.
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_APPLICATION_QUIT,
		})
	}
}

func (e *Engine) onResized(context core.EventContext) {
	se, ok := context.Data.(*core.SystemEvent)
	if !ok {
		core.LogError("wrong payload for event type %#x", uint16(context.Type))
		return
	}

	if se.WindowWidth == e.width && se.WindowHeight == e.height {
		return
	}
	e.width = se.WindowWidth
	e.height = se.WindowHeight

	// A zero dimension means the window is minimized; suspend until it
	// comes back.
	if e.width == 0 || e.height == 0 {
		core.LogInfo("window minimized, suspending application")
		e.isSuspended = true
		return
	}
	e.isSuspended = false

	if err := e.systemManager.OnResize(e.width, e.height); err != nil {
		core.LogError(err.Error())
	}
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
			core.LogError(err.Error())
		}
	}
}

// GetFramebufferSize returns the width and height (in this order) of the
// application framebuffer.
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

// Stage reports the engine's current lifecycle stage.
func (e *Engine) Stage() Stage {
	return e.currentStage
}

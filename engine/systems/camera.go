package systems

import (
	"fmt"

	"github.com/spaghettifunk/kepler/engine/core"
	"github.com/spaghettifunk/kepler/engine/renderer/components"
)

// CameraSystem hands out named, reference-counted cameras. The default
// camera always exists and is never released.
type CameraSystem struct {
	Config        *CameraSystemConfig
	cameras       map[string]*components.CameraLookup
	DefaultCamera *components.Camera
}

type CameraSystemConfig struct {
	// MaxCameraCount is the maximum number of registered cameras, the
	// default camera excluded.
	MaxCameraCount uint16
}

func NewCameraSystem(config *CameraSystemConfig) (*CameraSystem, error) {
	if config.MaxCameraCount == 0 {
		err := fmt.Errorf("camera system config.MaxCameraCount must be > 0")
		core.LogError(err.Error())
		return nil, err
	}
	return &CameraSystem{
		Config:        config,
		cameras:       make(map[string]*components.CameraLookup, config.MaxCameraCount),
		DefaultCamera: components.NewCamera(),
	}, nil
}

func (cs *CameraSystem) Shutdown() error {
	cs.cameras = make(map[string]*components.CameraLookup)
	return nil
}

// Acquire returns the camera registered under name, creating it on first
// use. The reference count is incremented on every call.
func (cs *CameraSystem) Acquire(name string) (*components.Camera, error) {
	if name == components.DEFAULT_CAMERA_NAME {
		return cs.DefaultCamera, nil
	}

	lookup, ok := cs.cameras[name]
	if !ok {
		if len(cs.cameras) >= int(cs.Config.MaxCameraCount) {
			err := fmt.Errorf("camera system is full, adjust config to allow more than %d cameras", cs.Config.MaxCameraCount)
			core.LogError(err.Error())
			return nil, err
		}
		core.LogDebug("creating new camera named '%s'", name)
		lookup = &components.CameraLookup{Camera: components.NewCamera()}
		cs.cameras[name] = lookup
	}
	lookup.ReferenceCount++
	return lookup.Camera, nil
}

// Release decrements the reference count of the named camera and removes
// it once nothing holds it. Releasing the default camera is a no-op.
func (cs *CameraSystem) Release(name string) {
	if name == components.DEFAULT_CAMERA_NAME {
		return
	}
	lookup, ok := cs.cameras[name]
	if !ok {
		core.LogWarn("release of unknown camera '%s' ignored", name)
		return
	}
	lookup.ReferenceCount--
	if lookup.ReferenceCount == 0 {
		delete(cs.cameras, name)
	}
}

// GetDefault returns the fallback camera.
func (cs *CameraSystem) GetDefault() *components.Camera {
	return cs.DefaultCamera
}

package engine

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/kepler/engine/core"
)

// ApplicationConfig drives the host window, logging and simulation setup.
// Loaded from a TOML file when one exists, otherwise defaults apply.
type ApplicationConfig struct {
	// Window starting position, if applicable.
	StartPosX uint32 `toml:"start_pos_x"`
	StartPosY uint32 `toml:"start_pos_y"`
	// Window starting size.
	StartWidth  uint32 `toml:"start_width"`
	StartHeight uint32 `toml:"start_height"`
	// The application name used in windowing, if applicable.
	Name     string `toml:"name"`
	LogLevel string `toml:"log_level"`
	// AssetDir is the root of the watched asset tree.
	AssetDir string `toml:"asset_dir"`
	// Gravity applied to physics bodies, world units per second squared.
	Gravity [3]float32 `toml:"gravity"`
}

// DefaultApplicationConfig returns the configuration used when no file
// overrides it.
func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		StartPosX:   100,
		StartPosY:   100,
		StartWidth:  1280,
		StartHeight: 720,
		Name:        "Kepler",
		LogLevel:    "info",
		AssetDir:    "assets",
		Gravity:     [3]float32{0, -9.81, 0},
	}
}

// LoadApplicationConfig reads the TOML file at path over the defaults.
// A missing file is not an error; a malformed one is.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	config := DefaultApplicationConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			core.LogInfo("no config file at '%s', using defaults", path)
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(raw, config); err != nil {
		return nil, err
	}
	return config, nil
}

package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/kepler/engine/assets/loaders"
	"github.com/spaghettifunk/kepler/engine/core"
	"github.com/spaghettifunk/kepler/engine/renderer/metadata"
)

type AssetInfo struct {
	Path       string
	Type       metadata.ResourceType
	LastLoaded time.Time
}

// AssetManager indexes an asset directory tree, watches it with fsnotify
// and reloads entries when files change on disk. Hot-reload events are
// forwarded on Events for anyone holding a loaded resource.
type AssetManager struct {
	baseDir string
	assets  map[string]AssetInfo
	loaders map[metadata.ResourceType]Loader

	mutex sync.RWMutex

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool

	// Events receives the path of every created or modified asset.
	Events chan string
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &AssetManager{
		assets:   make(map[string]AssetInfo),
		loaders:  make(map[metadata.ResourceType]Loader),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
		Events:   make(chan string, 64),
	}, nil
}

// Initialize indexes the directory tree, starts the watch goroutine and
// registers the built-in loaders.
func (am *AssetManager) Initialize(assetsDir string) error {
	am.baseDir = assetsDir

	am.registerLoader(metadata.ResourceTypeImage, &loaders.ImageLoader{})
	am.registerLoader(metadata.ResourceTypeHeightmap, &loaders.HeightmapLoader{})
	am.registerLoader(metadata.ResourceTypeMaterial, &loaders.MaterialLoader{})
	am.registerLoader(metadata.ResourceTypeBitmapFont, &loaders.BitmapFontLoader{})

	if _, err := os.Stat(assetsDir); os.IsNotExist(err) {
		core.LogWarn("asset directory '%s' does not exist, hot-reload disabled", assetsDir)
		go am.start()
		return nil
	}

	if err := am.addRecursive(assetsDir); err != nil {
		return err
	}

	go am.start()
	return nil
}

func (am *AssetManager) Shutdown() error {
	am.mutex.Lock()
	defer am.mutex.Unlock()
	if am.isClosed {
		return nil
	}
	am.isClosed = true
	close(am.done)
	return nil
}

// addRecursive indexes and watches the named directory and everything
// below it.
func (am *AssetManager) addRecursive(name string) error {
	if am.isClosed {
		return errors.New("asset manager already closed")
	}
	return filepath.Walk(name, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return am.fsnotify.Add(walkPath)
		}
		am.handleFileEvent(walkPath)
		return nil
	})
}

func (am *AssetManager) registerLoader(assetType metadata.ResourceType, loader Loader) {
	am.loaders[assetType] = loader
}

// LoadAsset loads the named asset with the loader registered for its
// type. The name is relative to the asset directory.
func (am *AssetManager) LoadAsset(name string, resourceType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	path := filepath.Join(am.baseDir, name)

	am.mutex.RLock()
	asset, exists := am.assets[path]
	am.mutex.RUnlock()
	if !exists {
		return nil, fmt.Errorf("asset '%s': %w", path, core.ErrResourceNotFound)
	}

	// The index knows the file's type from its extension; heightmaps are
	// images loaded with different params, so the caller's type wins when
	// the two are compatible.
	loaderType := resourceType
	if loaderType == metadata.ResourceTypeHeightmap && asset.Type != metadata.ResourceTypeImage && asset.Type != metadata.ResourceTypeHeightmap {
		return nil, fmt.Errorf("asset '%s' is not an image, cannot load as heightmap", path)
	}

	loader, ok := am.loaders[loaderType]
	if !ok {
		return nil, fmt.Errorf("no loader registered for asset type %d", loaderType)
	}

	am.mutex.Lock()
	asset.LastLoaded = time.Now()
	am.assets[path] = asset
	am.mutex.Unlock()

	return loader.Load(path, loaderType, params)
}

func (am *AssetManager) UnloadAsset(asset *metadata.Resource) error {
	if asset == nil {
		return nil
	}
	loader, ok := am.loaders[asset.Type]
	if !ok {
		return nil
	}
	return loader.Unload(asset)
}

func (am *AssetManager) start() {
	for {
		select {
		case e := <-am.fsnotify.Events:
			if s, err := os.Stat(e.Name); err == nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					if err := am.addRecursive(e.Name); err != nil {
						core.LogWarn("failed to watch new directory '%s': %s", e.Name, err.Error())
					}
				}
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				am.handleFileEvent(e.Name)
				select {
				case am.Events <- e.Name:
				default:
				}
			}
			if e.Op&fsnotify.Remove != 0 {
				am.removeAsset(e.Name)
				am.fsnotify.Remove(e.Name)
			}

		case err := <-am.fsnotify.Errors:
			if err != nil {
				core.LogError(err.Error())
			}

		case <-am.done:
			am.fsnotify.Close()
			close(am.Events)
			return
		}
	}
}

func (am *AssetManager) handleFileEvent(path string) {
	assetType := determineAssetType(path)
	if assetType == metadata.ResourceTypeNone {
		return
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.assets[path] = AssetInfo{
		Path:       path,
		Type:       assetType,
		LastLoaded: time.Now(),
	}
}

func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()
	delete(am.assets, path)
}

func determineAssetType(path string) metadata.ResourceType {
	switch filepath.Ext(path) {
	case ".png", ".jpg":
		return metadata.ResourceTypeImage
	case ".toml":
		return metadata.ResourceTypeMaterial
	case ".fnt":
		return metadata.ResourceTypeBitmapFont
	case ".txt":
		return metadata.ResourceTypeText
	default:
		return metadata.ResourceTypeNone
	}
}

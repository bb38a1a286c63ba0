package assets

import "github.com/spaghettifunk/kepler/engine/renderer/metadata"

// Loader decodes one resource type from disk. The params argument carries
// loader-specific options, e.g. *metadata.ImageResourceParams.
type Loader interface {
	Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error)
	Unload(*metadata.Resource) error
}

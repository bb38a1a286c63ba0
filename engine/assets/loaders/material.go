package loaders

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/kepler/engine/renderer/metadata"
)

// MaterialLoader parses TOML material files into MaterialConfig records.
type MaterialLoader struct{}

func (ml *MaterialLoader) Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := &metadata.MaterialConfig{}
	if err := toml.Unmarshal(raw, config); err != nil {
		return nil, fmt.Errorf("failed to parse material '%s': %w", path, err)
	}
	if config.Name == "" {
		return nil, fmt.Errorf("material '%s' has no name", path)
	}

	return &metadata.Resource{
		ID:       uuid.New(),
		Name:     config.Name,
		FullPath: path,
		Type:     metadata.ResourceTypeMaterial,
		DataSize: uint64(len(raw)),
		Data:     config,
	}, nil
}

func (ml *MaterialLoader) Unload(resource *metadata.Resource) error {
	if resource == nil {
		return nil
	}
	resource.Data = nil
	resource.DataSize = 0
	return nil
}

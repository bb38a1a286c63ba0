package metadata

import "github.com/google/uuid"

type ResourceType int

// ResourceTypeNone marks files the asset manager does not track.
const ResourceTypeNone ResourceType = -1

// Pre-defined resource types.
const (
	ResourceTypeText ResourceType = iota
	ResourceTypeBinary
	ResourceTypeImage
	ResourceTypeMaterial
	ResourceTypeHeightmap
	ResourceTypeBitmapFont
	// ResourceTypeCustom is used by loaders outside the core engine.
	ResourceTypeCustom
)

// Resource is a loaded asset: the raw decoded data plus where it came from.
type Resource struct {
	ID       uuid.UUID
	Name     string
	FullPath string
	Type     ResourceType
	DataSize uint64
	Data     interface{}
}

// ImageResourceParams carries loader options for image resources.
type ImageResourceParams struct {
	FlipY bool
	// RescaleTo forces the decoded image to the given square dimension,
	// 0 leaves it untouched. Heightmaps use this to match the terrain grid.
	RescaleTo int
}

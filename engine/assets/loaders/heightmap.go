package loaders

import (
	"github.com/google/uuid"

	"github.com/spaghettifunk/kepler/engine/renderer/metadata"
)

// HeightmapLoader decodes a grayscale image into terrain height samples.
// Red channel luminance maps onto [0, 1]; the terrain's HeightScale turns
// that into world units.
type HeightmapLoader struct{}

func (hl *HeightmapLoader) Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	opts := &metadata.ImageResourceParams{}
	if p, ok := params.(*metadata.ImageResourceParams); ok && p != nil {
		opts = p
	}

	rgba, err := decodeRGBA(path, opts)
	if err != nil {
		return nil, err
	}

	bounds := rgba.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	samples := make([]float32, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := rgba.Pix[y*rgba.Stride+x*4]
			samples[y*width+x] = float32(r) / 255.0
		}
	}

	return &metadata.Resource{
		ID:       uuid.New(),
		Name:     path,
		FullPath: path,
		Type:     metadata.ResourceTypeHeightmap,
		DataSize: uint64(len(samples) * 4),
		Data:     samples,
	}, nil
}

func (hl *HeightmapLoader) Unload(resource *metadata.Resource) error {
	if resource == nil {
		return nil
	}
	resource.Data = nil
	resource.DataSize = 0
	return nil
}

package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/spaghettifunk/kepler/engine/renderer/metadata"
)

// ImageLoader decodes PNG and JPEG files into RGBA textures.
type ImageLoader struct{}

func (il *ImageLoader) Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	opts := &metadata.ImageResourceParams{}
	if p, ok := params.(*metadata.ImageResourceParams); ok && p != nil {
		opts = p
	}

	rgba, err := decodeRGBA(path, opts)
	if err != nil {
		return nil, err
	}

	bounds := rgba.Bounds()
	texture := metadata.NewTexture(path, uint32(bounds.Dx()), uint32(bounds.Dy()), 4)
	copy(texture.Pixels, rgba.Pix)

	return &metadata.Resource{
		ID:       texture.ID,
		Name:     path,
		FullPath: path,
		Type:     metadata.ResourceTypeImage,
		DataSize: uint64(len(texture.Pixels)),
		Data:     texture,
	}, nil
}

func (il *ImageLoader) Unload(resource *metadata.Resource) error {
	if resource == nil || resource.Data == nil {
		return nil
	}
	if texture, ok := resource.Data.(*metadata.Texture); ok {
		texture.Pixels = nil
	}
	resource.Data = nil
	resource.DataSize = 0
	return nil
}

// decodeRGBA reads the file, converts to RGBA and applies the loader
// options (vertical flip, square rescale).
func decodeRGBA(path string, opts *metadata.ImageResourceParams) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image '%s': %w", path, err)
	}

	bounds := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)

	if opts.RescaleTo > 0 && (rgba.Bounds().Dx() != opts.RescaleTo || rgba.Bounds().Dy() != opts.RescaleTo) {
		scaled := image.NewRGBA(image.Rect(0, 0, opts.RescaleTo, opts.RescaleTo))
		draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), rgba, rgba.Bounds(), draw.Src, nil)
		rgba = scaled
	}

	if opts.FlipY {
		flipVertical(rgba)
	}

	return rgba, nil
}

func flipVertical(img *image.RGBA) {
	height := img.Bounds().Dy()
	stride := img.Stride
	tmp := make([]uint8, stride)
	for y := 0; y < height/2; y++ {
		top := img.Pix[y*stride : (y+1)*stride]
		bottom := img.Pix[(height-1-y)*stride : (height-y)*stride]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

package loaders

import (
	"github.com/fzipp/bmfont"
	"github.com/google/uuid"

	"github.com/spaghettifunk/kepler/engine/renderer/metadata"
)

// BitmapFontLoader reads AngelCode .fnt descriptors.
type BitmapFontLoader struct{}

func (fl *BitmapFontLoader) Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	font, err := bmfont.Load(path)
	if err != nil {
		return nil, err
	}

	desc := font.Descriptor
	data := &metadata.BitmapFontResourceData{
		Data: &metadata.FontData{
			Face:       desc.Info.Face,
			Size:       uint32(desc.Info.Size),
			LineHeight: int32(desc.Common.LineHeight),
			Baseline:   int32(desc.Common.Base),
			AtlasSizeX: int32(desc.Common.ScaleW),
			AtlasSizeY: int32(desc.Common.ScaleH),
			Glyphs:     make([]*metadata.FontGlyph, 0, len(desc.Chars)),
			Kernings:   make([]*metadata.FontKerning, 0, len(desc.Kerning)),
		},
		Pages: make([]*metadata.BitmapFontPage, 0, len(desc.Pages)),
	}

	for _, p := range desc.Pages {
		data.Pages = append(data.Pages, &metadata.BitmapFontPage{
			ID:   int8(p.ID),
			File: p.File,
		})
	}

	for _, g := range desc.Chars {
		data.Data.Glyphs = append(data.Data.Glyphs, &metadata.FontGlyph{
			Codepoint: g.ID,
			X:         uint16(g.X),
			Y:         uint16(g.Y),
			Width:     uint16(g.Width),
			Height:    uint16(g.Height),
			XOffset:   int16(g.XOffset),
			YOffset:   int16(g.YOffset),
			XAdvance:  int16(g.XAdvance),
			PageID:    uint8(g.Page),
		})
	}

	for pair, k := range desc.Kerning {
		data.Data.Kernings = append(data.Data.Kernings, &metadata.FontKerning{
			Codepoint0: pair.First,
			Codepoint1: pair.Second,
			Amount:     int16(k.Amount),
		})
	}

	return &metadata.Resource{
		ID:       uuid.New(),
		Name:     desc.Info.Face,
		FullPath: path,
		Type:     metadata.ResourceTypeBitmapFont,
		DataSize: uint64(len(desc.Chars)),
		Data:     data,
	}, nil
}

func (fl *BitmapFontLoader) Unload(resource *metadata.Resource) error {
	if resource == nil {
		return nil
	}
	if data, ok := resource.Data.(*metadata.BitmapFontResourceData); ok && data.Data != nil {
		data.Data.Glyphs = nil
		data.Data.Kernings = nil
		data.Pages = nil
	}
	resource.Data = nil
	resource.DataSize = 0
	return nil
}

package loaders

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/kepler/engine/renderer/metadata"
)

const testFontDescriptor = `info face="Mono" size=32 bold=0 italic=0 charset="" unicode=1 stretchH=100 smooth=1 aa=1 padding=0,0,0,0 spacing=1,1 outline=0
common lineHeight=36 base=29 scaleW=256 scaleH=256 pages=1 packed=0 alphaChnl=1 redChnl=0 greenChnl=0 blueChnl=0
page id=0 file="mono_0.png"
chars count=2
char id=65 x=10 y=20 width=30 height=40 xoffset=1 yoffset=2 xadvance=33 page=0 chnl=15
char id=66 x=50 y=20 width=28 height=40 xoffset=1 yoffset=2 xadvance=31 page=0 chnl=15
kernings count=1
kerning first=65 second=66 amount=-2
`

func writeFontFiles(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	path := filepath.Join(dir, "mono.fnt")
	require.NoError(t, os.WriteFile(path, []byte(testFontDescriptor), 0o644))

	sheet, err := os.Create(filepath.Join(dir, "mono_0.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(sheet, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	require.NoError(t, sheet.Close())

	return path
}

func TestBitmapFontLoaderParsesDescriptor(t *testing.T) {
	path := writeFontFiles(t)

	loader := &BitmapFontLoader{}
	resource, err := loader.Load(path, metadata.ResourceTypeBitmapFont, nil)
	require.NoError(t, err)
	assert.Equal(t, metadata.ResourceTypeBitmapFont, resource.Type)
	assert.Equal(t, "Mono", resource.Name)

	data, ok := resource.Data.(*metadata.BitmapFontResourceData)
	require.True(t, ok)
	assert.Equal(t, uint32(32), data.Data.Size)
	assert.Equal(t, int32(36), data.Data.LineHeight)
	assert.Equal(t, int32(29), data.Data.Baseline)
	assert.Equal(t, int32(256), data.Data.AtlasSizeX)

	require.Len(t, data.Pages, 1)
	assert.Equal(t, "mono_0.png", data.Pages[0].File)

	require.Len(t, data.Data.Glyphs, 2)
	glyphs := make(map[rune]*metadata.FontGlyph)
	for _, g := range data.Data.Glyphs {
		glyphs[g.Codepoint] = g
	}
	require.Contains(t, glyphs, 'A')
	assert.Equal(t, uint16(30), glyphs['A'].Width)
	assert.Equal(t, int16(33), glyphs['A'].XAdvance)

	require.Len(t, data.Data.Kernings, 1)
	kerning := data.Data.Kernings[0]
	assert.Equal(t, 'A', kerning.Codepoint0)
	assert.Equal(t, 'B', kerning.Codepoint1)
	assert.Equal(t, int16(-2), kerning.Amount)
}

func TestBitmapFontLoaderMissingFile(t *testing.T) {
	loader := &BitmapFontLoader{}
	_, err := loader.Load("/does/not/exist.fnt", metadata.ResourceTypeBitmapFont, nil)
	assert.Error(t, err)
}

func TestBitmapFontLoaderUnloadClearsData(t *testing.T) {
	path := writeFontFiles(t)

	loader := &BitmapFontLoader{}
	resource, err := loader.Load(path, metadata.ResourceTypeBitmapFont, nil)
	require.NoError(t, err)

	require.NoError(t, loader.Unload(resource))
	assert.Nil(t, resource.Data)
}

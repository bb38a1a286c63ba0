package metadata

import "github.com/google/uuid"

// DefaultTextureName is the default texture name.
const DefaultTextureName string = "default"

type TextureFlag uint8

const (
	// TextureFlagHasTransparency indicates the texture has an alpha channel.
	TextureFlagHasTransparency TextureFlag = 0x1
	// TextureFlagIsWriteable indicates the texture can be rendered to.
	TextureFlagIsWriteable TextureFlag = 0x2
)

// Texture holds decoded pixel data plus the metadata a backend needs to
// upload it. Pixels are tightly packed, row-major, RGBA order.
type Texture struct {
	ID           uuid.UUID
	Name         string
	Width        uint32
	Height       uint32
	ChannelCount uint8
	Flags        TextureFlag
	// Generation is incremented on every hot reload.
	Generation uint32
	Pixels     []uint8
}

// NewTexture allocates a texture record with a fresh id and zeroed pixels.
func NewTexture(name string, width, height uint32, channelCount uint8) *Texture {
	return &Texture{
		ID:           uuid.New(),
		Name:         name,
		Width:        width,
		Height:       height,
		ChannelCount: channelCount,
		Pixels:       make([]uint8, int(width)*int(height)*int(channelCount)),
	}
}

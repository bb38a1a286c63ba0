package metadata

import "github.com/spaghettifunk/kepler/engine/math"

// DefaultMaterialName is the name of the default material.
const DefaultMaterialName string = "default"

// MaterialConfig is the on-disk shape of a material, loaded from a TOML
// file by the material loader or created in code.
type MaterialConfig struct {
	Name        string     `toml:"name"`
	ShaderName  string     `toml:"shader"`
	AutoRelease bool       `toml:"auto_release"`
	Albedo      [3]float32 `toml:"albedo"`
	Roughness   float32    `toml:"roughness"`
	Metallic    float32    `toml:"metallic"`
	Emissive    float32    `toml:"emissive"`
	DiffuseMap  string     `toml:"diffuse_map"`
}

// Material represents surface properties used by the forward pass and the
// GI approximation (albedo bleeds onto neighbors, emissive feeds bloom).
type Material struct {
	ID         uint32
	Generation uint32
	Name       string
	ShaderName string
	Albedo     math.Vec3
	Roughness  float32
	Metallic   float32
	// Emissive above 0 makes the surface a bloom source.
	Emissive   float32
	DiffuseMap *Texture
}

// MaterialFromConfig builds a runtime material from its config record.
// Texture resolution is left to the caller since it needs the asset manager.
func MaterialFromConfig(cfg *MaterialConfig) *Material {
	return &Material{
		Name:       cfg.Name,
		ShaderName: cfg.ShaderName,
		Albedo:     math.NewVec3(cfg.Albedo[0], cfg.Albedo[1], cfg.Albedo[2]),
		Roughness:  cfg.Roughness,
		Metallic:   cfg.Metallic,
		Emissive:   cfg.Emissive,
	}
}

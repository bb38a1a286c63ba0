package terrain

import (
	"fmt"

	"github.com/chewxy/math32"
	"golang.org/x/exp/rand"

	"github.com/spaghettifunk/kepler/engine/ecs"
	"github.com/spaghettifunk/kepler/engine/math"
	"github.com/spaghettifunk/kepler/engine/renderer/metadata"
)

// Generator produces heightfields and the matching render geometry. The
// noise is a layered sin/cos approximation rather than true Perlin noise;
// it is cheap, seamless over the grid and good enough for rolling hills.
type Generator struct {
	// Octaves layered per sample; each one doubles frequency and halves
	// contribution via persistence.
	Octaves       int
	BaseFrequency float32
	Persistence   float32
	// Jitter adds a small random offset to the sample space so two
	// generated terrains do not look identical. Zero disables it.
	Jitter float32

	rng *rand.Rand
}

func NewGenerator(seed uint64) *Generator {
	return &Generator{
		Octaves:       6,
		BaseFrequency: 0.01,
		Persistence:   0.5,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

// Generate fills the terrain's heightmap with raw (unscaled) samples. The
// heightmap always comes out at exactly Width*Height entries, which is the
// invariant the physics height sampler relies on.
func (g *Generator) Generate(terrain *ecs.TerrainComponent) error {
	if terrain.Width <= 0 || terrain.Height <= 0 {
		return fmt.Errorf("terrain grid must be positive, got %dx%d", terrain.Width, terrain.Height)
	}

	offX, offZ := float32(0), float32(0)
	if g.Jitter > 0 {
		offX = (g.rng.Float32()*2 - 1) * g.Jitter
		offZ = (g.rng.Float32()*2 - 1) * g.Jitter
	}

	terrain.Heightmap = make([]float32, terrain.Width*terrain.Height)
	for z := 0; z < terrain.Height; z++ {
		for x := 0; x < terrain.Width; x++ {
			terrain.Heightmap[z*terrain.Width+x] = g.sample(float32(x)+offX, float32(z)+offZ)
		}
	}
	return nil
}

// sample layers several sin/cos terms per octave: a base swell, medium
// detail, roughness, squared ridge noise for sharper hilltops and a domain
// warp for organic shapes. The result is normalized to roughly [-1, 1] and
// then biased through a power curve so hills come out sharper than valleys.
func (g *Generator) sample(x, z float32) float32 {
	total := float32(0.0)
	frequency := g.BaseFrequency
	amplitude := float32(1.0)
	maxAmplitude := float32(0.0)

	for i := 0; i < g.Octaves; i++ {
		sampleX := x * frequency
		sampleZ := z * frequency

		noise := math32.Sin(sampleX) * math32.Cos(sampleZ)

		noise += 0.5 * math32.Sin(sampleX*2.3+sampleZ*1.7) *
			math32.Cos(sampleZ*2.1-sampleX*1.3)

		noise += 0.25 * math32.Sin(sampleX*4.7) * math32.Cos(sampleZ*3.9) *
			math32.Sin(sampleX*1.9+sampleZ*2.8)

		ridge := 1.0 - math32.Abs(math32.Sin(sampleX*1.5)*math32.Cos(sampleZ*1.2))
		noise += 0.3 * ridge * ridge

		warpX := sampleX + 0.5*noise
		warpZ := sampleZ + 0.5*noise
		noise += 0.2 * math32.Sin(warpX*0.8) * math32.Cos(warpZ*0.8)

		total += noise * amplitude
		maxAmplitude += amplitude
		amplitude *= g.Persistence
		frequency *= 2.0
	}

	height := total / maxAmplitude
	if height > 0 {
		return math32.Pow(height, 0.7)
	}
	return -math32.Pow(-height, 1.3)
}

// BuildGeometryConfig turns a populated terrain into renderable geometry:
// one vertex per grid sample, two triangles per cell, smooth normals
// accumulated per face and normalized afterwards.
func BuildGeometryConfig(terrain *ecs.TerrainComponent, name, materialName string) (*metadata.GeometryConfig, error) {
	if len(terrain.Heightmap) != terrain.Width*terrain.Height {
		return nil, fmt.Errorf("heightmap has %d samples, want %d", len(terrain.Heightmap), terrain.Width*terrain.Height)
	}

	width, height := terrain.Width, terrain.Height
	vertices := make([]math.Vertex3D, 0, width*height)

	for z := 0; z < height; z++ {
		for x := 0; x < width; x++ {
			vertices = append(vertices, math.Vertex3D{
				Position: math.NewVec3(
					(float32(x)-float32(width)/2.0)*terrain.Scale,
					terrain.Heightmap[z*width+x]*terrain.HeightScale,
					(float32(z)-float32(height)/2.0)*terrain.Scale,
				),
				Normal: math.NewVec3Up(),
				Texcoord: math.NewVec2(
					float32(x)/float32(maxInt(width-1, 1)),
					float32(z)/float32(maxInt(height-1, 1)),
				),
			})
		}
	}

	indices := make([]uint32, 0, (width-1)*(height-1)*6)
	for z := 0; z < height-1; z++ {
		for x := 0; x < width-1; x++ {
			topLeft := uint32(z*width + x)
			topRight := topLeft + 1
			bottomLeft := uint32((z+1)*width + x)
			bottomRight := bottomLeft + 1

			indices = append(indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}

	applySmoothNormals(vertices, indices)

	minExtents, maxExtents := extents(vertices)

	return &metadata.GeometryConfig{
		VertexCount:  uint32(len(vertices)),
		Vertices:     vertices,
		IndexCount:   uint32(len(indices)),
		Indices:      indices,
		MinExtents:   minExtents,
		MaxExtents:   maxExtents,
		Name:         name,
		MaterialName: materialName,
	}, nil
}

// applySmoothNormals accumulates every face normal onto its three vertices
// and renormalizes, giving soft shading across cell boundaries.
func applySmoothNormals(vertices []math.Vertex3D, indices []uint32) {
	for i := range vertices {
		vertices[i].Normal = math.NewVec3Zero()
	}

	for i := 0; i+2 < len(indices); i += 3 {
		v1 := vertices[indices[i]].Position
		v2 := vertices[indices[i+1]].Position
		v3 := vertices[indices[i+2]].Position

		faceNormal := v2.Sub(v1).Cross(v3.Sub(v1)).Normalized()

		for j := 0; j < 3; j++ {
			idx := indices[i+j]
			vertices[idx].Normal = vertices[idx].Normal.Add(faceNormal)
		}
	}

	for i := range vertices {
		vertices[i].Normal = vertices[i].Normal.Normalized()
	}
}

func extents(vertices []math.Vertex3D) (math.Vec3, math.Vec3) {
	if len(vertices) == 0 {
		return math.NewVec3Zero(), math.NewVec3Zero()
	}
	minExt := vertices[0].Position
	maxExt := vertices[0].Position
	for _, v := range vertices[1:] {
		minExt.X = math32.Min(minExt.X, v.Position.X)
		minExt.Y = math32.Min(minExt.Y, v.Position.Y)
		minExt.Z = math32.Min(minExt.Z, v.Position.Z)
		maxExt.X = math32.Max(maxExt.X, v.Position.X)
		maxExt.Y = math32.Max(maxExt.Y, v.Position.Y)
		maxExt.Z = math32.Max(maxExt.Z, v.Position.Z)
	}
	return minExt, maxExt
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

// Mat4 is a 4x4 column-major matrix, typically used to represent
// object transformations.
type Mat4 struct {
	Data [16]float32
}

// Vertex3D represents a single vertex in 3D space.
type Vertex3D struct {
	Position Vec3
	Normal   Vec3
	Texcoord Vec2
}

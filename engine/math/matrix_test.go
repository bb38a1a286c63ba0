package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertMat4InDelta(t *testing.T, expected, actual Mat4, delta float64) {
	t.Helper()
	for i := 0; i < 16; i++ {
		assert.InDelta(t, float64(expected.Data[i]), float64(actual.Data[i]), delta, "element %d", i)
	}
}

func TestIdentityInverseIsIdentity(t *testing.T) {
	identity := NewMat4Identity()
	assertMat4InDelta(t, identity, identity.Inverse(), 1e-6)
}

func TestTranslationInverseNegates(t *testing.T) {
	translation := NewMat4Translation(NewVec3(4, -2, 7))
	inverse := translation.Inverse()

	assert.InDelta(t, -4.0, float64(inverse.Data[12]), 1e-5)
	assert.InDelta(t, 2.0, float64(inverse.Data[13]), 1e-5)
	assert.InDelta(t, -7.0, float64(inverse.Data[14]), 1e-5)
}

func TestInverseOfCompositeTransform(t *testing.T) {
	m := NewMat4EulerXYZ(0.3, -1.1, 0.7).Mul(NewMat4Translation(NewVec3(5, 1, -3)))
	product := m.Mul(m.Inverse())
	assertMat4InDelta(t, NewMat4Identity(), product, 1e-4)
}

func TestTransposedTwiceIsOriginal(t *testing.T) {
	m := NewMat4EulerXYZ(0.5, 0.25, -0.4).Mul(NewMat4Translation(NewVec3(1, 2, 3)))
	assertMat4InDelta(t, m, m.Transposed().Transposed(), 1e-7)
}

func TestEulerXYZComposesSingleAxisRotations(t *testing.T) {
	x, y, z := float32(0.2), float32(0.4), float32(0.6)
	expected := NewMat4EulerX(x).Mul(NewMat4EulerY(y)).Mul(NewMat4EulerZ(z))
	assertMat4InDelta(t, expected, NewMat4EulerXYZ(x, y, z), 1e-5)
}

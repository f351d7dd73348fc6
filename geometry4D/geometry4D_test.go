package geometry4D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotations(t *testing.T) {
	var (
		R = PoleRotation()
		D = DisplayRotation()
	)
	assert.True(t, R.IsOrthogonal(1.e-12))
	assert.True(t, D.IsOrthogonal(1.e-12))
	// Orthogonal transforms preserve norms
	v := Vec4{0.5, -0.25, 0.75, 0.1}
	assert.InDelta(t, v.Norm(), R.MulVec(v).Norm(), 1.e-12)
	// A non-orthogonal transform is rejected at construction
	bad := Mat4{{2, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
	assert.False(t, bad.IsOrthogonal(1.e-12))
	assert.Panics(t, func() { bad.MustOrthogonal(1.e-12) })
}

func TestCross4(t *testing.T) {
	var (
		a = Vec4{1, 2, 3, 4}
		b = Vec4{0, 1, -1, 2}
		c = Vec4{3, 0, 1, 1}
	)
	n := Cross4(a, b, c)
	assert.InDelta(t, 0, n.Dot(a), 1.e-12)
	assert.InDelta(t, 0, n.Dot(b), 1.e-12)
	assert.InDelta(t, 0, n.Dot(c), 1.e-12)
	// Against the canonical basis it reduces to the last axis
	e := Cross4(Vec4{1, 0, 0, 0}, Vec4{0, 1, 0, 0}, Vec4{0, 0, 1, 0})
	assert.InDelta(t, 0, e[0], 1.e-15)
	assert.InDelta(t, 0, e[1], 1.e-15)
	assert.InDelta(t, 0, e[2], 1.e-15)
	assert.InDelta(t, -1, e[3], 1.e-15)
}

func TestStereographic(t *testing.T) {
	var (
		st = NewStereographic()
	)
	// Antipode of the pole maps to the origin with scale 1/2
	c, scale := st.Project(Vec4{0, 0, 0, -1})
	assert.InDelta(t, 0.5, scale, 1.e-15)
	assert.Equal(t, Vec3{0, 0, 0}, c)
	// Equatorial point is fixed
	c, scale = st.Project(Vec4{1, 0, 0, 0})
	assert.InDelta(t, 1., scale, 1.e-15)
	assert.InDelta(t, 1., c[0], 1.e-15)
	// Near the pole the projection reports an undefined cell
	c, scale = st.Project(Vec4{0.1, 0, 0, 0.995})
	assert.True(t, math.IsNaN(scale))
	assert.True(t, math.IsNaN(c[0]))
}

func TestNormalizeGuards(t *testing.T) {
	n := Vec3{1.e-15, 0, 0}.Normalize()
	assert.True(t, math.IsNaN(n[0]))
	n4 := Vec4{0, 0, 0, 0}.Normalize()
	assert.True(t, math.IsNaN(n4[3]))
	u := Vec3{0, 3, 4}.Normalize()
	assert.InDelta(t, 1., u.Norm(), 1.e-15)
}

package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddSub(t *testing.T) {
	a := Vector3{1, 2, 3}
	b := Vector3{4, 5, 6}

	assert.Equal(t, Vector3{5, 7, 9}, a.Add(b))
	assert.Equal(t, Vector3{-3, -3, -3}, a.Sub(b))
}

func TestScaleDiv(t *testing.T) {
	a := Vector3{2, 4, 6}
	assert.Equal(t, Vector3{4, 8, 12}, a.Scale(2))
	assert.Equal(t, Vector3{1, 2, 3}, a.Div(2))
}

func TestDotLen(t *testing.T) {
	a := Vector3{3, 4, 0}
	assert.Equal(t, 25.0, a.Dot(a))
	assert.Equal(t, 25.0, a.Len2())
	assert.Equal(t, 5.0, a.Len())
}

func TestDist2(t *testing.T) {
	a := Vector3{0, 0, 0}
	b := Vector3{1, 2, 2}
	assert.Equal(t, 9.0, a.Dist2(b))
}

func TestAddAtNoAlias(t *testing.T) {
	a := Vector3{1, 1, 1}
	b := Vector3{2, 2, 2}
	var out Vector3
	a.AddAt(b, &out)
	assert.Equal(t, Vector3{3, 3, 3}, out)
}

func TestIsFinite(t *testing.T) {
	assert.True(t, Vector3{1, 2, 3}.IsFinite())
	assert.False(t, Vector3{math.NaN(), 0, 0}.IsFinite())
	assert.False(t, Vector3{math.Inf(1), 0, 0}.IsFinite())
}

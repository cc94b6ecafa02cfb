package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Normalize(t *testing.T) {
	n := V(3, 4).Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)
	assert.InDelta(t, 1.0, n.Len(), 1e-9)

	// Zero vector stays put instead of producing NaN.
	z := V(0, 0).Normalize()
	assert.True(t, z.IsZero())
	assert.False(t, math.IsNaN(z.X))
}

func TestVec2Arithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(3, -1)

	assert.Equal(t, V(4, 1), a.Add(b))
	assert.Equal(t, V(2, 4), a.Scale(2))
}

func TestBodyOverlaps(t *testing.T) {
	box := func(x, y, w, h float64) Body {
		return Body{Pos: V(x, y), Size: V(w, h)}
	}

	tests := []struct {
		name     string
		a, b     Body
		expected bool
	}{
		{"overlapping", box(0, 0, 10, 10), box(5, 5, 10, 10), true},
		{"disjoint horizontal", box(0, 0, 10, 10), box(15, 0, 10, 10), false},
		{"disjoint vertical", box(0, 0, 10, 10), box(0, 15, 10, 10), false},
		{"touching right edge", box(0, 0, 10, 10), box(10, 0, 10, 10), false},
		{"touching top edge", box(0, 0, 10, 10), box(0, 10, 10, 10), false},
		{"contained", box(0, 0, 20, 20), box(5, 5, 2, 2), true},
		{"sliver overlap", box(0, 0, 10, 10), box(9.999, 9.999, 1, 1), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.expected, tc.b.Overlaps(tc.a), "overlap must be symmetric")
		})
	}
}

func TestBodyEdges(t *testing.T) {
	b := Body{Pos: V(2, 3), Size: V(10, 4)}

	assert.Equal(t, 12.0, b.Right())
	assert.Equal(t, 7.0, b.Top())
	assert.Equal(t, V(7, 5), b.Center())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, ClampF(-5.5, 0, 10))
	assert.Equal(t, 10.0, ClampF(15.5, 0, 10))
	assert.Equal(t, 2.5, ClampF(2.5, 0, 10))
}

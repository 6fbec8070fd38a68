package winepaint

import (
	"math"
	"testing"
)

// testFrame builds a frame whose canvas is filled with fill instead of the
// base layer, so a single stage can be checked in isolation.
func testFrame(t *testing.T, rec AttributeRecord, size int, fill RGB) *Frame {
	t.Helper()
	f := NewFrame(rec, size, DefaultSeed, DefaultTuning())
	f.Canvas.Fill(fill)
	return f
}

// pixelAtT returns the first pixel on the center row, right of center,
// whose radius is at least t.
func pixelAtT(g *Geometry, t float64) (int, int) {
	y := g.Size / 2
	for x := g.Size / 2; x < g.Size; x++ {
		if g.T(x, y) >= t {
			return x, y
		}
	}
	return g.Size - 1, y
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

package winepaint

import "math"

// Geometry holds the polar field of a square canvas: for every pixel the
// normalized radius t (0 at the center, 1 at the nominal disk edge) and
// the polar angle. It is computed per render and never shared.
type Geometry struct {
	Size      int
	CX, CY    float64
	MaxRadius float64

	t     []float32
	angle []float32
}

// NewGeometry computes the field for a size x size canvas with the given
// disk scale (0.95 in the reference tuning).
func NewGeometry(size int, diskScale float64) *Geometry {
	cx := float64(size) / 2
	cy := float64(size) / 2
	g := &Geometry{
		Size:      size,
		CX:        cx,
		CY:        cy,
		MaxRadius: math.Min(cx, cy) * diskScale,
		t:         make([]float32, size*size),
		angle:     make([]float32, size*size),
	}

	for y := 0; y < size; y++ {
		dy := float64(y) - cy
		row := y * size
		for x := 0; x < size; x++ {
			dx := float64(x) - cx
			g.t[row+x] = float32(math.Sqrt(dx*dx+dy*dy) / g.MaxRadius)
			g.angle[row+x] = float32(math.Atan2(dy, dx))
		}
	}
	return g
}

// T returns the normalized radius at (x, y).
func (g *Geometry) T(x, y int) float64 {
	return float64(g.t[y*g.Size+x])
}

// Angle returns the polar angle at (x, y) in radians, in (-π, π].
func (g *Geometry) Angle(x, y int) float64 {
	return float64(g.angle[y*g.Size+x])
}

// Polar maps a polar offset from the center to integer pixel coordinates,
// truncating toward zero.
func (g *Geometry) Polar(angle, radius float64) (int, int) {
	return int(g.CX + radius*math.Cos(angle)), int(g.CY + radius*math.Sin(angle))
}

// In reports whether (x, y) lies on the canvas.
func (g *Geometry) In(x, y int) bool {
	return x >= 0 && x < g.Size && y >= 0 && y < g.Size
}

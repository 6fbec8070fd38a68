package winepaint

import (
	"math"

	"github.com/gogpu/winepaint/internal/filter"
)

// blurRadius returns the Gaussian blur radius for a canvas side. Sparkling
// wines get half the blur so their marks stay crisp.
func blurRadius(size int, effervescence float64, tn Tuning) float64 {
	if effervescence < tn.BlurSparkleFrom {
		return float64(size) * tn.BlurCalm
	}
	return float64(size) * tn.BlurSparkling
}

// applyBlur converts the canvas to 8-bit levels and blurs it.
func applyBlur(f *Frame) {
	r := blurRadius(f.Canvas.Size(), f.Record.Effervescence, f.Tuning)
	f.Stats.BlurRadius = r

	f.Canvas.Quantize()
	size := f.Canvas.Size()
	filter.NewBlurFilter(r).Apply(f.Canvas.Data(), size, size, 3)
}

// rimBlend is the weight of the clean rim color at radius t.
func rimBlend(t float64, tn Tuning) float64 {
	return clamp01((t - tn.RimRepairStart) / tn.RimRepairWidth)
}

// applyRimRepair restores a ring-free rim on white wines. The blur carries
// ring colors outward past the intended edge; red and rosé gradients hide
// that, the pale white gradient does not.
func applyRimRepair(f *Frame) {
	if f.Family == FamilyRed || f.Family == FamilyRose {
		return
	}
	f.Stats.RimRepair = true

	tn := f.Tuning
	g := f.Geometry
	size := g.Size
	base := f.Record.BaseColor.vec()
	data := f.Canvas.Data()

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			t := g.T(x, y)
			w := float32(rimBlend(t, tn))
			if w == 0 {
				continue
			}
			brightness := float32(whiteBrightness(t, tn))
			i := (y*size + x) * 3
			for c := 0; c < 3; c++ {
				clean := clamp255(base[c] * brightness)
				data[i+c] = data[i+c]*(1-w) + clean*w
			}
		}
	}
}

// maskAlpha is the disk opacity at radius t: 1 inside MaskInner, 0 from
// MaskOuter on, with a gamma-shaped falloff between.
func maskAlpha(t float64, tn Tuning) float64 {
	a := clamp01((tn.MaskOuter - t) / (tn.MaskOuter - tn.MaskInner))
	return math.Pow(a, tn.MaskGamma)
}

// applyMask composites the disk onto the background with a soft edge.
func applyMask(f *Frame) {
	tn := f.Tuning
	g := f.Geometry
	size := g.Size
	bg := tn.Background.vec()
	data := f.Canvas.Data()

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			a := float32(maskAlpha(g.T(x, y), tn))
			i := (y*size + x) * 3
			for c := 0; c < 3; c++ {
				data[i+c] = bg[c]*(1-a) + data[i+c]*a
			}
		}
	}
}

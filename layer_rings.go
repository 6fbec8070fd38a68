package winepaint

import "math"

// ringVisible reports whether a ring with the given intensity is drawn.
func ringVisible(intensity float64, tn Tuning) bool {
	return intensity >= tn.RingThreshold
}

// ringWeight is the Gaussian profile of a ring at radius t, tapered to zero
// between RingTaperEdge-RingTaperWidth and RingTaperEdge so the blur cannot
// carry ring color past the rim.
func ringWeight(ring RingDefinition, t float64, tn Tuning) float64 {
	sigma := ring.HalfWidth * tn.RingSigmaScale
	d := math.Abs(t-ring.Center) / sigma
	w := math.Exp(-0.5 * d * d)
	return w * clamp01((tn.RingTaperEdge-t)/tn.RingTaperWidth)
}

// ringOpacity maps a weight and an intensity to a blend opacity.
func ringOpacity(weight, intensity float64, tn Tuning) float64 {
	return weight * (tn.RingOpacityBase + intensity*tn.RingOpacityGain)
}

// ringTint adapts a ring color to the family so it stays readable: lifted
// on red wines, slightly muted elsewhere.
func ringTint(c RGB, fam Family) [3]float32 {
	v := c.vec()
	for i := range v {
		if fam == FamilyRed {
			v[i] = clamp255(v[i]*1.3 + 30)
		} else {
			v[i] = clamp255(v[i] * 0.9)
		}
	}
	return v
}

// applyRings composites the aroma rings, outermost first.
func applyRings(f *Frame) {
	tn := f.Tuning
	g := f.Geometry
	size := g.Size
	data := f.Canvas.Data()

	for _, ring := range ringCatalog {
		intensity := f.Record.Intensity(ring.Source)
		if !ringVisible(intensity, tn) {
			continue
		}
		f.Stats.Rings = append(f.Stats.Rings, ring.Name)

		var tint [3]float32
		if ring.Color != nil {
			tint = ringTint(*ring.Color, f.Family)
		}

		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				a := float32(ringOpacity(ringWeight(ring, g.T(x, y), tn), intensity, tn))
				if a == 0 {
					continue
				}
				i := (y*size + x) * 3
				if ring.Color == nil {
					k := 1 - a*float32(tn.DepthDarken)
					data[i+0] *= k
					data[i+1] *= k
					data[i+2] *= k
					continue
				}
				inv := 1 - a
				data[i+0] = data[i+0]*inv + tint[0]*a
				data[i+1] = data[i+1]*inv + tint[1]*a
				data[i+2] = data[i+2]*inv + tint[2]*a
			}
		}
	}
}

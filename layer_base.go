package winepaint

import "math"

// familyCurve returns the radial brightness multiplier and the additive
// channel shift at radius t for a family. The result is not yet limited
// to the tuning's brightness range.
func familyCurve(fam Family, t float64, tn Tuning) (brightness float64, shift [3]float64) {
	switch fam {
	case FamilyRed:
		// Dark core opening up toward the rim, warmer outside.
		brightness = 0.5 + 0.6*math.Pow(t, 0.7)
		warmth := math.Pow(t, 0.8)
		shift[0] = warmth * 25
		shift[1] = warmth * 15
	case FamilyRose:
		brightness = 0.6 + 0.5*math.Sqrt(t) - 0.3*math.Pow(clamp01(1-t), 1.2)
		shift[0] = math.Pow(t, 0.9) * 15
	default:
		// Near-flat with a golden core: less green, much less blue.
		brightness = whiteBrightness(t, tn) - 0.10*math.Pow(clamp01(1-t), 1.2)
		core := math.Pow(clamp01(1-t), 1.8)
		shift[1] = -core * 20
		shift[2] = -core * 35
	}
	return brightness, shift
}

// whiteBrightness is the outward rise of the white curve without its
// core term. Rim repair paints it as the clean rim.
func whiteBrightness(t float64, tn Tuning) float64 {
	return tn.WhiteBrightness + tn.WhiteRimLift*math.Sqrt(clamp01(t))
}

// applyBase paints the liquid: flat base color, family brightness curve,
// radial-line micro texture and pixel noise.
func applyBase(f *Frame) {
	tn := f.Tuning
	g := f.Geometry
	size := g.Size
	base := f.Record.BaseColor.vec()
	data := f.Canvas.Data()

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			t := g.T(x, y)
			brightness, shift := familyCurve(f.Family, t, tn)
			brightness = math.Max(tn.BrightnessMin, math.Min(tn.BrightnessMax, brightness))

			lines := math.Sin(g.Angle(x, y)*tn.TextureFrequency+t*tn.TextureTwist)*0.5 + 0.5
			strength := tn.TextureAmplitude * (1 - t*0.5)
			mod := brightness * (1 + (lines-0.5)*strength)

			i := (y*size + x) * 3
			for c := 0; c < 3; c++ {
				data[i+c] = float32((float64(base[c]) + shift[c]) * mod)
			}
		}
	}

	applyNoise(f)
}

// applyNoise multiplies each pixel by 1 + n*amplitude, where n is a normal
// field rescaled so its largest magnitude is just under 1.
func applyNoise(f *Frame) {
	data := f.Canvas.Data()
	n := len(data) / 3

	noise := make([]float32, n)
	var peak float64
	for i := range noise {
		v := f.Rand.Normal()
		noise[i] = float32(v)
		peak = math.Max(peak, math.Abs(v))
	}

	scale := float32(f.Tuning.NoiseAmplitude / (peak + 1e-6))
	for i, v := range noise {
		m := 1 + v*scale
		data[i*3+0] *= m
		data[i*3+1] *= m
		data[i*3+2] *= m
	}
}

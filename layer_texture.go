package winepaint

import "math"

type stampKind uint8

const (
	stampFill stampKind = iota
	stampHighlight
)

// stampPixel is one offset of a precomputed mark footprint.
type stampPixel struct {
	dx, dy int
	kind   stampKind
}

// stamp is a mark footprint relative to its anchor pixel, in the order the
// pixels are composited.
type stamp []stampPixel

// discStamp covers every offset with dx²+dy² <= r².
func discStamp(r int) stamp {
	var s stamp
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if dx*dx+dy*dy <= r*r {
				s = append(s, stampPixel{dx: dx, dy: dy})
			}
		}
	}
	return s
}

// bubbleStamp is a glass disk of radius size with a highlight crescent in
// the upper-left quadrant reaching out to size+2.
func bubbleStamp(size int) stamp {
	outer := (size + 2) * (size + 2)
	inner := (size - 2) * (size - 2)
	fill := size * size

	var s stamp
	for dx := -size - 2; dx < size+3; dx++ {
		for dy := -size - 2; dy < size+3; dy++ {
			d := dx*dx + dy*dy
			switch {
			case d > outer:
			case dx < 0 && dy < 0 && d > inner:
				s = append(s, stampPixel{dx: dx, dy: dy, kind: stampHighlight})
			case d <= fill:
				s = append(s, stampPixel{dx: dx, dy: dy, kind: stampFill})
			}
		}
	}
	return s
}

// stampSet memoizes footprints for one render.
type stampSet struct {
	discs   map[int]stamp
	bubbles map[int]stamp
}

func newStampSet() *stampSet {
	return &stampSet{discs: make(map[int]stamp), bubbles: make(map[int]stamp)}
}

func (s *stampSet) disc(r int) stamp {
	st, ok := s.discs[r]
	if !ok {
		st = discStamp(r)
		s.discs[r] = st
	}
	return st
}

func (s *stampSet) bubble(size int) stamp {
	st, ok := s.bubbles[size]
	if !ok {
		st = bubbleStamp(size)
		s.bubbles[size] = st
	}
	return st
}

// applyTexture scatters the ambient highlight dots and, for sparkling
// wines, the star and bubble marks.
func applyTexture(f *Frame) {
	stamps := newStampSet()
	drawDots(f, stamps)
	if f.Record.Effervescence > f.Tuning.SparkleThreshold {
		drawSparkles(f, stamps)
	}
}

// dotCount is the number of ambient dots for a canvas side.
func dotCount(size int, tn Tuning) int {
	return int(float64(size*size) * tn.DotDensity)
}

// sparkleCount is the number of sparkle marks attempted.
func sparkleCount(size int, effervescence float64, tn Tuning) int {
	if effervescence <= tn.SparkleThreshold {
		return 0
	}
	return int(effervescence * tn.SparkleDensity * (float64(size) / 512))
}

func drawDots(f *Frame, stamps *stampSet) {
	tn := f.Tuning
	g := f.Geometry
	rng := f.Rand
	tint := tn.DotTint.vec()

	for range dotCount(g.Size, tn) {
		angle := rng.Uniform(0, 2*math.Pi)
		radius := rng.Uniform(tn.DotRadiusMin, tn.DotRadiusMax) * g.MaxRadius
		x, y := g.Polar(angle, radius)
		if !g.In(x, y) {
			continue
		}

		col := tint
		if f.Family == FamilyRed {
			col = f.Canvas.At(x, y)
			for c := range col {
				col[c] *= 1.2
			}
		}
		r := rng.IntRange(1, 2)
		alpha := float32(rng.Uniform(tn.DotOpacityMin, tn.DotOpacityMax))

		for _, p := range stamps.disc(r) {
			f.Canvas.Blend(x+p.dx, y+p.dy, col, alpha)
		}
		f.Stats.Dots++
	}
}

func drawSparkles(f *Frame, stamps *stampSet) {
	tn := f.Tuning
	g := f.Geometry
	rng := f.Rand
	eff := f.Record.Effervescence
	baseSize := int(tn.MarkBaseSize + eff*tn.MarkSizeGain)

	for range sparkleCount(g.Size, eff, tn) {
		angle := rng.Uniform(0, 2*math.Pi)
		radius := rng.Beta(tn.RadialBetaA, tn.RadialBetaB) * tn.SparkleReach * g.MaxRadius
		bx, by := g.Polar(angle, radius)
		if !g.In(bx, by) {
			continue
		}

		size := rng.IntRange(baseSize-2, baseSize+3)
		if rng.Float64() < tn.StarChance {
			drawStar(f, stamps, bx, by, size)
			f.Stats.Stars++
		} else {
			drawBubble(f, stamps, bx, by, size)
			f.Stats.Bubbles++
		}
	}
}

// drawStar draws 4 or 6 jittered arms fading outward, then a solid core.
func drawStar(f *Frame, stamps *stampSet, bx, by, size int) {
	tn := f.Tuning
	rng := f.Rand
	eff := f.Record.Effervescence

	arms := 6
	if rng.Float64() < tn.FourArmChance {
		arms = 4
	}
	length := size + rng.IntRange(2, 6)
	armColor := tn.StarColor.vec()

	for arm := range arms {
		a := 2*math.Pi*float64(arm)/float64(arms) + rng.Uniform(-tn.ArmJitter, tn.ArmJitter)
		cos, sin := math.Cos(a), math.Sin(a)
		for d := range length {
			px := int(float64(bx) + float64(d)*cos)
			py := int(float64(by) + float64(d)*sin)
			falloff := 1 - float64(d)/float64(length)*0.6
			f.Canvas.Blend(px, py, armColor, float32(tn.StarArmOpacity*falloff*eff))
		}
	}

	core := tn.StarCoreColor.vec()
	for _, p := range stamps.disc(2) {
		f.Canvas.Blend(bx+p.dx, by+p.dy, core, float32(tn.StarCoreOpacity))
	}
}

// drawBubble draws a lightened glass disk with a near-white crescent.
func drawBubble(f *Frame, stamps *stampSet, bx, by, size int) {
	tn := f.Tuning
	eff := f.Record.Effervescence
	highlight := tn.BubbleHighlight.vec()
	rim := float32(tn.BubbleRim * eff)
	fill := float32(tn.BubbleFill * eff)

	for _, p := range stamps.bubble(size) {
		x, y := bx+p.dx, by+p.dy
		if !f.Geometry.In(x, y) {
			continue
		}
		if p.kind == stampHighlight {
			f.Canvas.Blend(x, y, highlight, rim)
			continue
		}
		glass := f.Canvas.At(x, y)
		for c := range glass {
			glass[c] = clamp255(glass[c]*1.3 + 30)
		}
		f.Canvas.Blend(x, y, glass, fill)
	}
}

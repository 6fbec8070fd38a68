package winepaint

// Tuning collects the numeric constants that shape a render. The pipeline
// reads every magic number from here, so a look can be adjusted without
// touching stage code. DefaultTuning returns the reference values.
type Tuning struct {
	// DiskScale is the nominal disk radius as a fraction of half the
	// canvas side; t == 1 at that radius.
	DiskScale float64

	// Base layer.
	TextureAmplitude float64 // radial-line modulation at the center
	TextureFrequency float64 // line count around the circle
	TextureTwist     float64 // phase advance per unit of t
	NoiseAmplitude   float64 // pixel noise, relative
	BrightnessMin    float64
	BrightnessMax    float64
	WhiteBrightness  float64 // white curve level, shared with rim repair
	WhiteRimLift     float64 // white curve gain on sqrt(t)

	// Ring layer.
	RingThreshold   float64 // intensities below this are not drawn
	RingSigmaScale  float64 // sigma = half-width * RingSigmaScale
	RingTaperEdge   float64 // ring weight reaches zero here
	RingTaperWidth  float64 // width of the taper band inside RingTaperEdge
	RingOpacityBase float64
	RingOpacityGain float64
	DepthDarken     float64 // maximum darkening of a colorless ring

	// Texture layer.
	DotDensity       float64 // ambient dots per pixel
	DotRadiusMin     float64 // as a fraction of the disk radius
	DotRadiusMax     float64
	DotOpacityMin    float64
	DotOpacityMax    float64
	DotTint          RGB // ambient dot color for non-red families
	SparkleThreshold float64
	SparkleDensity   float64 // marks at effervescence 1 on a 512 px canvas
	SparkleReach     float64 // outermost mark radius, fraction of the disk
	StarChance       float64
	FourArmChance    float64
	ArmJitter        float64 // radians
	StarColor        RGB
	StarCoreColor    RGB
	StarCoreOpacity  float64
	StarArmOpacity   float64 // at the arm root, before effervescence scaling
	BubbleHighlight  RGB
	BubbleRim        float64 // highlight opacity, before effervescence scaling
	BubbleFill       float64 // glass opacity, before effervescence scaling
	MarkBaseSize     float64 // mark size = MarkBaseSize + MarkSizeGain*effervescence
	MarkSizeGain     float64
	RadialBetaA      float64 // sparkle radius ~ Beta(A, B), biased outward
	RadialBetaB      float64

	// Post-processing.
	BlurCalm        float64 // blur radius per pixel of canvas side
	BlurSparkling   float64
	BlurSparkleFrom float64 // effervescence at which BlurSparkling applies
	RimRepairStart  float64
	RimRepairWidth  float64
	MaskInner       float64
	MaskOuter       float64
	MaskGamma       float64
	Background      RGB

	// Sugar bar.
	SugarBarFraction float64
	SugarBarMinWidth int
	SugarMax         float64 // g/L at which the bar is full
	SugarMin         float64 // g/L at or below which the bar is empty
	SugarFill        RGB
	SugarEmpty       RGB
	SugarLabel       RGB
	LabelScale       float64 // font size as a fraction of the bar width
	LabelMinSize     float64
	LabelPadding     int
}

// DefaultTuning returns the reference constants.
func DefaultTuning() Tuning {
	return Tuning{
		DiskScale: 0.95,

		TextureAmplitude: 0.03,
		TextureFrequency: 80,
		TextureTwist:     20,
		NoiseAmplitude:   0.015,
		BrightnessMin:    0.3,
		BrightnessMax:    1.5,
		WhiteBrightness:  1.05,
		WhiteRimLift:     0.02,

		RingThreshold:   0.2,
		RingSigmaScale:  0.5,
		RingTaperEdge:   0.82,
		RingTaperWidth:  0.10,
		RingOpacityBase: 0.08,
		RingOpacityGain: 0.27,
		DepthDarken:     0.4,

		DotDensity:       0.0003,
		DotRadiusMin:     0.2,
		DotRadiusMax:     0.85,
		DotOpacityMin:    0.10,
		DotOpacityMax:    0.25,
		DotTint:          RGB{R: 160, G: 195, B: 210},
		SparkleThreshold: 0.1,
		SparkleDensity:   400,
		SparkleReach:     0.85,
		StarChance:       0.5,
		FourArmChance:    0.6,
		ArmJitter:        0.15,
		StarColor:        RGB{R: 255, G: 255, B: 250},
		StarCoreColor:    RGB{R: 255, G: 255, B: 252},
		StarCoreOpacity:  0.8,
		StarArmOpacity:   0.8,
		BubbleHighlight:  RGB{R: 255, G: 255, B: 255},
		BubbleRim:        0.85,
		BubbleFill:       0.4,
		MarkBaseSize:     3,
		MarkSizeGain:     4,
		RadialBetaA:      2,
		RadialBetaB:      1.5,

		BlurCalm:        0.008,
		BlurSparkling:   0.004,
		BlurSparkleFrom: 0.3,
		RimRepairStart:  0.85,
		RimRepairWidth:  0.08,
		MaskInner:       0.90,
		MaskOuter:       1.08,
		MaskGamma:       0.6,
		Background:      RGB{R: 252, G: 252, B: 254},

		SugarBarFraction: 0.05,
		SugarBarMinWidth: 30,
		SugarMax:         500,
		SugarMin:         1,
		SugarFill:        RGB{R: 240, G: 62, B: 107},
		SugarEmpty:       RGB{R: 200, G: 200, B: 200},
		SugarLabel:       RGB{R: 255, G: 255, B: 255},
		LabelScale:       0.5,
		LabelMinSize:     12,
		LabelPadding:     10,
	}
}

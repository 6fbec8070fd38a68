package winepaint

// RingDefinition describes one concentric aroma band.
type RingDefinition struct {
	Name string

	// Center is the band's radius in units of t.
	Center float64

	// HalfWidth is the sigma basis of the Gaussian profile.
	HalfWidth float64

	// Color tints the band. A nil Color darkens the liquid instead.
	Color *RGB

	// Source is the attribute that drives the band's intensity.
	Source Attribute
}

func ringColor(r, g, b uint8) *RGB { return &RGB{R: r, G: g, B: b} }

// ringCatalog is ordered outermost to innermost, which is also the
// compositing order.
var ringCatalog = [...]RingDefinition{
	{Name: "oak", Center: 0.78, HalfWidth: 0.06, Color: ringColor(140, 90, 50), Source: Oak},
	{Name: "minerality", Center: 0.72, HalfWidth: 0.06, Color: ringColor(130, 140, 150), Source: Mineral},
	{Name: "acidity", Center: 0.66, HalfWidth: 0.06, Color: ringColor(160, 200, 120), Source: Acidity},
	{Name: "herbs", Center: 0.60, HalfWidth: 0.06, Color: ringColor(70, 120, 70), Source: Herbal},
	{Name: "spice", Center: 0.54, HalfWidth: 0.06, Color: ringColor(170, 100, 45), Source: Spice},
	{Name: "citrus", Center: 0.48, HalfWidth: 0.05, Color: ringColor(240, 220, 70), Source: FruitCitrus},
	{Name: "stone fruit", Center: 0.42, HalfWidth: 0.05, Color: ringColor(240, 170, 90), Source: FruitStone},
	{Name: "tropical fruit", Center: 0.36, HalfWidth: 0.05, Color: ringColor(240, 200, 55), Source: FruitTropical},
	{Name: "red fruit", Center: 0.30, HalfWidth: 0.05, Color: ringColor(200, 60, 60), Source: FruitRed},
	{Name: "dark fruit", Center: 0.24, HalfWidth: 0.05, Color: ringColor(80, 35, 80), Source: FruitDark},
	{Name: "body", Center: 0.18, HalfWidth: 0.06, Color: ringColor(140, 70, 45), Source: Body},
	{Name: "depth", Center: 0.12, HalfWidth: 0.08, Color: nil, Source: Depth},
}

// Rings returns a copy of the ring catalog in compositing order.
func Rings() []RingDefinition {
	out := make([]RingDefinition, len(ringCatalog))
	for i, r := range ringCatalog {
		if r.Color != nil {
			c := *r.Color
			r.Color = &c
		}
		out[i] = r
	}
	return out
}

// Package winepaint renders a symbolic portrait of a wine from its sensory
// attributes.
//
// # Overview
//
// A portrait is a soft-edged disk of "liquid" on a light background. Its
// color and radial gradient follow the wine's base color and family (red,
// rosé or white), up to twelve concentric aroma rings encode oak,
// minerality, acidity, herbs, spice, five fruit clusters, body and depth,
// and sparkling wines get star and bubble marks. Wines with residual sugar
// get a vertical bar on the right whose fill grows on a log scale.
//
// # Quick Start
//
//	rec := winepaint.DefaultAttributes()
//	rec.BaseColor, _ = winepaint.ParseHexColor("#8B1A1A")
//	rec.FruitDark = 0.8
//	rec.ResidualSugar = 4
//
//	png, err := winepaint.Render(rec, 512)
//
// Attribute records can also be decoded from JSON with LoadAttributes or
// ParseAttributes, which accept several key spellings and fall back to
// per-field defaults for anything missing or malformed.
//
// # Determinism
//
// Every render draws from its own RandomState seeded from the Renderer
// (DefaultSeed unless WithSeed is given). The same record, size and seed
// always produce byte-identical PNGs, and a Renderer may be shared between
// goroutines.
//
// # Pipeline
//
// Rendering runs the ordered stages returned by Stages on a Frame:
//
//   - base: family gradient, radial-line texture, pixel noise
//   - rings: Gaussian aroma bands, outermost first
//   - texture: ambient dots, star and bubble marks
//   - blur: 8-bit quantization and Gaussian blur
//   - rim: clean rim for white wines
//   - mask: circular alpha mask over the background
//
// Tests and tools can build a Frame with NewFrame and run any subset with
// Run. All constants live in Tuning.
//
// # Logging
//
// winepaint is silent by default. Call SetLogger to receive Debug stage
// timings and Warn messages for recovered input problems.
package winepaint

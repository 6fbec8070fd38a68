package label

import (
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Glyph is one positioned rune of a laid-out label. X and Y are pen
// offsets from the origin, Y growing downward.
type Glyph struct {
	Rune rune
	X, Y fixed.Int26_6
}

// shapers pools HarfBuzz shapers; each holds mutable buffers.
var shapers = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

// Layout positions text on a single left-to-right baseline. Outline fonts
// are shaped with HarfBuzz (kerning included); the bitmap font, or any
// shaping failure, falls back to face advances and kerning pairs.
func Layout(f *Font, face font.Face, text string, size float64) []Glyph {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	if f.shaping != nil {
		if glyphs := shape(f.shaping, runes, size); len(glyphs) > 0 {
			return glyphs
		}
	}
	return advanceLayout(face, runes)
}

func shape(ft *gotext.Font, runes []rune, size float64) []Glyph {
	in := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(ft),
		Size:      fixed.Int26_6(size * 64),
		Script:    language.LookupScript(runes[0]),
		Language:  language.NewLanguage("en"),
	}

	hb := shapers.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(in)
	shapers.Put(hb)

	glyphs := make([]Glyph, 0, len(out.Glyphs))
	var pen fixed.Int26_6
	for _, g := range out.Glyphs {
		idx := g.TextIndex()
		if idx < 0 || idx >= len(runes) {
			continue
		}
		glyphs = append(glyphs, Glyph{
			Rune: runes[idx],
			X:    pen + g.XOffset,
			Y:    -g.YOffset,
		})
		pen += g.Advance
	}
	return glyphs
}

func advanceLayout(face font.Face, runes []rune) []Glyph {
	glyphs := make([]Glyph, len(runes))
	var pen fixed.Int26_6
	prev := rune(-1)
	for i, r := range runes {
		if prev >= 0 {
			pen += face.Kern(prev, r)
		}
		glyphs[i] = Glyph{Rune: r, X: pen}
		adv, _ := face.GlyphAdvance(r)
		pen += adv
		prev = r
	}
	return glyphs
}

// InkBounds returns the union of the glyph bounds of a layout, relative to
// the layout origin on the baseline.
func InkBounds(face font.Face, glyphs []Glyph) fixed.Rectangle26_6 {
	var ink fixed.Rectangle26_6
	first := true
	for _, g := range glyphs {
		b, _, ok := face.GlyphBounds(g.Rune)
		if !ok || b.Empty() {
			continue
		}
		off := fixed.Point26_6{X: g.X, Y: g.Y}
		b = fixed.Rectangle26_6{Min: b.Min.Add(off), Max: b.Max.Add(off)}
		if first {
			ink, first = b, false
			continue
		}
		ink = ink.Union(b)
	}
	return ink
}

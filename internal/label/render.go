package label

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// ErrEmptyLabel is returned when text has no visible glyphs.
var ErrEmptyLabel = errors.New("label: nothing to draw")

// Render draws text in col on a transparent image whose size is the ink
// box plus pad pixels (pad/2 on each side), then rotates it a quarter turn
// counter-clockwise so it reads bottom to top.
func Render(f *Font, text string, size float64, col color.Color, pad int) (*image.RGBA, error) {
	face, err := f.NewFace(size)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	glyphs := Layout(f, face, text, size)
	ink := InkBounds(face, glyphs)
	w := (ink.Max.X - ink.Min.X).Ceil()
	h := (ink.Max.Y - ink.Min.Y).Ceil()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyLabel
	}

	img := image.NewRGBA(image.Rect(0, 0, w+pad, h+pad))
	origin := fixed.Point26_6{
		X: fixed.I(pad/2) - ink.Min.X,
		Y: fixed.I(pad/2) - ink.Min.Y,
	}
	src := image.NewUniform(col)
	for _, g := range glyphs {
		dot := origin.Add(fixed.Point26_6{X: g.X, Y: g.Y})
		dr, mask, mp, _, ok := face.Glyph(dot, g.Rune)
		if !ok {
			continue
		}
		draw.DrawMask(img, dr, src, image.Point{}, mask, mp, draw.Over)
	}
	return Rotate90(img), nil
}

// Rotate90 returns src turned a quarter turn counter-clockwise: a w x h
// image becomes h x w and dst(x, y) = src(w-1-y, x).
func Rotate90(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	s2d := f64.Aff3{
		0, 1, -float64(b.Min.Y),
		-1, 0, float64(w + b.Min.X),
	}
	draw.NearestNeighbor.Transform(dst, s2d, src, b, draw.Src, nil)
	return dst
}

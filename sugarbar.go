package winepaint

import (
	"image"
	"log/slog"
	"math"
	"strconv"

	"golang.org/x/image/draw"

	"github.com/gogpu/winepaint/internal/label"
)

// SugarFillRatio maps residual sugar in g/L to the filled fraction of the
// bar on a log scale: minSugar and below is empty, maxSugar and above is
// full. With minSugar 1 this is log10(sugar)/log10(maxSugar).
func SugarFillRatio(sugar, minSugar, maxSugar float64) float64 {
	if !(sugar > 0) || !(minSugar > 0) || !(maxSugar > minSugar) {
		return 0
	}
	c := math.Min(math.Max(sugar, minSugar), maxSugar)
	return clamp01(math.Log10(c/minSugar) / math.Log10(maxSugar/minSugar))
}

// SugarBarWidth is the width of the bar appended to an image w pixels wide.
func SugarBarWidth(w int, tn Tuning) int {
	return max(int(float64(w)*tn.SugarBarFraction), tn.SugarBarMinWidth)
}

// SugarLabel is the text printed on the bar: the whole grams per liter,
// truncated, at any magnitude.
func SugarLabel(sugar float64) string {
	return strconv.FormatFloat(math.Trunc(sugar), 'f', 0, 64) + " gr RZ"
}

// AppendSugarBar returns img widened by a vertical residual-sugar bar on
// its right edge. img is not modified. Non-positive or non-finite sugar
// returns img unchanged. The label font is looked up among the default
// system fonts.
func AppendSugarBar(img *image.RGBA, sugar float64, tn Tuning) *image.RGBA {
	if !hasSugar(sugar) {
		return img
	}
	var st Stats
	return appendSugarBar(img, sugar, tn, label.Find(label.DefaultPaths, Logger()), &st)
}

func appendSugarBar(img *image.RGBA, sugar float64, tn Tuning, lf *label.Font, st *Stats) *image.RGBA {
	if !hasSugar(sugar) {
		return img
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	bw := SugarBarWidth(w, tn)
	ratio := SugarFillRatio(sugar, tn.SugarMin, tn.SugarMax)
	bh := int(float64(h) * ratio)
	y1 := h - bh

	out := image.NewRGBA(image.Rect(0, 0, w+bw, h))
	draw.Draw(out, out.Bounds(), image.NewUniform(tn.Background.Color()), image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(0, 0, w, h), img, b.Min, draw.Src)

	if bh > 0 {
		draw.Draw(out, image.Rect(w, y1, w+bw, h), image.NewUniform(tn.SugarFill.Color()), image.Point{}, draw.Src)
	}
	// The empty part includes the boundary row.
	if y1 > 0 {
		draw.Draw(out, image.Rect(w, 0, w+bw, y1+1), image.NewUniform(tn.SugarEmpty.Color()), image.Point{}, draw.Src)
	}

	st.SugarBarWidth = bw
	st.SugarFill = ratio
	st.SugarLabel = drawSugarLabel(out, w, bw, bh, sugar, tn, lf)
	return out
}

func hasSugar(sugar float64) bool {
	return sugar > 0 && !math.IsInf(sugar, 0)
}

// drawSugarLabel centers the rotated label on the filled part of the bar
// when it fits with room to spare. It reports whether a label was drawn.
func drawSugarLabel(out *image.RGBA, w, bw, bh int, sugar float64, tn Tuning, lf *label.Font) bool {
	if bh <= 0 {
		return false
	}
	h := out.Bounds().Dy()
	size := float64(max(int(float64(bw)*tn.LabelScale), int(tn.LabelMinSize)))

	txt, err := label.Render(lf, SugarLabel(sugar), size, tn.SugarLabel.Color(), tn.LabelPadding)
	if err != nil {
		Logger().Warn("winepaint: sugar label skipped", slog.String("err", err.Error()))
		return false
	}
	rw, rh := txt.Bounds().Dx(), txt.Bounds().Dy()
	if bh <= rh+tn.LabelPadding {
		return false
	}

	x := w + floorDiv(bw-rw, 2)
	y := max(0, h-bh+floorDiv(bh-rh, 2))
	draw.Draw(out, image.Rect(x, y, x+rw, y+rh), txt, image.Point{}, draw.Over)
	return true
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

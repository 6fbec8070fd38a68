package winepaint

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync"
	"time"

	"github.com/gogpu/winepaint/internal/imageio"
	"github.com/gogpu/winepaint/internal/label"
)

// ErrInvalidCanvasSize is returned when the requested canvas side is below
// one pixel.
var ErrInvalidCanvasSize = errors.New("winepaint: invalid canvas size")

// Renderer turns attribute records into portraits. A Renderer is safe for
// concurrent use: every call builds its own frame and random state, so
// renders never share mutable state.
type Renderer struct {
	opts rendererOptions

	fontOnce sync.Once
	font     *label.Font
}

// NewRenderer creates a Renderer with the given options.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// Seed returns the seed every render starts from.
func (r *Renderer) Seed() uint64 {
	return r.opts.seed
}

// Tuning returns the constants in use.
func (r *Renderer) Tuning() Tuning {
	return r.opts.tuning
}

// labelFont resolves the sugar bar font once per Renderer.
func (r *Renderer) labelFont() *label.Font {
	r.fontOnce.Do(func() {
		paths := make([]string, 0, len(r.opts.fontPaths)+len(label.DefaultPaths))
		paths = append(paths, r.opts.fontPaths...)
		paths = append(paths, label.DefaultPaths...)
		r.font = label.Find(paths, Logger())
	})
	return r.font
}

// RenderWithStats draws rec on a size x size canvas, appends the sugar bar
// when rec has residual sugar, and reports what was drawn.
func (r *Renderer) RenderWithStats(rec AttributeRecord, size int) (*image.RGBA, Stats, error) {
	if size < 1 {
		return nil, Stats{}, fmt.Errorf("%w: %d", ErrInvalidCanvasSize, size)
	}
	start := time.Now()

	f := NewFrame(rec, size, r.opts.seed, r.opts.tuning)
	Logger().Debug("winepaint: classified",
		slog.String("family", f.Family.String()),
		slog.String("base", f.Record.BaseColor.Hex()))

	Run(f, Stages())
	img := f.Canvas.ToImage()

	if f.Record.ResidualSugar > 0 {
		img = appendSugarBar(img, f.Record.ResidualSugar, f.Tuning, r.labelFont(), &f.Stats)
	}

	Logger().Debug("winepaint: render done",
		slog.Int("size", size),
		slog.String("family", f.Stats.Family.String()),
		slog.Int("rings", len(f.Stats.Rings)),
		slog.Int("dots", f.Stats.Dots),
		slog.Int("marks", f.Stats.Marks()),
		slog.Float64("blur", f.Stats.BlurRadius),
		slog.Int("sugar_bar", f.Stats.SugarBarWidth),
		slog.Duration("elapsed", time.Since(start)))
	return img, f.Stats, nil
}

// RenderImage is RenderWithStats without the statistics.
func (r *Renderer) RenderImage(rec AttributeRecord, size int) (*image.RGBA, error) {
	img, _, err := r.RenderWithStats(rec, size)
	return img, err
}

// Render returns the portrait as PNG bytes.
func (r *Renderer) Render(rec AttributeRecord, size int) ([]byte, error) {
	img, err := r.RenderImage(rec, size)
	if err != nil {
		return nil, err
	}
	return imageio.EncodeBytes(img, r.opts.compression)
}

// RenderFile writes the portrait to path as PNG, creating parent
// directories as needed.
func (r *Renderer) RenderFile(rec AttributeRecord, size int, path string) error {
	img, err := r.RenderImage(rec, size)
	if err != nil {
		return err
	}
	return r.WritePNG(path, img)
}

// WritePNG saves img to path with the renderer's compression level,
// creating parent directories as needed.
func (r *Renderer) WritePNG(path string, img image.Image) error {
	return imageio.SavePNG(path, img, r.opts.compression)
}

var (
	defaultRendererOnce sync.Once
	defaultRenderer     *Renderer
)

// Render draws rec with the default seed and tuning and returns PNG bytes.
func Render(rec AttributeRecord, size int) ([]byte, error) {
	defaultRendererOnce.Do(func() { defaultRenderer = NewRenderer() })
	return defaultRenderer.Render(rec, size)
}

// ParseAttributes decodes a JSON attribute document.
func ParseAttributes(data []byte) (AttributeRecord, error) {
	var rec AttributeRecord
	if err := imageio.DecodeJSON(data, &rec); err != nil {
		return DefaultAttributes(), err
	}
	return rec, nil
}

// LoadAttributes reads a JSON attribute file.
func LoadAttributes(path string) (AttributeRecord, error) {
	var rec AttributeRecord
	if err := imageio.LoadJSON(path, &rec); err != nil {
		return DefaultAttributes(), err
	}
	return rec, nil
}

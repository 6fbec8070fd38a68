package label

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/winepaint/internal/cache"
)

// Errors returned while loading a font file.
var (
	ErrNoFontData = errors.New("label: empty font data")
	ErrNoFace     = errors.New("label: collection has no faces")
)

// DefaultPaths lists the system fonts tried before the embedded fallback.
var DefaultPaths = []string{
	"/System/Library/Fonts/Helvetica.ttc",
	"/Library/Fonts/Helvetica.ttc",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
}

// BuiltinName is the Name of the embedded fallback font.
const BuiltinName = "Go Regular"

// bitmapName is the Name of the last-resort bitmap font.
const bitmapName = "basicfont 7x13"

// Font is a label typeface. Outline fonts carry both an x/image face source
// for rasterization and a go-text font for shaping; the bitmap fallback
// carries neither.
type Font struct {
	Name string
	Path string // empty for embedded fonts

	outline *opentype.Font
	shaping *gotext.Font
}

// Bitmap reports whether f is the fixed-size bitmap fallback.
func (f *Font) Bitmap() bool {
	return f.outline == nil
}

// NewFace returns a face of the given pixel size. Faces are not safe for
// concurrent use; callers create one per label.
func (f *Font) NewFace(size float64) (font.Face, error) {
	if f.outline == nil {
		return basicfont.Face7x13, nil
	}
	face, err := opentype.NewFace(f.outline, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("label: face for %s at %.1fpx: %w", f.Name, size, err)
	}
	return face, nil
}

// Parse reads TrueType, OpenType or collection data. For collections the
// first face is used.
func Parse(name string, data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrNoFontData
	}

	var outline *opentype.Font
	var shapingFont *gotext.Font

	if isCollection(data) {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("label: parse collection %s: %w", name, err)
		}
		if coll.NumFonts() == 0 {
			return nil, ErrNoFace
		}
		if outline, err = coll.Font(0); err != nil {
			return nil, fmt.Errorf("label: collection %s face 0: %w", name, err)
		}
		faces, err := gotext.ParseTTC(bytes.NewReader(data))
		if err == nil && len(faces) > 0 {
			shapingFont = faces[0].Font
		}
	} else {
		var err error
		if outline, err = opentype.Parse(data); err != nil {
			return nil, fmt.Errorf("label: parse %s: %w", name, err)
		}
		if face, err := gotext.ParseTTF(bytes.NewReader(data)); err == nil {
			shapingFont = face.Font
		}
	}

	if family, err := outline.Name(nil, sfnt.NameIDFamily); err == nil && family != "" {
		name = family
	}
	return &Font{Name: name, outline: outline, shaping: shapingFont}, nil
}

// isCollection reports whether data starts with the TTC tag.
func isCollection(data []byte) bool {
	return len(data) >= 4 && string(data[:4]) == "ttcf"
}

// Builtin returns the embedded fallback font. If the embedded data cannot
// be parsed the bitmap face is returned instead.
func Builtin() *Font {
	f, err := Parse(BuiltinName, goregular.TTF)
	if err != nil {
		return &Font{Name: bitmapName}
	}
	return f
}

// fonts caches loaded files by path so repeated renders read each font
// once. Failures are cached too.
var fonts = cache.New[string, loadResult](32)

type loadResult struct {
	font *Font
	err  error
}

// LoadFile reads and parses one font file.
func LoadFile(path string) (*Font, error) {
	res := fonts.GetOrCreate(path, func() loadResult {
		data, err := os.ReadFile(path)
		if err != nil {
			return loadResult{err: fmt.Errorf("label: read font: %w", err)}
		}
		f, err := Parse(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), data)
		if err != nil {
			return loadResult{err: err}
		}
		f.Path = path
		return loadResult{font: f}
	})
	return res.font, res.err
}

// Find returns the first readable font among paths, falling back to
// Builtin. Every skipped path is logged at Debug and the use of the
// fallback at Warn.
func Find(paths []string, log *slog.Logger) *Font {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	for _, p := range paths {
		f, err := LoadFile(p)
		if err == nil {
			return f
		}
		log.Debug("label: font skipped", slog.String("path", p), slog.String("err", err.Error()))
	}
	f := Builtin()
	log.Warn("label: no system font available, using fallback",
		slog.String("font", f.Name), slog.Int("tried", len(paths)))
	return f
}

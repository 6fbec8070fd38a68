package winepaint

import "image/png"

// Option configures a Renderer during creation.
//
// Example:
//
//	r := winepaint.NewRenderer(
//	    winepaint.WithSeed(7),
//	    winepaint.WithCompression(png.BestSpeed),
//	)
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for a Renderer.
type rendererOptions struct {
	seed        uint64
	tuning      Tuning
	fontPaths   []string
	compression png.CompressionLevel
}

func defaultOptions() rendererOptions {
	return rendererOptions{
		seed:        DefaultSeed,
		tuning:      DefaultTuning(),
		compression: png.DefaultCompression,
	}
}

// WithSeed sets the random seed. Renders with equal seeds, attributes and
// sizes are byte-identical.
func WithSeed(seed uint64) Option {
	return func(o *rendererOptions) {
		o.seed = seed
	}
}

// WithTuning replaces the reference constants.
func WithTuning(t Tuning) Option {
	return func(o *rendererOptions) {
		o.tuning = t
	}
}

// WithFontPaths sets font files to try for the sugar bar label before the
// default system locations. Later calls append.
func WithFontPaths(paths ...string) Option {
	return func(o *rendererOptions) {
		o.fontPaths = append(o.fontPaths, paths...)
	}
}

// WithCompression sets the PNG compression level.
func WithCompression(level png.CompressionLevel) Option {
	return func(o *rendererOptions) {
		o.compression = level
	}
}

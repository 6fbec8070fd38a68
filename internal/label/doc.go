// Package label rasterizes the short rotated text that annotates the sugar
// bar.
//
// Fonts are discovered from a list of candidate files (TrueType or
// TrueType collections). When none can be read, the embedded Go Regular
// face is used, and as a last resort the fixed 7x13 bitmap face, so a
// label can always be drawn. Glyph positions come from HarfBuzz shaping
// via go-text/typesetting when the font is available as outline data;
// the bitmap face is positioned from its own advances.
package label

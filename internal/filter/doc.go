// Package filter provides the separable Gaussian blur used by the
// post-processing stage.
//
// Buffers are interleaved float32 samples (for example RGB, 3 per pixel)
// holding 8-bit levels. The blur is edge-extending and writes its result
// back rounded to whole levels, like an 8-bit image filter would.
package filter

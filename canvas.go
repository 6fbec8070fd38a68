package winepaint

import "image"

// Canvas is a square working buffer of unclamped float32 RGB samples.
// Values may leave [0, 255] between stages; they are clamped when the
// canvas is quantized for blurring and again at encode time.
type Canvas struct {
	size int
	data []float32 // RGB, 3 floats per pixel
}

// NewCanvas creates a black size x size canvas.
func NewCanvas(size int) *Canvas {
	return &Canvas{
		size: size,
		data: make([]float32, size*size*3),
	}
}

// Size returns the side length in pixels.
func (c *Canvas) Size() int {
	return c.size
}

// Data returns the raw samples, row-major, 3 per pixel.
func (c *Canvas) Data() []float32 {
	return c.data
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col RGB) {
	v := col.vec()
	for i := 0; i < len(c.data); i += 3 {
		c.data[i+0] = v[0]
		c.data[i+1] = v[1]
		c.data[i+2] = v[2]
	}
}

// At returns the samples of one pixel. Off-canvas pixels read as zero.
func (c *Canvas) At(x, y int) [3]float32 {
	if x < 0 || x >= c.size || y < 0 || y >= c.size {
		return [3]float32{}
	}
	i := (y*c.size + x) * 3
	return [3]float32{c.data[i], c.data[i+1], c.data[i+2]}
}

// Set overwrites one pixel. Off-canvas writes are ignored.
func (c *Canvas) Set(x, y int, v [3]float32) {
	if x < 0 || x >= c.size || y < 0 || y >= c.size {
		return
	}
	i := (y*c.size + x) * 3
	c.data[i+0] = v[0]
	c.data[i+1] = v[1]
	c.data[i+2] = v[2]
}

// Blend alpha-composites v over one pixel: p = p*(1-alpha) + v*alpha.
// Off-canvas pixels are skipped.
func (c *Canvas) Blend(x, y int, v [3]float32, alpha float32) {
	if x < 0 || x >= c.size || y < 0 || y >= c.size {
		return
	}
	i := (y*c.size + x) * 3
	inv := 1 - alpha
	c.data[i+0] = c.data[i+0]*inv + v[0]*alpha
	c.data[i+1] = c.data[i+1]*inv + v[1]*alpha
	c.data[i+2] = c.data[i+2]*inv + v[2]*alpha
}

// Quantize clamps every sample to [0, 255] and truncates it to an integer
// level, matching a conversion to 8-bit.
func (c *Canvas) Quantize() {
	for i, v := range c.data {
		c.data[i] = float32(uint8(clamp255(v)))
	}
}

// ToImage converts the canvas to an opaque image.RGBA, clamping and
// truncating each sample.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.size, c.size))
	for p, i := 0, 0; i < len(c.data); p, i = p+4, i+3 {
		img.Pix[p+0] = uint8(clamp255(c.data[i+0]))
		img.Pix[p+1] = uint8(clamp255(c.data[i+1]))
		img.Pix[p+2] = uint8(clamp255(c.data[i+2]))
		img.Pix[p+3] = 0xff
	}
	return img
}

// Clone returns a deep copy.
func (c *Canvas) Clone() *Canvas {
	out := &Canvas{size: c.size, data: make([]float32, len(c.data))}
	copy(out.data, c.data)
	return out
}

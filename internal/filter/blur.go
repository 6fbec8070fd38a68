package filter

import "sync"

// BlurFilter applies separable Gaussian blur to an interleaved buffer.
// The horizontal and vertical passes run independently, so the cost is
// O(w*h*(rx+ry)) instead of O(w*h*rx*ry).
type BlurFilter struct {
	// RadiusX is the horizontal blur radius (sigma) in pixels.
	RadiusX float64

	// RadiusY is the vertical blur radius (sigma) in pixels.
	RadiusY float64
}

// NewBlurFilter creates a blur filter with equal radius in both directions.
func NewBlurFilter(radius float64) *BlurFilter {
	return &BlurFilter{
		RadiusX: radius,
		RadiusY: radius,
	}
}

// NewBlurFilterXY creates a blur filter with different X and Y radii.
func NewBlurFilterXY(radiusX, radiusY float64) *BlurFilter {
	return &BlurFilter{
		RadiusX: radiusX,
		RadiusY: radiusY,
	}
}

// Apply blurs data in place. data holds width*height pixels of channels
// interleaved samples. Results are clamped to [0, 255] and rounded to the
// nearest level. A buffer of the wrong length is left untouched.
func (f *BlurFilter) Apply(data []float32, width, height, channels int) {
	if width <= 0 || height <= 0 || channels <= 0 || len(data) != width*height*channels {
		return
	}

	temp := getTempBuffer(len(data))
	defer putTempBuffer(temp)

	// Pass 1: rows, data -> temp.
	if f.RadiusX > 0 {
		blurHorizontal(data, temp, width, height, channels, CachedGaussianKernel(f.RadiusX))
	} else {
		copy(temp, data)
	}

	// Pass 2: columns, temp -> data.
	if f.RadiusY > 0 {
		blurVertical(temp, data, width, height, channels, CachedGaussianKernel(f.RadiusY))
	} else {
		copy(data, temp)
	}

	for i, v := range data {
		data[i] = float32(clampUint8(v))
	}
}

// blurHorizontal convolves each row of src with kernel into dst.
func blurHorizontal(src, dst []float32, width, height, channels int, kernel []float32) {
	half := len(kernel) / 2

	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			out := (row + x) * channels
			for c := 0; c < channels; c++ {
				var sum float32
				for k, w := range kernel {
					kx := clampInt(x+k-half, 0, width-1)
					sum += src[(row+kx)*channels+c] * w
				}
				dst[out+c] = sum
			}
		}
	}
}

// blurVertical convolves each column of src with kernel into dst.
func blurVertical(src, dst []float32, width, height, channels int, kernel []float32) {
	half := len(kernel) / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out := (y*width + x) * channels
			for c := 0; c < channels; c++ {
				var sum float32
				for k, w := range kernel {
					ky := clampInt(y+k-half, 0, height-1)
					sum += src[(ky*width+x)*channels+c] * w
				}
				dst[out+c] = sum
			}
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{data: make([]float32, 512*512*3)}
	},
}

// getTempBuffer returns a scratch slice of exactly n elements.
func getTempBuffer(n int) []float32 {
	wrapper := tempBufferPool.Get().(*floatBuffer)
	if len(wrapper.data) < n {
		tempBufferPool.Put(wrapper)
		return make([]float32, n)
	}
	return wrapper.data[:n]
}

// putTempBuffer returns a scratch slice to the pool.
func putTempBuffer(buf []float32) {
	if cap(buf) <= 2048*2048*3 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampUint8 clamps a float32 to [0, 255] and rounds to the nearest level.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

package filter

import (
	"math"

	"github.com/gogpu/winepaint/internal/cache"
)

// GaussianKernel generates a 1D Gaussian kernel using radius as sigma.
// The kernel is normalized so all values sum to 1.0.
//
// The kernel size is 2 * ceil(radius * 3) + 1, which covers 99.7% of the
// distribution. For radius <= 0 it returns the identity kernel [1.0].
func GaussianKernel(radius float64) []float32 {
	if radius <= 0 {
		return []float32{1.0}
	}

	sigma := radius
	halfSize := int(math.Ceil(sigma * 3))
	size := halfSize*2 + 1

	kernel := make([]float32, size)

	// exp(-x²/(2σ²)); the constant factor cancels in the normalization.
	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)

	for i := 0; i < size; i++ {
		x := float64(i - halfSize)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	invSum := float32(1.0 / sum)
	for i := range kernel {
		kernel[i] *= invSum
	}

	return kernel
}

// kernels caches generated kernels keyed by radius quantized to 0.01.
var kernels = cache.New[int, []float32](64)

// CachedGaussianKernel returns a shared kernel for radius. Callers must not
// modify it.
func CachedGaussianKernel(radius float64) []float32 {
	key := int(math.Round(radius * 100))
	return kernels.GetOrCreate(key, func() []float32 {
		return GaussianKernel(float64(key) / 100)
	})
}

// KernelCacheStats reports hits and misses of the shared kernel cache.
func KernelCacheStats() cache.Stats {
	return kernels.Stats()
}

// OptimalKernelSize returns the kernel length for radius.
func OptimalKernelSize(radius float64) int {
	if radius <= 0 {
		return 1
	}
	return int(math.Ceil(radius*3))*2 + 1
}

package filter

import (
	"math"

	"github.com/gogpu/asciicam/internal/cache"
)

// GaussianKernel returns a normalized 1D Gaussian kernel for sigma.
//
// The kernel has 2*ceil(3*sigma)+1 taps, covering three standard deviations
// on each side. For sigma <= 0 it returns the identity kernel [1].
func GaussianKernel(sigma float64) []float32 {
	if !(sigma > 0) {
		return []float32{1}
	}

	kernel := make([]float32, kernelSize(sigma))
	half := len(kernel) / 2

	// exp(-x²/2σ²); the 1/(σ√2π) factor drops out on normalization.
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}

	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// kernelSize returns the tap count GaussianKernel produces for sigma.
func kernelSize(sigma float64) int {
	if !(sigma > 0) {
		return 1
	}
	return int(math.Ceil(sigma*3))*2 + 1
}

// kernelQuantum is the sigma resolution of the kernel cache.
const kernelQuantum = 100

var kernels = cache.New[int, []float32](32)

// CachedGaussianKernel returns a shared kernel for sigma rounded to 0.01.
// The returned slice must not be modified.
func CachedGaussianKernel(sigma float64) []float32 {
	key := int(math.Round(sigma * kernelQuantum))
	k, _ := kernels.GetOrCreate(key, func() ([]float32, error) {
		return GaussianKernel(float64(key) / kernelQuantum), nil
	})
	return k
}

package filter

import (
	"image"
	"sync"
)

// RowRunner runs fn over contiguous row bands that cover [0, height) and
// returns when every band is done. Bands may run concurrently.
type RowRunner interface {
	Rows(height int, fn func(y0, y1 int))
}

// serial runs the whole height as one band on the calling goroutine.
type serial struct{}

func (serial) Rows(height int, fn func(y0, y1 int)) { fn(0, height) }

// BlurAlpha applies a separable Gaussian blur with the given sigma to src
// and writes the result to dst. dst and src must have the same bounds and
// may be the same mask. Samples beyond the mask edge repeat the edge value.
//
// A non-positive sigma copies src into dst.
func BlurAlpha(dst, src *image.Alpha, sigma float64) {
	BlurAlphaRows(serial{}, dst, src, sigma)
}

// BlurAlphaRows is BlurAlpha with both passes split into row bands by r.
func BlurAlphaRows(r RowRunner, dst, src *image.Alpha, sigma float64) {
	if dst == nil || src == nil {
		return
	}
	b := src.Bounds()
	if b.Empty() || dst.Bounds() != b {
		return
	}
	width, height := b.Dx(), b.Dy()

	if !(sigma > 0) {
		if dst != src {
			for y := 0; y < height; y++ {
				copy(dst.Pix[y*dst.Stride:y*dst.Stride+width], src.Pix[y*src.Stride:y*src.Stride+width])
			}
		}
		return
	}

	kernel := CachedGaussianKernel(sigma)
	temp := getTempBuffer(width * height)
	defer putTempBuffer(temp)

	// The column pass reads rows of temp outside its band, so the row pass
	// must finish first.
	r.Rows(height, func(y0, y1 int) {
		blurRows(temp, src, width, y0, y1, kernel)
	})
	r.Rows(height, func(y0, y1 int) {
		blurColumns(dst, temp, width, height, y0, y1, kernel)
	})
}

// blurRows convolves rows [y0, y1) of src into temp.
func blurRows(temp []float32, src *image.Alpha, width, y0, y1 int, kernel []float32) {
	half := len(kernel) / 2
	for y := y0; y < y1; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+width]
		out := temp[y*width : (y+1)*width]
		for x := range out {
			var sum float32
			for k, w := range kernel {
				sx := clampInt(x+k-half, 0, width-1)
				sum += float32(row[sx]) * w
			}
			out[x] = sum
		}
	}
}

// blurColumns convolves temp vertically into rows [y0, y1) of dst.
func blurColumns(dst *image.Alpha, temp []float32, width, height, y0, y1 int, kernel []float32) {
	half := len(kernel) / 2
	for y := y0; y < y1; y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+width]
		for x := range row {
			var sum float32
			for k, w := range kernel {
				sy := clampInt(y+k-half, 0, height-1)
				sum += temp[sy*width+x] * w
			}
			row[x] = clampUint8(sum)
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() any {
		return &floatBuffer{data: make([]float32, 0, 1280*720)}
	},
}

// getTempBuffer returns a pooled buffer of exactly n elements. Every element
// is overwritten by blurRows, so the buffer is not cleared.
func getTempBuffer(n int) []float32 {
	fb := tempBufferPool.Get().(*floatBuffer)
	if cap(fb.data) < n {
		fb.data = make([]float32, n)
	}
	return fb.data[:n]
}

func putTempBuffer(buf []float32) {
	// Keep 4K frames and below.
	if cap(buf) <= 3840*2160 {
		tempBufferPool.Put(&floatBuffer{data: buf})
	}
}

// clampInt clamps v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampUint8 rounds v to the nearest uint8 in [0, 255].
func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

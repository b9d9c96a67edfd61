package asciicam

import "math"

// Sobel kernels, row-major over the 3×3 neighborhood.
var (
	sobelX = [9]float32{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	}
	sobelY = [9]float32{
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1,
	}
)

// MaxEdge is the ceiling of the edge magnitude map.
const MaxEdge = 255

// Sobel writes the gradient magnitude of the width×height scalar map src into
// dst and returns dst resized to width*height. Interior cells hold
// min(255, sqrt(gx² + gy²)); the outermost ring is always 0.
//
// dst must not alias src.
func Sobel(dst, src []float32, width, height int) []float32 {
	dst = grow(dst, width*height)
	if width == 0 || height == 0 {
		return dst
	}

	// Border ring: first and last row, first and last column.
	clear(dst[:width])
	if height > 1 {
		clear(dst[(height-1)*width:])
	}
	for y := 1; y < height-1; y++ {
		dst[y*width] = 0
		dst[y*width+width-1] = 0
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			var sumX, sumY float32
			k := 0
			for ky := -1; ky <= 1; ky++ {
				row := (y + ky) * width
				for kx := -1; kx <= 1; kx++ {
					v := src[row+x+kx]
					sumX += v * sobelX[k]
					sumY += v * sobelY[k]
					k++
				}
			}
			mag := math.Sqrt(float64(sumX)*float64(sumX) + float64(sumY)*float64(sumY))
			dst[y*width+x] = float32(math.Min(MaxEdge, mag))
		}
	}
	return dst
}

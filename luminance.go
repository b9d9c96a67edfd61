package asciicam

import "image"

// Rec. 601 luma weights.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Luminance returns the perceived brightness of an 8-bit RGB triple in
// [0, 255]: 0.299r + 0.587g + 0.114b.
func Luminance(r, g, b uint8) float32 {
	return float32(lumaR*float64(r) + lumaG*float64(g) + lumaB*float64(b))
}

// LuminanceMap writes the luminance of every pixel of img into dst in
// row-major order and returns dst resized to the pixel count. dst is
// reallocated only when its capacity is too small.
//
// The surface is premultiplied, so transparent pixels read as black.
func LuminanceMap(dst []float32, img *image.RGBA) []float32 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	dst = grow(dst, w*h)

	i := 0
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w*4; x += 4 {
			dst[i] = Luminance(row[x], row[x+1], row[x+2])
			i++
		}
	}
	return dst
}

// grow returns s with length n, reusing its backing array when possible.
func grow(s []float32, n int) []float32 {
	if cap(s) < n {
		return make([]float32, n)
	}
	return s[:n]
}

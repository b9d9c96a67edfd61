package asciicam

import (
	"image"
	"image/color"
	"math"
)

// Test helper functions shared across asciicam tests.

// solidFrame creates an opaque gray frame.
func solidFrame(w, h int, v uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// grayFrame creates an opaque frame from row-major gray values.
func grayFrame(w, h int, values []uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, v := range values {
		img.SetRGBA(i%w, i/w, color.RGBA{R: v, G: v, B: v, A: 255})
	}
	return img
}

// approxEqual compares two floats with tolerance.
func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// unitArea returns an area that yields exactly cols×rows cells at fontSize 10.
func unitArea(cols, rows int) Area {
	return Area{
		Width:  (float64(cols) + 0.5) * 10 * ColumnPitch,
		Height: (float64(rows) + 0.5) * 10,
	}
}

// identitySettings returns dense-charset settings with contrast 1 and no
// threshold or glow.
func identitySettings() Settings {
	return Settings{
		Contrast:    1,
		FontSize:    10,
		CharsetMode: CharsetDense,
	}
}

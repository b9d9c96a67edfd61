package asciicam

// Contrast maps v around mid-gray (127.5) by the contrast factor and clamps
// the result to [0, 255]. A contrast of 1 is the identity on [0, 255].
func Contrast(v float32, contrast float64) float32 {
	t := ((float64(v)/255-0.5)*contrast + 0.5) * 255
	if t < 0 {
		return 0
	}
	if t > 255 {
		return 255
	}
	return float32(t)
}

// Tone applies contrast, then zeroes values below threshold. The cutoff is
// hard: a value equal to threshold is kept.
func Tone(v float32, contrast, threshold float64) float32 {
	t := Contrast(v, contrast)
	if float64(t) < threshold {
		return 0
	}
	return t
}

// ToneMap applies Tone to every value of src, writing into dst, and returns
// dst resized to len(src). dst may alias src.
func ToneMap(dst, src []float32, contrast, threshold float64) []float32 {
	dst = grow(dst, len(src))
	for i, v := range src {
		dst[i] = Tone(v, contrast, threshold)
	}
	return dst
}

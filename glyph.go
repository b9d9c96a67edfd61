package asciicam

// blank is the glyph that is never emitted.
const blank = " "

// MapGlyphs selects one glyph per tone value and writes it into dst at the
// same index. Cells that emit nothing are set to "". It returns the number of
// emitted glyphs. dst must be at least as long as tones.
//
// Gradient charsets pick charset[floor(tone/255*(len-1))]; the blank glyph
// is not emitted.
//
// Word charsets walk tones in order with a cursor that starts at 0 on every
// call. A cell whose tone is strictly greater than threshold takes
// charset[cursor%len] and advances the cursor; any other cell is skipped
// without advancing it. A phrase glyph that is a space advances the cursor
// but is not emitted.
func MapGlyphs(dst []string, tones []float32, cs Charset, threshold float64) int {
	dst = dst[:len(tones)]
	if cs.kind == KindWord && len(cs.glyphs) > 0 {
		return mapWord(dst, tones, cs.glyphs, threshold)
	}
	return mapGradient(dst, tones, cs.glyphs)
}

// GradientIndex returns the palette index for tone in a gradient charset of
// n glyphs. It is non-decreasing in tone, 0 at tone 0 and n-1 at tone 255.
func GradientIndex(tone float32, n int) int {
	if n <= 1 {
		return 0
	}
	f := float64(tone) / 255 * float64(n-1)
	switch {
	case !(f > 0):
		return 0
	case f >= float64(n-1):
		return n - 1
	default:
		return int(f)
	}
}

func mapGradient(dst []string, tones []float32, glyphs []string) int {
	emitted := 0
	for i, t := range tones {
		dst[i] = ""
		if len(glyphs) == 0 {
			continue
		}
		g := glyphs[GradientIndex(t, len(glyphs))]
		if g == blank {
			continue
		}
		dst[i] = g
		emitted++
	}
	return emitted
}

func mapWord(dst []string, tones []float32, glyphs []string, threshold float64) int {
	cursor, emitted := 0, 0
	for i, t := range tones {
		dst[i] = ""
		if !(float64(t) > threshold) {
			continue
		}
		g := glyphs[cursor%len(glyphs)]
		cursor++
		if g == blank {
			continue
		}
		dst[i] = g
		emitted++
	}
	return emitted
}

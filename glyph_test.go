package asciicam

import "testing"

func TestMapGlyphsWordScenario(t *testing.T) {
	tones := []float32{200, 0, 200, 200}
	dst := make([]string, len(tones))

	n := MapGlyphs(dst, tones, WordCharset("AB"), 100)

	want := []string{"A", "", "B", "A"}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("cell %d = %q, want %q", i, dst[i], want[i])
		}
	}
	if n != 3 {
		t.Errorf("emitted = %d, want 3", n)
	}
}

func TestMapGlyphsWordThresholdIsStrict(t *testing.T) {
	tones := []float32{100, 100.5, 99}
	dst := make([]string, len(tones))

	MapGlyphs(dst, tones, WordCharset("XY"), 100)

	want := []string{"", "X", ""}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("cell %d = %q, want %q", i, dst[i], want[i])
		}
	}
}

func TestMapGlyphsWordSpaceAdvancesCursor(t *testing.T) {
	tones := []float32{200, 200, 200, 200}
	dst := make([]string, len(tones))

	n := MapGlyphs(dst, tones, WordCharset("A B"), 0)

	want := []string{"A", "", "B", "A"}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("cell %d = %q, want %q", i, dst[i], want[i])
		}
	}
	if n != 3 {
		t.Errorf("emitted = %d, want 3", n)
	}
}

func TestMapGlyphsWordCursorResetsPerCall(t *testing.T) {
	tones := []float32{255, 255, 255}
	cs := WordCharset("ABCD")

	first := make([]string, 3)
	second := make([]string, 3)
	MapGlyphs(first, tones, cs, 0)
	MapGlyphs(second, tones, cs, 0)

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("cell %d differs between calls: %q vs %q", i, first[i], second[i])
		}
	}
	if first[0] != "A" {
		t.Errorf("first glyph = %q, want A", first[0])
	}
}

func TestMapGlyphsGradientScenario(t *testing.T) {
	cs := GradientCharset(" .#")
	dst := make([]string, 2)

	white := Tone(Luminance(255, 255, 255), 1, 0)
	black := Tone(Luminance(0, 0, 0), 1, 0)
	n := MapGlyphs(dst, []float32{white, black}, cs, 0)

	if dst[0] != "#" {
		t.Errorf("white cell = %q, want %q", dst[0], "#")
	}
	if dst[1] != "" {
		t.Errorf("black cell = %q, want skipped", dst[1])
	}
	if n != 1 {
		t.Errorf("emitted = %d, want 1", n)
	}
}

func TestMapGlyphsGradientClearsStaleCells(t *testing.T) {
	dst := []string{"x", "y"}
	MapGlyphs(dst, []float32{0, 0}, lightCharset, 0)

	for i, g := range dst {
		if g != "" {
			t.Errorf("cell %d = %q, want cleared", i, g)
		}
	}
}

func TestMapGlyphsEmptyCharset(t *testing.T) {
	dst := []string{"x"}
	if n := MapGlyphs(dst, []float32{255}, Charset{}, 0); n != 0 || dst[0] != "" {
		t.Errorf("empty charset emitted %d glyphs, cell %q", n, dst[0])
	}
}

func TestGradientIndexEndpoints(t *testing.T) {
	for _, n := range []int{2, 3, 10, 70} {
		if got := GradientIndex(0, n); got != 0 {
			t.Errorf("GradientIndex(0, %d) = %d, want 0", n, got)
		}
		if got := GradientIndex(255, n); got != n-1 {
			t.Errorf("GradientIndex(255, %d) = %d, want %d", n, got, n-1)
		}
	}
	if got := GradientIndex(200, 1); got != 0 {
		t.Errorf("GradientIndex(200, 1) = %d, want 0", got)
	}
}

func TestGradientIndexMonotonic(t *testing.T) {
	for _, n := range []int{3, 10, 70} {
		prev := 0
		for v := float32(0); v <= 255; v += 0.25 {
			got := GradientIndex(v, n)
			if got < prev {
				t.Errorf("GradientIndex(%v, %d) = %d < %d", v, n, got, prev)
			}
			prev = got
		}
	}
}

func TestGradientIndexOutOfRange(t *testing.T) {
	if got := GradientIndex(-10, 10); got != 0 {
		t.Errorf("GradientIndex(-10, 10) = %d, want 0", got)
	}
	if got := GradientIndex(1000, 10); got != 9 {
		t.Errorf("GradientIndex(1000, 10) = %d, want 9", got)
	}
}

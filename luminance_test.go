package asciicam

import (
	"image"
	"image/color"
	"testing"
)

func TestLuminanceKnownValues(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    float64
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 255},
		{"red", 255, 0, 0, 76.245},
		{"green", 0, 255, 0, 149.685},
		{"blue", 0, 0, 255, 29.07},
		{"mixed", 10, 20, 30, 0.299*10 + 0.587*20 + 0.114*30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Luminance(tt.r, tt.g, tt.b)
			if !approxEqual(float64(got), tt.want, 1e-3) {
				t.Errorf("Luminance(%d, %d, %d) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestLuminanceExactEndpoints(t *testing.T) {
	if got := Luminance(0, 0, 0); got != 0 {
		t.Errorf("Luminance(black) = %v, want exactly 0", got)
	}
	if got := Luminance(255, 255, 255); got != 255 {
		t.Errorf("Luminance(white) = %v, want exactly 255", got)
	}
}

func TestLuminanceGrayIsIdentity(t *testing.T) {
	for v := 0; v <= 255; v++ {
		got := Luminance(uint8(v), uint8(v), uint8(v))
		if !approxEqual(float64(got), float64(v), 1e-3) {
			t.Errorf("Luminance(%d, %d, %d) = %v, want %d", v, v, v, got, v)
		}
	}
}

func TestLuminanceMapRowMajor(t *testing.T) {
	img := grayFrame(3, 2, []uint8{0, 10, 20, 30, 40, 50})

	got := LuminanceMap(nil, img)
	if len(got) != 6 {
		t.Fatalf("LuminanceMap len = %d, want 6", len(got))
	}
	for i, want := range []float64{0, 10, 20, 30, 40, 50} {
		if !approxEqual(float64(got[i]), want, 1e-3) {
			t.Errorf("LuminanceMap[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestLuminanceMapSubImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.SetRGBA(2, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	sub := img.SubImage(image.Rect(1, 1, 3, 3)).(*image.RGBA)
	got := LuminanceMap(nil, sub)

	want := []float32{0, 255, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LuminanceMap(sub)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLuminanceMapReusesBuffer(t *testing.T) {
	buf := make([]float32, 0, 64)
	got := LuminanceMap(buf, solidFrame(4, 4, 100))

	if &got[0] != &buf[:1][0] {
		t.Error("LuminanceMap reallocated a buffer with enough capacity")
	}
}

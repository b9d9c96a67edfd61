package asciicam

import "testing"

func TestSobelUniformFieldIsZero(t *testing.T) {
	for _, size := range [][2]int{{3, 3}, {10, 7}} {
		w, h := size[0], size[1]
		src := make([]float32, w*h)
		for i := range src {
			src[i] = 180
		}

		edges := Sobel(nil, src, w, h)
		for i, v := range edges {
			if v != 0 {
				t.Errorf("%dx%d: edges[%d] = %v, want 0", w, h, i, v)
			}
		}
	}
}

func TestSobelBorderAlwaysZero(t *testing.T) {
	const w, h = 8, 6
	src := make([]float32, w*h)
	for i := range src {
		src[i] = float32((i * 37) % 256)
	}

	// Pre-fill to catch a border that is left unwritten on reuse.
	dst := make([]float32, w*h)
	for i := range dst {
		dst[i] = 99
	}

	edges := Sobel(dst, src, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x != 0 && y != 0 && x != w-1 && y != h-1 {
				continue
			}
			if v := edges[y*w+x]; v != 0 {
				t.Errorf("border edges(%d, %d) = %v, want 0", x, y, v)
			}
		}
	}
}

func TestSobelClampsMagnitude(t *testing.T) {
	const w, h = 6, 6
	src := make([]float32, w*h)
	for y := 0; y < h; y++ {
		for x := w / 2; x < w; x++ {
			src[y*w+x] = 255
		}
	}

	edges := Sobel(nil, src, w, h)
	for i, v := range edges {
		if v > MaxEdge {
			t.Errorf("edges[%d] = %v exceeds %v", i, v, MaxEdge)
		}
	}
	// |gx| = 4*255 at the step, well above the ceiling.
	if got := edges[2*w+2]; got != MaxEdge {
		t.Errorf("edges at step = %v, want %v", got, MaxEdge)
	}
}

func TestSobelCheckerboardClamped(t *testing.T) {
	const w, h = 5, 5
	src := make([]float32, w*h)
	for i := range src {
		if (i%w+i/w)%2 == 0 {
			src[i] = 255
		}
	}

	for i, v := range Sobel(nil, src, w, h) {
		if v < 0 || v > MaxEdge {
			t.Errorf("edges[%d] = %v, want in [0, %v]", i, v, MaxEdge)
		}
	}
}

func TestSobelSmallGradient(t *testing.T) {
	// Columns 0,0,10,10: the step sits between x=1 and x=2.
	const w, h = 4, 3
	src := []float32{
		0, 0, 10, 10,
		0, 0, 10, 10,
		0, 0, 10, 10,
	}

	edges := Sobel(nil, src, w, h)
	// gx = (10-0)*1 + (10-0)*2 + (10-0)*1 = 40, gy = 0
	for _, x := range []int{1, 2} {
		if got := edges[1*w+x]; !approxEqual(float64(got), 40, 1e-4) {
			t.Errorf("edges(%d, 1) = %v, want 40", x, got)
		}
	}
}

func TestSobelDegenerateSizes(t *testing.T) {
	tests := []struct{ w, h int }{
		{0, 0}, {0, 5}, {5, 0}, {1, 1}, {1, 5}, {5, 1}, {2, 2}, {2, 5},
	}

	for _, tt := range tests {
		src := make([]float32, tt.w*tt.h)
		for i := range src {
			src[i] = float32(i * 50)
		}
		edges := Sobel(nil, src, tt.w, tt.h)
		if len(edges) != tt.w*tt.h {
			t.Errorf("Sobel(%dx%d) len = %d, want %d", tt.w, tt.h, len(edges), tt.w*tt.h)
		}
		for i, v := range edges {
			if v != 0 {
				t.Errorf("Sobel(%dx%d)[%d] = %v, want 0 (no interior cells)", tt.w, tt.h, i, v)
			}
		}
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/asciicam"
)

// renderGrid runs values (a cols×rows gray frame) through a nearest-neighbor
// pipeline sized for r, so every frame pixel maps to one cell.
func renderGrid(t *testing.T, r *Renderer, cols, rows int, values []uint8, glow float64) *asciicam.Grid {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for i, v := range values {
		img.SetRGBA(i%cols, i/cols, color.RGBA{R: v, G: v, B: v, A: 255})
	}

	nearest, _ := asciicam.ResamplerByName("nearest")
	p := asciicam.NewPipeline(asciicam.WithResampler(nearest))
	s := asciicam.Settings{Contrast: 1, FontSize: 20, Glow: glow, CharsetMode: asciicam.CharsetDense}

	g, ok := p.Render(img, r.Area(), s)
	if !ok {
		t.Fatal("Render() ok = false")
	}
	if g.Cols != cols || g.Rows != rows {
		t.Fatalf("grid = %dx%d, want %dx%d", g.Cols, g.Rows, cols, rows)
	}
	return g
}

// inked counts pixels that are not pure black.
func inked(img *image.RGBA, rect image.Rectangle) int {
	n := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R|c.G|c.B != 0 {
				n++
			}
		}
	}
	return n
}

func TestNewInvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := New(size[0], size[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d, %d) error = %v, want ErrInvalidSize", size[0], size[1], err)
		}
	}
}

func TestNewInvalidFont(t *testing.T) {
	if _, err := New(10, 10, WithFont([]byte("not a font"))); err == nil {
		t.Error("New() with garbage font data succeeded")
	}
}

func TestNewClearsToBlack(t *testing.T) {
	r, err := New(8, 4)
	if err != nil {
		t.Fatal(err)
	}

	if got := r.Area(); got != (asciicam.Area{Width: 8, Height: 4}) {
		t.Errorf("Area() = %+v, want 8x4", got)
	}
	for i := 0; i < len(r.Image().Pix); i += 4 {
		px := r.Image().Pix[i : i+4]
		if px[0] != 0 || px[1] != 0 || px[2] != 0 || px[3] != 255 {
			t.Fatalf("pixel %d = %v, want opaque black", i/4, px)
		}
	}
}

func TestDrawTopLeftAnchor(t *testing.T) {
	r, err := New(60, 60)
	if err != nil {
		t.Fatal(err)
	}
	values := make([]uint8, 15)
	values[0] = 255

	g := renderGrid(t, r, 5, 3, values, 0)
	if err := r.Draw(g); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	img := r.Image()
	if inked(img, image.Rect(0, 0, 12, 24)) == 0 {
		t.Error("no ink in the first cell")
	}
	if n := inked(img, image.Rect(14, 0, 60, 60)); n != 0 {
		t.Errorf("%d inked pixels right of the first cell", n)
	}
	if n := inked(img, image.Rect(0, 26, 60, 60)); n != 0 {
		t.Errorf("%d inked pixels below the first cell", n)
	}
}

func TestDrawBlackFrame(t *testing.T) {
	r, err := New(60, 60)
	if err != nil {
		t.Fatal(err)
	}

	if err := r.Draw(renderGrid(t, r, 5, 3, make([]uint8, 15), 0.3)); err != nil {
		t.Fatal(err)
	}
	if n := inked(r.Image(), r.Image().Bounds()); n != 0 {
		t.Errorf("black frame inked %d pixels, want 0", n)
	}
}

func TestDrawRepaints(t *testing.T) {
	r, err := New(60, 60)
	if err != nil {
		t.Fatal(err)
	}
	white := bytes.Repeat([]byte{255}, 15)

	if err := r.Draw(renderGrid(t, r, 5, 3, white, 0)); err != nil {
		t.Fatal(err)
	}
	if err := r.Draw(renderGrid(t, r, 5, 3, make([]uint8, 15), 0)); err != nil {
		t.Fatal(err)
	}
	if n := inked(r.Image(), r.Image().Bounds()); n != 0 {
		t.Errorf("previous frame left %d inked pixels", n)
	}
}

func TestDrawGlow(t *testing.T) {
	values := make([]uint8, 15)
	values[7] = 255

	plain, _ := New(60, 60)
	if err := plain.Draw(renderGrid(t, plain, 5, 3, values, 0)); err != nil {
		t.Fatal(err)
	}
	glowing, _ := New(60, 60)
	g := renderGrid(t, glowing, 5, 3, values, 0.3)
	if g.GlowRadius != 0.3*asciicam.GlowScale {
		t.Fatalf("GlowRadius = %v", g.GlowRadius)
	}
	if err := glowing.Draw(g); err != nil {
		t.Fatal(err)
	}

	all := plain.Image().Bounds()
	if inked(glowing.Image(), all) <= inked(plain.Image(), all) {
		t.Error("glow did not spread ink beyond the glyph")
	}
	if c := glowing.Image().RGBAAt(0, 0); c.R != 0 {
		t.Errorf("far corner = %v, want black", c)
	}
}

func TestEncodePNG(t *testing.T) {
	r, err := New(60, 60)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Draw(renderGrid(t, r, 5, 3, bytes.Repeat([]byte{255}, 15), 0)); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds() != r.Image().Bounds() {
		t.Errorf("decoded bounds = %v, want %v", img.Bounds(), r.Image().Bounds())
	}
}

func TestFaceCache(t *testing.T) {
	r, err := New(10, 10)
	if err != nil {
		t.Fatal(err)
	}

	a, err := r.face(12)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := r.face(12)
	if a != b {
		t.Error("face(12) not cached")
	}
	if _, err := r.face(18); err != nil {
		t.Fatal(err)
	}
	if r.faces.Len() != 2 {
		t.Errorf("cached faces = %d, want 2", r.faces.Len())
	}
	if _, err := r.face(0); err == nil {
		t.Error("face(0) succeeded")
	}

	if err := r.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if r.faces.Len() != 0 {
		t.Errorf("faces after Close = %d, want 0", r.faces.Len())
	}
}

func TestDrawGlowWorkersAgree(t *testing.T) {
	values := bytes.Repeat([]byte{0, 255, 0, 255, 200}, 3)

	serial, _ := New(60, 60, WithWorkers(1))
	defer serial.Close()
	pooled, _ := New(60, 60, WithWorkers(4))
	defer pooled.Close()

	if err := serial.Draw(renderGrid(t, serial, 5, 3, values, 0.5)); err != nil {
		t.Fatal(err)
	}
	if err := pooled.Draw(renderGrid(t, pooled, 5, 3, values, 0.5)); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(serial.Image().Pix, pooled.Image().Pix) {
		t.Error("pooled glow differs from serial glow")
	}
}

func TestDrawAfterClose(t *testing.T) {
	r, _ := New(60, 60)
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if err := r.Draw(renderGrid(t, r, 5, 3, bytes.Repeat([]byte{255}, 15), 0.3)); err != nil {
		t.Errorf("Draw() after Close error = %v", err)
	}
}

package source

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/gogpu/asciicam"
)

func TestStill(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 3))

	got, err := Still(img).Frame()
	if err != nil {
		t.Fatalf("Frame() error = %v", err)
	}
	if got != image.Image(img) {
		t.Error("Frame() returned a different image")
	}
}

func TestStillNil(t *testing.T) {
	_, err := Still(nil).Frame()
	if !errors.Is(err, asciicam.ErrNoFrame) {
		t.Errorf("Frame() error = %v, want ErrNoFrame", err)
	}
}

// fakeClock returns a pattern whose clock is advanced by the test.
func fakeClock(p *Pattern) *time.Time {
	now := p.start
	p.now = func() time.Time { return now }
	return &now
}

func TestPatternBounds(t *testing.T) {
	p := NewPattern(64, 48, time.Second)

	img, err := p.Frame()
	if err != nil {
		t.Fatalf("Frame() error = %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 64, 48) {
		t.Errorf("Bounds() = %v, want 64x48", got)
	}
}

func TestPatternAnimates(t *testing.T) {
	p := NewPattern(64, 64, time.Second)
	now := fakeClock(p)

	first, _ := p.Frame()
	a := append([]uint8(nil), first.(*image.RGBA).Pix...)

	*now = now.Add(250 * time.Millisecond)
	second, _ := p.Frame()
	b := second.(*image.RGBA).Pix

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("frames a quarter period apart are identical")
	}
}

func TestPatternPeriodic(t *testing.T) {
	p := NewPattern(32, 32, time.Second)
	now := fakeClock(p)

	first, _ := p.Frame()
	a := append([]uint8(nil), first.(*image.RGBA).Pix...)

	*now = now.Add(3 * time.Second)
	second, _ := p.Frame()
	for i, v := range second.(*image.RGBA).Pix {
		if v != a[i] {
			t.Fatalf("Pix[%d] = %d after whole periods, want %d", i, v, a[i])
		}
	}
}

func TestPatternDisc(t *testing.T) {
	p := NewPattern(40, 40, 0)

	img, _ := p.Frame()
	rgba := img.(*image.RGBA)

	// Phase 0 puts the disc right of center.
	if got := rgba.RGBAAt(30, 20).R; got != 255 {
		t.Errorf("disc pixel = %d, want 255", got)
	}
	if got := rgba.RGBAAt(0, 0).R; got != 0 {
		t.Errorf("corner pixel = %d, want 0", got)
	}
	if got := rgba.RGBAAt(0, 0).A; got != 255 {
		t.Errorf("alpha = %d, want opaque", got)
	}
}

func TestPatternEmpty(t *testing.T) {
	img, err := NewPattern(0, -5, time.Second).Frame()
	if err != nil {
		t.Fatalf("Frame() error = %v", err)
	}
	if !img.Bounds().Empty() {
		t.Errorf("Bounds() = %v, want empty", img.Bounds())
	}
}

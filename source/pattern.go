package source

import (
	"image"
	"math"
	"sync"
	"time"
)

// Pattern is an animated test source: a bright disc orbiting over a
// diagonal gradient. One orbit takes the configured period.
type Pattern struct {
	mu     sync.Mutex
	frame  *image.RGBA
	period time.Duration
	start  time.Time
	now    func() time.Time
}

// NewPattern returns a width×height pattern source. A non-positive period
// freezes the animation at its first frame.
func NewPattern(width, height int, period time.Duration) *Pattern {
	return &Pattern{
		frame:  image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		period: period,
		start:  time.Now(),
		now:    time.Now,
	}
}

// Frame implements asciicam.FrameSource. The returned image is reused by
// the next call.
func (p *Pattern) Frame() (image.Image, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	phase := 0.0
	if p.period > 0 {
		elapsed := p.now().Sub(p.start) % p.period
		phase = float64(elapsed) / float64(p.period)
	}
	p.paint(phase)
	return p.frame, nil
}

// paint renders the pattern at phase in [0, 1).
func (p *Pattern) paint(phase float64) {
	b := p.frame.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if w == 0 || h == 0 {
		return
	}

	angle := 2 * math.Pi * phase
	cx := w/2 + math.Cos(angle)*w/4
	cy := h/2 + math.Sin(angle)*h/4
	radius := math.Min(w, h) / 5
	diag := w + h

	for y := 0; y < b.Dy(); y++ {
		row := p.frame.Pix[y*p.frame.Stride : y*p.frame.Stride+b.Dx()*4]
		for x := 0; x < b.Dx(); x++ {
			v := (float64(x) + float64(y)) / diag * 160
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= radius*radius {
				v = 255
			}
			g := uint8(v)
			i := x * 4
			row[i+0] = g
			row[i+1] = g
			row[i+2] = g
			row[i+3] = 255
		}
	}
}

package asciicam

import "image"

// Pipeline runs the per-frame image-to-glyph transform.
//
// A Pipeline owns its scratch buffers: the sampling surface, the scalar maps
// and the output grid. They are sized for the maximum sample grid up front
// and the sampling surface is reallocated only when the grid dimensions
// change. A Pipeline is not safe for concurrent use.
type Pipeline struct {
	sampler sampler

	lum   []float32
	edges []float32
	tones []float32
	grid  Grid

	// Resolved charset for the last seen mode and phrase.
	charset       Charset
	charsetMode   CharsetMode
	charsetPhrase string
	charsetValid  bool
}

// NewPipeline creates a pipeline.
//
// Example:
//
//	// Default bilinear sampling
//	p := asciicam.NewPipeline()
//
//	// Lanczos sampling
//	p := asciicam.NewPipeline(asciicam.WithResampler(
//	    asciicam.ResizeResampler{Filter: resize.Lanczos3}))
func NewPipeline(opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := MaxSampleWidth * MaxSampleHeight
	return &Pipeline{
		sampler: sampler{resampler: o.resampler},
		lum:     make([]float32, 0, n),
		edges:   make([]float32, 0, n),
		tones:   make([]float32, 0, n),
	}
}

// Render transforms one frame for a display area using the settings
// snapshot s. It returns false, and no grid, when the frame is nil or empty
// or when the sample grid has a zero dimension; such frames are skipped,
// not errors.
//
// The returned grid is reused by the next call.
func (p *Pipeline) Render(frame image.Image, area Area, s Settings) (*Grid, bool) {
	if frame == nil || frame.Bounds().Empty() {
		Logger().Debug("asciicam: frame skipped", "reason", "empty frame")
		return nil, false
	}
	w, h := SampleSize(area, s.FontSize)
	if w == 0 || h == 0 {
		Logger().Debug("asciicam: frame skipped", "reason", "degenerate sample grid",
			"area_width", area.Width, "area_height", area.Height, "font_size", s.FontSize)
		return nil, false
	}
	return p.RenderSamples(p.sampler.sample(frame, w, h), area, s)
}

// RenderSamples runs the pipeline on an already sampled surface, one pixel
// per cell. The grid takes the surface dimensions; area only sets the cell
// geometry. It returns false when the surface is empty.
func (p *Pipeline) RenderSamples(samples *image.RGBA, area Area, s Settings) (*Grid, bool) {
	b := samples.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, false
	}

	p.lum = LuminanceMap(p.lum, samples)
	scalars := p.lum
	if s.OutlineMode {
		p.edges = Sobel(p.edges, p.lum, w, h)
		scalars = p.edges
	}
	p.tones = ToneMap(p.tones, scalars, s.Contrast, s.Threshold)

	p.grid.reset(w, h, area, s)
	p.grid.count = MapGlyphs(p.grid.cells, p.tones, p.charsetFor(s), s.Threshold)
	return &p.grid, true
}

// charsetFor returns the charset for s, re-segmenting the phrase only when
// the mode or phrase changed since the previous frame.
func (p *Pipeline) charsetFor(s Settings) Charset {
	if !p.charsetValid || p.charsetMode != s.CharsetMode || p.charsetPhrase != s.WordPhrase {
		p.charset = s.Charset()
		p.charsetMode = s.CharsetMode
		p.charsetPhrase = s.WordPhrase
		p.charsetValid = true
	}
	return p.charset
}

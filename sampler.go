package asciicam

import (
	"image"
	"math"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Sample grid bounds and cell geometry.
const (
	// MaxSampleWidth caps the number of sample columns per frame.
	MaxSampleWidth = 180

	// MaxSampleHeight caps the number of sample rows per frame.
	MaxSampleHeight = 135

	// ColumnPitch is the glyph advance as a fraction of the font size.
	ColumnPitch = 0.6
)

// Area is the display area a frame is rendered into, in the same units as
// Settings.FontSize.
type Area struct {
	Width  float64
	Height float64
}

// GridSize returns the number of character columns and rows that fit in
// area at the given font size, before the sample grid caps are applied.
// Non-positive or non-finite inputs yield (0, 0).
func GridSize(area Area, fontSize float64) (cols, rows int) {
	if !(fontSize > 0) || !(area.Width > 0) || !(area.Height > 0) {
		return 0, 0
	}
	cols = floorInt(area.Width / (fontSize * ColumnPitch))
	rows = floorInt(area.Height / fontSize)
	return cols, rows
}

// SampleSize returns the sample grid dimensions for area, capped at
// MaxSampleWidth×MaxSampleHeight. Either dimension may be 0, in which case
// the frame is skipped.
func SampleSize(area Area, fontSize float64) (width, height int) {
	cols, rows := GridSize(area, fontSize)
	return min(cols, MaxSampleWidth), min(rows, MaxSampleHeight)
}

// floorInt floors v into an int, saturating instead of overflowing.
func floorInt(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(v))
}

// Resampler scales a source frame onto the sampling surface. Every pixel of
// dst must be overwritten with exactly one color per cell.
type Resampler interface {
	Resample(dst *image.RGBA, src image.Image)
}

// InterpolatorResampler resamples with a golang.org/x/image/draw interpolator.
type InterpolatorResampler struct {
	Interpolator draw.Interpolator
}

// Resample implements Resampler.
func (r InterpolatorResampler) Resample(dst *image.RGBA, src image.Image) {
	r.Interpolator.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
}

// ResizeResampler resamples with a github.com/nfnt/resize filter. It
// allocates an intermediate image per call and trades speed for the
// windowed filters (Lanczos, Mitchell-Netravali) x/image lacks.
type ResizeResampler struct {
	Filter resize.InterpolationFunction
}

// Resample implements Resampler.
func (r ResizeResampler) Resample(dst *image.RGBA, src image.Image) {
	b := dst.Bounds()
	scaled := resize.Resize(uint(b.Dx()), uint(b.Dy()), src, r.Filter)
	draw.Copy(dst, b.Min, scaled, scaled.Bounds(), draw.Src, nil)
}

// DefaultResampler is the bilinear approximation browsers use when drawing a
// video element onto a smaller canvas.
var DefaultResampler Resampler = InterpolatorResampler{Interpolator: draw.ApproxBiLinear}

// resamplers maps configuration names to resamplers.
var resamplers = map[string]Resampler{
	"nearest":    InterpolatorResampler{Interpolator: draw.NearestNeighbor},
	"bilinear":   DefaultResampler,
	"smooth":     InterpolatorResampler{Interpolator: draw.BiLinear},
	"catmullrom": InterpolatorResampler{Interpolator: draw.CatmullRom},
	"bicubic":    ResizeResampler{Filter: resize.Bicubic},
	"mitchell":   ResizeResampler{Filter: resize.MitchellNetravali},
	"lanczos":    ResizeResampler{Filter: resize.Lanczos3},
}

// ResamplerByName looks up a resampler by its configuration name:
// nearest, bilinear, smooth, catmullrom, bicubic, mitchell or lanczos.
func ResamplerByName(name string) (Resampler, bool) {
	r, ok := resamplers[strings.ToLower(strings.TrimSpace(name))]
	return r, ok
}

// sampler owns the sampling surface. The surface is reallocated only when
// the sample grid dimensions change.
type sampler struct {
	surface   *image.RGBA
	resampler Resampler
}

// sample scales frame onto a width×height surface and returns it. The
// returned image is reused by the next call.
func (s *sampler) sample(frame image.Image, width, height int) *image.RGBA {
	if s.surface == nil || s.surface.Rect.Dx() != width || s.surface.Rect.Dy() != height {
		s.surface = image.NewRGBA(image.Rect(0, 0, width, height))
		Logger().Debug("asciicam: sampling surface resized", "width", width, "height", height)
	}
	s.resampler.Resample(s.surface, frame)
	return s.surface
}

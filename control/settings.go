package control

import (
	"math"

	"github.com/gogpu/asciicam"
)

// Setting ranges enforced by Clamp.
const (
	MinContrast  = 0.01
	MaxContrast  = 5
	MinFontSize  = 4
	MaxFontSize  = 48
	MinStep      = 1
	MaxStep      = 32
	MaxThreshold = 255
	MaxGlow      = 1

	// MobileStep is the step used on displays narrower than MobileWidth.
	MobileStep  = 10
	MobileWidth = 768
)

// Clamp returns s with every numeric field forced into its range. NaN
// fields take their default. An unknown charset mode becomes dense.
func Clamp(s asciicam.Settings) asciicam.Settings {
	s.Contrast = clampFloat(s.Contrast, MinContrast, MaxContrast, asciicam.DefaultContrast)
	s.Threshold = clampFloat(s.Threshold, 0, MaxThreshold, asciicam.DefaultThreshold)
	s.Glow = clampFloat(s.Glow, 0, MaxGlow, asciicam.DefaultGlow)
	s.FontSize = clampFloat(s.FontSize, MinFontSize, MaxFontSize, asciicam.DefaultFontSize)
	s.Step = min(max(s.Step, MinStep), MaxStep)

	switch s.CharsetMode {
	case asciicam.CharsetDense, asciicam.CharsetLight, asciicam.CharsetWord:
	default:
		s.CharsetMode = asciicam.CharsetDense
	}
	return s
}

// DefaultSettingsFor returns the default settings for a display area. Narrow
// displays get a coarser step.
func DefaultSettingsFor(area asciicam.Area) asciicam.Settings {
	s := asciicam.DefaultSettings()
	if area.Width > 0 && area.Width < MobileWidth {
		s.Step = MobileStep
	}
	return s
}

func clampFloat(v, lo, hi, def float64) float64 {
	if math.IsNaN(v) {
		return def
	}
	return math.Min(math.Max(v, lo), hi)
}

package asciicam

// CharsetMode selects the glyph palette used by the GlyphMapper.
type CharsetMode string

// Charset modes.
const (
	// CharsetDense is the 70-glyph gradient palette.
	CharsetDense CharsetMode = "dense"

	// CharsetLight is the 10-glyph gradient palette.
	CharsetLight CharsetMode = "light"

	// CharsetWord spells Settings.WordPhrase across bright cells.
	// An empty phrase falls back to CharsetDense.
	CharsetWord CharsetMode = "word"
)

// Default settings, matching the values a fresh controller starts with.
const (
	DefaultStep      = 8
	DefaultFontSize  = 12
	DefaultContrast  = 1.2
	DefaultThreshold = 0
	DefaultGlow      = 0.3
)

// Settings is an immutable per-frame snapshot of the render parameters.
//
// The pipeline reads a Settings value once at the start of a frame and
// applies it uniformly to every cell. Settings are not validated: contrast,
// threshold and glow outside their usual ranges produce well-defined but
// possibly degenerate output. Controllers clamp before building a snapshot.
type Settings struct {
	// Contrast scales tone distance from mid-gray. 1 is identity.
	Contrast float64

	// Threshold zeroes tone values below it, in [0, 255].
	Threshold float64

	// Glow is forwarded to renderers as a blur radius of Glow*GlowScale.
	Glow float64

	// FontSize is the glyph height in output units. The column pitch is
	// FontSize*ColumnPitch.
	FontSize float64

	// Step is carried for controllers and does not affect the grid size.
	Step int

	// OutlineMode replaces luminance with a Sobel edge magnitude map.
	OutlineMode bool

	// CharsetMode selects the glyph policy. Unknown modes use CharsetDense.
	CharsetMode CharsetMode

	// WordPhrase is the charset in CharsetWord mode.
	WordPhrase string
}

// DefaultSettings returns the settings a fresh session starts with.
func DefaultSettings() Settings {
	return Settings{
		Contrast:    DefaultContrast,
		Threshold:   DefaultThreshold,
		Glow:        DefaultGlow,
		FontSize:    DefaultFontSize,
		Step:        DefaultStep,
		CharsetMode: CharsetDense,
	}
}

// Charset resolves the glyph policy for this snapshot.
func (s Settings) Charset() Charset {
	return ResolveCharset(s.CharsetMode, s.WordPhrase)
}

package asciicam

import (
	"strings"

	"github.com/go-text/typesetting/segmenter"
	"golang.org/x/text/unicode/norm"
)

// Built-in gradient palettes, ordered from the emptiest glyph to the densest.
const (
	DenseGlyphs = " .'`^\",:;Il!i><~+_-?][}{1)(|/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"
	LightGlyphs = " .:-=+*#%@"
)

// CharsetKind tags the glyph selection policy of a Charset.
type CharsetKind uint8

const (
	// KindGradient selects glyphs proportionally to the tone value.
	KindGradient CharsetKind = iota

	// KindWord cycles through a phrase over cells above the threshold.
	KindWord
)

// String returns the kind name.
func (k CharsetKind) String() string {
	switch k {
	case KindGradient:
		return "gradient"
	case KindWord:
		return "word"
	default:
		return "unknown"
	}
}

// Charset is an ordered glyph sequence tagged with its selection policy.
//
// Glyphs are grapheme clusters, so a phrase containing combining marks or
// emoji sequences cycles one visible glyph at a time. The zero value is an
// empty gradient charset that emits nothing.
type Charset struct {
	kind   CharsetKind
	glyphs []string
}

var (
	denseCharset = GradientCharset(DenseGlyphs)
	lightCharset = GradientCharset(LightGlyphs)
)

// GradientCharset returns a gradient charset over seq. Index 0 must be the
// emptiest glyph and the last index the densest.
func GradientCharset(seq string) Charset {
	return Charset{kind: KindGradient, glyphs: splitGlyphs(seq)}
}

// WordCharset returns a word charset spelling phrase. An empty phrase is not
// a valid word charset and yields the dense gradient charset instead.
func WordCharset(phrase string) Charset {
	glyphs := splitGlyphs(phrase)
	if len(glyphs) == 0 {
		return denseCharset
	}
	return Charset{kind: KindWord, glyphs: glyphs}
}

// ResolveCharset selects the charset for a mode. Unknown modes use the dense
// palette, and CharsetWord with an empty phrase falls back to it as well.
func ResolveCharset(mode CharsetMode, phrase string) Charset {
	switch mode {
	case CharsetLight:
		return lightCharset
	case CharsetWord:
		return WordCharset(phrase)
	default:
		return denseCharset
	}
}

// Kind returns the selection policy.
func (c Charset) Kind() CharsetKind { return c.kind }

// Len returns the number of glyphs.
func (c Charset) Len() int { return len(c.glyphs) }

// Glyph returns the glyph at index i.
func (c Charset) Glyph(i int) string { return c.glyphs[i] }

// String returns the glyphs joined back into one string.
func (c Charset) String() string { return strings.Join(c.glyphs, "") }

// splitGlyphs normalizes s to NFC and splits it into grapheme clusters.
func splitGlyphs(s string) []string {
	if s == "" {
		return nil
	}

	runes := []rune(norm.NFC.String(s))

	var seg segmenter.Segmenter
	seg.Init(runes)
	iter := seg.GraphemeIterator()

	glyphs := make([]string, 0, len(runes))
	for iter.Next() {
		glyphs = append(glyphs, string(iter.Grapheme().Text))
	}
	return glyphs
}

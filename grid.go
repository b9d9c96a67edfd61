package asciicam

import "strings"

// GlowScale converts Settings.Glow into a blur radius in output units.
const GlowScale = 15

// Placement is one glyph positioned on the output surface. X and Y are the
// top-left corner of the glyph's cell.
type Placement struct {
	Row   int
	Col   int
	X     float64
	Y     float64
	Glyph string
}

// Grid is the output of one frame: a Rows×Cols glyph grid plus the geometry
// a renderer needs to paint it.
//
// Grids returned by Pipeline.Render are owned by the pipeline and are
// overwritten by the next frame. Use Clone to keep one.
type Grid struct {
	// Cols and Rows are the sample grid dimensions.
	Cols int
	Rows int

	// CellWidth and CellHeight are the size of one cell on the output
	// surface: area width / Cols and area height / Rows.
	CellWidth  float64
	CellHeight float64

	// FontSize is the font size of the frame's settings.
	FontSize float64

	// GlowRadius is the blur radius renderers apply around glyphs, 0 for none.
	GlowRadius float64

	cells []string
	count int
}

// At returns the glyph at row, col, or "" if the cell is empty or outside
// the grid.
func (g *Grid) At(row, col int) string {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return ""
	}
	return g.cells[row*g.Cols+col]
}

// Count returns the number of emitted glyphs.
func (g *Grid) Count() int { return g.count }

// Each calls fn for every emitted glyph in raster order.
func (g *Grid) Each(fn func(Placement)) {
	for i, glyph := range g.cells {
		if glyph == "" {
			continue
		}
		row, col := i/g.Cols, i%g.Cols
		fn(Placement{
			Row:   row,
			Col:   col,
			X:     float64(col) * g.CellWidth,
			Y:     float64(row) * g.CellHeight,
			Glyph: glyph,
		})
	}
}

// Placements returns every emitted glyph in raster order.
func (g *Grid) Placements() []Placement {
	out := make([]Placement, 0, g.count)
	g.Each(func(p Placement) { out = append(out, p) })
	return out
}

// Lines returns the grid as text rows, with empty cells rendered as spaces.
func (g *Grid) Lines() []string {
	lines := make([]string, g.Rows)
	var sb strings.Builder
	for r := 0; r < g.Rows; r++ {
		sb.Reset()
		for _, glyph := range g.cells[r*g.Cols : (r+1)*g.Cols] {
			if glyph == "" {
				glyph = blank
			}
			sb.WriteString(glyph)
		}
		lines[r] = sb.String()
	}
	return lines
}

// String returns the grid as newline-separated text rows.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// Clone returns a deep copy that is not affected by later frames.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = append([]string(nil), g.cells...)
	return &c
}

// reset sizes the grid for a frame and computes its cell geometry.
func (g *Grid) reset(cols, rows int, area Area, s Settings) {
	g.Cols, g.Rows = cols, rows
	g.CellWidth = area.Width / float64(cols)
	g.CellHeight = area.Height / float64(rows)
	g.FontSize = s.FontSize
	g.GlowRadius = 0
	if s.Glow > 0 {
		g.GlowRadius = s.Glow * GlowScale
	}

	n := cols * rows
	if cap(g.cells) < n {
		g.cells = make([]string, n, max(n, MaxSampleWidth*MaxSampleHeight))
	}
	g.cells = g.cells[:n]
	g.count = 0
}

// Package asciicam turns video frames into grids of text glyphs.
//
// # Overview
//
// asciicam is the per-frame image-to-glyph transform behind a live ASCII
// camera. Each call downsamples a color frame onto a small sample grid,
// converts it to luminance (or to a Sobel edge map in outline mode), applies
// contrast and threshold, and selects one glyph per cell. The resulting Grid
// carries everything a renderer needs to paint the frame: glyph placements,
// the cell size on the output surface and the glow radius.
//
// # Quick Start
//
//	import "github.com/gogpu/asciicam"
//
//	p := asciicam.NewPipeline()
//	area := asciicam.Area{Width: 1280, Height: 720}
//
//	grid, ok := p.Render(frame, area, asciicam.DefaultSettings())
//	if !ok {
//	    return // degenerate sample grid, nothing to draw
//	}
//	for _, pl := range grid.Placements() {
//	    draw(pl.Glyph, pl.X, pl.Y)
//	}
//
// # Pipeline
//
// The stages run forward once per frame and are exported individually:
//   - [SampleSize] and the pipeline's resampler: frame → sample grid (≤180×135)
//   - [LuminanceMap]: RGB → 0.299r + 0.587g + 0.114b
//   - [Sobel]: optional gradient-magnitude map, border cells are 0
//   - [ToneMap]: contrast around mid-gray, then hard threshold
//   - [MapGlyphs]: gradient charset or word-cycling charset
//
// # Charsets
//
// Gradient charsets are ordered from the emptiest glyph to the densest and
// are indexed proportionally to the tone value. A word charset spells a user
// phrase across cells brighter than the threshold in raster order; its cursor
// restarts at the first glyph on every frame.
//
// # Concurrency
//
// A Pipeline owns its scratch buffers and must not be used by more than one
// goroutine at a time. Settings are passed by value, so a controller may
// change them between frames without affecting a frame in progress. See
// package control for a scheduler, freeze and settings store.
//
// # Renderers
//
// The core never draws. Packages render/raster and render/term paint a Grid
// onto an image or a terminal screen.
package asciicam

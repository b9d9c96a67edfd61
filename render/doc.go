// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render groups the drawing surfaces an asciicam grid can be painted
// onto.
//
// # Renderer Implementations
//
//   - raster.Renderer: CPU-backed *image.RGBA with a monospace OpenType face
//     and Gaussian glyph glow, encodable as PNG
//   - term.Renderer: a tcell terminal screen, one glyph per character cell
//
// Both implement asciicam.Renderer and share the same contract: black
// background, white glyphs, each glyph anchored at the top-left corner of
// its cell.
package render

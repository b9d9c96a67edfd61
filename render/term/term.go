// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package term paints asciicam grids onto a terminal through tcell.
//
// Each grid cell maps to one terminal cell, so the grid geometry comes from
// the screen size rather than pixels. Area converts the screen size into
// the pixel area that yields one sample per character cell.
package term

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/asciicam"
)

// ErrNoScreen is returned by Draw when the renderer has no screen.
var ErrNoScreen = errors.New("term: no screen")

// DefaultStyle draws white glyphs on black.
var DefaultStyle = tcell.StyleDefault.
	Foreground(tcell.ColorWhite).
	Background(tcell.ColorBlack)

// Option configures a Renderer.
type Option func(*Renderer)

// WithStyle sets the glyph and background style.
func WithStyle(style tcell.Style) Option {
	return func(r *Renderer) {
		r.style = style
	}
}

// Renderer is an asciicam.Renderer backed by a tcell.Screen. The screen must
// be initialized by the caller.
type Renderer struct {
	screen tcell.Screen
	style  tcell.Style
}

// New creates a renderer drawing to screen.
func New(screen tcell.Screen, opts ...Option) *Renderer {
	r := &Renderer{screen: screen, style: DefaultStyle}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Area returns the pixel area for which a grid at fontSize has one cell per
// terminal character.
func (r *Renderer) Area(fontSize float64) asciicam.Area {
	if r.screen == nil {
		return asciicam.Area{}
	}
	w, h := r.screen.Size()
	// Half a cell of slack keeps the floor in GridSize on the right side of
	// rounding.
	return asciicam.Area{
		Width:  (float64(w) + 0.5) * fontSize * asciicam.ColumnPitch,
		Height: (float64(h) + 0.5) * fontSize,
	}
}

// Draw implements asciicam.Renderer. Cells beyond the screen are clipped.
func (r *Renderer) Draw(g *asciicam.Grid) error {
	if r.screen == nil {
		return ErrNoScreen
	}

	r.screen.SetStyle(r.style)
	r.screen.Clear()
	w, h := r.screen.Size()
	g.Each(func(p asciicam.Placement) {
		if p.Col >= w || p.Row >= h {
			return
		}
		runes := []rune(p.Glyph)
		r.screen.SetContent(p.Col, p.Row, runes[0], runes[1:], r.style)
	})
	r.screen.Show()
	return nil
}

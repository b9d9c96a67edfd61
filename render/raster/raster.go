// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster paints asciicam grids onto a CPU-backed *image.RGBA.
//
// Glyphs are drawn in white on black with a monospace OpenType face, the
// Go Mono face unless WithFont is given. When the grid carries a glow
// radius, a blurred copy of the glyph coverage is composited under the
// glyphs.
//
// Example:
//
//	r, err := raster.New(1280, 720)
//	if err != nil {
//	    return err
//	}
//	if g, ok := p.Render(frame, r.Area(), settings); ok {
//	    _ = r.Draw(g)
//	}
//	_ = r.EncodePNG(w)
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/asciicam"
	"github.com/gogpu/asciicam/internal/cache"
	"github.com/gogpu/asciicam/internal/filter"
	"github.com/gogpu/asciicam/internal/parallel"
)

// ErrInvalidSize is returned by New for a non-positive width or height.
var ErrInvalidSize = errors.New("raster: invalid surface size")

// maxFaces bounds the per-size face cache.
const maxFaces = 16

// Option configures a Renderer.
type Option func(*options)

type options struct {
	ttf     []byte
	workers int
}

// WithFont sets the TrueType or OpenType font data glyphs are drawn with.
// The font should be monospaced.
func WithFont(ttf []byte) Option {
	return func(o *options) {
		if len(ttf) > 0 {
			o.ttf = ttf
		}
	}
}

// WithWorkers sets the number of goroutines the glow blur is split across.
// 0 uses GOMAXPROCS; 1 blurs on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// Renderer is a CPU-backed asciicam.Renderer. It is safe for concurrent
// use; Draw and EncodePNG serialize on the surface.
type Renderer struct {
	mu    sync.Mutex
	img   *image.RGBA
	glow  *image.Alpha
	font  *opentype.Font
	faces *cache.Cache[fixed.Int26_6, font.Face]
	pool  *parallel.WorkerPool
}

// New creates a width×height surface, cleared to black.
func New(width, height int, opts ...Option) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	o := options{ttf: gomono.TTF}
	for _, opt := range opts {
		opt(&o)
	}

	f, err := opentype.Parse(o.ttf)
	if err != nil {
		return nil, fmt.Errorf("raster: failed to parse font: %w", err)
	}

	rect := image.Rect(0, 0, width, height)
	r := &Renderer{
		img:   image.NewRGBA(rect),
		glow:  image.NewAlpha(rect),
		font:  f,
		faces: cache.New(maxFaces, cache.WithEvict(func(_ fixed.Int26_6, f font.Face) {
			_ = f.Close()
		})),
		pool:  parallel.NewWorkerPool(o.workers),
	}
	r.clear()
	asciicam.Logger().Debug("raster: surface created",
		"width", width, "height", height, "workers", r.pool.Workers())
	return r, nil
}

// Area returns the surface size in pixels.
func (r *Renderer) Area() asciicam.Area {
	b := r.img.Bounds()
	return asciicam.Area{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// Image returns the surface. It shares memory with the renderer and is
// overwritten by the next Draw.
func (r *Renderer) Image() *image.RGBA {
	return r.img
}

// Draw implements asciicam.Renderer. The whole surface is repainted.
func (r *Renderer) Draw(g *asciicam.Grid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	face, err := r.face(g.FontSize)
	if err != nil {
		return err
	}

	r.clear()
	ascent := face.Metrics().Ascent

	if g.GlowRadius > 0 {
		clear(r.glow.Pix)
		drawGlyphs(&font.Drawer{Dst: r.glow, Src: image.Opaque, Face: face}, g, ascent)
		// A canvas shadow blur of b is a Gaussian with sigma b/2.
		filter.BlurAlphaRows(r.pool, r.glow, r.glow, g.GlowRadius/2)
		draw.DrawMask(r.img, r.img.Bounds(), image.White, image.Point{}, r.glow, image.Point{}, draw.Over)
	}

	drawGlyphs(&font.Drawer{Dst: r.img, Src: image.White, Face: face}, g, ascent)
	return nil
}

// EncodePNG writes the surface as a PNG image.
func (r *Renderer) EncodePNG(w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// Close stops the blur workers and releases the cached font faces.
func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pool.Close()
	r.faces.Clear()
	return nil
}

func (r *Renderer) clear() {
	draw.Draw(r.img, r.img.Bounds(), image.Black, image.Point{}, draw.Src)
}

// face returns the face for size, creating and caching it on first use.
func (r *Renderer) face(size float64) (font.Face, error) {
	if !(size > 0) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("raster: invalid font size %v", size)
	}
	return r.faces.GetOrCreate(fixed.Int26_6(math.Round(size*64)), func() (font.Face, error) {
		f, err := opentype.NewFace(r.font, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			return nil, fmt.Errorf("raster: failed to create face: %w", err)
		}
		asciicam.Logger().Debug("raster: face created", "size", size)
		return f, nil
	})
}

// drawGlyphs draws every glyph of g with its cell's top-left corner on the
// text's top edge.
func drawGlyphs(d *font.Drawer, g *asciicam.Grid, ascent fixed.Int26_6) {
	g.Each(func(p asciicam.Placement) {
		d.Dot = fixed.Point26_6{
			X: fixed.Int26_6(p.X * 64),
			Y: fixed.Int26_6(p.Y*64) + ascent,
		}
		d.DrawString(p.Glyph)
	})
}

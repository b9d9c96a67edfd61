package main

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"os"
	"time"

	"golang.org/x/image/draw"

	"github.com/gogpu/asciicam"
	"github.com/gogpu/asciicam/control"
	"github.com/gogpu/asciicam/internal/config"
	"github.com/gogpu/asciicam/render/raster"
)

var errNoFrames = errors.New("no frames recorded")

// grayPalette holds every gray level; frames are white glyphs and glow on
// black.
var grayPalette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}()

// runGIF records cfg.Record of frames at cfg.FPS into an animated GIF. An
// interrupt ends the recording early and keeps what was captured.
func runGIF(ctx context.Context, cfg *config.Config, src asciicam.FrameSource, path string) error {
	r, err := raster.New(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer r.Close()

	c := control.New(newPipeline(cfg), src, r, controlOptions(cfg, cfg.Area())...)
	c.SetArea(r.Area())

	fps := cfg.FPS
	if !(fps > 0) {
		fps = control.DefaultFPS
	}
	interval := time.Duration(float64(time.Second) / fps)
	frames := max(1, int(cfg.Record/interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	anim, err := record(ctx, c, r, frames, interval, ticker.C)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	asciicam.Logger().Info("recording saved", "path", path, "frames", len(anim.Image))
	return nil
}

// record ticks c up to frames times, the first at once and the rest on
// each value from tick, and collects every drawn frame. A tick that draws
// nothing extends the delay of the previous frame.
func record(ctx context.Context, c *control.Controller, r *raster.Renderer, frames int, interval time.Duration, tick <-chan time.Time) (*gif.GIF, error) {
	delay := max(1, int(interval/(10*time.Millisecond)))
	anim := &gif.GIF{}

loop:
	for i := range frames {
		if i > 0 {
			select {
			case <-ctx.Done():
				break loop
			case <-tick:
			}
		}

		drawn, err := c.Tick()
		if err != nil {
			asciicam.Logger().Warn("record: frame failed", "error", err)
			drawn = false
		}
		switch {
		case drawn:
			anim.Image = append(anim.Image, paletted(r.Image()))
			anim.Delay = append(anim.Delay, delay)
		case len(anim.Delay) > 0:
			anim.Delay[len(anim.Delay)-1] += delay
		}
	}

	if len(anim.Image) == 0 {
		return nil, errNoFrames
	}
	return anim, nil
}

// paletted converts a rendered frame to the gray palette.
func paletted(img *image.RGBA) *image.Paletted {
	p := image.NewPaletted(img.Bounds(), grayPalette)
	draw.Draw(p, p.Rect, img, img.Rect.Min, draw.Src)
	return p
}

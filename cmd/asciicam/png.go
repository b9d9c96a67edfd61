package main

import (
	"fmt"
	"os"

	"github.com/gogpu/asciicam"
	"github.com/gogpu/asciicam/control"
	"github.com/gogpu/asciicam/internal/config"
	"github.com/gogpu/asciicam/render/raster"
)

// runPNG renders a single frame to a PNG file.
func runPNG(cfg *config.Config, src asciicam.FrameSource, path string) error {
	r, err := raster.New(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer r.Close()

	c := control.New(newPipeline(cfg), src, r, controlOptions(cfg, cfg.Area())...)
	c.SetArea(r.Area())

	drawn, err := c.Tick()
	if err != nil {
		return err
	}
	if !drawn {
		return fmt.Errorf("no frame rendered for %dx%d at font size %v",
			cfg.Width, cfg.Height, c.Settings().FontSize)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	asciicam.Logger().Info("snapshot saved", "path", path, "width", cfg.Width, "height", cfg.Height)
	return nil
}

// Command asciicam renders an image or an animated test pattern as glyph
// art, in the terminal, as a PNG snapshot or streamed to browsers.
//
// Usage:
//
//	asciicam [-mode term|png|gif|serve] [-image file] [-output file] [-duration d]
//
// Render settings come from ASCIICAM_* environment variables.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/gogpu/asciicam"
	"github.com/gogpu/asciicam/control"
	"github.com/gogpu/asciicam/internal/config"
	"github.com/gogpu/asciicam/source"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command with args and returns its exit code. Deferred
// cleanup runs before the process exits.
func run(args []string) int {
	cfg := config.Load()

	fs := flag.NewFlagSet("asciicam", flag.ContinueOnError)
	var (
		mode     = fs.String("mode", "term", "output: term, png, gif or serve")
		input    = fs.String("image", "", "image file to render (default: animated pattern)")
		output   = fs.String("output", "", "output file for -mode png or gif (default: asciicam.png or asciicam.gif)")
		duration = fs.Duration("duration", cfg.Record, "recording length for -mode gif")
		width    = fs.Int("width", cfg.Width, "surface width in pixels")
		height   = fs.Int("height", cfg.Height, "surface height in pixels")
		listen   = fs.String("listen", cfg.Listen, "listen address for -mode serve")
		logFile  = fs.String("log", "", "log file (default: stderr, discarded in term mode)")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	cfg.Width, cfg.Height, cfg.Listen, cfg.Record = *width, *height, *listen, *duration

	closeLog, err := setupLogger(cfg, *mode, *logFile)
	if err != nil {
		log.Printf("Failed to open log: %v", err)
		return 1
	}
	defer closeLog()

	src, err := openSource(*input, cfg)
	if err != nil {
		log.Printf("Failed to open source: %v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "png":
		err = runPNG(cfg, src, outputPath(*output, "asciicam.png"))
	case "gif":
		err = runGIF(ctx, cfg, src, outputPath(*output, "asciicam.gif"))
	case "term":
		err = runTerm(ctx, cfg, src)
	case "serve":
		err = runServe(ctx, cfg, src)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		asciicam.Logger().Error("command failed", "mode", *mode, "error", err)
		log.Printf("asciicam: %v", err)
		return 1
	}
	return 0
}

func outputPath(path, def string) string {
	if path == "" {
		return def
	}
	return path
}

// setupLogger installs a text logger at the configured level. The returned
// func closes the log file, if any.
func setupLogger(cfg *config.Config, mode, path string) (func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w = f
		closeFn = func() { _ = f.Close() }
	case mode == "term":
		// The terminal belongs to the renderer.
		return closeFn, nil
	}

	asciicam.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel})))
	return closeFn, nil
}

// openSource decodes path, or returns the animated pattern when path is
// empty.
func openSource(path string, cfg *config.Config) (asciicam.FrameSource, error) {
	if path == "" {
		return source.NewPattern(cfg.Width/2, cfg.Height/2, 4*time.Second), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	asciicam.Logger().Info("image loaded", "path", path, "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return source.Still(img), nil
}

// newPipeline builds a pipeline with the configured resampler.
func newPipeline(cfg *config.Config) *asciicam.Pipeline {
	r, ok := asciicam.ResamplerByName(cfg.Resampler)
	if !ok {
		asciicam.Logger().Warn("unknown resampler, using default", "resampler", cfg.Resampler)
	}
	return asciicam.NewPipeline(asciicam.WithResampler(r))
}

// initialSettings returns the configured settings for a surface of the given
// area. An unset step takes the default for the surface width.
func initialSettings(cfg *config.Config, area asciicam.Area) asciicam.Settings {
	s := cfg.Settings()
	if s.Step <= 0 {
		s.Step = control.DefaultSettingsFor(area).Step
	}
	return s
}

// controlOptions returns the controller options for cfg on a surface of the
// given area.
func controlOptions(cfg *config.Config, area asciicam.Area) []control.Option {
	opts := []control.Option{control.WithSettings(initialSettings(cfg, area))}
	if cfg.Dedupe {
		opts = append(opts, control.WithDedupe(cfg.HashDistance))
	}
	return opts
}

package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gogpu/asciicam"
	"github.com/gogpu/asciicam/control"
	"github.com/gogpu/asciicam/internal/config"
	"github.com/gogpu/asciicam/internal/stream"
	"github.com/gogpu/asciicam/render/raster"
)

// renderers draws each grid with every renderer in order. The first error
// is returned after all have run.
type renderers []asciicam.Renderer

func (rs renderers) Draw(g *asciicam.Grid) error {
	var first error
	for _, r := range rs {
		if err := r.Draw(g); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// runServe streams frames to WebSocket clients on /ws and serves the latest
// raster frame on /snapshot.png until ctx is done.
func runServe(ctx context.Context, cfg *config.Config, src asciicam.FrameSource) error {
	snapshot, err := raster.New(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer snapshot.Close()

	var c *control.Controller
	hub := stream.NewHub(stream.WithControl(func(m stream.ControlMessage) {
		switch m.Type {
		case stream.TypeSettings:
			c.Update(m.Apply)
		case stream.TypeFreeze:
			c.ToggleFreeze()
		case stream.TypeReset:
			c.Reset()
		}
	}))
	defer hub.Close()

	c = control.New(newPipeline(cfg), src, renderers{hub, snapshot}, controlOptions(cfg, cfg.Area())...)
	c.SetArea(snapshot.Area())

	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	mux.HandleFunc("GET /snapshot.png", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		if err := snapshot.EncodePNG(w); err != nil {
			asciicam.Logger().Warn("snapshot failed", "error", err)
		}
	})

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		asciicam.Logger().Info("server started", "addr", cfg.Listen)
		errc <- srv.ListenAndServe()
	}()

	runCtx, stopRun := context.WithCancel(ctx)
	defer stopRun()
	runErr := make(chan error, 1)
	go func() { runErr <- c.Run(runCtx, cfg.FPS) }()

	select {
	case err = <-errc:
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = hub.Close()
	if serr := srv.Shutdown(shutdownCtx); serr != nil {
		asciicam.Logger().Warn("server shutdown", "error", serr)
	}

	stopRun()
	<-runErr

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}

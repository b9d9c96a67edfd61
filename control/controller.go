package control

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"sync/atomic"
	"time"

	"github.com/corona10/goimagehash"

	"github.com/gogpu/asciicam"
	"github.com/gogpu/asciicam/internal/syncx"
)

// DefaultFPS is the frame rate Run uses for a non-positive fps.
const DefaultFPS = 30

// Option configures a Controller.
type Option func(*Controller)

// WithDedupe skips frames whose perceptual hash is within maxDistance bits
// of the last rendered frame. A negative maxDistance disables dedupe.
func WithDedupe(maxDistance int) Option {
	return func(c *Controller) {
		c.dedupe = maxDistance >= 0
		c.maxDistance = maxDistance
	}
}

// WithSettings sets the initial settings. They are clamped.
func WithSettings(s asciicam.Settings) Option {
	return func(c *Controller) {
		c.settings.Set(Clamp(s))
	}
}

// Controller runs frames from a source through a pipeline into a renderer.
// Its methods are safe for concurrent use; frames are computed one at a
// time.
type Controller struct {
	pipeline *asciicam.Pipeline
	source   asciicam.FrameSource
	renderer asciicam.Renderer

	settings *syncx.RWGuard[asciicam.Settings]
	area     *syncx.RWGuard[asciicam.Area]
	frozen   atomic.Bool

	dedupe      bool
	maxDistance int

	// Guarded by tickMu.
	tickMu   sync.Mutex
	lastHash *goimagehash.ImageHash
	lastSet  asciicam.Settings
	lastArea asciicam.Area
}

// New creates a controller with default settings and an empty area. Call
// SetArea before the first frame.
func New(p *asciicam.Pipeline, src asciicam.FrameSource, r asciicam.Renderer, opts ...Option) *Controller {
	c := &Controller{
		pipeline: p,
		source:   src,
		renderer: r,
		settings: syncx.NewGuard(asciicam.DefaultSettings()),
		area:     syncx.NewGuard(asciicam.Area{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Settings returns the current settings snapshot.
func (c *Controller) Settings() asciicam.Settings {
	return c.settings.Get()
}

// Update applies fn to the settings, clamps the result and returns the new
// snapshot. It takes effect on the next frame.
func (c *Controller) Update(fn func(*asciicam.Settings)) asciicam.Settings {
	return c.settings.Update(func(s *asciicam.Settings) {
		fn(s)
		*s = Clamp(*s)
	})
}

// Reset restores the default settings and unfreezes.
func (c *Controller) Reset() {
	c.settings.Set(asciicam.DefaultSettings())
	c.frozen.Store(false)
	asciicam.Logger().Debug("control: settings reset")
}

// SetArea sets the display area frames are rendered for.
func (c *Controller) SetArea(a asciicam.Area) {
	c.area.Set(a)
}

// Area returns the display area.
func (c *Controller) Area() asciicam.Area {
	return c.area.Get()
}

// Freeze sets the frozen state.
func (c *Controller) Freeze(frozen bool) {
	c.frozen.Store(frozen)
}

// ToggleFreeze flips the frozen state and returns the new state.
func (c *Controller) ToggleFreeze() bool {
	for {
		old := c.frozen.Load()
		if c.frozen.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Frozen reports whether frame computation is paused.
func (c *Controller) Frozen() bool {
	return c.frozen.Load()
}

// Tick computes and draws one frame. It reports whether the renderer was
// called. Frozen controllers, sources without a frame, unchanged frames and
// degenerate grids are skipped without error.
func (c *Controller) Tick() (bool, error) {
	if c.frozen.Load() {
		return false, nil
	}

	c.tickMu.Lock()
	defer c.tickMu.Unlock()

	frame, err := c.source.Frame()
	if errors.Is(err, asciicam.ErrNoFrame) {
		asciicam.Logger().Debug("control: frame skipped", "reason", "no frame")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("control: read frame: %w", err)
	}

	s := c.settings.Get()
	area := c.area.Get()
	if c.unchanged(frame, s, area) {
		return false, nil
	}

	g, ok := c.pipeline.Render(frame, area, s)
	if !ok {
		return false, nil
	}
	if err := c.renderer.Draw(g); err != nil {
		return true, fmt.Errorf("control: draw: %w", err)
	}
	return true, nil
}

// unchanged reports whether frame can be skipped because it matches the
// last rendered frame. It records frame as the last one otherwise.
func (c *Controller) unchanged(frame image.Image, s asciicam.Settings, area asciicam.Area) bool {
	if !c.dedupe || frame == nil || frame.Bounds().Empty() {
		return false
	}

	hash, err := goimagehash.PerceptionHash(frame)
	if err != nil {
		asciicam.Logger().Debug("control: perceptual hash failed", "error", err)
		return false
	}

	if c.lastHash != nil && s == c.lastSet && area == c.lastArea {
		dist, err := c.lastHash.Distance(hash)
		if err == nil && dist <= c.maxDistance {
			asciicam.Logger().Debug("control: frame skipped", "reason", "unchanged", "distance", dist)
			return true
		}
	}

	c.lastHash = hash
	c.lastSet = s
	c.lastArea = area
	return false
}

// Run calls Tick at fps frames per second until ctx is done. Tick errors
// are logged and do not stop the loop. Run returns ctx.Err().
func (c *Controller) Run(ctx context.Context, fps float64) error {
	if !(fps > 0) {
		fps = DefaultFPS
	}
	interval := time.Duration(float64(time.Second) / fps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log := asciicam.Logger()
	log.Info("control: started", "fps", fps)
	defer log.Info("control: stopped")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := c.Tick(); err != nil {
				log.Warn("control: frame failed", "error", err)
			}
		}
	}
}

package asciicam

import (
	"errors"
	"image"
)

// ErrNoFrame is returned by a FrameSource that has no frame ready yet, such
// as a camera still starting. Callers skip the tick.
var ErrNoFrame = errors.New("asciicam: no frame available")

// FrameSource yields the current frame on demand. The returned image is
// owned by the source; the pipeline reads it during one Render call and
// never retains or mutates it.
type FrameSource interface {
	Frame() (image.Image, error)
}

// Renderer paints a grid onto a drawing surface. The grid is only valid for
// the duration of the call.
type Renderer interface {
	Draw(g *Grid) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(g *Grid) error

// Draw implements Renderer.
func (f RendererFunc) Draw(g *Grid) error { return f(g) }

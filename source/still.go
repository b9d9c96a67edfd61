// Package source provides asciicam frame sources that do not need a camera.
package source

import (
	"image"

	"github.com/gogpu/asciicam"
)

// StillSource returns the same image on every call.
type StillSource struct {
	img image.Image
}

// Still returns a source that always yields img. A nil img yields
// asciicam.ErrNoFrame.
func Still(img image.Image) *StillSource {
	return &StillSource{img: img}
}

// Frame implements asciicam.FrameSource.
func (s *StillSource) Frame() (image.Image, error) {
	if s.img == nil {
		return nil, asciicam.ErrNoFrame
	}
	return s.img, nil
}

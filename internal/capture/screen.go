package capture

import (
	"image"

	"github.com/kbinani/screenshot"
)

// Frame grabs one screen region. Injectable so the pipeline can be
// driven from saved images in tests and in offline solving.
type Frame func(bounds image.Rectangle) (*image.RGBA, error)

// Screen captures a region of the live display
func Screen(bounds image.Rectangle) (*image.RGBA, error) {
	return screenshot.CaptureRect(bounds)
}

// PrimaryDisplayBounds returns the bounds of the primary display
func PrimaryDisplayBounds() image.Rectangle {
	return screenshot.GetDisplayBounds(0)
}

package capture

import (
	"image"
	"image/color"
)

// inkTolerance is the per-channel ceiling for a pixel to count as ink
const inkTolerance = 16

// Binarize maps every pixel to pure black or pure white: pixels with
// all color channels at or below the ink tolerance become black,
// everything else white. Tile glyphs are dark-on-light, so this strips
// the board's background colors before matching.
func Binarize(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)

	// color.RGBA() returns 16-bit channels
	threshold := uint32(inkTolerance) * 0x101

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			if r <= threshold && g <= threshold && b <= threshold {
				dst.SetRGBA(x, y, color.RGBA{A: 0xff})
			} else {
				dst.SetRGBA(x, y, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
			}
		}
	}
	return dst
}

package pwaicon

import (
	"image"
	"image/color"

	"github.com/esimov/pwaicon/utils"
	"github.com/fogleman/gg"
)

// RoundedMask returns a size×size coverage mask which is fully opaque inside
// a rounded rectangle spanning the whole canvas and fully transparent outside.
// The radius is clamped to half of the size.
func RoundedMask(size int, radius float64) *image.Alpha {
	s := float64(size)
	radius = utils.Clamp(radius, 0, s/2)

	dc := gg.NewContext(size, size)
	if radius > 0 {
		dc.DrawRoundedRectangle(0, 0, s, s, radius)
	} else {
		dc.DrawRectangle(0, 0, s, s)
	}
	dc.SetRGB(1, 1, 1)
	dc.Fill()

	// The rasterizer anti-aliases the arcs; the coverage is quantized
	// so that every pixel is either in or out of the mask.
	src := dc.Image()
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			_, _, _, a := src.At(x, y).RGBA()
			if a >= 0x8000 {
				mask.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	return mask
}

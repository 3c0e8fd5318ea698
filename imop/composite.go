// Package imop implements the Porter-Duff composition operations
// used for mixing a graphic element with its backdrop.
// Porter and Duff presented in their paper 12 different composition operation,
// but the image/draw core package implements only the source-over-destination and source.
// This package is aimed to overcome the missing composite operations.
//
// The icon renderer relies on it to lay the labeled canvas over a transparent
// bitmap and to cut the rounded corners with the destination-in operator.
package imop

import (
	"image"
	"image/color"
	"math"

	"github.com/esimov/pwaicon/utils"
)

const (
	Clear   = "clear"
	Copy    = "copy"
	Dst     = "dst"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// Bitmap holds the result of a composition.
type Bitmap struct {
	Img *image.NRGBA
}

// Composite holds the currently active composition operation.
type Composite struct {
	current string
	ops     []string
}

// NewBitmap returns a fully transparent bitmap covering rect.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// InitOp initializes a new Composite with source-over as the active operation.
func InitOp() *Composite {
	return &Composite{
		current: SrcOver,
		ops: []string{
			Clear,
			Copy,
			Dst,
			SrcOver,
			DstOver,
			SrcIn,
			DstIn,
			SrcOut,
			DstOut,
			SrcAtop,
			DstAtop,
			Xor,
		},
	}
}

// Set activates one of the supported composition operations.
// Unsupported operations are ignored.
func (op *Composite) Set(cop string) {
	if utils.Contains(op.ops, cop) {
		op.current = cop
	}
}

// Get returns the currently active composition operation.
func (op *Composite) Get() string {
	return op.current
}

// factors returns the Porter-Duff fractions of the source and backdrop
// contributing to the output, given their alpha values.
func (op *Composite) factors(as, ab float64) (fa, fb float64) {
	switch op.current {
	case Clear:
		return 0, 0
	case Copy:
		return 1, 0
	case Dst:
		return 0, 1
	case SrcOver:
		return 1, 1 - as
	case DstOver:
		return 1 - ab, 1
	case SrcIn:
		return ab, 0
	case DstIn:
		return 0, as
	case SrcOut:
		return 1 - ab, 0
	case DstOut:
		return 0, 1 - as
	case SrcAtop:
		return ab, 1 - as
	case DstAtop:
		return 1 - ab, as
	case Xor:
		return 1 - ab, 1 - as
	}
	return 1, 1 - as
}

// Draw composes src over the dst backdrop with the active operation and
// stores the result into bitmap. A nil bitmap is allocated with the source bounds.
// The output is stored non-premultiplied; fully transparent pixels are zeroed.
func (op *Composite) Draw(bitmap *Bitmap, src, dst *image.NRGBA) *Bitmap {
	bounds := src.Bounds()
	if bitmap == nil {
		bitmap = NewBitmap(bounds)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			s := src.NRGBAAt(x, y)
			b := dst.NRGBAAt(x, y)

			as := float64(s.A) / 255
			ab := float64(b.A) / 255
			fa, fb := op.factors(as, ab)

			// applying the alpha composition formula on premultiplied values
			ao := as*fa + ab*fb
			if ao <= 0 {
				bitmap.Img.SetNRGBA(x, y, color.NRGBA{})
				continue
			}
			channel := func(cs, cb uint8) uint8 {
				co := as*fa*float64(cs)/255 + ab*fb*float64(cb)/255
				return uint8(math.Round(utils.Clamp(co/ao, 0, 1) * 255))
			}

			bitmap.Img.SetNRGBA(x, y, color.NRGBA{
				R: channel(s.R, b.R),
				G: channel(s.G, b.G),
				B: channel(s.B, b.B),
				A: uint8(math.Round(utils.Clamp(ao, 0, 1) * 255)),
			})
		}
	}
	return bitmap
}

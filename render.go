package pwaicon

import (
	"fmt"
	"image"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/esimov/pwaicon/imop"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Renderer draws a single icon: the theme label centered on the background
// color, clipped by a rounded rectangle.
type Renderer struct {
	Theme        Theme
	Fonts        []FontSource
	FontScale    float64
	CornerRadius float64

	logger   *log.Logger
	lastFont string
}

// NewRenderer creates a renderer from the theme and font settings of cfg.
// A nil logger discards the font fallback diagnostics.
func NewRenderer(cfg Config, logger *log.Logger) *Renderer {
	return &Renderer{
		Theme:        cfg.Theme,
		Fonts:        cfg.Fonts,
		FontScale:    cfg.FontScale,
		CornerRadius: cfg.CornerRadius,
		logger:       logger,
	}
}

// Font returns the name of the font source used by the last Render call.
func (r *Renderer) Font() string {
	return r.lastFont
}

// Render returns a size×size icon. The only error is ErrInvalidSize.
func (r *Renderer) Render(size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	canvas := imaging.New(size, size, r.Theme.Background)

	face, name := ResolveFace(r.Fonts, r.FontScale*float64(size), r.logger)
	defer face.Close()
	r.lastFont = name

	drawLabel(canvas, face, r.Theme)

	op := imop.InitOp()
	bmp := imop.NewBitmap(canvas.Bounds())
	op.Set(imop.SrcOver)
	op.Draw(bmp, canvas, bmp.Img)

	mask := RoundedMask(size, r.CornerRadius*float64(size))
	op.Set(imop.DstIn)
	op.Draw(bmp, imgToNRGBA(mask), bmp.Img)

	return bmp.Img, nil
}

// drawLabel draws the theme label centered on the canvas. The centering
// uses the inked bounds of the glyphs rather than the nominal font metrics.
func drawLabel(canvas *image.NRGBA, face font.Face, theme Theme) {
	size := canvas.Bounds().Dx()
	bounds, _ := font.BoundString(face, theme.Label)

	inkW := (bounds.Max.X - bounds.Min.X).Ceil()
	inkH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	originX := (size-inkW)/2 - bounds.Min.X.Floor()
	originY := (size-inkH)/2 - bounds.Min.Y.Floor()

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(theme.Foreground),
		Face: face,
		Dot:  fixed.P(originX, originY),
	}
	d.DrawString(theme.Label)
}

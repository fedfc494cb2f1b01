package widget

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/jmigpin/swatch/util/imageutil"
)

// Decorative styling of a node's area. Sizes are in pixels and may be fractional.
type Layer struct {
	CornerRadius float64
	BorderWidth  float64
	BorderColor  color.Color
	Background   color.Color // nil or transparent paints nothing
}

// Coverage of the layer shape for a node of the given size.
func (l *Layer) ShapeMask(size image.Point) *image.Alpha {
	return imageutil.RoundedRectMask(size, l.CornerRadius)
}

func (l *Layer) PaintBackground(img draw.Image, r *image.Rectangle, mask image.Image) {
	if l.Background == nil {
		return
	}
	imageutil.DrawUniformMask(img, r, l.Background, mask, image.Point{}, draw.Over)
}

func (l *Layer) PaintBorder(img draw.Image, r *image.Rectangle) {
	if l.BorderWidth <= 0 || l.BorderColor == nil {
		return
	}
	mask := imageutil.RoundedRectBorderMask(r.Size(), l.CornerRadius, l.BorderWidth)
	imageutil.DrawUniformMask(img, r, l.BorderColor, mask, image.Point{}, draw.Over)
}

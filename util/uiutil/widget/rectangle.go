package widget

import (
	"image"

	"github.com/jmigpin/swatch/util/imageutil"
)

type Rectangle struct {
	ENode
	Size      image.Point
	ColorName string
	ctx       ImageContext
}

func NewRectangle(ctx ImageContext) *Rectangle {
	return &Rectangle{ctx: ctx, ColorName: "bg"}
}

func (r *Rectangle) Measure(hint image.Point) image.Point {
	return imageutil.MinPoint(r.Size, hint)
}

func (r *Rectangle) Paint() {
	c := r.TreeThemePaletteColor(r.ColorName)
	imageutil.FillRectangle(r.ctx.Image(), &r.Bounds, c)
}

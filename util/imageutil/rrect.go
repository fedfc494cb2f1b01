package imageutil

import (
	"image"
	"image/draw"

	"github.com/jmigpin/swatch/util/mathutil"
	"golang.org/x/image/vector"
)

// Control point distance factor for a quarter circle cubic bezier.
const kappa = 0.5522847498

// Anti-aliased coverage mask of a rounded rectangle filling size. The mask origin is (0,0).
func RoundedRectMask(size image.Point, radius float64) *image.Alpha {
	size = MaxPoint(size, image.Point{})
	mask := image.NewAlpha(image.Rectangle{Max: size})
	if size.X == 0 || size.Y == 0 {
		return mask
	}
	w, h := float32(size.X), float32(size.Y)
	rasterizeRRect(mask, 0, 0, w, h, float32(radius))
	return mask
}

// Coverage mask of a rounded rectangle outline of the given width, drawn inside size. Fractional widths give partial coverage on the edge pixels.
func RoundedRectBorderMask(size image.Point, radius, width float64) *image.Alpha {
	outer := RoundedRectMask(size, radius)
	if width <= 0 {
		for i := range outer.Pix {
			outer.Pix[i] = 0
		}
		return outer
	}
	if size.X == 0 || size.Y == 0 {
		return outer
	}

	wf := float32(width)
	x1, y1 := float32(size.X)-wf, float32(size.Y)-wf
	if x1 <= wf || y1 <= wf {
		// all border
		return outer
	}
	inner := image.NewAlpha(outer.Rect)
	rasterizeRRect(inner, wf, wf, x1, y1, float32(radius-width))

	for i := range outer.Pix {
		if outer.Pix[i] > inner.Pix[i] {
			outer.Pix[i] -= inner.Pix[i]
		} else {
			outer.Pix[i] = 0
		}
	}
	return outer
}

//----------

func rasterizeRRect(dst *image.Alpha, x0, y0, x1, y1, r float32) {
	max := x1 - x0
	if y1-y0 < max {
		max = y1 - y0
	}
	r = float32(mathutil.LimitFloat64(float64(r), 0, float64(max/2)))
	k := r * (1 - kappa)

	size := dst.Rect.Size()
	z := vector.NewRasterizer(size.X, size.Y)
	z.DrawOp = draw.Src
	z.MoveTo(x0+r, y0)
	z.LineTo(x1-r, y0)
	z.CubeTo(x1-k, y0, x1, y0+k, x1, y0+r)
	z.LineTo(x1, y1-r)
	z.CubeTo(x1, y1-k, x1-k, y1, x1-r, y1)
	z.LineTo(x0+r, y1)
	z.CubeTo(x0+k, y1, x0, y1-k, x0, y1-r)
	z.LineTo(x0, y0+r)
	z.CubeTo(x0, y0+k, x0+k, y0, x0+r, y0)
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
}

package imageutil

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/jmigpin/swatch/util/mathutil"
)

// Draws the color c through the mask (nil for none). A nil color draws nothing.
func DrawUniformMask(dst draw.Image, r *image.Rectangle, c color.Color, mask image.Image, mp image.Point, op draw.Op) {
	if c == nil {
		return
	}
	// bgra draws as rgba with the channels swapped, avoids the generic path
	if u, ok := dst.(*BGRA); ok {
		dst, c = u.RGBAImageWithCorrectedColor(c)
	}
	draw.DrawMask(dst, *r, image.NewUniform(c), image.Point{}, mask, mp, op)
}

// Draws src over dst at r, src origin at sp, optionally masked.
func DrawImageMask(dst draw.Image, r *image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op draw.Op) {
	if src != nil {
		draw.DrawMask(dst, *r, src, sp, mask, mp, op)
	}
}

//----------

func FillRectangle(img draw.Image, r *image.Rectangle, c color.Color) {
	DrawUniformMask(img, r, c, nil, image.Point{}, draw.Src)
}

// Outline of r, size pixels wide, drawn inside r.
func BorderRectangle(img draw.Image, r *image.Rectangle, c color.Color, size int) {
	in := r.Inset(size)
	sides := [...]image.Rectangle{
		{r.Min, image.Pt(r.Max.X, in.Min.Y)},                        // top
		{image.Pt(r.Min.X, in.Max.Y), r.Max},                        // bottom
		{image.Pt(r.Min.X, in.Min.Y), image.Pt(in.Min.X, in.Max.Y)}, // left
		{image.Pt(in.Max.X, in.Min.Y), image.Pt(r.Max.X, in.Max.Y)}, // right
	}
	for i := range sides {
		FillRectangle(img, &sides[i], c)
	}
}

//----------

func MaxPoint(a, b image.Point) image.Point {
	return image.Pt(mathutil.Biggest(a.X, b.X), mathutil.Biggest(a.Y, b.Y))
}
func MinPoint(a, b image.Point) image.Point {
	return image.Pt(mathutil.Smallest(a.X, b.X), mathutil.Smallest(a.Y, b.Y))
}

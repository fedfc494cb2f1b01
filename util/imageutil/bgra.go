package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// BGRA keeps its pixels in blue/green/red/alpha order, the layout X11
// ZPixmaps expect. Colors going in and out are regular RGBA.
type BGRA struct {
	image.RGBA
}

func NewBGRA(r *image.Rectangle) *BGRA {
	u := image.NewRGBA(*r)
	return &BGRA{*u}
}

func NewBGRAFromBuffer(buf []byte, r *image.Rectangle) *BGRA {
	rgba := image.RGBA{Pix: buf, Stride: 4 * r.Dx(), Rect: *r}
	return &BGRA{RGBA: rgba}
}

func BGRASize(r *image.Rectangle) int {
	return r.Dx() * r.Dy() * 4
}

func (img *BGRA) ColorModel() color.Model {
	return color.RGBAModel
}

func (img *BGRA) Set(x, y int, c color.Color) {
	img.SetRGBA(x, y, RgbaColor(c))
}

func (img *BGRA) SetRGBA(x, y int, c color.RGBA) {
	c.R, c.B = c.B, c.R
	img.RGBA.SetRGBA(x, y, c)
}

func (img *BGRA) At(x, y int) color.Color {
	return img.RGBAAt(x, y)
}

func (img *BGRA) RGBAAt(x, y int) color.RGBA {
	c := img.RGBA.RGBAAt(x, y)
	c.R, c.B = c.B, c.R
	return c
}

// image/draw prefers these when present; the embedded versions would skip the swap.
func (img *BGRA) RGBA64At(x, y int) color.RGBA64 {
	c := img.RGBA.RGBA64At(x, y)
	c.R, c.B = c.B, c.R
	return c
}
func (img *BGRA) SetRGBA64(x, y int, c color.RGBA64) {
	c.R, c.B = c.B, c.R
	img.RGBA.SetRGBA64(x, y, c)
}

func (img *BGRA) SubImage(r image.Rectangle) draw.Image {
	u := img.RGBA.SubImage(r).(*image.RGBA)
	return &BGRA{*u}
}

// Returns the underlying rgba image and the color converted so that drawing it
// directly on the rgba image results in the correct bgra pixels.
func (img *BGRA) RGBAImageWithCorrectedColor(c color.Color) (*image.RGBA, color.Color) {
	return &img.RGBA, BgraColor(c)
}

//----------

func BgraColor(c color.Color) color.RGBA {
	c2 := RgbaColor(c)
	c2.R, c2.B = c2.B, c2.R
	return c2
}

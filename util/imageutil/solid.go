package imageutil

import (
	"image"
	"image/color"
)

// Image of the given size with every pixel set to c. Negative sizes are clamped to zero, giving an empty image.
func SolidImage(size image.Point, c color.Color) *image.RGBA {
	size = MaxPoint(size, image.Point{})
	img := image.NewRGBA(image.Rectangle{Max: size})
	if c == nil {
		return img
	}
	u := RgbaColor(c)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = u.R
		img.Pix[i+1] = u.G
		img.Pix[i+2] = u.B
		img.Pix[i+3] = u.A
	}
	return img
}

// Reports whether every pixel of img equals c.
func IsUniform(img image.Image, c color.Color) bool {
	u := RgbaColor(c)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if RgbaColor(img.At(x, y)) != u {
				return false
			}
		}
	}
	return true
}

package widget

import (
	"image"
	"image/draw"
)

type ImageContext interface {
	Image() draw.Image
}

//----------

// In-memory image context. Used when rendering without a window.
type MemImageContext struct {
	Img draw.Image
}

func NewMemImageContext(size image.Point) *MemImageContext {
	return &MemImageContext{Img: image.NewRGBA(image.Rectangle{Max: size})}
}

func (ctx *MemImageContext) Image() draw.Image {
	return ctx.Img
}

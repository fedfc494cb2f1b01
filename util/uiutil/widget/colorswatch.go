package widget

import (
	"image"
	"image/color"

	"github.com/jmigpin/swatch/util/imageutil"
	"github.com/jmigpin/swatch/util/uiutil/event"
)

// Chrome applied on every color change.
const (
	SwatchCornerRadius = 5.0
	SwatchBorderWidth  = 0.5
)

var SwatchBorderColor color.Color = color.RGBA{0, 0, 0, 255}

//----------

// Button that shows a solid color. The only mutable property is the color; every change regenerates the fill image at the current size.
type ColorSwatch struct {
	ENode
	Size    image.Point // preferred size
	OnClick func(*event.MouseUp)

	button  *Button
	color   color.Color
	imgSize image.Point // size of the installed image
	ctx     ImageContext
}

type ColorSwatchOptions struct {
	// Assigned after the green default, as an owner would right after construction.
	Color color.Color
	// Initial bounds and preferred size.
	Size image.Point
}

func NewColorSwatch(ctx ImageContext) *ColorSwatch {
	return NewColorSwatch2(ctx, nil)
}

func NewColorSwatch2(ctx ImageContext, opt *ColorSwatchOptions) *ColorSwatch {
	sw := &ColorSwatch{ctx: ctx}
	// the background is transparent, the parent shows through the corners
	sw.AddMarks(MarkPaintParent)
	sw.button = NewButton(ctx)
	sw.button.OnClick = func(ev *event.MouseUp) {
		if sw.OnClick != nil {
			sw.OnClick(ev)
		}
	}
	sw.Append(sw.button)
	if opt != nil {
		sw.Size = imageutil.MaxPoint(opt.Size, image.Point{})
		sw.Bounds = image.Rectangle{Max: sw.Size}
		sw.button.Bounds = sw.Bounds
	}

	sw.button.SetTitle("")
	sw.button.Layer.Background = Transparent

	// not skipped even if equal: installs the chrome and the first image
	sw.SetColor(Green)

	if opt != nil && opt.Color != nil {
		sw.SetColor(opt.Color)
	}
	return sw
}

//----------

func (sw *ColorSwatch) Color() color.Color {
	return sw.color
}

// A nil color is treated as transparent.
func (sw *ColorSwatch) SetColor(c color.Color) {
	if c == nil {
		c = Transparent
	}
	sw.color = c

	l := sw.button.Layer
	l.CornerRadius = SwatchCornerRadius
	l.BorderWidth = SwatchBorderWidth
	l.BorderColor = SwatchBorderColor
	sw.button.SetLayer(l)

	sw.installImage()

	sw.MarkNeedsLayoutAndPaint()
}

func (sw *ColorSwatch) installImage() {
	size := imageutil.MaxPoint(sw.Bounds.Size(), image.Point{})
	img := imageutil.SolidImage(size, sw.color)
	sw.button.SetImage(img, StateNormal)
	sw.imgSize = size
}

// Currently displayed fill image.
func (sw *ColorSwatch) Image() image.Image {
	return sw.button.Image(StateNormal)
}

func (sw *ColorSwatch) Layer() Layer {
	return sw.button.Layer
}

// A disabled swatch ignores clicks and shows no pressed state.
func (sw *ColorSwatch) SetDisabled(v bool) {
	sw.button.SetDisabled(v)
}

//----------

func (sw *ColorSwatch) Measure(hint image.Point) image.Point {
	return imageutil.MinPoint(sw.Size, hint)
}

// Nothing is behind a root swatch.
func (sw *ColorSwatch) PaintBase() {
	if sw.Parent == nil {
		imageutil.FillRectangle(sw.ctx.Image(), &sw.Bounds, Transparent)
	}
}

func (sw *ColorSwatch) Layout() {
	// size changed since the last color change
	size := imageutil.MaxPoint(sw.Bounds.Size(), image.Point{})
	if size != sw.imgSize {
		sw.installImage()
	}
}

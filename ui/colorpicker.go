package ui

import (
	"image"
	"image/color"

	"github.com/jmigpin/swatch/util/imageutil"
	"github.com/jmigpin/swatch/util/mathutil"
	"github.com/jmigpin/swatch/util/uiutil/event"
	"github.com/jmigpin/swatch/util/uiutil/widget"
)

// Row of color swatches followed by a preview of the selected color.
type ColorPicker struct {
	widget.ENode
	Gap        int
	SwatchSize image.Point
	OnSelect   func(i int, c color.Color)

	swatches []*widget.ColorSwatch
	preview  *widget.ColorSwatch
	selected int
	ctx      widget.ImageContext
}

func NewColorPicker(ctx widget.ImageContext, swatchSize image.Point) *ColorPicker {
	cp := &ColorPicker{
		ctx:        ctx,
		Gap:        4,
		SwatchSize: swatchSize,
		selected:   -1,
	}
	opt := &widget.ColorSwatchOptions{Size: previewSize(swatchSize)}
	cp.preview = widget.NewColorSwatch2(ctx, opt)
	cp.preview.SetDisabled(true)
	cp.Append(cp.preview)
	return cp
}

//----------

func (cp *ColorPicker) SetPalette(colors []color.Color) {
	for _, sw := range cp.swatches {
		cp.Remove(sw)
	}
	cp.swatches = nil
	for i, c := range colors {
		opt := &widget.ColorSwatchOptions{Color: c, Size: cp.SwatchSize}
		sw := widget.NewColorSwatch2(cp.ctx, opt)
		i := i
		sw.OnClick = func(*event.MouseUp) { cp.Select(i) }
		cp.InsertBefore(sw, cp.preview.Embed())
		cp.swatches = append(cp.swatches, sw)
	}
	if cp.selected >= len(cp.swatches) {
		cp.selected = -1
	}
	cp.MarkNeedsLayoutAndPaint()
}

// Rebuilds the swatches at the new size, the preview is twice as big.
func (cp *ColorPicker) SetSwatchSize(size image.Point) {
	cp.SwatchSize = size
	cp.preview.Size = previewSize(size)
	cp.SetPalette(cp.Palette())
}

func previewSize(swatchSize image.Point) image.Point {
	return swatchSize.Mul(2)
}

func (cp *ColorPicker) Palette() []color.Color {
	u := make([]color.Color, len(cp.swatches))
	for i, sw := range cp.swatches {
		u[i] = sw.Color()
	}
	return u
}

func (cp *ColorPicker) Swatch(i int) *widget.ColorSwatch {
	return cp.swatches[i]
}

func (cp *ColorPicker) Preview() *widget.ColorSwatch {
	return cp.preview
}

//----------

// Returns the selected index (-1 if the color was set directly) and the preview color.
func (cp *ColorPicker) Selected() (int, color.Color) {
	return cp.selected, cp.preview.Color()
}

func (cp *ColorPicker) Select(i int) {
	if i < 0 || i >= len(cp.swatches) {
		return
	}
	cp.selected = i
	c := cp.swatches[i].Color()
	cp.preview.SetColor(c)
	cp.MarkNeedsPaint() // selection ring
	if cp.OnSelect != nil {
		cp.OnSelect(i, c)
	}
}

// Sets the preview color. Selects the first swatch with the same color, if any.
func (cp *ColorPicker) SetColor(c color.Color) {
	cp.selected = -1
	if c != nil {
		u := imageutil.RgbaColor(c)
		for i, sw := range cp.swatches {
			if imageutil.RgbaColor(sw.Color()) == u {
				cp.selected = i
				break
			}
		}
	}
	cp.preview.SetColor(c)
	cp.MarkNeedsPaint()
}

//----------

func (cp *ColorPicker) Measure(hint image.Point) image.Point {
	n := len(cp.swatches)
	ps := cp.preview.Measure(hint)
	w := n*(cp.SwatchSize.X+cp.Gap) + ps.X
	h := mathutil.Biggest(cp.SwatchSize.Y, ps.Y)
	return imageutil.MinPoint(image.Point{w, h}, hint)
}

func (cp *ColorPicker) Layout() {
	b := cp.Bounds
	x := b.Min.X
	for _, sw := range cp.swatches {
		m := sw.Measure(b.Size())
		// vertically centered
		y := b.Min.Y + (b.Dy()-m.Y)/2
		r := image.Rect(x, y, x+m.X, y+m.Y)
		sw.Bounds = r.Intersect(b)
		x += m.X + cp.Gap
	}
	// preview takes the rest
	r := b
	r.Min.X = mathutil.Smallest(x, r.Max.X)
	cp.preview.Bounds = r
}

func (cp *ColorPicker) Paint() {
	c := cp.TreeThemePaletteColor("bg")
	imageutil.FillRectangle(cp.ctx.Image(), &cp.Bounds, c)
}

// Selection ring is painted in the gap around the selected swatch.
func (cp *ColorPicker) PaintTree() bool {
	if !cp.ENode.PaintTree() {
		return false
	}
	if cp.selected >= 0 && cp.Gap >= 2 {
		sb := cp.swatches[cp.selected].Bounds
		if !sb.Empty() {
			r := sb.Inset(-cp.Gap / 2).Intersect(cp.Bounds)
			c := cp.TreeThemePaletteColor("selection")
			imageutil.BorderRectangle(cp.ctx.Image(), &r, c, 1)
		}
	}
	return true
}

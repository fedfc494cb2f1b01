package ui

import (
	"image"

	"github.com/jmigpin/swatch/util/imageutil"
	"github.com/jmigpin/swatch/util/uiutil/widget"
)

// User interface root (top) node.
type Root struct {
	widget.ENode
	Picker *ColorPicker
	Pad    int
	ctx    widget.ImageContext
}

func NewRoot(ctx widget.ImageContext, swatchSize image.Point) *Root {
	root := &Root{ctx: ctx, Pad: 8}
	root.SetWrapperForRoot(root)
	applyPalette(root, Palette)

	root.Picker = NewColorPicker(ctx, swatchSize)
	root.Append(root.Picker)
	return root
}

func (root *Root) Measure(hint image.Point) image.Point {
	pad := image.Point{root.Pad * 2, root.Pad * 2}
	h := imageutil.MaxPoint(hint.Sub(pad), image.Point{})
	m := root.Picker.Measure(h).Add(pad)
	return imageutil.MinPoint(m, hint)
}

func (root *Root) Layout() {
	root.Picker.Bounds = root.Bounds.Inset(root.Pad)
}

func (root *Root) Paint() {
	c := root.TreeThemePaletteColor("bg")
	imageutil.FillRectangle(root.ctx.Image(), &root.Bounds, c)
}

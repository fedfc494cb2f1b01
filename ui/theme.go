package ui

import (
	"image/color"

	"github.com/jmigpin/swatch/util/uiutil/widget"
)

var Palette = widget.Palette{
	"fg":        widget.Black,
	"bg":        color.RGBA{238, 238, 238, 255},
	"selection": color.RGBA{0, 90, 200, 255},
}

func applyPalette(n widget.Node, pal widget.Palette) {
	for k, v := range pal {
		n.Embed().SetThemePaletteColor(k, v)
	}
}

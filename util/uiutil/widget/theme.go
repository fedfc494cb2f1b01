package widget

import (
	"image/color"

	"github.com/jmigpin/swatch/util/imageutil"
)

var (
	White       color.Color = color.RGBA{255, 255, 255, 255}
	Black       color.Color = color.RGBA{0, 0, 0, 255}
	Green       color.Color = color.RGBA{0, 255, 0, 255}
	Transparent color.Color = color.RGBA{}
)

// Color names looked up from a node up to the root, then here.
type Palette map[string]color.Color

var DefaultPalette = Palette{
	"fg":            Black,
	"bg":            White,
	"button_down":   color.RGBA{0, 0, 0, 64}, // shade painted over a pressed button
	"text_disabled": imageutil.RgbaFromInt(0x808080),
}

// Returned for unknown names, stands out from the usual palettes.
var debugColor color.Color = imageutil.RgbaFromInt(0xff0000)

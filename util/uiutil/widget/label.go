package widget

import (
	"image"

	"github.com/jmigpin/swatch/util/fontutil"
	"github.com/jmigpin/swatch/util/imageutil"
	"golang.org/x/image/font"
)

// Single line of text.
type Label struct {
	ENode
	Text      string
	ColorName string             // palette name of the text color
	Face      *fontutil.FontFace // nil uses the default face
	ctx       ImageContext
}

func NewLabel(ctx ImageContext) *Label {
	return &Label{ctx: ctx, ColorName: "fg"}
}

func (l *Label) SetText(s string) {
	if s == l.Text {
		return
	}
	l.Text = s
	l.MarkNeedsLayoutAndPaint()
}

func (l *Label) face() *fontutil.FontFace {
	if l.Face != nil {
		return l.Face
	}
	return fontutil.DefaultFontFace()
}

func (l *Label) Measure(hint image.Point) image.Point {
	m := l.face().MeasureString(l.Text)
	return imageutil.MinPoint(m, hint)
}

func (l *Label) Paint() {
	if l.Text == "" {
		return
	}
	ff := l.face()
	src := image.NewUniform(l.TreeThemePaletteColor(l.ColorName))
	d := &font.Drawer{
		Dst:  l.ctx.Image(),
		Src:  src,
		Face: ff.Face,
		Dot:  ff.BaselineDot(l.Bounds),
	}
	d.DrawString(l.Text)
}

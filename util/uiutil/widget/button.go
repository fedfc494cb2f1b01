package widget

import (
	"image"
	"image/draw"

	"github.com/jmigpin/swatch/util/imageutil"
	"github.com/jmigpin/swatch/util/uiutil/event"
)

type ButtonState int

const (
	StateNormal ButtonState = iota
	StateHighlighted
	StateDisabled

	nButtonStates
)

//----------

// Clickable area with a title, an image per state, and layer chrome.
type Button struct {
	ENode
	Label   *Label
	Layer   Layer
	OnClick func(*event.MouseUp)

	images   [nButtonStates]image.Image
	disabled bool
	down     bool
	ctx      ImageContext
}

func NewButton(ctx ImageContext) *Button {
	b := &Button{ctx: ctx}
	// rounded corners and translucent content
	b.AddMarks(MarkPaintParent)
	b.Label = NewLabel(ctx)
	b.Append(b.Label)
	return b
}

//----------

func (b *Button) Title() string {
	return b.Label.Text
}
func (b *Button) SetTitle(s string) {
	b.Label.SetText(s)
}

// Installs img as the content for the state, replacing the previous one. A nil image removes it.
func (b *Button) SetImage(img image.Image, st ButtonState) {
	b.images[st] = img
	b.MarkNeedsPaint()
}
func (b *Button) Image(st ButtonState) image.Image {
	return b.images[st]
}

func (b *Button) SetLayer(l Layer) {
	b.Layer = l
	b.MarkNeedsPaint()
}

func (b *Button) SetDisabled(v bool) {
	b.disabled = v
	b.down = false
	if v {
		b.Label.ColorName = "text_disabled"
	} else {
		b.Label.ColorName = "fg"
	}
	b.MarkNeedsPaint()
}

func (b *Button) State() ButtonState {
	switch {
	case b.disabled:
		return StateDisabled
	case b.down:
		return StateHighlighted
	default:
		return StateNormal
	}
}

// Image for the current state, falling back to the normal state image.
func (b *Button) stateImage() image.Image {
	if img := b.images[b.State()]; img != nil {
		return img
	}
	return b.images[StateNormal]
}

//----------

func (b *Button) Measure(hint image.Point) image.Point {
	m := b.Label.Measure(hint)
	if img := b.images[StateNormal]; img != nil {
		m = imageutil.MaxPoint(m, img.Bounds().Size())
	}
	return imageutil.MinPoint(m, hint)
}

func (b *Button) Layout() {
	// center title
	m := b.Label.Measure(b.Bounds.Size())
	off := b.Bounds.Size().Sub(m).Div(2)
	r := image.Rectangle{Max: m}.Add(b.Bounds.Min.Add(off))
	b.Label.Bounds = r.Intersect(b.Bounds)
}

//----------

// Only a root button clears its area, otherwise the parent painted it.
func (b *Button) PaintBase() {
	if b.Parent == nil {
		imageutil.FillRectangle(b.ctx.Image(), &b.Bounds, Transparent)
	}
}

func (b *Button) Paint() {
	img := b.ctx.Image()
	mask := b.Layer.ShapeMask(b.Bounds.Size())

	b.Layer.PaintBackground(img, &b.Bounds, mask)

	u := b.stateImage()
	if u != nil {
		imageutil.DrawImageMask(img, &b.Bounds, u, u.Bounds().Min, mask, image.Point{}, draw.Over)
	}

	if b.State() == StateHighlighted && b.images[StateHighlighted] == nil {
		c := b.TreeThemePaletteColor("button_down")
		imageutil.DrawUniformMask(img, &b.Bounds, c, mask, image.Point{}, draw.Over)
	}
}

// Border is painted over the childs.
func (b *Button) PaintTree() bool {
	if !b.ENode.PaintTree() {
		return false
	}
	b.Layer.PaintBorder(b.ctx.Image(), &b.Bounds)
	return true
}

//----------

func (b *Button) OnInputEvent(ev interface{}, p image.Point) event.Handled {
	if b.disabled {
		return false
	}
	switch t := ev.(type) {
	case *event.MouseDown:
		if t.Button == event.ButtonLeft {
			b.down = true
			b.MarkNeedsPaint()
		}
	case *event.MouseLeave:
		if b.down {
			b.down = false
			b.MarkNeedsPaint()
		}
	case *event.MouseUp:
		if b.down && t.Button == event.ButtonLeft {
			b.down = false
			b.MarkNeedsPaint()
			if b.OnClick != nil {
				b.OnClick(t)
			}
		}
	}
	return false
}

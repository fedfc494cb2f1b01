package xdriver

import (
	"image"
	"image/draw"
	"os"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/jmigpin/swatch/util/imageutil"
	"github.com/jmigpin/swatch/util/uiutil/event"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

type Window struct {
	Conn   *xgb.Conn
	XU     *xgbutil.XUtil
	Window xproto.Window
	Screen *xproto.ScreenInfo
	GCtx   xproto.Gcontext

	img         *imageutil.BGRA
	deleteAtom  xproto.Atom
	events      chan interface{}
	closeOnce   sync.Once
	eventsClose sync.Once
}

func NewWindow(name string, size image.Point) (*Window, error) {
	conn, err := xgb.NewConnDisplay(os.Getenv("DISPLAY"))
	if err != nil {
		return nil, errors.Wrap(err, "x conn")
	}
	win := &Window{
		Conn:   conn,
		events: make(chan interface{}, 8),
	}
	if err := win.initialize(name, size); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "win init")
	}
	go win.eventLoop()
	return win, nil
}

func (win *Window) initialize(name string, size image.Point) error {
	si := xproto.Setup(win.Conn)
	win.Screen = si.DefaultScreen(win.Conn)

	xu, err := xgbutil.NewConnXgb(win.Conn)
	if err != nil {
		return err
	}
	win.XU = xu

	window, err := xproto.NewWindowId(win.Conn)
	if err != nil {
		return err
	}
	win.Window = window

	var evMask uint32 = 0 |
		xproto.EventMaskStructureNotify |
		xproto.EventMaskExposure |
		xproto.EventMaskPointerMotion |
		xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease |
		0
	// mask/values order is defined by the protocol
	mask := uint32(xproto.CwEventMask)
	values := []uint32{evMask}

	c1 := xproto.CreateWindowChecked(
		win.Conn,
		win.Screen.RootDepth,
		win.Window,
		win.Screen.Root,
		0, 0, uint16(size.X), uint16(size.Y),
		0, // border width
		xproto.WindowClassInputOutput,
		win.Screen.RootVisual,
		mask, values)
	if err := c1.Check(); err != nil {
		return err
	}

	// graphical context
	gCtx, err := xproto.NewGcontextId(win.Conn)
	if err != nil {
		return err
	}
	win.GCtx = gCtx
	c2 := xproto.CreateGCChecked(win.Conn, win.GCtx, xproto.Drawable(win.Window), 0, nil)
	if err := c2.Check(); err != nil {
		return err
	}

	// window manager
	if err := ewmh.WmNameSet(win.XU, win.Window, name); err != nil {
		return err
	}
	if err := icccm.WmNameSet(win.XU, win.Window, name); err != nil {
		return err
	}
	if err := icccm.WmProtocolsSet(win.XU, win.Window, []string{"WM_DELETE_WINDOW"}); err != nil {
		return err
	}
	atom, err := xprop.Atm(win.XU, "WM_DELETE_WINDOW")
	if err != nil {
		return err
	}
	win.deleteAtom = atom

	// swatches are clickable everywhere
	cursor, err := xcursor.CreateCursor(win.XU, xcursor.Hand2)
	if err != nil {
		return err
	}
	_ = xproto.ChangeWindowAttributes(win.Conn, win.Window, xproto.CwCursor, []uint32{uint32(cursor)})

	win.ResizeImage(image.Rectangle{Max: size})

	return xproto.MapWindowChecked(win.Conn, win.Window).Check()
}

func (win *Window) Close() error {
	win.closeOnce.Do(func() {
		_ = xproto.DestroyWindow(win.Conn, win.Window)
		win.Conn.Close()
	})
	return nil
}

//----------

// Events are *event.WindowResize, *event.WindowExpose, *event.WindowInput, *event.WindowClose and errors. The channel is closed after a WindowClose.
func (win *Window) Events() <-chan interface{} {
	return win.events
}

func (win *Window) eventLoop() {
	defer win.eventsClose.Do(func() { close(win.events) })
	for {
		ev, xerr := win.Conn.WaitForEvent()
		if ev == nil && xerr == nil {
			win.events <- &event.WindowClose{}
			return
		}
		if xerr != nil {
			win.events <- error(xerr)
		}
		if ev != nil {
			u := translateEvent(ev, win.deleteAtom)
			if u == nil {
				continue
			}
			win.events <- u
			if _, ok := u.(*event.WindowClose); ok {
				return
			}
		}
	}
}

func translateEvent(ev xgb.Event, deleteAtom xproto.Atom) interface{} {
	switch t := ev.(type) {
	case xproto.ConfigureNotifyEvent: // window structure (position,size,...)
		return &event.WindowResize{Size: image.Point{int(t.Width), int(t.Height)}}
	case xproto.ExposeEvent: // region needs paint
		if t.Count != 0 {
			return nil // more expose events follow
		}
		return &event.WindowExpose{}
	case xproto.ButtonPressEvent:
		p := image.Point{int(t.EventX), int(t.EventY)}
		ev2 := &event.MouseDown{Point: p, Button: translateButton(t.Detail)}
		return &event.WindowInput{Point: p, Event: ev2}
	case xproto.ButtonReleaseEvent:
		p := image.Point{int(t.EventX), int(t.EventY)}
		ev2 := &event.MouseUp{Point: p, Button: translateButton(t.Detail)}
		return &event.WindowInput{Point: p, Event: ev2}
	case xproto.MotionNotifyEvent:
		p := image.Point{int(t.EventX), int(t.EventY)}
		ev2 := &event.MouseMove{Point: p, Buttons: translateButtons(t.State)}
		return &event.WindowInput{Point: p, Event: ev2}
	case xproto.ClientMessageEvent:
		if t.Format == 32 && xproto.Atom(t.Data.Data32[0]) == deleteAtom {
			return &event.WindowClose{}
		}
	case xproto.MapNotifyEvent, xproto.ReparentNotifyEvent:
	default:
		klog.V(2).Infof("unhandled event: %#v", ev)
	}
	return nil
}

func translateButton(b xproto.Button) event.MouseButton {
	switch b {
	case 1:
		return event.ButtonLeft
	case 2:
		return event.ButtonMiddle
	case 3:
		return event.ButtonRight
	case 4:
		return event.ButtonWheelUp
	case 5:
		return event.ButtonWheelDown
	}
	return event.ButtonNone
}

func translateButtons(state uint16) event.MouseButtons {
	var u event.MouseButtons
	if state&xproto.KeyButMaskButton1 != 0 {
		u.Add(event.ButtonLeft)
	}
	if state&xproto.KeyButMaskButton2 != 0 {
		u.Add(event.ButtonMiddle)
	}
	if state&xproto.KeyButMaskButton3 != 0 {
		u.Add(event.ButtonRight)
	}
	return u
}

//----------

// Implements widget.ImageContext.
func (win *Window) Image() draw.Image {
	return win.img
}

func (win *Window) ResizeImage(r image.Rectangle) {
	if win.img != nil && win.img.Bounds().Eq(r) {
		return
	}
	win.img = imageutil.NewBGRA(&r)
}

func (win *Window) PutImage(r image.Rectangle) error {
	r = r.Intersect(win.img.Bounds())
	if r.Empty() {
		return nil
	}

	// X max request length = (2^16)*4 bytes, send it in chunks
	putImgReqSize := 28
	maxReqSize := (1 << 16) * 4
	maxSize := (maxReqSize - putImgReqSize) / 4
	if r.Dx() > maxSize {
		return errors.Errorf("putimage: dx>max, %v>%v", r.Dx(), maxSize)
	}
	chunk := image.Point{r.Dx(), maxSize / r.Dx()}

	for minY := r.Min.Y; minY < r.Max.Y; minY += chunk.Y {
		h := chunk.Y
		if h2 := r.Max.Y - minY; h2 < h {
			h = h2
		}
		data := make([]uint8, chunk.X*h*4)
		for y := 0; y < h; y++ {
			i := y * chunk.X * 4
			j := win.img.PixOffset(r.Min.X, minY+y)
			copy(data[i:i+chunk.X*4], win.img.Pix[j:])
		}
		c := xproto.PutImageChecked(
			win.Conn,
			xproto.ImageFormatZPixmap,
			xproto.Drawable(win.Window),
			win.GCtx,
			uint16(chunk.X), uint16(h), // width/height
			int16(r.Min.X), int16(minY), // dst X/Y
			0, // left pad, must be 0 for ZPixmap format
			win.Screen.RootDepth,
			data)
		if err := c.Check(); err != nil {
			return errors.Wrap(err, "putimage")
		}
	}
	return nil
}

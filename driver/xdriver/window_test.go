package xdriver

import (
	"image"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/davecgh/go-spew/spew"
	"github.com/jmigpin/swatch/util/uiutil/event"
)

func TestTranslateEvent(t *testing.T) {
	u := translateEvent(xproto.ConfigureNotifyEvent{Width: 30, Height: 20}, 0)
	if ev, ok := u.(*event.WindowResize); !ok || ev.Size != (image.Point{30, 20}) {
		t.Fatal(spew.Sdump(u))
	}

	// only the last expose of a series
	if u := translateEvent(xproto.ExposeEvent{Count: 2}, 0); u != nil {
		t.Fatal(spew.Sdump(u))
	}
	if _, ok := translateEvent(xproto.ExposeEvent{}, 0).(*event.WindowExpose); !ok {
		t.Fatal()
	}

	u = translateEvent(xproto.ButtonPressEvent{Detail: 1, EventX: 3, EventY: 4}, 0)
	wi, ok := u.(*event.WindowInput)
	if !ok || wi.Point != (image.Point{3, 4}) {
		t.Fatal(spew.Sdump(u))
	}
	if md, ok := wi.Event.(*event.MouseDown); !ok || md.Button != event.ButtonLeft {
		t.Fatal(spew.Sdump(wi.Event))
	}

	u = translateEvent(xproto.ButtonReleaseEvent{Detail: 3}, 0)
	if mu, ok := u.(*event.WindowInput).Event.(*event.MouseUp); !ok || mu.Button != event.ButtonRight {
		t.Fatal(spew.Sdump(u))
	}

	state := uint16(xproto.KeyButMaskButton1 | xproto.KeyButMaskButton3)
	u = translateEvent(xproto.MotionNotifyEvent{State: state}, 0)
	mm := u.(*event.WindowInput).Event.(*event.MouseMove)
	if !mm.Buttons.Has(event.ButtonLeft) || !mm.Buttons.Has(event.ButtonRight) || mm.Buttons.Has(event.ButtonMiddle) {
		t.Fatal(mm.Buttons)
	}
}

func TestTranslateEventDeleteWindow(t *testing.T) {
	atom := xproto.Atom(77)
	data := xproto.ClientMessageDataUnionData32New([]uint32{uint32(atom), 0, 0, 0, 0})
	ev := xproto.ClientMessageEvent{Format: 32, Data: data}
	if _, ok := translateEvent(ev, atom).(*event.WindowClose); !ok {
		t.Fatal()
	}
	// other protocols are ignored
	if u := translateEvent(ev, atom+1); u != nil {
		t.Fatal(spew.Sdump(u))
	}
}

func TestTranslateButton(t *testing.T) {
	w := map[xproto.Button]event.MouseButton{
		1: event.ButtonLeft,
		2: event.ButtonMiddle,
		3: event.ButtonRight,
		4: event.ButtonWheelUp,
		5: event.ButtonWheelDown,
		9: event.ButtonNone,
	}
	for b, mb := range w {
		if u := translateButton(b); u != mb {
			t.Fatal(b, u)
		}
	}
}

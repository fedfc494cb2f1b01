package event

import "image"

// Sent by window drivers.
type (
	WindowClose  struct{}
	WindowExpose struct{}
	WindowResize struct{ Size image.Point }

	// Input at a window position. Event is one of the mouse events.
	WindowInput struct {
		Point image.Point
		Event interface{}
	}
)

// Returned by nodes that consumed an event, stops it from reaching the parents.
type Handled bool

//----------

// Delivered by the dispatcher to nodes under the pointer.
type (
	MouseEnter struct{}
	MouseLeave struct{}
	MouseDown  struct {
		Point  image.Point
		Button MouseButton
	}
	MouseUp struct {
		Point  image.Point
		Button MouseButton
	}
	MouseMove struct {
		Point   image.Point
		Buttons MouseButtons // pressed while moving
	}
)

//----------

type MouseButton uint8

const ButtonNone MouseButton = 0

const (
	ButtonLeft MouseButton = 1 << iota
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

// Set of buttons.
type MouseButtons uint8

func (mb *MouseButtons) Add(b MouseButton) { *mb |= MouseButtons(b) }
func (mb MouseButtons) Has(b MouseButton) bool {
	return mb&MouseButtons(b) != 0
}

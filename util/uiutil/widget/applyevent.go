package widget

import (
	"image"

	"github.com/jmigpin/swatch/util/uiutil/event"
)

// Routes pointer events to the topmost node under the point, bubbling up to the parents until handled. Keeps track of enter/leave.
type ApplyEvent struct{}

func NewApplyEvent() *ApplyEvent {
	return &ApplyEvent{}
}

// A nil event only updates enter/leave.
func (ae *ApplyEvent) Apply(node Node, ev interface{}, p image.Point) {
	ae.leave(node, p)
	ae.enter(node, p)
	if ev != nil {
		ae.dispatch(node, ev, p)
	}
}

//----------

func (ae *ApplyEvent) leave(node Node, p image.Point) {
	ne := node.Embed()
	if !ne.HasAnyMarks(MarkPointerInside) {
		return
	}
	ne.IterateWrappers(func(c Node) {
		ae.leave(c, p)
	})
	if !p.In(ne.Bounds) {
		ne.RemoveMarks(MarkPointerInside)
		node.OnInputEvent(&event.MouseLeave{}, p)
	}
}

func (ae *ApplyEvent) enter(node Node, p image.Point) {
	ne := node.Embed()
	if !p.In(ne.Bounds) {
		return
	}
	if !ne.HasAnyMarks(MarkPointerInside) {
		ne.AddMarks(MarkPointerInside)
		node.OnInputEvent(&event.MouseEnter{}, p)
	}
	if c := childAt(ne, p); c != nil {
		ae.enter(c, p)
	}
}

func (ae *ApplyEvent) dispatch(node Node, ev interface{}, p image.Point) event.Handled {
	ne := node.Embed()
	if !p.In(ne.Bounds) {
		return false
	}
	if c := childAt(ne, p); c != nil {
		if ae.dispatch(c, ev, p) {
			return true
		}
	}
	return node.OnInputEvent(ev, p)
}

// Topmost child containing p.
func childAt(ne *EmbedNode, p image.Point) Node {
	var u Node
	ne.IterateWrappersReverse(func(c Node) bool {
		if p.In(c.Embed().Bounds) {
			u = c
			return false
		}
		return true
	})
	return u
}

//----------

// Layouts and paints what is marked. Calls painted with the union of the painted areas, if any.
func PaintIfNeeded(node Node, painted func(*image.Rectangle)) {
	node.LayoutMarked()
	r := node.PaintMarked()
	if !r.Empty() && painted != nil {
		painted(&r)
	}
}

package widget

import (
	"container/list"
	"fmt"
	"image"
	"image/color"

	"github.com/jmigpin/swatch/util/imageutil"
	"github.com/jmigpin/swatch/util/uiutil/event"
)

// Methods a widget can override. Widgets embed ENode and get defaults for all of them.
type Node interface {
	fullNode() // only ENode implements it, an EmbedNode alone is not a Node

	Embed() *EmbedNode

	InsertBefore(n Node, next *EmbedNode)
	Append(n ...Node)
	Remove(child Node)

	Measure(hint image.Point) image.Point

	LayoutMarked()
	LayoutTree()
	Layout() // sets childs bounds only
	ChildsLayoutTree()

	PaintMarked() image.Rectangle
	PaintTree() bool
	PaintBase()
	Paint()
	ChildsPaintTree()

	OnInputEvent(ev interface{}, p image.Point) event.Handled
}

//----------

type ENode struct {
	EmbedNode
}

func (ENode) fullNode() {}

//----------

type EmbedNode struct {
	Bounds  image.Rectangle
	Wrapper Node
	Parent  *EmbedNode

	marks   Marks
	childs  list.List // of *EmbedNode
	elem    *list.Element
	palette Palette
}

func (en *EmbedNode) Embed() *EmbedNode {
	return en
}

// Childs get their wrapper when inserted. A root node sets it here.
func (en *EmbedNode) SetWrapperForRoot(n Node) {
	en.Wrapper = n
}

//----------

func (en *EmbedNode) Append(nodes ...Node) {
	ins := Node(en.Wrapper)
	for _, n := range nodes {
		if ins == nil {
			en.InsertBefore(n, nil)
		} else {
			ins.InsertBefore(n, nil)
		}
	}
}

// A nil next appends.
func (en *EmbedNode) InsertBefore(child Node, next *EmbedNode) {
	ce := child.Embed()
	switch {
	case ce == en:
		panic("node inserted into itself")
	case ce.Parent != nil:
		panic("node already has a parent")
	case next != nil && next.Parent != en:
		panic("next node is not a child")
	}

	if next == nil {
		ce.elem = en.childs.PushBack(ce)
	} else {
		ce.elem = en.childs.InsertBefore(ce, next.elem)
	}
	ce.Parent = en
	ce.Wrapper = child

	en.MarkNeedsLayoutAndPaint()
}

func (en *EmbedNode) Remove(child Node) {
	ce := child.Embed()
	if ce.Parent != en {
		panic("node is not a child")
	}
	en.childs.Remove(ce.elem)
	ce.elem, ce.Parent = nil, nil

	en.MarkNeedsLayoutAndPaint()
}

func (en *EmbedNode) ChildsLen() int {
	return en.childs.Len()
}

//----------

func (en *EmbedNode) iterate(f func(*EmbedNode)) {
	for e := en.childs.Front(); e != nil; e = e.Next() {
		f(e.Value.(*EmbedNode))
	}
}

func (en *EmbedNode) IterateWrappers(f func(Node)) {
	en.iterate(func(c *EmbedNode) { f(c.Wrapper) })
}

// Last child first (painted on top). Stops when f returns false.
func (en *EmbedNode) IterateWrappersReverse(f func(Node) bool) {
	for e := en.childs.Back(); e != nil; e = e.Prev() {
		if !f(e.Value.(*EmbedNode).Wrapper) {
			return
		}
	}
}

//----------

func (en *EmbedNode) HasAnyMarks(m Marks) bool {
	return en.marks.HasAny(m)
}

func (en *EmbedNode) AddMarks(m Marks) {
	en.mark(m)
}

// Layout and paint marks are only cleared by layouting and painting.
func (en *EmbedNode) RemoveMarks(m Marks) {
	if m.HasAny(treeMarks) {
		panic(fmt.Sprintf("marks not removable: %v", m.Mask(treeMarks)))
	}
	en.marks.Remove(m)
}

func (en *EmbedNode) mark(m Marks) {
	added := m &^ en.marks
	en.marks.Add(m)
	if en.Parent == nil || !added.HasAny(treeMarks) {
		return
	}
	var u Marks
	if added.HasAny(MarkNeedsLayout | MarkChildNeedsLayout) {
		u.Add(MarkChildNeedsLayout)
	}
	if added.HasAny(MarkNeedsPaint | MarkChildNeedsPaint) {
		u.Add(MarkChildNeedsPaint)
		// what is behind this node must be painted again first
		if added.HasAny(MarkNeedsPaint) && en.marks.HasAny(MarkPaintParent) {
			u.Add(MarkNeedsPaint)
		}
	}
	en.Parent.mark(u)
}

func (en *EmbedNode) MarkNeedsLayout() {
	en.mark(MarkNeedsLayout)
}
func (en *EmbedNode) MarkNeedsPaint() {
	en.mark(MarkNeedsPaint)
}
func (en *EmbedNode) MarkNeedsLayoutAndPaint() {
	en.mark(MarkNeedsLayout | MarkNeedsPaint)
}

func (en *EmbedNode) TreeNeedsPaint() bool {
	return en.HasAnyMarks(MarkNeedsPaint | MarkChildNeedsPaint)
}
func (en *EmbedNode) TreeNeedsLayout() bool {
	return en.HasAnyMarks(MarkNeedsLayout | MarkChildNeedsLayout)
}

//----------

// Largest of the childs measures.
func (en *EmbedNode) Measure(hint image.Point) image.Point {
	m := image.Point{}
	en.IterateWrappers(func(c Node) {
		m = imageutil.MaxPoint(m, c.Measure(hint))
	})
	return m
}

//----------

func (en *EmbedNode) LayoutMarked() {
	switch {
	case en.marks.HasAny(MarkNeedsLayout):
		en.Wrapper.LayoutTree()
	case en.marks.HasAny(MarkChildNeedsLayout):
		en.marks.Remove(MarkChildNeedsLayout)
		en.IterateWrappers(func(c Node) { c.LayoutMarked() })
	}
}

// Childs start with the node bounds; Layout can change them.
func (en *EmbedNode) LayoutTree() {
	en.marks.Remove(MarkNeedsLayout | MarkChildNeedsLayout)

	old := make([]image.Rectangle, 0, en.childs.Len())
	en.iterate(func(c *EmbedNode) {
		old = append(old, c.Bounds)
		c.Bounds = en.Bounds
	})

	en.Wrapper.Layout()
	en.Wrapper.ChildsLayoutTree()

	i := 0
	en.iterate(func(c *EmbedNode) {
		if c.Bounds != old[i] {
			c.MarkNeedsPaint()
		}
		i++
	})
}

func (en *EmbedNode) Layout() {}

func (en *EmbedNode) ChildsLayoutTree() {
	en.IterateWrappers(func(c Node) { c.LayoutTree() })
}

//----------

// Returns the union of the painted bounds.
func (en *EmbedNode) PaintMarked() image.Rectangle {
	switch {
	case en.marks.HasAny(MarkNeedsPaint):
		if en.Wrapper.PaintTree() {
			return en.Bounds
		}
	case en.marks.HasAny(MarkChildNeedsPaint):
		en.marks.Remove(MarkChildNeedsPaint)
		u := image.Rectangle{}
		en.IterateWrappers(func(c Node) {
			u = u.Union(c.PaintMarked())
		})
		return u
	}
	return image.Rectangle{}
}

// Returns false if there was nothing to paint.
func (en *EmbedNode) PaintTree() bool {
	en.marks.Remove(MarkNeedsPaint | MarkChildNeedsPaint)
	if en.Bounds.Empty() {
		return false
	}
	en.Wrapper.PaintBase()
	en.Wrapper.Paint()
	en.Wrapper.ChildsPaintTree()
	return true
}

func (en *EmbedNode) PaintBase() {}
func (en *EmbedNode) Paint()     {}

func (en *EmbedNode) ChildsPaintTree() {
	en.IterateWrappers(func(c Node) { c.PaintTree() })
}

//----------

func (en *EmbedNode) OnInputEvent(ev interface{}, p image.Point) event.Handled {
	return false
}

//----------

// A nil color removes the entry, falling back to the ancestors.
func (en *EmbedNode) SetThemePaletteColor(name string, c color.Color) {
	if c == nil {
		delete(en.palette, name)
	} else {
		if en.palette == nil {
			en.palette = Palette{}
		}
		en.palette[name] = c
	}
	en.MarkNeedsPaint()
}

func (en *EmbedNode) TreeThemePaletteColor(name string) color.Color {
	for n := en; n != nil; n = n.Parent {
		if c, ok := n.palette[name]; ok {
			return c
		}
	}
	if c, ok := DefaultPalette[name]; ok {
		return c
	}
	return debugColor
}

//----------

type Marks uint16

func (m *Marks) Add(u Marks)        { *m |= u }
func (m *Marks) Remove(u Marks)     { *m &^= u }
func (m Marks) Mask(u Marks) Marks  { return m & u }
func (m Marks) HasAny(u Marks) bool { return m.Mask(u) > 0 }

const (
	MarkNeedsPaint Marks = 1 << iota
	MarkNeedsLayout
	MarkChildNeedsPaint
	MarkChildNeedsLayout

	MarkPointerInside // between mouse enter and leave
	MarkPaintParent   // node doesn't cover its bounds, painting it repaints the parent
)

const treeMarks = MarkNeedsPaint | MarkNeedsLayout | MarkChildNeedsPaint | MarkChildNeedsLayout

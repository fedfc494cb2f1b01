package widget

import (
	"image"
	"image/color"
	"testing"

	"github.com/jmigpin/swatch/util/imageutil"
	"github.com/jmigpin/swatch/util/uiutil/event"
)

func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expecting panic")
		}
	}()
	fn()
}

func TestNodeInsertRemove(t *testing.T) {
	r1 := NewRectangle(nil)
	r2 := NewRectangle(nil)
	r3 := NewRectangle(nil)
	r1.Append(r2)
	if r1.ChildsLen() != 1 || r2.Parent != &r1.EmbedNode || r2.Wrapper != r2 {
		t.Fatal()
	}

	// already has a parent
	expectPanic(t, func() { r3.Append(r2) })
	// not a child
	expectPanic(t, func() { r1.Remove(r3) })
	// into itself
	expectPanic(t, func() { r1.Append(r1) })
	// next is not a child
	expectPanic(t, func() { r1.InsertBefore(r3, &r3.EmbedNode) })

	r1.InsertBefore(r3, &r2.EmbedNode)
	w := []Node{}
	r1.IterateWrappers(func(c Node) { w = append(w, c) })
	if len(w) != 2 || w[0] != r3 || w[1] != r2 {
		t.Fatal(w)
	}

	r1.Remove(r2)
	if r1.ChildsLen() != 1 || r2.Parent != nil {
		t.Fatal()
	}
}

func TestNodeMarks(t *testing.T) {
	r1 := NewRectangle(nil)
	r1.SetWrapperForRoot(r1)
	r2 := NewRectangle(nil)
	r3 := NewRectangle(nil)
	r1.Append(r2)
	r2.Append(r3)

	r1.LayoutMarked()
	if r1.TreeNeedsLayout() || r2.TreeNeedsLayout() {
		t.Fatal("layout marks left")
	}

	r3.MarkNeedsLayout()
	if !r2.HasAnyMarks(MarkChildNeedsLayout) || !r1.HasAnyMarks(MarkChildNeedsLayout) {
		t.Fatal("not propagated")
	}
	if r1.HasAnyMarks(MarkNeedsLayout) {
		t.Fatal("parent should only have the child mark")
	}
	r1.LayoutMarked()
	if r1.TreeNeedsLayout() || r3.TreeNeedsLayout() {
		t.Fatal("layout marks left")
	}

	expectPanic(t, func() { r1.RemoveMarks(MarkNeedsPaint) })
	r1.AddMarks(MarkPointerInside)
	r1.RemoveMarks(MarkPointerInside)
	if r1.HasAnyMarks(MarkPointerInside) {
		t.Fatal()
	}
}

func TestNodePaintParentMark(t *testing.T) {
	ctx := NewMemImageContext(image.Point{4, 4})
	r1 := NewRectangle(ctx)
	r1.SetWrapperForRoot(r1)
	r1.Bounds = image.Rect(0, 0, 4, 4)
	r2 := NewRectangle(ctx)
	r3 := NewRectangle(ctx)
	r1.Append(r2)
	r2.Append(r3)
	r1.LayoutMarked()
	r1.PaintMarked()

	// opaque nodes only mark the parent's childs
	r3.MarkNeedsPaint()
	if r2.HasAnyMarks(MarkNeedsPaint) || !r2.HasAnyMarks(MarkChildNeedsPaint) {
		t.Fatal("unexpected parent marks")
	}
	r1.PaintMarked()

	r3.AddMarks(MarkPaintParent)
	r3.MarkNeedsPaint()
	if !r2.HasAnyMarks(MarkNeedsPaint) {
		t.Fatal("parent not marked for paint")
	}
	// doesn't go further up unless the parent also has the mark
	if r1.HasAnyMarks(MarkNeedsPaint) || !r1.HasAnyMarks(MarkChildNeedsPaint) {
		t.Fatal("unexpected root marks")
	}
	// layout marks are not turned into paint marks
	r1.PaintMarked()
	r3.MarkNeedsLayout()
	if r2.HasAnyMarks(MarkNeedsPaint) {
		t.Fatal()
	}
}

func TestNodeLayoutBounds(t *testing.T) {
	r1 := NewRectangle(nil)
	r1.SetWrapperForRoot(r1)
	r2 := NewRectangle(nil)
	r1.Append(r2)
	r1.Bounds = image.Rect(0, 0, 10, 10)
	r1.LayoutMarked()
	if r2.Bounds != r1.Bounds {
		t.Fatal(r2.Bounds)
	}
	// bounds change marks paint
	if !r2.HasAnyMarks(MarkNeedsPaint) {
		t.Fatal()
	}
}

func TestNodeMeasure(t *testing.T) {
	r1 := NewRectangle(nil)
	r2 := NewRectangle(nil)
	r3 := NewRectangle(nil)
	r2.Size = image.Point{5, 20}
	r3.Size = image.Point{15, 3}
	r1.Append(r2, r3)

	// embed measure is the max of the childs
	if m := r1.EmbedNode.Measure(image.Point{100, 100}); m != (image.Point{15, 20}) {
		t.Fatal(m)
	}
	if m := r2.Measure(image.Point{4, 4}); m != (image.Point{4, 4}) {
		t.Fatal(m)
	}
}

func TestNodeTheme(t *testing.T) {
	ctx := NewMemImageContext(image.Point{4, 4})
	r1 := NewRectangle(ctx)
	r1.SetWrapperForRoot(r1)
	r1.Bounds = image.Rect(0, 0, 4, 4)
	r2 := NewRectangle(ctx)
	r1.Append(r2)

	c1 := color.RGBA{1, 2, 3, 255}
	r1.SetThemePaletteColor("bg", c1)
	if c := r2.TreeThemePaletteColor("bg"); c != c1 {
		t.Fatal(c)
	}
	if c := r2.TreeThemePaletteColor("fg"); c != Black {
		t.Fatal(c)
	}
	// unknown names give a debug color
	if c := r2.TreeThemePaletteColor("nope"); c != imageutil.RgbaFromInt(0xff0000) {
		t.Fatal(c)
	}

	PaintIfNeeded(r1, nil)
	if c := ctx.Img.(*image.RGBA).RGBAAt(1, 1); c != c1 {
		t.Fatal(c)
	}

	r1.SetThemePaletteColor("bg", nil)
	if c := r2.TreeThemePaletteColor("bg"); c != White {
		t.Fatal(c)
	}
}

//----------

type testEvNode struct {
	ENode
	evs     []interface{}
	handles bool
}

func (n *testEvNode) OnInputEvent(ev interface{}, p image.Point) event.Handled {
	n.evs = append(n.evs, ev)
	return event.Handled(n.handles)
}

func TestApplyEventBubble(t *testing.T) {
	parent := &testEvNode{}
	parent.SetWrapperForRoot(parent)
	parent.Bounds = image.Rect(0, 0, 20, 20)
	child := &testEvNode{}
	parent.Append(child)
	child.Bounds = image.Rect(0, 0, 10, 10)

	ae := NewApplyEvent()
	p := image.Point{5, 5}
	ae.Apply(parent, &event.MouseDown{Point: p}, p)
	// both got enter and the down event
	if len(child.evs) != 2 || len(parent.evs) != 2 {
		t.Fatal(child.evs, parent.evs)
	}
	if _, ok := parent.evs[1].(*event.MouseDown); !ok {
		t.Fatal(parent.evs)
	}

	// handled by the child, doesn't bubble
	child.handles = true
	ae.Apply(parent, &event.MouseUp{Point: p}, p)
	if len(child.evs) != 3 || len(parent.evs) != 2 {
		t.Fatal(child.evs, parent.evs)
	}

	// outside the child
	p2 := image.Point{15, 15}
	ae.Apply(parent, &event.MouseUp{Point: p2}, p2)
	if _, ok := child.evs[3].(*event.MouseLeave); !ok {
		t.Fatal(child.evs)
	}
	if _, ok := parent.evs[2].(*event.MouseUp); !ok {
		t.Fatal(parent.evs)
	}
}

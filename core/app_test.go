package core

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmigpin/swatch/ui"
	"github.com/jmigpin/swatch/util/uiutil/event"
	"github.com/jmigpin/swatch/util/uiutil/widget"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := DefaultConfig()
	ctx := widget.NewMemImageContext(image.Point{400, 60})
	app := &App{ae: widget.NewApplyEvent(), cfg: cfg}
	app.Root = ui.NewRoot(ctx, cfg.SwatchPoint())
	app.Root.Bounds = image.Rect(0, 0, 400, 60)
	app.applyConfig(cfg)
	return app
}

func TestAppApplyConfig(t *testing.T) {
	app := newTestApp(t)
	cp := app.Root.Picker
	if n := len(cp.Palette()); n != 9 {
		t.Fatal(n)
	}
	// default color is in the palette
	if i, c := cp.Selected(); i != 3 || c != (color.RGBA{0, 255, 0, 255}) {
		t.Fatal(i, c)
	}

	cfg, err := ParseConfig([]byte("swatch_size: 8x8\npalette: [red, blue]\ncolor: blue\n"))
	if err != nil {
		t.Fatal(err)
	}
	cp.Select(0)
	app.applyConfig(cfg)
	if n := len(cp.Palette()); n != 2 {
		t.Fatal(n)
	}
	// reloads keep the current color
	if i, c := cp.Selected(); i != 0 || c != (color.RGBA{255, 0, 0, 255}) {
		t.Fatal(i, c)
	}
	widget.PaintIfNeeded(app.Root, nil)
	if sz := cp.Swatch(0).Bounds.Size(); sz != (image.Point{8, 8}) {
		t.Fatal(sz)
	}
	// preview follows the swatch size
	if sz := cp.Preview().Measure(image.Point{1000, 1000}); sz != (image.Point{16, 16}) {
		t.Fatal(sz)
	}
}

func TestAppInitWindowErr(t *testing.T) {
	name := filepath.Join(t.TempDir(), "swatch.yaml")
	if err := os.WriteFile(name, []byte("window_name: a\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DISPLAY", "nodisplay")

	app := &App{ae: widget.NewApplyEvent()}
	if err := app.init(&Options{ConfigFilename: name}); err == nil {
		t.Fatal("expecting window error")
	}
	if app.watcher != nil {
		t.Fatal("watcher left open")
	}
}

func TestAppHandleWindowEvent(t *testing.T) {
	app := newTestApp(t)
	widget.PaintIfNeeded(app.Root, nil)

	if !app.handleWindowEvent(&event.WindowClose{}) {
		t.Fatal("expecting quit")
	}

	app.handleWindowEvent(&event.WindowExpose{})
	if !app.Root.HasAnyMarks(widget.MarkNeedsPaint) {
		t.Fatal("expecting paint mark")
	}
	widget.PaintIfNeeded(app.Root, nil)

	var got []int
	app.Root.Picker.OnSelect = func(i int, c color.Color) { got = append(got, i) }
	sb := app.Root.Picker.Swatch(1).Bounds
	p := sb.Min.Add(sb.Size().Div(2))
	app.handleWindowEvent(&event.WindowInput{Point: p, Event: &event.MouseDown{Point: p, Button: event.ButtonLeft}})
	app.handleWindowEvent(&event.WindowInput{Point: p, Event: &event.MouseUp{Point: p, Button: event.ButtonLeft}})
	if len(got) != 1 || got[0] != 1 {
		t.Fatal(got)
	}
}

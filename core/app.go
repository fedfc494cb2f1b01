package core

import (
	"image"
	"image/color"
	"time"

	"github.com/jmigpin/swatch/driver/xdriver"
	"github.com/jmigpin/swatch/ui"
	"github.com/jmigpin/swatch/util/imageutil"
	"github.com/jmigpin/swatch/util/uiutil/event"
	"github.com/jmigpin/swatch/util/uiutil/widget"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

type Options struct {
	ConfigFilename string
	Color          color.Color // overrides the config color if not nil
}

type App struct {
	Win     *xdriver.Window
	Root    *ui.Root
	cfg     *Config
	watcher *ConfigWatcher
	ae      *widget.ApplyEvent
	ticker  *time.Ticker
}

func RunApp(opt *Options) error {
	app := &App{ae: widget.NewApplyEvent()}
	if err := app.init(opt); err != nil {
		return err
	}
	defer app.close()
	app.eventLoop()
	return nil
}

func (app *App) init(opt *Options) error {
	app.cfg = DefaultConfig()
	if opt.ConfigFilename != "" {
		cfg, err := LoadConfig(opt.ConfigFilename)
		if err != nil {
			return err
		}
		app.cfg = cfg
	}

	win, err := xdriver.NewWindow(app.cfg.WindowName, image.Point{360, 64})
	if err != nil {
		return errors.Wrap(err, "window")
	}
	app.Win = win

	// started after the window, nothing to close on window errors
	if opt.ConfigFilename != "" {
		w, err := NewConfigWatcher(opt.ConfigFilename)
		if err != nil {
			_ = app.Win.Close()
			return err
		}
		w.OnError = func(err error) {
			klog.Errorf("config reload: %v", err)
		}
		app.watcher = w
	}

	app.Root = ui.NewRoot(app.Win, app.cfg.SwatchPoint())
	app.Root.Picker.OnSelect = func(i int, c color.Color) {
		klog.Infof("selected %v: %v", i, imageutil.SprintRgba(c))
	}
	app.applyConfig(app.cfg)
	if opt.Color != nil {
		app.Root.Picker.SetColor(opt.Color)
	}

	app.ticker = time.NewTicker(frameInterval(app.cfg.FrameRate))
	return nil
}

func (app *App) close() {
	if app.ticker != nil {
		app.ticker.Stop()
	}
	if app.watcher != nil {
		_ = app.watcher.Close()
	}
	_ = app.Win.Close()
}

//----------

func (app *App) eventLoop() {
	var configs <-chan *Config
	if app.watcher != nil {
		configs = app.watcher.Configs()
	}
	for {
		select {
		case ev, ok := <-app.Win.Events():
			if !ok {
				return
			}
			if quit := app.handleWindowEvent(ev); quit {
				return
			}
		case cfg, ok := <-configs:
			if !ok {
				configs = nil
				continue
			}
			klog.Infof("config reloaded")
			app.applyConfig(cfg)
		case <-app.ticker.C:
			app.paintIfNeeded()
		}
	}
}

func (app *App) handleWindowEvent(ev interface{}) (quit bool) {
	switch t := ev.(type) {
	case error:
		klog.Error(t)
	case *event.WindowClose:
		return true
	case *event.WindowResize:
		r := image.Rectangle{Max: t.Size}
		app.Win.ResizeImage(r)
		app.Root.Bounds = r
		app.Root.MarkNeedsLayoutAndPaint()
	case *event.WindowExpose:
		app.Root.MarkNeedsPaint()
	case *event.WindowInput:
		app.ae.Apply(app.Root, t.Event, t.Point)
	default:
		klog.V(2).Infof("unhandled window event: %T", ev)
	}
	return false
}

func (app *App) paintIfNeeded() {
	widget.PaintIfNeeded(app.Root, func(r *image.Rectangle) {
		if err := app.Win.PutImage(*r); err != nil {
			klog.Error(err)
		}
	})
}

//----------

// Runs on the UI goroutine.
func (app *App) applyConfig(cfg *Config) {
	cp := app.Root.Picker
	_, c := cp.Selected()

	cp.SetSwatchSize(cfg.SwatchPoint())
	cp.SetPalette(cfg.PaletteColors())
	if app.cfg != cfg && app.ticker != nil && cfg.FrameRate != app.cfg.FrameRate {
		app.ticker.Reset(frameInterval(cfg.FrameRate))
	}
	// keep the current color on reloads
	if app.cfg == cfg {
		c = cfg.ColorValue()
	}
	cp.SetColor(c)
	app.cfg = cfg
}

// Never zero, tickers panic on non-positive intervals.
func frameInterval(rate int) time.Duration {
	d := time.Second / time.Duration(rate)
	if d < time.Millisecond {
		d = time.Millisecond
	}
	return d
}

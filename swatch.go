// Color swatch picker.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/jmigpin/swatch/core"
	"github.com/jmigpin/swatch/util/imageutil"
	"github.com/jmigpin/swatch/util/uiutil/widget"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	configFlag := flag.String("config", "", "yaml config `filename`, reloaded on change")
	colorFlag := flag.String("color", "", "initial color: name, #rgb, #rrggbb or #rrggbbaa")
	sizeFlag := flag.String("size", "64x32", "swatch size for -png, WxH")
	pngFlag := flag.String("png", "", "render a single swatch to a png `filename` and exit")
	flag.Parse()
	defer klog.Flush()

	if err := run(*configFlag, *colorFlag, *sizeFlag, *pngFlag); err != nil {
		fmt.Fprintln(os.Stderr, err)
		klog.Flush()
		os.Exit(1)
	}
}

func run(config, colorStr, sizeStr, pngFilename string) error {
	var c color.Color
	if colorStr != "" {
		u, err := imageutil.ParseColor(colorStr)
		if err != nil {
			return err
		}
		c = u
	}

	if pngFilename != "" {
		size, err := core.ParseSize(sizeStr)
		if err != nil {
			return err
		}
		return renderPng(pngFilename, size, c)
	}

	opt := &core.Options{ConfigFilename: config, Color: c}
	return core.RunApp(opt)
}

func renderPng(filename string, size image.Point, c color.Color) error {
	img := renderSwatch(size, c)
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "png")
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return errors.Wrap(err, "png")
	}
	klog.Infof("wrote %v (%v)", filename, size)
	return f.Close()
}

// A nil color renders the default.
func renderSwatch(size image.Point, c color.Color) image.Image {
	ctx := widget.NewMemImageContext(size)
	opt := &widget.ColorSwatchOptions{Color: c, Size: size}
	sw := widget.NewColorSwatch2(ctx, opt)
	sw.SetWrapperForRoot(sw)
	widget.PaintIfNeeded(sw, nil)
	return ctx.Image()
}

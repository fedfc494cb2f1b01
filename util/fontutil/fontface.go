package fontutil

import (
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

var FontsMan = NewFontsManager()

func DefaultFont() *Font {
	f, err := FontsMan.Font(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return f
}

func DefaultFontFace() *FontFace {
	return DefaultFont().FontFace(truetype.Options{})
}

//----------

type FontsManager struct {
	fontsCache map[string]*Font
}

func NewFontsManager() *FontsManager {
	fm := &FontsManager{}
	fm.ClearFontsCache()
	return fm
}

func (fm *FontsManager) ClearFontsCache() {
	fm.fontsCache = map[string]*Font{}
}

func (fm *FontsManager) Font(ttf []byte) (*Font, error) {
	f, ok := fm.fontsCache[string(ttf)]
	if ok {
		return f, nil
	}
	f, err := NewFont(ttf)
	if err != nil {
		return nil, err
	}
	fm.fontsCache[string(ttf)] = f
	return f, nil
}

//----------

type Font struct {
	Font       *truetype.Font
	facesCache map[truetype.Options]*FontFace
}

func NewFont(ttf []byte) (*Font, error) {
	ttfont, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	f := &Font{Font: ttfont}
	f.ClearFacesCache()
	return f, nil
}

func (f *Font) ClearFacesCache() {
	for _, ff := range f.facesCache {
		_ = ff.Face.Close()
	}
	f.facesCache = map[truetype.Options]*FontFace{}
}

func (f *Font) FontFace(opt truetype.Options) *FontFace {
	// truetype defaults, set here so they are part of the cache key
	if opt.Size == 0 {
		opt.Size = 12
	}
	if opt.DPI == 0 {
		opt.DPI = 72
	}

	ff, ok := f.facesCache[opt]
	if ok {
		return ff
	}
	ff = NewFontFace(f, opt)
	f.facesCache[opt] = ff
	return ff
}

func (f *Font) FontFace2(size float64) *FontFace {
	return f.FontFace(truetype.Options{Size: size})
}

//----------

type FontFace struct {
	Font    *Font
	Face    font.Face
	Size    float64 // in points, readonly
	Metrics font.Metrics
}

func NewFontFace(f *Font, opt truetype.Options) *FontFace {
	face := truetype.NewFace(f.Font, &opt)
	ff := &FontFace{Font: f, Face: face, Size: opt.Size}
	ff.Metrics = face.Metrics()
	return ff
}

func (ff *FontFace) LineHeight() int {
	return (ff.Metrics.Ascent + ff.Metrics.Descent).Ceil()
}

// Size in pixels of s drawn in a single line.
func (ff *FontFace) MeasureString(s string) image.Point {
	if s == "" {
		return image.Point{}
	}
	w := font.MeasureString(ff.Face, s)
	return image.Point{w.Ceil(), ff.LineHeight()}
}

// Dot for drawing the first line inside r.
func (ff *FontFace) BaselineDot(r image.Rectangle) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.I(r.Min.X),
		Y: fixed.I(r.Min.Y) + ff.Metrics.Ascent,
	}
}

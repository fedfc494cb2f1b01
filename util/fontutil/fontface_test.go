package fontutil

import (
	"testing"

	"github.com/golang/freetype/truetype"
)

func TestDefaultFontFace(t *testing.T) {
	ff := DefaultFontFace()
	if ff.Size != 12 {
		t.Fatal(ff.Size)
	}
	if ff != DefaultFontFace() {
		t.Fatal("expecting cached face")
	}
	if ff.LineHeight() <= 0 {
		t.Fatal(ff.LineHeight())
	}
}

func TestFontFaceCacheKey(t *testing.T) {
	f := DefaultFont()
	ff1 := f.FontFace(truetype.Options{Size: 12, DPI: 72})
	ff2 := f.FontFace2(12)
	if ff1 != ff2 {
		t.Fatal("defaults not part of the key")
	}
	ff3 := f.FontFace2(20)
	if ff3 == ff1 || ff3.LineHeight() <= ff1.LineHeight() {
		t.Fatal(ff3.LineHeight(), ff1.LineHeight())
	}
}

func TestMeasureString(t *testing.T) {
	ff := DefaultFontFace()
	if p := ff.MeasureString(""); p.X != 0 || p.Y != 0 {
		t.Fatal(p)
	}
	p1 := ff.MeasureString("a")
	p2 := ff.MeasureString("aaaa")
	if !(p1.X > 0 && p2.X > p1.X && p1.Y == p2.Y) {
		t.Fatal(p1, p2)
	}
}

func TestNewFontErr(t *testing.T) {
	if _, err := NewFont([]byte("not a font")); err == nil {
		t.Fatal("expecting error")
	}
}

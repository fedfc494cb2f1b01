package testutil

import (
	"image"
	"image/color"
	"testing"
)

func TestCompareImgs(t *testing.T) {
	r := image.Rect(0, 0, 4, 4)
	img1 := image.NewRGBA(r)
	img2 := image.NewRGBA(r)
	ClearImg(img1)
	ClearImg(img2)
	if err := CompareImgs(img1, img2); err != nil {
		t.Fatal(err)
	}

	img2.SetRGBA(1, 2, color.RGBA{211, 212, 211, 255})
	if err := CompareImgs(img1, img2); err == nil {
		t.Fatal("expecting error")
	} else {
		t.Log(err)
	}
	if err := CompareImgs2(img1, img2, 1); err != nil {
		t.Fatal(err)
	}

	img3 := image.NewRGBA(image.Rect(0, 0, 4, 5))
	if err := CompareImgs(img1, img3); err == nil {
		t.Fatal("expecting bounds error")
	}
}

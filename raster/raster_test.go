package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func gradientImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xFF})
		}
	}
	return img
}

func TestFit(t *testing.T) {
	src := gradientImage(100, 100)
	for _, size := range []int{16, 32, 256} {
		data, err := Fit(src, size)
		if err != nil {
			t.Fatalf("Fit(%d) error = %v", size, err)
		}
		decoded, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("Fit(%d) output is not a png: %v", size, err)
		}
		b := decoded.Bounds()
		if b.Dx() != size || b.Dy() != size {
			t.Errorf("Fit(%d) produced %dx%d", size, b.Dx(), b.Dy())
		}
	}
}

func TestFitBadSize(t *testing.T) {
	for _, size := range []int{0, -3} {
		if _, err := Fit(gradientImage(4, 4), size); !errors.Is(err, ErrBadSize) {
			t.Errorf("Fit(%d) error = %v, want ErrBadSize", size, err)
		}
	}
}

func TestSizes(t *testing.T) {
	entries, err := Sizes(gradientImage(64, 64), []int{16, 48})
	if err != nil {
		t.Fatalf("Sizes() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Size != 16 || entries[1].Size != 48 {
		t.Errorf("entry sizes = %d, %d, want 16, 48", entries[0].Size, entries[1].Size)
	}
	for _, e := range entries {
		if len(e.Data) == 0 {
			t.Errorf("entry %d has empty payload", e.Size)
		}
	}
}

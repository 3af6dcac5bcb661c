package pngmeta

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// encodePNG renders a w x h RGBA image through the stdlib encoder so the
// tests run against real chunk layout and CRCs. One translucent pixel keeps
// the encoder from downgrading to an alpha-free colour type.
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xFF})
		}
	}
	img.SetRGBA(0, 0, color.RGBA{R: 0x20, G: 0x40, B: 0x60, A: 0x80})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestParse(t *testing.T) {
	data := encodePNG(t, 48, 32)
	inf, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if inf.Width != 48 || inf.Height != 32 {
		t.Errorf("dimensions = %dx%d, want 48x32", inf.Width, inf.Height)
	}
	if inf.Chunks[0].Type != ChunkIHDR {
		t.Errorf("first chunk = %s, want IHDR", inf.Chunks[0].Type)
	}
	if last := inf.Chunks[len(inf.Chunks)-1].Type; last != ChunkIEND {
		t.Errorf("last chunk = %s, want IEND", last)
	}
	if !inf.HasAlpha() {
		t.Error("RGBA image should report an alpha channel")
	}
}

func TestParseNotPNG(t *testing.T) {
	if _, err := Parse([]byte("definitely not a png")); !errors.Is(err, ErrNotPNG) {
		t.Errorf("Parse() error = %v, want ErrNotPNG", err)
	}
	if IsPNG([]byte{0x89, 0x50}) {
		t.Error("IsPNG accepted a short prefix")
	}
}

func TestParseCorrupt(t *testing.T) {
	data := encodePNG(t, 8, 8)

	truncated := data[:len(data)-6]
	flipped := append([]byte(nil), data...)
	flipped[signatureSize+lengthSize+typeSize+2] ^= 0xFF // damage IHDR data, CRC no longer matches

	tests := []struct {
		name string
		data []byte
	}{
		{"truncated tail", truncated},
		{"crc mismatch", flipped},
		{"signature only", data[:signatureSize]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.data); !errors.Is(err, ErrCorrupt) {
				t.Errorf("Parse() error = %v, want ErrCorrupt", err)
			}
		})
	}
}

func TestDimensions(t *testing.T) {
	w, h, err := Dimensions(encodePNG(t, 256, 256))
	if err != nil {
		t.Fatalf("Dimensions() error = %v", err)
	}
	if w != 256 || h != 256 {
		t.Errorf("Dimensions() = %dx%d, want 256x256", w, h)
	}
}

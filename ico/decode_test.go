package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func pngPayload(n int) []byte {
	b := make([]byte, n)
	copy(b, pngSignature)
	for i := len(pngSignature); i < n; i++ {
		b[i] = byte(i)
	}
	return b
}

func TestDecodeRoundTrip(t *testing.T) {
	in := []IconImage{
		{Size: 16, Data: pngPayload(32)},
		{Size: 256, Data: pngPayload(48)},
	}
	encoded, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	icon, err := Decode(bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if icon.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", icon.Count())
	}
	if got := icon.Entries[0].PixelWidth(); got != 16 {
		t.Errorf("entry 0 width = %d, want 16", got)
	}
	if got := icon.Entries[1].PixelWidth(); got != 256 {
		t.Errorf("entry 1 width = %d, want 256 (stored as 0)", got)
	}
	if diff := cmp.Diff(in[0].Data, icon.Entries[0].Data); diff != "" {
		t.Errorf("entry 0 payload mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(in[1].Data, icon.Entries[1].Data); diff != "" {
		t.Errorf("entry 1 payload mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRejectsBadInput(t *testing.T) {
	valid, err := Encode([]IconImage{{Size: 16, Data: pngPayload(16)}})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	badReserved := append([]byte(nil), valid...)
	badReserved[0] = 0x01
	badType := append([]byte(nil), valid...)
	badType[2] = 0x02
	zeroCount := append([]byte(nil), valid...)
	zeroCount[4] = 0x00
	badOffset := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(badOffset[fileHeaderSize+12:fileHeaderSize+16], 0xFFFF)

	tests := []struct {
		name string
		data []byte
	}{
		{"short header", valid[:4]},
		{"truncated directory", valid[:10]},
		{"nonzero reserved", badReserved},
		{"wrong type", badType},
		{"zero count", zeroCount},
		{"payload out of bounds", badOffset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeBytes(tt.data); !errors.Is(err, ErrInvalid) {
				t.Errorf("DecodeBytes() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestPayloadKind(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want PayloadKind
	}{
		{"png", pngPayload(16), KindPNG},
		{"bmp dib", append([]byte{0x28, 0x00, 0x00, 0x00}, make([]byte, 40)...), KindBMP},
		{"garbage", []byte{1, 2, 3, 4, 5, 6, 7, 8}, KindUnknown},
		{"empty", nil, KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := DirEntry{Data: tt.data}
			if got := e.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFileBytesBMP(t *testing.T) {
	// Headerless DIB payload: 40 byte header with doubled height plus
	// 4 bytes of pixel data, the way icons store 1x1 32-bit bitmaps.
	dib := make([]byte, dibHeaderSize+4)
	binary.LittleEndian.PutUint32(dib[0:4], dibHeaderSize)
	binary.LittleEndian.PutUint32(dib[4:8], 1)
	binary.LittleEndian.PutUint32(dib[8:12], 2) // height doubled for the AND mask
	binary.LittleEndian.PutUint16(dib[12:14], 1)
	binary.LittleEndian.PutUint16(dib[14:16], 32)

	e := DirEntry{Width: 1, Height: 1, BitCount: 32, Data: dib}
	out, ext := e.FileBytes()
	if ext != "bmp" {
		t.Fatalf("ext = %q, want bmp", ext)
	}
	if out[0] != 'B' || out[1] != 'M' {
		t.Error("missing BM magic")
	}
	if got := binary.LittleEndian.Uint32(out[2:6]); got != uint32(bitmapFileHeaderSize+len(dib)) {
		t.Errorf("file size field = %d, want %d", got, bitmapFileHeaderSize+len(dib))
	}
	if got := binary.LittleEndian.Uint32(out[10:14]); got != bitmapFileHeaderSize+dibHeaderSize {
		t.Errorf("data offset = %d, want %d", got, bitmapFileHeaderSize+dibHeaderSize)
	}
	if got := binary.LittleEndian.Uint32(out[bitmapFileHeaderSize+8 : bitmapFileHeaderSize+12]); got != 1 {
		t.Errorf("patched height = %d, want 1", got)
	}
}

func TestFileBytesPNGPassThrough(t *testing.T) {
	data := pngPayload(24)
	e := DirEntry{Data: data}
	out, ext := e.FileBytes()
	if ext != "png" {
		t.Fatalf("ext = %q, want png", ext)
	}
	if !bytes.Equal(out, data) {
		t.Error("png payload was modified")
	}
}

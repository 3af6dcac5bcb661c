package ico

import "encoding/binary"

const (
	bitmapFileHeaderSize = 14
	dibHeaderSize        = 40
)

// FileBytes returns the entry's payload in a form suitable for a standalone
// file, together with the matching extension.
//
// PNG payloads pass through untouched. BMP payloads inside an icon are
// stored without the BITMAPFILEHEADER and with the DIB height doubled to
// cover the AND mask, so a file header is prepended and the height field is
// rewritten from the directory before the bytes are usable as a .bmp.
// Unrecognised payloads pass through with a generic extension.
func (e *DirEntry) FileBytes() ([]byte, string) {
	switch e.Kind() {
	case KindPNG:
		return e.Data, "png"
	case KindBMP:
		return e.rewrapBMP(), "bmp"
	default:
		return e.Data, "bin"
	}
}

// rewrapBMP builds header + patched DIB + pixel data for a BMP payload.
func (e *DirEntry) rewrapBMP() []byte {
	out := make([]byte, bitmapFileHeaderSize+len(e.Data))
	out[0] = 'B'
	out[1] = 'M'
	binary.LittleEndian.PutUint32(out[2:6], uint32(bitmapFileHeaderSize+len(e.Data)))
	binary.LittleEndian.PutUint32(out[10:14], bitmapFileHeaderSize+dibHeaderSize)
	copy(out[bitmapFileHeaderSize:], e.Data)

	// The stored biHeight counts XOR and AND mask rows together.
	dib := out[bitmapFileHeaderSize:]
	if len(dib) >= dibHeaderSize {
		binary.LittleEndian.PutUint32(dib[8:12], uint32(e.PixelHeight()))
	}
	return out
}

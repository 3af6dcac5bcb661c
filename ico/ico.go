// Package ico encodes and decodes the Windows icon container format.
//
// An .ico file is a 6 byte header, a directory of fixed 16 byte entries and
// the concatenated image payloads the entries point at. Every multi-byte
// field is little-endian. Layout reference:
// https://en.wikipedia.org/wiki/ICO_(file_format)
package ico

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
)

const (
	fileHeaderSize = 6  // reserved + type + count
	dirEntrySize   = 16 // one directory record per image

	// MaxSize is the largest square size the directory can describe.
	// The width/height fields are single bytes; 256 is stored as 0.
	MaxSize = 256
)

var (
	// ErrEmptyInput is returned by Encode when no images are supplied.
	ErrEmptyInput = errors.New("ico: no images to encode")

	// ErrInvalidSize is returned by Encode when a declared size cannot be
	// represented in the one-byte directory fields.
	ErrInvalidSize = errors.New("ico: image size must be in [1,256]")
)

// IconImage is one encoder input: a square pixel size and the PNG payload
// rendered at exactly that size. The payload bytes are trusted as-is; icon
// readers detect the payload format from its own header, not from the
// directory, so the encoder never inspects Data.
type IconImage struct {
	Size int
	Data []byte
}

// sizeByte maps a validated size onto the one-byte directory field.
func sizeByte(size int) uint8 {
	if size == MaxSize {
		return 0
	}
	return uint8(size)
}

// Encode packs the given images into a single .ico container.
//
// Directory entries are emitted in ascending size order, stable for equal
// sizes, so the output bytes are deterministic regardless of input order.
// Payloads follow the directory contiguously in the same order. Sizes
// outside [1,256] are rejected rather than silently truncated to a byte.
func Encode(images []IconImage) ([]byte, error) {
	if len(images) == 0 {
		return nil, ErrEmptyInput
	}
	for _, im := range images {
		if im.Size < 1 || im.Size > MaxSize {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, im.Size)
		}
	}

	sorted := make([]IconImage, len(images))
	copy(sorted, images)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Size < sorted[j].Size
	})

	total := fileHeaderSize + dirEntrySize*len(sorted)
	for _, im := range sorted {
		total += len(im.Data)
	}
	out := make([]byte, total)

	binary.LittleEndian.PutUint16(out[0:2], 0) // reserved
	binary.LittleEndian.PutUint16(out[2:4], 1) // 1 = icon
	binary.LittleEndian.PutUint16(out[4:6], uint16(len(sorted)))

	offset := uint32(fileHeaderSize + dirEntrySize*len(sorted))
	for i, im := range sorted {
		e := out[fileHeaderSize+i*dirEntrySize : fileHeaderSize+(i+1)*dirEntrySize]
		e[0] = sizeByte(im.Size) // width
		e[1] = sizeByte(im.Size) // height, icons are square here
		e[2] = 0                 // no palette
		e[3] = 0                 // reserved
		binary.LittleEndian.PutUint16(e[4:6], 1)  // colour planes
		binary.LittleEndian.PutUint16(e[6:8], 32) // bits per pixel
		binary.LittleEndian.PutUint32(e[8:12], uint32(len(im.Data)))
		binary.LittleEndian.PutUint32(e[12:16], offset)
		offset += uint32(len(im.Data))
	}

	p := fileHeaderSize + dirEntrySize*len(sorted)
	for _, im := range sorted {
		p += copy(out[p:], im.Data)
	}
	return out, nil
}

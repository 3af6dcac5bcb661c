package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrInvalid is returned by Decode for data that is not a well-formed icon
// container: bad header fields, a truncated directory, or payload ranges
// that fall outside the file.
var ErrInvalid = errors.New("ico: invalid icon data")

// PayloadKind is the detected format of one embedded payload. The directory
// itself carries no format field; readers sniff the payload's own header.
type PayloadKind int

const (
	KindUnknown PayloadKind = iota
	KindBMP                 // headerless DIB, as stored inside icons
	KindPNG
)

func (k PayloadKind) String() string {
	switch k {
	case KindBMP:
		return "bmp"
	case KindPNG:
		return "png"
	default:
		return "unknown"
	}
}

var (
	pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	dibSignature = []byte{0x28, 0x00, 0x00, 0x00} // biSize == 40
)

// DirEntry is one decoded directory record plus the payload it points at.
type DirEntry struct {
	Width           uint8 // stored byte, 0 means 256
	Height          uint8
	ColorCount      uint8
	Reserved        uint8
	Planes          uint16
	BitCount        uint16
	BytesInResource uint32
	ImageOffset     uint32

	Data []byte
}

// PixelWidth returns the real width, resolving the 0-means-256 rule.
func (e *DirEntry) PixelWidth() int {
	if e.Width == 0 {
		return MaxSize
	}
	return int(e.Width)
}

// PixelHeight returns the real height, resolving the 0-means-256 rule.
func (e *DirEntry) PixelHeight() int {
	if e.Height == 0 {
		return MaxSize
	}
	return int(e.Height)
}

// Kind sniffs the payload format from its leading bytes.
func (e *DirEntry) Kind() PayloadKind {
	if len(e.Data) >= len(pngSignature) && bytes.Equal(e.Data[:len(pngSignature)], pngSignature) {
		return KindPNG
	}
	if len(e.Data) >= len(dibSignature) && bytes.Equal(e.Data[:len(dibSignature)], dibSignature) {
		return KindBMP
	}
	return KindUnknown
}

// Icon is a decoded container.
type Icon struct {
	Entries []DirEntry
}

// Count returns the number of embedded images.
func (ic *Icon) Count() int {
	return len(ic.Entries)
}

// Decode parses a complete icon container from r.
func Decode(r io.Reader) (*Icon, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ico: read: %w", err)
	}
	return DecodeBytes(data)
}

// DecodeBytes parses a complete icon container held in memory.
func DecodeBytes(data []byte) (*Icon, error) {
	if len(data) < fileHeaderSize {
		return nil, fmt.Errorf("%w: short header", ErrInvalid)
	}
	reserved := binary.LittleEndian.Uint16(data[0:2])
	fileType := binary.LittleEndian.Uint16(data[2:4])
	count := int(binary.LittleEndian.Uint16(data[4:6]))
	if reserved != 0 {
		return nil, fmt.Errorf("%w: reserved field is %d", ErrInvalid, reserved)
	}
	if fileType != 1 {
		return nil, fmt.Errorf("%w: type %d is not an icon", ErrInvalid, fileType)
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: zero images", ErrInvalid)
	}
	if len(data) < fileHeaderSize+count*dirEntrySize {
		return nil, fmt.Errorf("%w: truncated directory", ErrInvalid)
	}

	icon := &Icon{Entries: make([]DirEntry, count)}
	for i := 0; i < count; i++ {
		s := data[fileHeaderSize+i*dirEntrySize : fileHeaderSize+(i+1)*dirEntrySize]
		e := DirEntry{
			Width:           s[0],
			Height:          s[1],
			ColorCount:      s[2],
			Reserved:        s[3],
			Planes:          binary.LittleEndian.Uint16(s[4:6]),
			BitCount:        binary.LittleEndian.Uint16(s[6:8]),
			BytesInResource: binary.LittleEndian.Uint32(s[8:12]),
			ImageOffset:     binary.LittleEndian.Uint32(s[12:16]),
		}
		end := uint64(e.ImageOffset) + uint64(e.BytesInResource)
		if uint64(e.ImageOffset) > uint64(len(data)) || end > uint64(len(data)) {
			return nil, fmt.Errorf("%w: entry %d payload out of bounds", ErrInvalid, i)
		}
		e.Data = data[e.ImageOffset:end]
		icon.Entries[i] = e
	}
	return icon, nil
}

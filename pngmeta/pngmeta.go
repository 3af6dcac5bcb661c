// Package pngmeta reads PNG structure without decoding pixel data.
//
// A PNG file is an 8 byte signature followed by chunks, each a big-endian
// length, a 4 byte type, the data and a CRC32 over type+data. Reference:
// https://en.wikipedia.org/wiki/PNG
//
// The package exists so callers can learn a file's declared dimensions and
// verify chunk integrity cheaply, for example before handing the bytes to
// the icon encoder, which trusts its payloads blindly.
package pngmeta

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
)

const (
	signatureSize = 8
	lengthSize    = 4 // chunk length field
	typeSize      = 4 // chunk type field
	crcSize       = 4
	ihdrDataSize  = 13
)

// Critical chunk types.
const (
	ChunkIHDR = "IHDR" // always first, 13 data bytes
	ChunkPLTE = "PLTE" // palette, only for indexed colour
	ChunkIDAT = "IDAT" // compressed image data, possibly split
	ChunkIEND = "IEND" // always last, empty
)

var (
	// ErrNotPNG is returned when the signature bytes are wrong.
	ErrNotPNG = errors.New("pngmeta: not a png file")

	// ErrCorrupt is returned for structural damage: truncated chunks,
	// CRC mismatches, or a malformed chunk sequence.
	ErrCorrupt = errors.New("pngmeta: corrupt png data")

	signature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
)

// Chunk is one parsed chunk. Data aliases the input buffer.
type Chunk struct {
	Type string
	Data []byte
}

// Info is the parsed structure of a PNG file.
type Info struct {
	Width     int
	Height    int
	BitDepth  uint8
	ColorType uint8
	Chunks    []Chunk
}

// HasAlpha reports whether the colour type carries an alpha channel.
// Indexed images may still be transparent via tRNS; that case is not
// detected here.
func (inf *Info) HasAlpha() bool {
	return inf.ColorType == 4 || inf.ColorType == 6
}

// IsPNG reports whether data starts with the PNG signature.
func IsPNG(data []byte) bool {
	return len(data) >= signatureSize && bytes.Equal(data[:signatureSize], signature)
}

// Parse walks every chunk in data, verifying each CRC, and returns the
// file's structure. The sequence must open with IHDR, contain at least one
// IDAT and close with IEND.
func Parse(data []byte) (*Info, error) {
	if !IsPNG(data) {
		return nil, ErrNotPNG
	}

	inf := &Info{}
	sawIDAT := false
	pos := signatureSize
	for {
		if pos == len(data) {
			return nil, fmt.Errorf("%w: missing IEND", ErrCorrupt)
		}
		chunk, next, err := readChunk(data, pos)
		if err != nil {
			return nil, err
		}
		inf.Chunks = append(inf.Chunks, chunk)

		if len(inf.Chunks) == 1 && chunk.Type != ChunkIHDR {
			return nil, fmt.Errorf("%w: first chunk is %s, not IHDR", ErrCorrupt, chunk.Type)
		}
		switch chunk.Type {
		case ChunkIHDR:
			if len(chunk.Data) != ihdrDataSize {
				return nil, fmt.Errorf("%w: IHDR has %d data bytes", ErrCorrupt, len(chunk.Data))
			}
			inf.Width = int(binary.BigEndian.Uint32(chunk.Data[0:4]))
			inf.Height = int(binary.BigEndian.Uint32(chunk.Data[4:8]))
			inf.BitDepth = chunk.Data[8]
			inf.ColorType = chunk.Data[9]
		case ChunkIDAT:
			sawIDAT = true
		case ChunkIEND:
			if !sawIDAT {
				return nil, fmt.Errorf("%w: no IDAT chunk", ErrCorrupt)
			}
			return inf, nil
		}
		pos = next
	}
}

// readChunk parses the chunk starting at pos and returns it together with
// the offset of the next chunk.
func readChunk(data []byte, pos int) (Chunk, int, error) {
	if len(data)-pos < lengthSize+typeSize+crcSize {
		return Chunk{}, 0, fmt.Errorf("%w: truncated chunk at offset %d", ErrCorrupt, pos)
	}
	length := int(binary.BigEndian.Uint32(data[pos : pos+lengthSize]))
	typ := string(data[pos+lengthSize : pos+lengthSize+typeSize])
	dataStart := pos + lengthSize + typeSize
	if len(data)-dataStart < length+crcSize {
		return Chunk{}, 0, fmt.Errorf("%w: %s chunk overruns file", ErrCorrupt, typ)
	}
	payload := data[dataStart : dataStart+length]
	stored := binary.BigEndian.Uint32(data[dataStart+length : dataStart+length+crcSize])
	if crc32.ChecksumIEEE(data[pos+lengthSize:dataStart+length]) != stored {
		return Chunk{}, 0, fmt.Errorf("%w: %s chunk crc mismatch", ErrCorrupt, typ)
	}
	return Chunk{Type: typ, Data: payload}, dataStart + length + crcSize, nil
}

// Dimensions is a shortcut for callers that only need the declared size.
func Dimensions(data []byte) (width, height int, err error) {
	inf, err := Parse(data)
	if err != nil {
		return 0, 0, err
	}
	return inf.Width, inf.Height, nil
}

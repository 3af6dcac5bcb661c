// Package raster renders square PNG thumbnails of a source image. It is
// the trusted producer feeding the icon encoder: every output is RGBA with
// an alpha channel, rendered at exactly the requested pixel size.
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	"smithkit/ico"
)

// ErrBadSize is returned for non-positive target sizes.
var ErrBadSize = errors.New("raster: size must be positive")

// Fit resamples src to size x size and returns the PNG encoding. CatmullRom
// is slow but keeps small icon sizes crisp.
func Fit(src image.Image, size int) ([]byte, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	rect := image.Rect(0, 0, size, size)
	dst := image.NewRGBA(rect)
	draw.CatmullRom.Scale(dst, rect, src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("raster: encode %dpx: %w", size, err)
	}
	return buf.Bytes(), nil
}

// Sizes renders src at each given size and returns encoder-ready entries in
// the order requested.
func Sizes(src image.Image, sizes []int) ([]ico.IconImage, error) {
	out := make([]ico.IconImage, 0, len(sizes))
	for _, size := range sizes {
		data, err := Fit(src, size)
		if err != nil {
			return nil, err
		}
		out = append(out, ico.IconImage{Size: size, Data: data})
	}
	return out, nil
}

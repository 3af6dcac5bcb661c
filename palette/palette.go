// Package palette extracts the dominant colours of an image.
//
// Pixels are bucketed on a 4-bit-per-channel histogram, buckets are ranked
// by population and each surviving bucket reports its average colour. That
// is coarse compared to a proper clustering pass but fast, deterministic
// and good enough for "give me the five main colours of this artwork".
package palette

import (
	"errors"
	"fmt"
	"image"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// MaxColors bounds the requested palette length.
const MaxColors = 64

// ErrEmptyImage is returned when the image has no opaque-enough pixels to
// sample.
var ErrEmptyImage = errors.New("palette: no opaque pixels to sample")

// Entry is one palette colour with its share of the sampled pixels.
type Entry struct {
	Color colorful.Color
	Share float64
}

// Hex returns the entry as a lowercase #rrggbb string.
func (e Entry) Hex() string {
	return e.Color.Hex()
}

// HSL returns hue in degrees plus saturation and lightness in [0,1].
func (e Entry) HSL() (h, s, l float64) {
	return e.Color.Hsl()
}

type bucket struct {
	key        uint16
	count      int
	sumR, sumG float64
	sumB       float64
}

// Extract returns up to n dominant colours ordered by population. Pixels
// with less than half alpha are ignored so transparent padding does not
// count as black.
func Extract(img image.Image, n int) ([]Entry, error) {
	if img == nil {
		return nil, ErrEmptyImage
	}
	if n < 1 || n > MaxColors {
		return nil, fmt.Errorf("palette: colour count %d outside [1,%d]", n, MaxColors)
	}

	buckets := make(map[uint16]*bucket)
	total := 0
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if a < 0x8000 {
				continue
			}
			key := uint16(r>>12)<<8 | uint16(g>>12)<<4 | uint16(b>>12)
			bk := buckets[key]
			if bk == nil {
				bk = &bucket{key: key}
				buckets[key] = bk
			}
			bk.count++
			bk.sumR += float64(r) / 0xFFFF
			bk.sumG += float64(g) / 0xFFFF
			bk.sumB += float64(b) / 0xFFFF
			total++
		}
	}
	if total == 0 {
		return nil, ErrEmptyImage
	}

	ranked := make([]*bucket, 0, len(buckets))
	for _, bk := range buckets {
		ranked = append(ranked, bk)
	}
	// Tie-break on the bucket key so equal populations rank the same way
	// on every run.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].key < ranked[j].key
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	out := make([]Entry, len(ranked))
	for i, bk := range ranked {
		c := float64(bk.count)
		out[i] = Entry{
			Color: colorful.Color{R: bk.sumR / c, G: bk.sumG / c, B: bk.sumB / c},
			Share: c / float64(total),
		}
	}
	return out, nil
}

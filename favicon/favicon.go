// Package favicon builds multi-resolution .ico files from a single source
// image: resample at each rung of the size ladder, then pack the renders
// into one container.
package favicon

import (
	"fmt"
	"image"
	"sort"

	"smithkit/ico"
	"smithkit/raster"
)

// DefaultSizes is the usual favicon ladder. Windows picks 16-48 for UI
// chrome, 256 covers high-DPI shortcuts.
var DefaultSizes = []int{16, 24, 32, 48, 64, 128, 256}

// Build renders src at every requested size and encodes the result. With no
// sizes given the default ladder is used. Duplicate sizes collapse to one
// entry; sizes outside the container's representable range fail up front.
func Build(src image.Image, sizes ...int) ([]byte, error) {
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	sizes = dedupe(sizes)
	for _, s := range sizes {
		if s < 1 || s > ico.MaxSize {
			return nil, fmt.Errorf("favicon: unrepresentable size %d: %w", s, ico.ErrInvalidSize)
		}
	}
	entries, err := raster.Sizes(src, sizes)
	if err != nil {
		return nil, fmt.Errorf("favicon: %w", err)
	}
	out, err := ico.Encode(entries)
	if err != nil {
		return nil, fmt.Errorf("favicon: %w", err)
	}
	return out, nil
}

// dedupe returns the unique sizes in ascending order.
func dedupe(sizes []int) []int {
	seen := make(map[int]bool, len(sizes))
	out := make([]int, 0, len(sizes))
	for _, s := range sizes {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Ints(out)
	return out
}

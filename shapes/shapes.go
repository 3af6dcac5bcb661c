// Package shapes generates SVG path data for common decorative shapes:
// regular polygons, stars, organic blobs and wave dividers. Outputs are
// deterministic; the blob takes an explicit seed.
package shapes

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
)

var (
	// ErrBadGeometry is returned for parameters that cannot form a shape.
	ErrBadGeometry = errors.New("shapes: invalid geometry")
)

// coord formats one coordinate with two decimals, the precision designers
// usually paste around.
func coord(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func point(x, y float64) string {
	return coord(x) + " " + coord(y)
}

// Polygon returns path data for a regular polygon with the given number of
// sides inscribed in a size x size box, first vertex at the top.
func Polygon(sides int, size float64) (string, error) {
	if sides < 3 {
		return "", fmt.Errorf("%w: polygon needs at least 3 sides, got %d", ErrBadGeometry, sides)
	}
	if size <= 0 {
		return "", fmt.Errorf("%w: size %g", ErrBadGeometry, size)
	}
	c := size / 2
	var b strings.Builder
	for i := 0; i < sides; i++ {
		angle := 2*math.Pi*float64(i)/float64(sides) - math.Pi/2
		x := c + c*math.Cos(angle)
		y := c + c*math.Sin(angle)
		if i == 0 {
			b.WriteString("M " + point(x, y))
		} else {
			b.WriteString(" L " + point(x, y))
		}
	}
	b.WriteString(" Z")
	return b.String(), nil
}

// Star returns path data for a star with the given number of points. inner
// is the inner radius as a fraction of the outer radius.
func Star(points int, size, inner float64) (string, error) {
	if points < 3 {
		return "", fmt.Errorf("%w: star needs at least 3 points, got %d", ErrBadGeometry, points)
	}
	if size <= 0 || inner <= 0 || inner >= 1 {
		return "", fmt.Errorf("%w: size %g inner %g", ErrBadGeometry, size, inner)
	}
	c := size / 2
	var b strings.Builder
	for i := 0; i < points*2; i++ {
		r := c
		if i%2 == 1 {
			r = c * inner
		}
		angle := math.Pi*float64(i)/float64(points) - math.Pi/2
		x := c + r*math.Cos(angle)
		y := c + r*math.Sin(angle)
		if i == 0 {
			b.WriteString("M " + point(x, y))
		} else {
			b.WriteString(" L " + point(x, y))
		}
	}
	b.WriteString(" Z")
	return b.String(), nil
}

// Blob returns path data for a smooth organic blob: nodes points at
// randomised radii joined by quadratic curves through the midpoints.
// variance in (0,1] controls how far radii may wander from the outer
// radius. The same seed always yields the same blob.
func Blob(seed int64, nodes int, size, variance float64) (string, error) {
	if nodes < 3 {
		return "", fmt.Errorf("%w: blob needs at least 3 nodes, got %d", ErrBadGeometry, nodes)
	}
	if size <= 0 || variance <= 0 || variance > 1 {
		return "", fmt.Errorf("%w: size %g variance %g", ErrBadGeometry, size, variance)
	}
	rng := rand.New(rand.NewSource(seed))
	c := size / 2

	xs := make([]float64, nodes)
	ys := make([]float64, nodes)
	for i := 0; i < nodes; i++ {
		r := c * (1 - variance*rng.Float64())
		angle := 2 * math.Pi * float64(i) / float64(nodes)
		xs[i] = c + r*math.Cos(angle)
		ys[i] = c + r*math.Sin(angle)
	}

	var b strings.Builder
	mx := (xs[0] + xs[1]) / 2
	my := (ys[0] + ys[1]) / 2
	b.WriteString("M " + point(mx, my))
	for i := 1; i <= nodes; i++ {
		cur := i % nodes
		next := (i + 1) % nodes
		mx := (xs[cur] + xs[next]) / 2
		my := (ys[cur] + ys[next]) / 2
		b.WriteString(" Q " + point(xs[cur], ys[cur]) + ", " + point(mx, my))
	}
	b.WriteString(" Z")
	return b.String(), nil
}

// Wave returns path data for a horizontal wave divider filling a
// width x height box: cycles full sine periods, crest amplitude as a
// fraction of height.
func Wave(width, height float64, cycles int, amplitude float64) (string, error) {
	if cycles < 1 {
		return "", fmt.Errorf("%w: wave needs at least 1 cycle, got %d", ErrBadGeometry, cycles)
	}
	if width <= 0 || height <= 0 || amplitude <= 0 || amplitude > 1 {
		return "", fmt.Errorf("%w: width %g height %g amplitude %g", ErrBadGeometry, width, height, amplitude)
	}
	mid := height / 2
	amp := mid * amplitude
	step := width / float64(cycles*2)

	var b strings.Builder
	b.WriteString("M " + point(0, mid))
	x := 0.0
	for i := 0; i < cycles*2; i++ {
		dir := amp
		if i%2 == 1 {
			dir = -amp
		}
		b.WriteString(" Q " + point(x+step/2, mid+dir) + ", " + point(x+step, mid))
		x += step
	}
	// Close down to the bottom edge so the wave can be filled.
	b.WriteString(" L " + point(width, height))
	b.WriteString(" L " + point(0, height))
	b.WriteString(" Z")
	return b.String(), nil
}

// Document wraps path data in a standalone SVG document.
func Document(pathData string, width, height float64, fill string) string {
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s"><path d="%s" fill="%s"/></svg>`,
		coord(width), coord(height), pathData, fill,
	)
}

// Package gradient models colour gradients as positioned stops and renders
// them as sampled ramps or CSS declarations. Interpolation happens in HCL
// space, which avoids the grey dead zone that plain RGB blending produces
// between saturated hues.
package gradient

import (
	"errors"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrTooFewStops is returned for gradients with fewer than two stops.
	ErrTooFewStops = errors.New("gradient: need at least two stops")

	// ErrBadStops is returned when stop positions are out of [0,1] or not
	// ascending.
	ErrBadStops = errors.New("gradient: stop positions must ascend within [0,1]")
)

// Stop pins a colour at a position in [0,1].
type Stop struct {
	Pos   float64
	Color colorful.Color
}

// Gradient is an ordered stop list. Construct with New so the invariants
// hold for every method.
type Gradient struct {
	stops []Stop
}

// New validates the stops and builds a gradient. Stops must be sorted by
// position, all within [0,1]; equal neighbouring positions are allowed and
// produce a hard edge.
func New(stops ...Stop) (*Gradient, error) {
	if len(stops) < 2 {
		return nil, ErrTooFewStops
	}
	for i, s := range stops {
		if s.Pos < 0 || s.Pos > 1 {
			return nil, fmt.Errorf("%w: stop %d at %g", ErrBadStops, i, s.Pos)
		}
		if i > 0 && s.Pos < stops[i-1].Pos {
			return nil, fmt.Errorf("%w: stop %d before stop %d", ErrBadStops, i, i-1)
		}
	}
	g := &Gradient{stops: make([]Stop, len(stops))}
	copy(g.stops, stops)
	return g, nil
}

// ParseHex builds an evenly spaced gradient from hex colour strings.
func ParseHex(hexes ...string) (*Gradient, error) {
	if len(hexes) < 2 {
		return nil, ErrTooFewStops
	}
	stops := make([]Stop, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("gradient: stop %d: %w", i, err)
		}
		stops[i] = Stop{Pos: float64(i) / float64(len(hexes)-1), Color: c}
	}
	return New(stops...)
}

// At returns the gradient colour at t, clamped to [0,1].
func (g *Gradient) At(t float64) colorful.Color {
	if t <= g.stops[0].Pos {
		return g.stops[0].Color
	}
	last := g.stops[len(g.stops)-1]
	if t >= last.Pos {
		return last.Color
	}
	for i := 0; i < len(g.stops)-1; i++ {
		a, b := g.stops[i], g.stops[i+1]
		if t > b.Pos {
			continue
		}
		span := b.Pos - a.Pos
		if span == 0 {
			return b.Color
		}
		return a.Color.BlendHcl(b.Color, (t-a.Pos)/span).Clamped()
	}
	return last.Color
}

// Ramp samples the gradient at n evenly spaced points, endpoints included.
func (g *Gradient) Ramp(n int) ([]colorful.Color, error) {
	if n < 2 {
		return nil, fmt.Errorf("gradient: ramp needs at least 2 samples, got %d", n)
	}
	out := make([]colorful.Color, n)
	for i := range out {
		out[i] = g.At(float64(i) / float64(n-1))
	}
	return out, nil
}

// CSS renders the gradient as a linear-gradient declaration with the given
// angle in degrees.
func (g *Gradient) CSS(angle int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "linear-gradient(%ddeg", angle)
	for _, s := range g.stops {
		fmt.Fprintf(&b, ", %s %g%%", s.Color.Hex(), s.Pos*100)
	}
	b.WriteString(")")
	return b.String()
}

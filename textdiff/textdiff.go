// Package textdiff computes line-based diffs and renders them in unified
// format. The heavy lifting is done by diffmatchpatch with a line-to-rune
// reduction, so changes always align on line boundaries.
package textdiff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op classifies a diff line.
type Op int

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

// Line is one line of the combined diff stream, without its newline.
type Line struct {
	Op   Op
	Text string
}

// Hunk is a run of changes plus surrounding context. Start positions are
// 1-based line numbers as in unified diff headers.
type Hunk struct {
	OldStart, OldCount int
	NewStart, NewCount int
	Lines              []Line
}

// DefaultContext is the number of context lines around each change.
const DefaultContext = 3

// Lines diffs two texts and returns the full line stream: equal runs
// interleaved with deletions and insertions.
func Lines(oldText, newText string) []Line {
	dmp := diffmatchpatch.New()
	a, b, arr := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), arr)

	var out []Line
	for _, d := range diffs {
		op := OpEqual
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = OpDelete
		case diffmatchpatch.DiffInsert:
			op = OpInsert
		}
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" && d.Text != "\n" {
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			out = append(out, Line{Op: op, Text: line})
		}
	}
	return out
}

// Hunks groups the changed lines of a diff into hunks with the given number
// of context lines. Identical inputs yield no hunks.
func Hunks(oldText, newText string, context int) []Hunk {
	if context < 0 {
		context = DefaultContext
	}
	lines := Lines(oldText, newText)

	changed := make([]int, 0, len(lines))
	for i, l := range lines {
		if l.Op != OpEqual {
			changed = append(changed, i)
		}
	}
	if len(changed) == 0 {
		return nil
	}

	// Merge change runs whose gap fits inside shared context.
	type span struct{ lo, hi int }
	var spans []span
	cur := span{lo: changed[0], hi: changed[0]}
	for _, idx := range changed[1:] {
		if idx-cur.hi <= 2*context {
			cur.hi = idx
			continue
		}
		spans = append(spans, cur)
		cur = span{lo: idx, hi: idx}
	}
	spans = append(spans, cur)

	// Line numbers on each side for every stream position.
	oldAt := make([]int, len(lines)+1)
	newAt := make([]int, len(lines)+1)
	o, n := 1, 1
	for i, l := range lines {
		oldAt[i], newAt[i] = o, n
		if l.Op != OpInsert {
			o++
		}
		if l.Op != OpDelete {
			n++
		}
	}
	oldAt[len(lines)], newAt[len(lines)] = o, n

	hunks := make([]Hunk, 0, len(spans))
	for _, sp := range spans {
		lo := sp.lo - context
		if lo < 0 {
			lo = 0
		}
		hi := sp.hi + context + 1
		if hi > len(lines) {
			hi = len(lines)
		}
		h := Hunk{
			OldStart: oldAt[lo],
			NewStart: newAt[lo],
			Lines:    lines[lo:hi],
		}
		for _, l := range h.Lines {
			if l.Op != OpInsert {
				h.OldCount++
			}
			if l.Op != OpDelete {
				h.NewCount++
			}
		}
		hunks = append(hunks, h)
	}
	return hunks
}

// Unified renders a unified diff with file headers. Identical inputs
// produce an empty string.
func Unified(oldName, newName, oldText, newText string, context int) string {
	hunks := Hunks(oldText, newText, context)
	if len(hunks) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n+++ %s\n", oldName, newName)
	for _, h := range hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
		for _, l := range h.Lines {
			switch l.Op {
			case OpDelete:
				b.WriteString("-")
			case OpInsert:
				b.WriteString("+")
			default:
				b.WriteString(" ")
			}
			b.WriteString(l.Text)
			b.WriteString("\n")
		}
	}
	return b.String()
}

package benchmarks

import (
	"bytes"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/algebra"
)

// Impl computes the simple edit distance (deletions and insertions only) between two
// sequences. Implementations that don't guarantee a minimal alignment may report a larger
// distance.
type Impl struct {
	Name     string
	Distance func(x, y string) int
}

var Impls = []Impl{
	{
		Name:     "algebra",
		Distance: algebra.EditDistance,
	},
	{
		Name: "algebra-graph",
		Distance: func(x, y string) int {
			g, err := algebra.NewGraph(x, y)
			if err != nil {
				panic(err)
			}
			return g.Distance()
		},
	},
	{
		Name: "algebra-extract",
		Distance: func(x, y string) int {
			g, err := algebra.NewGraph(x, y)
			if err != nil {
				panic(err)
			}
			_ = g.Canonical()
			return g.Distance()
		},
	},
	{
		Name: "mb0",
		Distance: func(x, y string) int {
			d := 0
			for _, ch := range mb0.Diff(len(x), len(y), mb0symbols{x, y}) {
				d += ch.Del + ch.Ins
			}
			return d
		},
	},
	{
		Name: "diffmatchpatch",
		Distance: func(x, y string) int {
			dmp := diffmatchpatch.New()
			dmp.DiffTimeout = 0 // Disables the half-match speedup, which can miss the minimum.
			d := 0
			for _, diff := range dmp.DiffMain(x, y, false) {
				if diff.Type != diffmatchpatch.DiffEqual {
					d += len(diff.Text)
				}
			}
			return d
		},
	},
	{
		Name: "udiff",
		Distance: func(x, y string) int {
			d := 0
			for _, edit := range udiff.Strings(x, y) {
				d += edit.End - edit.Start + len(edit.New)
			}
			return d
		},
	},
	{
		Name: "godebug",
		Distance: func(x, y string) int {
			// godebug only diffs lines, every symbol is put on a line of its own.
			return countChanges([]byte(godebug.Diff(lines(x), lines(y))))
		},
	},
	{
		Name: "go-internal",
		Distance: func(x, y string) int {
			out := gointernal.Diff("x", []byte(lines(x)), "y", []byte(lines(y)))
			return countChanges(out)
		},
	},
}

type mb0symbols struct {
	x, y string
}

func (d mb0symbols) Equal(i, j int) bool { return d.x[i] == d.y[j] }

// lines puts every symbol of s on a line of its own.
func lines(s string) string {
	var sb strings.Builder
	sb.Grow(2 * len(s))
	for i := range len(s) {
		sb.WriteByte(s[i])
		sb.WriteByte('\n')
	}
	return sb.String()
}

// countChanges counts the added and removed lines of a line based diff.
func countChanges(out []byte) int {
	n := 0
	for _, line := range bytes.Split(out, []byte("\n")) {
		if bytes.HasPrefix(line, []byte("+++")) || bytes.HasPrefix(line, []byte("---")) {
			continue
		}
		if bytes.HasPrefix(line, []byte{'+'}) || bytes.HasPrefix(line, []byte{'-'}) {
			n++
		}
	}
	return n
}

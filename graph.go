// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package algebra

import (
	"cmp"
	"iter"
	"slices"

	"znkr.io/algebra/internal/config"
	"znkr.io/algebra/internal/lcs"
)

// ErrMaxDistance is returned when the edit distance exceeds the limit set with [MaxDistance].
var ErrMaxDistance = lcs.ErrMaxDistance

// Node is a run of Length matching symbols starting at reference position Row and observed
// position Col.
type Node = lcs.Node

// Edge identifies an edge of a [Graph] by its two end points.
type Edge struct {
	Source, Sink Node
}

// Atom is a deletion of the reference symbol at Pos if Symbol is empty, otherwise it's the
// insertion of Symbol at Pos.
type Atom struct {
	Pos    int
	Symbol string
}

// Graph is an LCS graph: a directed acyclic graph whose paths from the source to the sink are all
// alignments of an observed sequence to a reference sequence with the minimal simple edit
// distance (deletions and insertions only). Nodes are runs of matching symbols and edges are the
// variants between them.
//
// A Graph can describe a window of the reference. All variants are relative to the full
// reference.
type Graph struct {
	observed string // The observed sequence in the window described by the graph.
	lcs      *lcs.Graph
}

func buildGraph(reference, observed string, shift, maxDistance int) (*Graph, error) {
	g, err := lcs.Build([]byte(reference), []byte(observed), shift, maxDistance)
	if err != nil {
		return nil, err
	}
	return &Graph{observed: observed, lcs: g}, nil
}

// mustBuildGraph builds a graph without a distance limit, which can't fail.
func mustBuildGraph(reference, observed string, shift int) *Graph {
	g, err := buildGraph(reference, observed, shift, 0)
	if err != nil {
		panic("never reached")
	}
	return g
}

// NewGraph builds the LCS graph for the complete reference and observed sequences.
//
// The following options are supported: [MaxDistance]
func NewGraph(reference, observed string, opts ...Option) (*Graph, error) {
	cfg := config.FromOptions(opts, config.MaxDistance)
	return buildGraph(reference, observed, 0, cfg.MaxDistance)
}

// SequenceGraph builds the LCS graph for the supremal variant of an observed sequence. This graph
// only covers the part of the reference that is affected by the differences between the two
// sequences.
//
// The following options are supported: [Offset]
func SequenceGraph(reference, observed string, opts ...Option) *Graph {
	cfg := config.FromOptions(opts, config.Offset)
	if reference == observed {
		return mustBuildGraph("", "", 0)
	}
	prefix, suffix := trim(reference, observed)
	v := Variant{prefix, len(reference) - suffix, observed[prefix : len(observed)-suffix]}
	return supremalSearch(reference, v, cfg.Offset)
}

// AlleleGraph builds the LCS graph for the supremal variant of an allele.
//
// The following options are supported: [Offset]
func AlleleGraph(reference string, variants []Variant, opts ...Option) (*Graph, error) {
	cfg := config.FromOptions(opts, config.Offset)
	if len(variants) == 0 {
		return mustBuildGraph("", "", 0), nil
	}

	start, end := variants[0].Start, variants[0].End
	for _, v := range variants {
		if err := v.validate(reference); err != nil {
			return nil, err
		}
		start = min(start, v.Start)
		end = max(end, v.End)
	}
	local := make([]Variant, len(variants))
	for i, v := range variants {
		local[i] = Variant{v.Start - start, v.End - start, v.Sequence}
	}
	observed, err := Patch(reference[start:end], local)
	if err != nil {
		return nil, err
	}
	return supremalSearch(reference, Variant{start, end, observed}, cfg.Offset), nil
}

// SupremalGraph builds the LCS graph for a supremal variant.
func SupremalGraph(reference string, supremal Variant) (*Graph, error) {
	if err := supremal.validate(reference); err != nil {
		return nil, err
	}
	return mustBuildGraph(reference[supremal.Start:supremal.End], supremal.Sequence, supremal.Start), nil
}

// supremalSearch widens a window around a single variant until the spanning variant of all
// minimal alignments in the window doesn't touch the window boundaries anymore.
func supremalSearch(reference string, v Variant, offset int) *Graph {
	if reference[v.Start:v.End] == v.Sequence {
		return mustBuildGraph("", "", 0)
	}

	offset = max(offset, v.Len()/2, 1)
	for {
		start := max(0, v.Start-offset)
		end := min(len(reference), v.End+offset)
		observed := reference[start:v.Start] + v.Sequence + reference[v.End:end]

		g := mustBuildGraph(reference[start:end], observed, start)
		sup := g.lcs.Supremal()
		if (sup.Start > start || sup.Start == 0) && (sup.End < end || sup.End == len(reference)) {
			return g
		}
		offset *= 2
	}
}

// trim returns the length of the common prefix of x and y and the length of the common suffix
// of the remainder.
func trim(x, y string) (prefix, suffix int) {
	for prefix < len(x) && prefix < len(y) && x[prefix] == y[prefix] {
		prefix++
	}
	for suffix < len(x)-prefix && suffix < len(y)-prefix && x[len(x)-1-suffix] == y[len(y)-1-suffix] {
		suffix++
	}
	return prefix, suffix
}

func (g *Graph) variant(e lcs.Edit) Variant {
	return Variant{e.Start, e.End, g.observed[e.From:e.To]}
}

func (g *Graph) variants(edits []lcs.Edit) []Variant {
	out := make([]Variant, len(edits))
	for i, e := range edits {
		out[i] = g.variant(e)
	}
	return out
}

// Distance returns the simple edit distance between the reference and the observed sequence.
func (g *Graph) Distance() int { return g.lcs.Distance() }

// Supremal returns the minimal variant that spans all variants in the graph.
func (g *Graph) Supremal() Variant { return g.variant(g.lcs.Supremal()) }

// Edges returns the set of variants on all edges in breadth first order.
func (g *Graph) Edges() []Variant {
	seen := make(map[Variant]bool)
	var out []Variant
	for a := range g.lcs.BFS() {
		v := g.variant(a.Edit)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// BFS returns all edges of the graph together with their variant in breadth first order.
//
// The following options are supported: [Atomics]. With [Atomics], an edge is returned once for
// every atomic representation of its variant.
func (g *Graph) BFS(opts ...Option) iter.Seq2[Edge, []Variant] {
	cfg := config.FromOptions(opts, config.Atomics)
	return func(yield func(Edge, []Variant) bool) {
		for a := range g.lcs.BFS() {
			edge := Edge{g.lcs.Node(a.From), g.lcs.Node(a.To)}
			v := g.variant(a.Edit)
			if !cfg.Atomics {
				if !yield(edge, []Variant{v}) {
					return
				}
				continue
			}
			for atomic := range v.Atomics() {
				if !yield(edge, atomic) {
					return
				}
			}
		}
	}
}

// Nodes returns all nodes in depth first order.
func (g *Graph) Nodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for i := range g.lcs.Nodes() {
			if !yield(g.lcs.Node(i)) {
				return
			}
		}
	}
}

// Paths returns every alignment in the graph as a sorted allele. Empty variants are omitted.
//
// The number of alignments can grow exponentially with the edit distance.
//
// The following options are supported: [Atomics]
func (g *Graph) Paths(opts ...Option) iter.Seq[[]Variant] {
	cfg := config.FromOptions(opts, config.Atomics)
	return lcs.PathsFunc(g.lcs, func(e lcs.Edit) iter.Seq[[]Variant] {
		v := g.variant(e)
		if cfg.Atomics {
			return v.Atomics()
		}
		return func(yield func([]Variant) bool) {
			if v.IsEmpty() {
				yield(nil)
				return
			}
			yield([]Variant{v})
		}
	})
}

func (g *Graph) uniqAtomics() map[Atom]bool {
	atoms := make(map[Atom]bool)
	for a := range g.lcs.BFS() {
		v := g.variant(a.Edit)
		for pos := v.Start; pos < v.End; pos++ {
			atoms[Atom{pos, ""}] = true
			for i := range len(v.Sequence) {
				atoms[Atom{pos, v.Sequence[i : i+1]}] = true
			}
		}
		for i := range len(v.Sequence) {
			atoms[Atom{v.End, v.Sequence[i : i+1]}] = true
		}
	}
	return atoms
}

// UniqAtomics returns the sorted set of all deletions and insertions of single symbols that are
// part of any variant in the graph.
func (g *Graph) UniqAtomics() []Atom {
	atoms := g.uniqAtomics()
	out := make([]Atom, 0, len(atoms))
	for a := range atoms {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b Atom) int {
		return cmp.Or(cmp.Compare(a.Pos, b.Pos), cmp.Compare(a.Symbol, b.Symbol))
	})
	return out
}

// IsDisjoint reports whether no deletion or insertion of a single symbol occurs in both graphs.
func (g *Graph) IsDisjoint(other *Graph) bool {
	lhs, rhs := g.uniqAtomics(), other.uniqAtomics()
	if len(lhs) > len(rhs) {
		lhs, rhs = rhs, lhs
	}
	for a := range lhs {
		if rhs[a] {
			return false
		}
	}
	return true
}

// Canonical returns the canonical allele: among all alignments with the fewest variants, every
// region where these alignments differ is described by a single variant.
func (g *Graph) Canonical() []Variant {
	return g.variants(lcs.Canonical(g.lcs))
}

// LocalSupremal returns the allele of variants between the matching symbols that are part of all
// alignments.
func (g *Graph) LocalSupremal() []Variant {
	return g.variants(lcs.LocalSupremal(g.lcs))
}

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

package lcs

import (
	"math"
	"slices"
)

func weight(e Edit) int {
	if e.IsEmpty() {
		return 0
	}
	return 1
}

// Weights returns, for every node, the minimal number of non-empty edits on a path from the
// source to that node and from that node to the sink. Unreachable nodes have math.MaxInt.
func Weights(g *Graph) (fwd, bwd []int) {
	const inf = math.MaxInt
	order := g.topological()
	fwd = make([]int, len(g.nodes))
	bwd = make([]int, len(g.nodes))
	for i := range g.nodes {
		fwd[i], bwd[i] = inf, inf
	}

	fwd[g.source] = 0
	for _, u := range order {
		if fwd[u] == inf {
			continue
		}
		for _, e := range g.nodes[u].edges {
			fwd[e.To] = min(fwd[e.To], fwd[u]+weight(e.Edit))
		}
	}

	bwd[g.sink] = 0
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		for _, e := range g.nodes[u].edges {
			if bwd[e.To] != inf {
				bwd[u] = min(bwd[u], bwd[e.To]+weight(e.Edit))
			}
		}
	}
	return fwd, bwd
}

// Reduce returns a new graph with only the edges that lie on a path with the minimal number of
// non-empty edits. Among all minimal alignments, these are the ones with the fewest variants.
func Reduce(g *Graph) *Graph {
	const inf = math.MaxInt
	fwd, bwd := Weights(g)
	best := fwd[g.sink]

	r := g.cloneNodes()
	for u, nd := range g.nodes {
		if fwd[u] == inf {
			continue
		}
		for _, e := range nd.edges {
			if bwd[e.To] != inf && fwd[u]+weight(e.Edit)+bwd[e.To] == best {
				r.nodes[u].edges = append(r.nodes[u].edges, e)
			}
		}
	}
	r.compact()
	return r
}

// RemoveEmpty returns a new graph without empty edges. An empty edge is replaced by the outgoing
// edges of its successor. If the successor has no outgoing edges, the edge is contracted the other
// way: its predecessor is merged into the successor. That's only possible if the predecessor isn't
// the source and has no other outgoing edges, otherwise the empty edge is kept. On a reduced graph
// no empty edges remain.
func RemoveEmpty(g *Graph) *Graph {
	r := g.cloneNodes()
	for u, nd := range g.nodes {
		var edges []Edge
		seen := make(map[Edge]bool, len(nd.edges))
		var splice func([]Edge)
		splice = func(in []Edge) {
			for _, e := range in {
				if e.Edit.IsEmpty() && len(g.nodes[e.To].edges) > 0 {
					splice(g.nodes[e.To].edges)
					continue
				}
				if !seen[e] {
					seen[e] = true
					edges = append(edges, e)
				}
			}
		}
		splice(nd.edges)
		r.nodes[u].edges = edges
	}

	merged := make([]int, len(r.nodes))
	for u, nd := range r.nodes {
		merged[u] = u
		if u == r.source || len(nd.edges) == 0 {
			continue
		}
		leaf := nd.edges[0].To
		if len(r.nodes[leaf].edges) > 0 {
			continue
		}
		if !slices.ContainsFunc(nd.edges, func(e Edge) bool { return !e.Edit.IsEmpty() || e.To != leaf }) {
			merged[u] = leaf
		}
	}
	for u := range r.nodes {
		if merged[u] != u {
			continue
		}
		edges := r.nodes[u].edges[:0]
		seen := make(map[Edge]bool, len(r.nodes[u].edges))
		for _, e := range r.nodes[u].edges {
			e.To = merged[e.To]
			if !seen[e] {
				seen[e] = true
				edges = append(edges, e)
			}
		}
		r.nodes[u].edges = edges
	}
	r.compact()
	return r
}

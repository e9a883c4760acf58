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

// PostDominators returns the immediate post-dominator of every node, that is the closest node
// other than the node itself that lies on every path from the node to the sink. The sink is its
// own immediate post-dominator. Nodes without a path to the sink have -1.
//
// This is the iterative algorithm by Cooper, Harvey and Kennedy run on the reversed graph.
//
// K.D. Cooper, T.J. Harvey and K. Kennedy. A Simple, Fast Dominance Algorithm (2001).
func PostDominators(g *Graph) []int {
	n := len(g.nodes)
	preds := make([][]int, n)
	for u, nd := range g.nodes {
		for _, e := range nd.edges {
			preds[e.To] = append(preds[e.To], u)
		}
	}

	// Postorder of the reversed graph, the sink comes last.
	index := make([]int, n)
	for i := range index {
		index[i] = -1
	}
	visited := make([]bool, n)
	post := make([]int, 0, n)
	type frame struct{ node, next int }
	stack := []frame{{g.sink, 0}}
	visited[g.sink] = true
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(preds[top.node]) {
			p := preds[top.node][top.next]
			top.next++
			if !visited[p] {
				visited[p] = true
				stack = append(stack, frame{p, 0})
			}
			continue
		}
		index[top.node] = len(post)
		post = append(post, top.node)
		stack = stack[:len(stack)-1]
	}

	ipdom := make([]int, n)
	for i := range ipdom {
		ipdom[i] = -1
	}
	ipdom[g.sink] = g.sink

	intersect := func(a, b int) int {
		for a != b {
			for index[a] < index[b] {
				a = ipdom[a]
			}
			for index[b] < index[a] {
				b = ipdom[b]
			}
		}
		return a
	}

	for changed := true; changed; {
		changed = false
		for i := len(post) - 2; i >= 0; i-- {
			u := post[i]
			idom := -1
			for _, e := range g.nodes[u].edges {
				if ipdom[e.To] < 0 {
					continue
				}
				if idom < 0 {
					idom = e.To
				} else {
					idom = intersect(e.To, idom)
				}
			}
			if ipdom[u] != idom {
				ipdom[u] = idom
				changed = true
			}
		}
	}
	return ipdom
}

// Canonical returns the canonical edits for the alignments in g: the graph is reduced to the
// alignments with the fewest variants, empty edges are removed and each region between two
// consecutive post-dominators of the source becomes a single edit.
func Canonical(g *Graph) []Edit {
	return dominatorEdits(RemoveEmpty(Reduce(g)))
}

// LocalSupremal returns the edits between the runs of matching symbols shared by all alignments
// in g.
func LocalSupremal(g *Graph) []Edit {
	return dominatorEdits(g)
}

func dominatorEdits(g *Graph) []Edit {
	ipdom := PostDominators(g)

	in := make([][]Edit, len(g.nodes))
	for _, nd := range g.nodes {
		for _, e := range nd.edges {
			in[e.To] = append(in[e.To], e.Edit)
		}
	}

	var edits []Edit
	for lhs := g.source; ipdom[lhs] >= 0 && ipdom[lhs] != lhs; lhs = ipdom[lhs] {
		rhs := ipdom[lhs]
		l, r := g.nodes[lhs].Node, g.nodes[rhs].Node

		start, end := -1, -1
		for _, e := range g.nodes[lhs].edges {
			if start < 0 || e.Edit.Start < start {
				start = e.Edit.Start
			}
		}
		for _, e := range in[rhs] {
			end = max(end, e.End)
		}
		if start < 0 || end < 0 {
			continue
		}

		edit := Edit{
			Start: start,
			End:   end,
			From:  l.Col - l.Row + start - g.shift,
			To:    r.Col - r.Row + end - g.shift,
		}
		if !edit.IsEmpty() {
			edits = append(edits, edit)
		}
	}
	return edits
}

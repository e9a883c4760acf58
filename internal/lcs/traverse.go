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

import "iter"

// Arc is an edge together with the index of the node it starts at.
type Arc struct {
	From, To int
	Edit     Edit
}

// BFS returns all edges in breadth first order. Nodes are visited once, nodes with an identical
// run are considered the same node.
func (g *Graph) BFS() iter.Seq[Arc] {
	return func(yield func(Arc) bool) {
		visited := make(map[Node]bool, len(g.nodes))
		queue := []int{g.source}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if visited[g.nodes[cur].Node] {
				continue
			}
			for _, e := range g.nodes[cur].edges {
				if !yield(Arc{cur, e.To, e.Edit}) {
					return
				}
				queue = append(queue, e.To)
			}
			visited[g.nodes[cur].Node] = true
		}
	}
}

// Nodes returns the indices of all nodes in depth first order starting at the source.
func (g *Graph) Nodes() iter.Seq[int] {
	return func(yield func(int) bool) {
		visited := map[Node]bool{g.nodes[g.source].Node: true}
		stack := []int{g.source}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(cur) {
				return
			}
			for _, e := range g.nodes[cur].edges {
				if n := g.nodes[e.To].Node; !visited[n] {
					visited[n] = true
					stack = append(stack, e.To)
				}
			}
		}
	}
}

// Paths returns all paths from the source to the sink in depth first order. Every path is an
// alignment.
func (g *Graph) Paths() iter.Seq[[]Edit] {
	return PathsFunc(g, func(e Edit) iter.Seq[[]Edit] {
		return func(yield func([]Edit) bool) {
			yield([]Edit{e})
		}
	})
}

// PathsFunc is like [Graph.Paths] but replaces every edge by each of the alternatives returned
// by expand.
func PathsFunc[E any](g *Graph, expand func(Edit) iter.Seq[[]E]) iter.Seq[[]E] {
	return func(yield func([]E) bool) {
		var path []E
		var walk func(i int) bool
		walk = func(i int) bool {
			edges := g.nodes[i].edges
			if len(edges) == 0 {
				if !yield(append(make([]E, 0, len(path)), path...)) {
					return false
				}
			}
			for _, e := range edges {
				for alt := range expand(e.Edit) {
					n := len(path)
					path = append(path, alt...)
					ok := walk(e.To)
					path = path[:n]
					if !ok {
						return false
					}
				}
			}
			return true
		}
		walk(g.source)
	}
}

// topological returns the indices of all nodes in topological order.
func (g *Graph) topological() []int {
	indegree := make([]int, len(g.nodes))
	for _, nd := range g.nodes {
		for _, e := range nd.edges {
			indegree[e.To]++
		}
	}
	order := make([]int, 0, len(g.nodes))
	for i, d := range indegree {
		if d == 0 {
			order = append(order, i)
		}
	}
	for i := 0; i < len(order); i++ {
		for _, e := range g.nodes[order[i]].edges {
			indegree[e.To]--
			if indegree[e.To] == 0 {
				order = append(order, e.To)
			}
		}
	}
	if len(order) != len(g.nodes) {
		panic("LCS graph contains a cycle")
	}
	return order
}

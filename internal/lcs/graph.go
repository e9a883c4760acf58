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
	"fmt"
	"slices"
)

// Edit describes the gap between two runs of matching symbols: the deletion of x[Start:End] and
// the insertion of y[From:To]. Start and End are shifted like node positions, From and To are
// always indices into y.
type Edit struct {
	Start, End int
	From, To   int
}

// IsEmpty reports whether e neither deletes nor inserts anything.
func (e Edit) IsEmpty() bool { return e.Start == e.End && e.From == e.To }

// Len is the number of deleted and inserted symbols.
func (e Edit) Len() int { return e.End - e.Start + e.To - e.From }

func (e Edit) String() string {
	return fmt.Sprintf("%d:%d/[%d:%d]", e.Start, e.End, e.From, e.To)
}

// Edge is an outgoing edge of a node.
type Edge struct {
	To   int // Index of the successor.
	Edit Edit
}

type node struct {
	Node
	length   int // Working length during construction.
	incoming int // Level a node has been moved down from, 0 if it hasn't been moved.
	edges    []Edge
}

// Graph is a compressed LCS graph. Every path from the source to the sink is a distinct
// alignment with the minimal simple edit distance.
//
// Graphs are immutable after construction. Nodes are addressed by their index in [0, Len()).
type Graph struct {
	distance int
	shift    int
	nodes    []node
	source   int
	sink     int
	supremal Edit
}

// Build computes all minimal alignments of x and y and stores them in an LCS graph. All positions
// in x are shifted by shift.
func Build[T comparable](x, y []T, shift, maxDistance int) (*Graph, error) {
	distance, levels, err := Levels(x, y, shift, maxDistance)
	if err != nil {
		return nil, err
	}
	g := &Graph{distance: distance, shift: shift}
	g.build(len(x), len(y), levels)
	g.compact()
	return g, nil
}

func (g *Graph) add(row, col, length int) int {
	g.nodes = append(g.nodes, node{Node: Node{row, col, length}, length: length})
	return len(g.nodes) - 1
}

// build constructs the graph from the levels of a graph of size n x m.
func (g *Graph) build(n, m int, levels [][]Node) {
	shift := g.shift

	if len(levels) == 0 || (len(levels) == 1 && len(levels[0]) == 0) {
		g.source = g.add(shift, shift, 0)
		g.sink = g.source
		if n == 0 && m == 0 {
			return
		}
		g.sink = g.add(n+shift, m+shift, 0)
		e := Edit{Start: shift, End: shift + n, From: 0, To: m}
		g.nodes[g.source].edges = []Edge{{g.sink, e}}
		g.supremal = e
		return
	}

	// The levels are consumed, work on indices into the arena from here on.
	lv := make([][]int, len(levels), len(levels)+1)
	for i, level := range levels {
		lv[i] = make([]int, len(level))
		for j, nd := range level {
			lv[i][j] = g.add(nd.Row, nd.Col, nd.Length)
		}
	}

	// The sink is a run of matching symbols one longer than the last run that touches the end of
	// both sequences. If there is no such run, it's an empty run at the end.
	last := lv[len(lv)-1]
	var sink int
	if s := g.nodes[last[len(last)-1]]; s.Row+s.Length == n+shift && s.Col+s.Length == m+shift {
		lv[len(lv)-1] = last[:len(last)-1]
		sink = g.add(s.Row, s.Col, s.Length+1)
	} else {
		sink = g.add(n+shift, m+shift, 1)
	}
	lv = append(lv, []int{sink})

	maxSink := shift
	for k := len(lv); k > 1; k-- {
		for len(lv[k-1]) > 0 {
			cur := lv[k-1][0]
			lv[k-1] = lv[k-1][1:]

			if cur != sink && len(g.nodes[cur].edges) == 0 {
				continue // Dead end.
			}

			parents := lv[k-2]
			at := 0
			for i, p := range parents {
				pn, cn := &g.nodes[p], &g.nodes[cur]
				if pn.Row+pn.length >= cn.Row+cn.length || pn.Col+pn.length >= cn.Col+cn.length {
					continue
				}

				e := Edit{
					Start: pn.Row + pn.length,
					End:   cn.Row + cn.length - 1,
					From:  pn.Col + pn.length - shift,
					To:    cn.Col + cn.length - 1 - shift,
				}
				if cur == sink {
					maxSink = max(maxSink, cn.Row+cn.length-1)
				}

				if pn.incoming == k {
					// The parent has been moved down from this level and already has an incoming
					// edge for its remaining length: split off the prefix.
					edges := append(slices.Clip(pn.edges), Edge{cur, e})
					split := g.add(pn.Row, pn.Col, pn.Node.Length)
					pn = &g.nodes[p] // add may have moved the arena.
					g.nodes[split].length = pn.length
					g.nodes[split].edges = edges
					parents[i] = split
					pn.Row += pn.length
					pn.Col += pn.length
					pn.Node.Length -= pn.length
				} else {
					pn.edges = append(pn.edges, Edge{cur, e})
				}
				at = i + 1
			}

			// Runs longer than one symbol may also end one level earlier.
			if cn := &g.nodes[cur]; cn.length > 1 {
				cn.length--
				if at > 0 {
					cn.incoming = k
				}
				lv[k-2] = slices.Insert(lv[k-2], at, cur)
			}
		}
		lv = lv[:k-1]
	}

	first := lv[0]
	var source int
	if len(first) > 0 && g.nodes[first[0]].Row == shift && g.nodes[first[0]].Col == shift {
		source = first[0]
		first = first[1:]
	} else {
		source = g.add(shift, shift, 0)
	}

	for _, cur := range first {
		if cur != sink && len(g.nodes[cur].edges) == 0 {
			continue
		}
		src, cn := &g.nodes[source], g.nodes[cur]
		if src.Row >= cn.Row+cn.length || src.Col >= cn.Col+cn.length {
			continue
		}
		e := Edit{
			Start: src.Row,
			End:   cn.Row + cn.length - 1,
			From:  src.Col - shift,
			To:    cn.Col + cn.length - 1 - shift,
		}
		if cur == sink {
			maxSink = max(maxSink, cn.Row+cn.length-1)
		}
		src.edges = append(src.edges, Edge{cur, e})
	}

	// Move the source forward to the first variant and trim the sink after the last one.
	src := &g.nodes[source]
	sourceOffset := shift
	for i, e := range src.edges {
		if i == 0 || e.Edit.Start < sourceOffset {
			sourceOffset = e.Edit.Start
		}
	}
	sourceOffset -= shift
	src.Row += sourceOffset
	src.Col += sourceOffset
	src.Node.Length -= sourceOffset

	snk := &g.nodes[sink]
	snk.Node.Length -= snk.Row + snk.Node.Length - maxSink

	g.source, g.sink = source, sink
	g.supremal = Edit{
		Start: src.Row,
		End:   snk.Row + snk.Node.Length,
		From:  src.Col - shift,
		To:    snk.Col + snk.Node.Length - shift,
	}
}

// compact removes all nodes that are not reachable from the source from the arena. Reachable
// nodes are renumbered in breadth first order.
func (g *Graph) compact() {
	index := make([]int, len(g.nodes))
	for i := range index {
		index[i] = -1
	}
	order := []int{g.source}
	index[g.source] = 0
	for i := 0; i < len(order); i++ {
		for _, e := range g.nodes[order[i]].edges {
			if index[e.To] < 0 {
				index[e.To] = len(order)
				order = append(order, e.To)
			}
		}
	}
	if index[g.sink] < 0 {
		index[g.sink] = len(order)
		order = append(order, g.sink)
	}

	nodes := make([]node, len(order))
	for i, old := range order {
		nd := g.nodes[old]
		edges := make([]Edge, len(nd.edges))
		for j, e := range nd.edges {
			edges[j] = Edge{index[e.To], e.Edit}
		}
		nodes[i] = node{Node: nd.Node, edges: edges}
	}
	g.nodes = nodes
	g.source = index[g.source]
	g.sink = index[g.sink]
}

// Distance returns the simple edit distance.
func (g *Graph) Distance() int { return g.distance }

// Shift returns the offset of all positions in x.
func (g *Graph) Shift() int { return g.shift }

// Supremal returns the minimal edit spanning all edits in the graph.
func (g *Graph) Supremal() Edit { return g.supremal }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Source returns the index of the source node.
func (g *Graph) Source() int { return g.source }

// Sink returns the index of the sink node.
func (g *Graph) Sink() int { return g.sink }

// Node returns the node with index i.
func (g *Graph) Node(i int) Node { return g.nodes[i].Node }

// Edges returns the outgoing edges of node i. The result must not be modified.
func (g *Graph) Edges(i int) []Edge { return g.nodes[i].edges }

// cloneNodes returns a copy of g with empty edge lists.
func (g *Graph) cloneNodes() *Graph {
	c := *g
	c.nodes = make([]node, len(g.nodes))
	for i, nd := range g.nodes {
		c.nodes[i] = node{Node: nd.Node}
	}
	return &c
}

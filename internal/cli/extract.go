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


package cli

import (
	"fmt"
	"io"
	"slices"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"

	"znkr.io/algebra"
	"znkr.io/algebra/hgvs"
)

func (a *app) extractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract a canonical variant",
		Long: `Extract the canonical allele of an observation and print it in HGVS. The optional outputs
are printed in the order of the flags below.`,
		Args: cobra.NoArgs,
		RunE: a.runExtract,
	}
	flags := cmd.Flags()
	flags.Bool("all", false, "list all minimal alleles")
	flags.Bool("atomics", false, "list all minimal alleles with only deletions and insertions")
	flags.Bool("distance", false, "output the simple edit distance")
	flags.Bool("dot", false, "output the LCS graph in Graphviz DOT format")
	flags.Bool("local-supremal", false, "output the local supremal allele")
	flags.Bool("supremal", false, "output the supremal variant")
	addObservedFlags(cmd, "observed", "")
	return cmd
}

func (a *app) runExtract(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	obs, err := a.observation(cmd, "observed")
	if err != nil {
		return err
	}

	var g *algebra.Graph
	if obs.isAllele {
		g, err = algebra.AlleleGraph(a.reference, obs.variants, algebra.Offset(a.cfg.Offset))
	} else {
		g, err = algebra.NewGraph(a.reference, obs.sequence, algebra.MaxDistance(a.cfg.MaxDistance))
	}
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("graph", "distance", g.Distance(), "supremal", g.Supremal().String())

	flags := cmd.Flags()
	all, _ := flags.GetBool("all")
	atomics, _ := flags.GetBool("atomics")
	distance, _ := flags.GetBool("distance")
	dot, _ := flags.GetBool("dot")
	localSupremal, _ := flags.GetBool("local-supremal")
	supremal, _ := flags.GetBool("supremal")

	var opts []algebra.Option
	if atomics {
		opts = append(opts, algebra.Atomics())
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, hgvs.Format(g.Canonical(), a.reference))
	if all || atomics {
		for variants := range g.Paths(opts...) {
			fmt.Fprintln(w, algebra.HGVS(variants, a.reference))
		}
	}
	if distance {
		fmt.Fprintln(w, g.Distance())
	}
	if dot {
		writeDOT(w, a.reference, g, opts...)
	}
	if localSupremal {
		fmt.Fprintln(w, algebra.HGVS(g.LocalSupremal(), a.reference))
	}
	if supremal {
		sup := g.Supremal()
		fmt.Fprintln(w, sup.HGVS(a.reference, true), sup.SPDI(""), sup)
	}
	return nil
}

// writeDOT writes the graph in Graphviz DOT format. Nodes are numbered in breadth first order
// and nodes without outgoing edges are drawn as double circles.
func writeDOT(w io.Writer, reference string, g *algebra.Graph, opts ...algebra.Option) {
	ids := make(map[algebra.Node]int)
	id := func(n algebra.Node) int {
		if i, ok := ids[n]; ok {
			return i
		}
		ids[n] = len(ids)
		return ids[n]
	}
	sources := make(map[algebra.Node]bool)

	fmt.Fprintln(w, "digraph {")
	fmt.Fprintln(w, "    rankdir=LR")
	fmt.Fprintln(w, "    edge[fontname=monospace]")
	fmt.Fprintln(w, "    node[shape=circle]")
	fmt.Fprintln(w, "    si[shape=point]")
	fmt.Fprintln(w, `    si->"s0"`)
	for edge, variants := range g.BFS(opts...) {
		sources[edge.Source] = true
		fmt.Fprintf(w, "    \"s%d\" -> \"s%d\" [label=%q];\n", id(edge.Source), id(edge.Sink), algebra.HGVS(variants, reference))
	}
	if len(ids) == 0 {
		fmt.Fprintln(w, `    "s0"[shape=doublecircle]`)
	}
	var sinks []int
	for n, i := range ids {
		if !sources[n] {
			sinks = append(sinks, i)
		}
	}
	slices.Sort(sinks)
	for _, i := range sinks {
		fmt.Fprintf(w, "    \"s%d\"[shape=doublecircle]\n", i)
	}
	fmt.Fprintln(w, "}")
}

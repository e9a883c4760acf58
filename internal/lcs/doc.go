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

// Package lcs computes all Longest Common Subsequence (LCS) alignments of two sequences and
// stores them in a compressed graph.
//
// # Edit distance
//
// The simple edit distance only knows deletions and insertions. Every alignment with the minimal
// number of deletions and insertions is an alignment with a longest common subsequence and the
// distance is len(x) + len(y) - 2*L where L is the LCS length.
//
// [Distance] computes the distance only, it uses the O(NP) algorithm by Wu, Manber, Myers and
// Miller. The algorithm is the same greedy search along diagonals that Myers' O(ND) algorithm
// uses, but it only expands diagonals within the band between the main diagonal and the diagonal
// delta = len(y) - len(x), plus P diagonals on either side, where P is the number of deletions.
// For similar sequences, P is tiny and the algorithm is close to linear.
//
// # All alignments
//
// [Levels] runs the same diagonal expansion but records every maximal run of matching symbols it
// passes on its way. Each run is a [Node] with a position in x (Row), a position in y (Col) and a
// Length. Runs are bucketed into levels by the LCS position they complete: a run in levels[k]
// ends after k+1 matched symbols on some furthest reaching path. Consequently, len(levels) is the
// LCS length and the distance is len(x) + len(y) - 2*len(levels).
//
// Consider x = "AA" and y = "ACA". The expansion finds the runs (0, 0, 1) and (1, 2, 1):
//
//	(0,0)  A   C   A
//	    ┌───┬───┬───┐ 0
//	 A  │ ╲ │   │ ╲ │
//	    ├───┼───┼───┤ 1
//	 A  │ ╲ │   │ ╲ │
//	    └───┴───┴───┘ 2
//
// Only the first diagonal step on the main diagonal and the last step on diagonal 1 belong to an
// alignment with distance 1, so levels = [[(0,0,1)], [(1,2,1)]].
//
// # Graph
//
// [Build] connects the levels from the last to the first. A run in level k+1 is connected to
// every run in level k that ends before it in both x and y. The gap between two runs is an
// [Edit]: a deletion of x[Start:End] and an insertion of y[From:To].
//
// A run may serve several successors with different numbers of its own matching symbols. Instead
// of duplicating all paths, the run is moved to the previous level with one symbol less and keeps
// track of the level it came from. When such a run is picked up as a predecessor by a run from the
// same level it was moved from, it is split: a new node takes over the prefix and all edges while
// the original node keeps the remainder. This adds at most one node per matching symbol and keeps
// the graph polynomial in size while every path from the source to the sink remains a distinct
// minimal alignment.
//
// Nodes live in an arena and are addressed by index. The arena is compacted after construction so
// that it only contains nodes reachable from the source.
//
// ## References
//
// S. Wu, U. Manber, G. Myers and W. Miller. An O(NP) sequence comparison algorithm. Information
// Processing Letters, 35.6, 317-323 (1990). https://doi.org/10.1016/0020-0190(90)90035-V
//
// J.K. Vis, M.A. Santcroos, W.A. Kosters and J.F.J. Laros. A Boolean Algebra for Genetic
// Variants. Bioinformatics, 39.1 (2023). https://doi.org/10.1093/bioinformatics/btad001
package lcs

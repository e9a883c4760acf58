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
	"errors"
	"fmt"
)

// ErrMaxDistance is returned when the edit distance exceeds the requested maximum.
var ErrMaxDistance = errors.New("maximum distance exceeded")

// Node is a run of Length matching symbols starting at x[Row] and y[Col].
type Node struct {
	Row, Col, Length int
}

func (n Node) String() string {
	return fmt.Sprintf("(%d, %d)[%d]", n.Row, n.Col, n.Length)
}

// Levels computes the simple edit distance between x and y and collects the runs of matching
// symbols that are needed to construct all alignments, bucketed by their LCS position. All
// positions are shifted by shift.
//
// If maxDistance > 0 and the distance exceeds maxDistance, Levels stops early and returns an
// error wrapping ErrMaxDistance.
func Levels[T comparable](x, y []T, shift, maxDistance int) (distance int, levels [][]Node, err error) {
	n, m := len(x), len(y)
	levels = make([][]Node, min(n, m))
	maxPos := 0

	delta := m - n
	absDelta := max(delta, -delta)
	offset := n + 1
	lower, upper := min(0, delta), max(0, delta)

	// For diagonals k >= 0, diagonals[k+offset] stores a row, for k < 0 it stores a column. The
	// stored value is one past the last position reached in the previous round.
	diagonals := make([]int, n+m+3)
	it := 0

	record := func(row, col, remaining, matchRow, matchCol int) {
		// The number of symbols matched on the furthest reaching path up to (row, col).
		pos := ((row+col)-(absDelta+2*it-remaining))>>1 - 1
		maxPos = max(maxPos, pos)
		levels[pos] = append(levels[pos], Node{matchRow + shift, matchCol + shift, row - matchRow})
	}

	expand := func(k int) int {
		start := diagonals[k+offset]
		var row, col, end int
		switch {
		case k > 0:
			row = start
			col = row + k
			end = max(diagonals[k-1+offset]-1, diagonals[k+1+offset])
		case k < 0:
			col = start
			row = col - k
			end = max(diagonals[k-1+offset], diagonals[k+1+offset]-1)
		default:
			row = start
			col = row
			end = max(diagonals[k-1+offset], diagonals[k+1+offset])
		}

		remaining := (n - row) - (m - col)
		remaining = max(remaining, -remaining)

		// Revisit the part of the diagonal that became reachable with the larger budget.
		matching := false
		matchRow, matchCol := 0, 0
		for range end - start {
			if x[row] == y[col] {
				if !matching {
					matchRow, matchCol = row, col
				}
				matching = true
			} else if matching {
				record(row, col, remaining, matchRow, matchCol)
				matching = false
			}
			row++
			col++
		}

		// Follow the diagonal as far as possible.
		steps := end + 1
		if !matching {
			matchRow, matchCol = row, col
		}
		for row < n && col < m && x[row] == y[col] {
			matching = true
			row++
			col++
			steps++
		}
		if matching {
			record(row, col, remaining, matchRow, matchCol)
		}
		return steps
	}

	for diagonals[delta+offset] <= max(n, m)-absDelta {
		for k := lower - it; k < delta; k++ {
			diagonals[k+offset] = expand(k)
		}
		for k := upper + it; k > delta; k-- {
			diagonals[k+offset] = expand(k)
		}
		diagonals[delta+offset] = expand(delta)
		it++

		if maxDistance > 0 && absDelta+2*(it-1) > maxDistance {
			return 0, nil, fmt.Errorf("%w: %d", ErrMaxDistance, maxDistance)
		}
	}

	return absDelta + 2*(it-1), levels[:min(maxPos+1, len(levels))], nil
}

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

import "znkr.io/algebra/internal/lcs"

// EditDistance returns the simple edit distance (deletions and insertions only) between x and y.
func EditDistance(x, y string) int {
	return lcs.Distance([]byte(x), []byte(y))
}

// distances classifies a relation by the triangle formed by the distances from the reference
// to both sides and between both sides. It returns false if the distances are inconclusive.
func distances(lhsDistance, rhsDistance, distance int) (Relation, bool) {
	switch distance {
	case lhsDistance + rhsDistance:
		return Disjoint, true
	case lhsDistance - rhsDistance:
		return Contains, true
	case rhsDistance - lhsDistance:
		return IsContained, true
	}
	return 0, false
}

// Compare returns the relation between two observed sequences with respect to the same
// reference.
func Compare(reference, lhs, rhs string) Relation {
	if lhs == rhs {
		return Equivalent
	}

	lhsDistance := EditDistance(reference, lhs)
	rhsDistance := EditDistance(reference, rhs)
	if r, ok := distances(lhsDistance, rhsDistance, EditDistance(lhs, rhs)); ok {
		return r
	}

	if SequenceGraph(reference, lhs).IsDisjoint(SequenceGraph(reference, rhs)) {
		return Disjoint
	}
	return Overlap
}

// CompareGraphs returns the relation between the variants described by two LCS graphs with
// respect to the same reference.
func CompareGraphs(reference string, lhs, rhs *Graph) Relation {
	lhsSupremal, rhsSupremal := lhs.Supremal(), rhs.Supremal()
	if lhsSupremal == rhsSupremal {
		return Equivalent
	}
	if lhsSupremal.IsDisjoint(rhsSupremal) {
		return Disjoint
	}

	start := min(lhsSupremal.Start, rhsSupremal.Start)
	end := max(lhsSupremal.End, rhsSupremal.End)
	lhsObserved := reference[start:lhsSupremal.Start] + lhsSupremal.Sequence + reference[lhsSupremal.End:end]
	rhsObserved := reference[start:rhsSupremal.Start] + rhsSupremal.Sequence + reference[rhsSupremal.End:end]
	if r, ok := distances(lhs.Distance(), rhs.Distance(), EditDistance(lhsObserved, rhsObserved)); ok {
		return r
	}

	rhsEdges := rhs.Edges()
	for _, l := range lhs.Edges() {
		for _, r := range rhsEdges {
			if !l.IsDisjoint(r) {
				return Overlap
			}
		}
	}
	return Disjoint
}

// CompareSupremal returns the relation between two supremal variants.
func CompareSupremal(reference string, lhs, rhs Variant) (Relation, error) {
	if err := lhs.validate(reference); err != nil {
		return 0, err
	}
	if err := rhs.validate(reference); err != nil {
		return 0, err
	}

	if lhs == rhs {
		return Equivalent, nil
	}
	if lhs.IsEmpty() || rhs.IsEmpty() || lhs.IsDisjoint(rhs) {
		return Disjoint, nil
	}

	lhsGraph, err := SupremalGraph(reference, lhs)
	if err != nil {
		return 0, err
	}
	rhsGraph, err := SupremalGraph(reference, rhs)
	if err != nil {
		return 0, err
	}
	return CompareGraphs(reference, lhsGraph, rhsGraph), nil
}

// CompareAlleles returns the relation between two alleles.
//
// The following options are supported: [Offset]
func CompareAlleles(reference string, lhs, rhs []Variant, opts ...Option) (Relation, error) {
	lhsGraph, err := AlleleGraph(reference, lhs, opts...)
	if err != nil {
		return 0, err
	}
	rhsGraph, err := AlleleGraph(reference, rhs, opts...)
	if err != nil {
		return 0, err
	}
	return CompareGraphs(reference, lhsGraph, rhsGraph), nil
}

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
	"errors"
	"fmt"
)

// ErrUndefined is returned by operations that are not defined for their arguments.
var ErrUndefined = errors.New("undefined")

// Supremal returns the supremal variant of an allele: the smallest variant that contains every
// minimal alignment of the observed sequence to the reference.
//
// The following options are supported: [Offset]
func Supremal(reference string, variants []Variant, opts ...Option) (Variant, error) {
	g, err := AlleleGraph(reference, variants, opts...)
	if err != nil {
		return Variant{}, err
	}
	return g.Supremal(), nil
}

// explode splits a variant into substitutions of single symbols followed by single symbol
// deletions or insertions for the unequal remainder.
func explode(v Variant) []Variant {
	n := max(v.End-v.Start, len(v.Sequence))
	out := make([]Variant, 0, n)
	for i := range n {
		switch {
		case v.Start+i >= v.End:
			out = append(out, Variant{v.End, v.End, v.Sequence[i : i+1]})
		case i >= len(v.Sequence):
			out = append(out, Variant{v.Start + i, v.Start + i + 1, ""})
		default:
			out = append(out, Variant{v.Start + i, v.Start + i + 1, v.Sequence[i : i+1]})
		}
	}
	return out
}

// Subtract removes the changes of rhs from lhs. Both variants are compared symbol by symbol. The
// result is an error wrapping [ErrUndefined] if rhs has changes that lhs doesn't have.
func Subtract(reference string, lhs, rhs Variant) ([]Variant, error) {
	if err := lhs.validate(reference); err != nil {
		return nil, err
	}
	if err := rhs.validate(reference); err != nil {
		return nil, err
	}

	lhsElems, rhsElems := explode(lhs), explode(rhs)
	li, ri := 0, 0
	var out []Variant

	// Current elements, they may be replaced by their remainder after a partial match.
	var l, r *Variant
	nextL := func() {
		l = nil
		if li < len(lhsElems) {
			l = &lhsElems[li]
			li++
		}
	}
	nextR := func() {
		r = nil
		if ri < len(rhsElems) {
			r = &rhsElems[ri]
			ri++
		}
	}
	nextL()
	nextR()

	for l != nil {
		switch {
		case r == nil:
			out = append(out, *l)
			out = append(out, lhsElems[li:]...)
			return out, nil

		case *l == *r:
			nextL()
			nextR()

		case r.Start < l.Start:
			return nil, fmt.Errorf("%w: %v is not part of %v", ErrUndefined, *r, lhs)

		case (l.Start == r.End || l.End == r.Start) && len(l.Sequence) == 1 && l.Sequence == r.Sequence:
			// Matching insertion, keep the deletions.
			if rest := (Variant{l.Start, l.End, ""}); rest.IsEmpty() {
				nextL()
			} else {
				l = &rest
			}
			if rest := (Variant{r.Start, r.End, ""}); rest.IsEmpty() {
				nextR()
			} else {
				r = &rest
			}

		case l.Start < r.Start:
			out = append(out, *l)
			nextL()

		case len(r.Sequence) == 1 && reference[r.Start:r.End] == r.Sequence:
			// The right-hand side keeps the reference.
			out = append(out, *l)
			nextL()
			nextR()

		case l.End-l.Start == 1 && l.Start == r.Start && l.End == r.End:
			// Matching deletion, keep the insertions.
			if rest := (Variant{l.End, l.End, l.Sequence}); rest.IsEmpty() {
				nextL()
			} else {
				l = &rest
			}
			if rest := (Variant{r.End, r.End, r.Sequence}); rest.IsEmpty() {
				nextR()
			} else {
				r = &rest
			}

		default:
			out = append(out, *l)
			nextL()
		}
	}

	if r != nil {
		return nil, fmt.Errorf("%w: %v is not part of %v", ErrUndefined, *r, lhs)
	}
	return out, nil
}

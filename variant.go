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
	"iter"
	"strconv"
	"strings"
)

var (
	// ErrInvalidInterval is returned for variants with a negative start or an end before the
	// start and for variants outside of the reference.
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrUnorderable is returned when two variants overlap and can't be ordered.
	ErrUnorderable = errors.New("variants overlap")
)

// Variant describes the deletion of the half-open interval [Start, End) of a reference sequence
// and the insertion of Sequence in its place. Positions are zero-based.
//
// Variants are values, they are compared with == and can be used as map keys.
type Variant struct {
	Start, End int
	Sequence   string
}

// NewVariant returns a new variant after validating its interval.
func NewVariant(start, end int, sequence string) (Variant, error) {
	if start < 0 {
		return Variant{}, fmt.Errorf("%w: start must be greater or equal to 0", ErrInvalidInterval)
	}
	if start > end {
		return Variant{}, fmt.Errorf("%w: start must not be after end", ErrInvalidInterval)
	}
	return Variant{start, end, sequence}, nil
}

func (v Variant) validate(reference string) error {
	if v.Start < 0 || v.Start > v.End || v.End > len(reference) {
		return fmt.Errorf("%w: %v on a reference of length %d", ErrInvalidInterval, v, len(reference))
	}
	return nil
}

// Len returns the number of deleted and inserted symbols.
func (v Variant) Len() int { return v.End - v.Start + len(v.Sequence) }

// IsEmpty reports whether v neither deletes nor inserts anything.
func (v Variant) IsEmpty() bool { return v.Len() == 0 }

// String returns v as "start:end/sequence".
func (v Variant) String() string {
	return strconv.Itoa(v.Start) + ":" + strconv.Itoa(v.End) + "/" + v.Sequence
}

func overlap(a, b Variant) bool {
	return b.Start < a.End && a.Start < b.End
}

// Less reports whether v is ordered before o. Variants with overlapping or identical intervals
// are not ordered and return an error wrapping [ErrUnorderable]. An insertion is ordered before
// a deletion that starts at the same position.
func (v Variant) Less(o Variant) (bool, error) {
	if overlap(v, o) || (v.Start == o.Start && v.End == o.End) {
		return false, fmt.Errorf("%w: %v and %v", ErrUnorderable, v, o)
	}
	return v.Start < o.Start || v.End < o.End, nil
}

// IsDisjoint reports whether v and o have no deletion or insertion in common.
func (v Variant) IsDisjoint(o Variant) bool {
	if overlap(v, o) {
		return false
	}
	return o.Start > v.End || v.Start > o.End || !strings.ContainsAny(v.Sequence, o.Sequence)
}

// ReverseComplement returns the variant on the reverse strand of a sequence, pivot is the
// position mirrored onto 0.
func (v Variant) ReverseComplement(pivot int) Variant {
	return Variant{pivot - v.End - 1, pivot - v.Start - 1, ReverseComplement(v.Sequence)}
}

var complement = strings.NewReplacer("A", "T", "C", "G", "G", "C", "T", "A")

// ReverseComplement returns the reverse complement of a DNA sequence. Symbols other than A, C, G
// and T are kept as is.
func ReverseComplement(sequence string) string {
	b := []byte(complement.Replace(sequence))
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// HGVS returns the HGVS representation of v. If reference is not empty, the deleted symbols of a
// substitution are filled in. With onlySubstitutions unset, all deleted symbols are filled in.
//
// See https://hgvs-nomenclature.org/stable/recommendations/DNA/.
func (v Variant) HGVS(reference string, onlySubstitutions bool) string {
	if v.End == v.Start {
		if v.Sequence == "" {
			return "="
		}
		return fmt.Sprintf("%d_%dins%s", v.Start, v.Start+1, v.Sequence)
	}

	var deleted, substituted string
	if reference != "" && v.End <= len(reference) {
		if !onlySubstitutions {
			deleted = reference[v.Start:v.End]
		}
		substituted = reference[v.Start:v.End]
	}

	if v.End-v.Start == 1 {
		switch len(v.Sequence) {
		case 0:
			return fmt.Sprintf("%ddel%s", v.Start+1, deleted)
		case 1:
			return fmt.Sprintf("%d%s>%s", v.Start+1, substituted, v.Sequence)
		default:
			return fmt.Sprintf("%ddel%sins%s", v.Start+1, deleted, v.Sequence)
		}
	}

	if v.Sequence == "" {
		return fmt.Sprintf("%d_%ddel%s", v.Start+1, v.End, deleted)
	}
	return fmt.Sprintf("%d_%ddel%sins%s", v.Start+1, v.End, deleted, v.Sequence)
}

// SPDI returns the SPDI representation of v for the sequence with the given ID.
//
// J.B. Holmes, E. Moyer, L. Phan, D. Maglott and B. Kattman. SPDI: data model for variants and
// applications at NCBI (2019).
func (v Variant) SPDI(id string) string {
	return fmt.Sprintf("%s:%d:%d:%s", id, v.Start, v.End-v.Start, v.Sequence)
}

// Atomics returns all representations of v that only use deletions of a single symbol and
// insertions. Every representation is a sorted slice of variants.
func (v Variant) Atomics() iter.Seq[[]Variant] {
	return func(yield func([]Variant) bool) {
		n, k := v.Len(), len(v.Sequence)

		// Positions of the inserted symbols among all n deleted and inserted symbols, enumerated
		// as combinations in lexicographical order.
		combo := make([]int, k)
		for i := range combo {
			combo[i] = i
		}
		for {
			if !yield(v.atomic(combo)) {
				return
			}
			i := k - 1
			for i >= 0 && combo[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}
			combo[i]++
			for j := i + 1; j < k; j++ {
				combo[j] = combo[j-1] + 1
			}
		}
	}
}

func (v Variant) atomic(combo []int) []Variant {
	var out []Variant
	c, pos := 0, v.Start
	cur := Variant{pos, pos, ""}
	for i := range len(v.Sequence) {
		if combo[i] > c {
			if !cur.IsEmpty() {
				out = append(out, cur)
			}
			for j := pos; j < pos+combo[i]-c; j++ {
				out = append(out, Variant{j, j + 1, ""})
			}
			pos += combo[i] - c
			c = combo[i]
			cur = Variant{pos, pos, v.Sequence[i : i+1]}
		} else {
			cur.Sequence += v.Sequence[i : i+1]
		}
		c++
	}
	if !cur.IsEmpty() {
		out = append(out, cur)
	}
	for j := pos; j < v.End; j++ {
		out = append(out, Variant{j, j + 1, ""})
	}
	return out
}

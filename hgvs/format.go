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

// Package hgvs reads and writes genetic variants in HGVS and SPDI notation.
//
// See https://hgvs-nomenclature.org/ for the nomenclature and
// https://www.ncbi.nlm.nih.gov/variation/notation/ for SPDI.
package hgvs

import (
	"fmt"
	"strings"

	"znkr.io/algebra"
)

// Format returns the HGVS representation of a sorted allele. Unlike [algebra.HGVS], it detects
// tandem repeats in the deleted and inserted sequences and renders them as duplications or
// repeats, which makes it the preferred rendering for alleles returned by [algebra.Extract].
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Format(variants []algebra.Variant, reference string) string {
	switch len(variants) {
	case 0:
		return "="
	case 1:
		return format(variants[0], reference)
	}
	parts := make([]string, len(variants))
	for i, v := range variants {
		parts[i] = format(v, reference)
	}
	return "[" + strings.Join(parts, ";") + "]"
}

// repeat describes a word as count repetitions of unit followed by a prefix of unit of length
// remainder.
type repeat struct {
	unit      string
	count     int
	remainder int
}

// period returns the repeat with the shortest unit for word using the KMP failure function.
func period(word string) repeat {
	if word == "" {
		return repeat{}
	}
	lps := make([]int, len(word))
	n := 0
	for i := 1; i < len(word); {
		switch {
		case word[i] == word[n]:
			n++
			lps[i] = n
			i++
		case n != 0:
			n = lps[n-1]
		default:
			i++
		}
	}
	p := len(word) - lps[len(word)-1]
	return repeat{word[:p], len(word) / p, len(word) % p}
}

func format(v algebra.Variant, reference string) string {
	if v.End > len(reference) {
		return v.HGVS("", true)
	}

	deleted := period(reference[v.Start:v.End])
	inserted := period(v.Sequence)

	switch {
	case deleted.unit == inserted.unit && deleted.remainder == inserted.remainder:
		if deleted.count == inserted.count {
			return "="
		}
		unit := inserted.unit
		if deleted.count == 1 && inserted.count == 2 {
			pos := v.Start + 1 + inserted.remainder
			if len(unit) == 1 {
				return fmt.Sprintf("%ddup", pos)
			}
			return fmt.Sprintf("%d_%ddup", pos, pos+len(unit)-1)
		}
		if v.End-v.Start == 1 {
			return fmt.Sprintf("%d%s[%d]", v.Start+1, unit, inserted.count)
		}
		return fmt.Sprintf("%d_%d%s[%d]", v.Start+1, v.End-inserted.remainder, unit, inserted.count)

	case deleted.unit != inserted.unit && inserted.count > 1:
		seq := fmt.Sprintf("%s[%d]", inserted.unit, inserted.count)
		if inserted.remainder > 0 {
			seq = fmt.Sprintf("[%s;%s]", seq, inserted.unit[:inserted.remainder])
		}
		if len(seq) >= len(v.Sequence) {
			break // Not shorter than the plain sequence.
		}
		switch v.End - v.Start {
		case 0:
			return fmt.Sprintf("%d_%dins%s", v.Start, v.Start+1, seq)
		case 1:
			return fmt.Sprintf("%ddelins%s", v.Start+1, seq)
		default:
			return fmt.Sprintf("%d_%ddelins%s", v.Start+1, v.End, seq)
		}
	}

	prefix, suffix := trim(reference[v.Start:v.End], v.Sequence)
	trimmed := algebra.Variant{
		Start:    v.Start + prefix,
		End:      v.End - suffix,
		Sequence: v.Sequence[prefix : len(v.Sequence)-suffix],
	}
	return trimmed.HGVS(reference, true)
}

// trim returns the length of the common prefix of x and y and the length of the common suffix
// of the remainder.
func trim(x, y string) (prefix, suffix int) {
	for prefix < len(x) && prefix < len(y) && x[prefix] == y[prefix] {
		prefix++
	}
	for suffix < len(x)-prefix && suffix < len(y)-prefix && x[len(x)-1-suffix] == y[len(y)-1-suffix] {
		suffix++
	}
	return prefix, suffix
}

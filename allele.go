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
	"cmp"
	"slices"
	"strings"
)

// Sort sorts an allele in place. It returns an error wrapping [ErrUnorderable] if two variants
// overlap.
func Sort(variants []Variant) error {
	slices.SortStableFunc(variants, func(a, b Variant) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.End, b.End))
	})
	for i := 1; i < len(variants); i++ {
		if _, err := variants[i-1].Less(variants[i]); err != nil {
			return err
		}
	}
	return nil
}

// Patch applies an allele to a reference sequence and returns the observed sequence. The allele
// doesn't need to be sorted.
func Patch(reference string, variants []Variant) (string, error) {
	variants = slices.Clone(variants)
	if err := Sort(variants); err != nil {
		return "", err
	}

	var sb strings.Builder
	start := 0
	for _, v := range variants {
		if err := v.validate(reference); err != nil {
			return "", err
		}
		sb.WriteString(reference[start:v.Start])
		sb.WriteString(v.Sequence)
		start = v.End
	}
	sb.WriteString(reference[start:])
	return sb.String(), nil
}

// HGVS returns the HGVS representation of a sorted allele. Substitutions include the deleted
// symbol if reference is not empty.
//
// For a more compact representation that describes repeats, see the hgvs package.
func HGVS(variants []Variant, reference string) string {
	switch len(variants) {
	case 0:
		return "="
	case 1:
		return variants[0].HGVS(reference, true)
	}
	parts := make([]string, len(variants))
	for i, v := range variants {
		parts[i] = v.HGVS(reference, true)
	}
	return "[" + strings.Join(parts, ";") + "]"
}

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

package hgvs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"znkr.io/algebra"
	"znkr.io/algebra/internal/random"
)

func TestPeriod(t *testing.T) {
	tests := []struct {
		word string
		want repeat
	}{
		{"", repeat{}},
		{"A", repeat{"A", 1, 0}},
		{"AAAA", repeat{"A", 4, 0}},
		{"CATCAT", repeat{"CAT", 2, 0}},
		{"CATCATC", repeat{"CAT", 2, 1}},
		{"TCATCAT", repeat{"TCA", 2, 1}},
		{"ACGT", repeat{"ACGT", 1, 0}},
		{"AABAAB", repeat{"AAB", 2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got := period(tt.word)
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(repeat{})); diff != "" {
				t.Errorf("period(%q) is different [-want,+got]:\n%s", tt.word, diff)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		variants  []algebra.Variant
		want      string
	}{
		{
			name:      "empty",
			reference: "CAT",
			want:      "=",
		},
		{
			name:      "expansion",
			reference: "CATCAT",
			variants:  []algebra.Variant{{Start: 0, End: 6, Sequence: "CATCATCAT"}},
			want:      "1_6CAT[3]",
		},
		{
			name:      "contraction",
			reference: "CATCAT",
			variants:  []algebra.Variant{{Start: 0, End: 6, Sequence: "CAT"}},
			want:      "1_6CAT[1]",
		},
		{
			name:      "contraction-with-prefix",
			reference: "TCATCAT",
			variants:  []algebra.Variant{{Start: 1, End: 7, Sequence: "CAT"}},
			want:      "2_7CAT[1]",
		},
		{
			name:      "single-position-repeat",
			reference: "GAG",
			variants:  []algebra.Variant{{Start: 1, End: 2, Sequence: "AAA"}},
			want:      "2A[3]",
		},
		{
			name:      "deletion",
			reference: "CATCAT",
			variants:  []algebra.Variant{{Start: 0, End: 2, Sequence: ""}},
			want:      "1_2del",
		},
		{
			name:      "duplication",
			reference: "GAT",
			variants:  []algebra.Variant{{Start: 1, End: 2, Sequence: "AA"}},
			want:      "2dup",
		},
		{
			name:      "duplication-of-unit",
			reference: "CAT",
			variants:  []algebra.Variant{{Start: 0, End: 3, Sequence: "CATCAT"}},
			want:      "1_3dup",
		},
		{
			name:      "inserted-repeat",
			reference: "GG",
			variants:  []algebra.Variant{{Start: 1, End: 1, Sequence: "AAAAA"}},
			want:      "1_2insA[5]",
		},
		{
			name:      "inserted-repeat-with-remainder",
			reference: "GG",
			variants:  []algebra.Variant{{Start: 1, End: 1, Sequence: "CATCATCATCATCATC"}},
			want:      "1_2ins[CAT[5];C]",
		},
		{
			name:      "delins-repeat",
			reference: "GTG",
			variants:  []algebra.Variant{{Start: 1, End: 2, Sequence: "ACACACAC"}},
			want:      "2delinsAC[4]",
		},
		{
			name:      "long-delins-repeat",
			reference: "GTTG",
			variants:  []algebra.Variant{{Start: 1, End: 3, Sequence: "ACACACAC"}},
			want:      "2_3delinsAC[4]",
		},
		{
			name:      "short-repeat-stays-plain",
			reference: "GTGCCCTAAGGGAT",
			variants: []algebra.Variant{
				{Start: 1, End: 2, Sequence: "A"},
				{Start: 5, End: 8, Sequence: "TT"},
				{Start: 12, End: 13, Sequence: "C"},
			},
			want: "[2T>A;6_8delinsTT;13A>C]",
		},
		{
			name:      "trimmed-substitution",
			reference: "ACGT",
			variants:  []algebra.Variant{{Start: 1, End: 3, Sequence: "CT"}},
			want:      "3G>T",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.variants, tt.reference); got != tt.want {
				t.Errorf("Format(...) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatExtracted(t *testing.T) {
	tests := []struct {
		reference, observed string
		want                string
	}{
		{"CAT", "CAT", "="},
		{"CATCAT", "CATCATCAT", "1_6CAT[3]"},
		{"C", "G", "1C>G"},
		{"CATC", "GATG", "[1C>G;4C>G]"},
	}

	for _, tt := range tests {
		t.Run(tt.reference+"_"+tt.observed, func(t *testing.T) {
			variants, err := algebra.Extract(tt.reference, tt.observed)
			if err != nil {
				t.Fatalf("Extract(...) failed: %v", err)
			}
			if got := Format(variants, tt.reference); got != tt.want {
				t.Errorf("Format(...) = %q, want %q", got, tt.want)
			}
		})
	}
}

// Formatting and parsing an extracted allele results in an allele that describes the same
// observed sequence.
func TestFormatParseRoundTrip(t *testing.T) {
	rng := random.New(1, 2)
	for range 200 {
		reference := random.Sequence(rng, 1, 30)
		observed := random.Sequence(rng, 0, 30)

		variants, err := algebra.Extract(reference, observed)
		if err != nil {
			t.Fatalf("Extract(...) failed: %v", err)
		}
		expr := Format(variants, reference)
		parsed, err := ParseWithReference(expr, reference)
		if err != nil {
			t.Fatalf("ParseWithReference(%q, %q) failed: %v", expr, reference, err)
		}
		got, err := algebra.Patch(reference, parsed)
		if err != nil {
			t.Fatalf("Patch(...) failed: %v", err)
		}
		if diff := cmp.Diff(observed, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("observed sequence for %q on %q is different [-want,+got]:\n%s", expr, reference, diff)
		}
	}
}

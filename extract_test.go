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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"znkr.io/algebra/internal/random"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		reference, observed string
		want                []Variant
	}{
		{"", "", nil},
		{"CAT", "CAT", nil},
		{"", "C", []Variant{{0, 0, "C"}}},
		{"C", "", []Variant{{0, 1, ""}}},
		{"C", "G", []Variant{{0, 1, "G"}}},
		{"AA", "ACA", []Variant{{1, 1, "C"}}},
		{"TCTC", "TC", []Variant{{0, 4, "TC"}}},
		{"CATC", "GATG", []Variant{{0, 1, "G"}, {3, 4, "G"}}},
		{"CATCAT", "CATCATCAT", []Variant{{0, 6, "CATCATCAT"}}},
	}
	for _, tt := range tests {
		t.Run(tt.reference+"_to_"+tt.observed, func(t *testing.T) {
			got, err := Extract(tt.reference, tt.observed)
			if err != nil {
				t.Fatalf("Extract(%q, %q) failed: %v", tt.reference, tt.observed, err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Extract(%q, %q) is different [-want,+got]:\n%s", tt.reference, tt.observed, diff)
			}
		})
	}
}

func TestExtractMaxDistance(t *testing.T) {
	_, err := Extract("CATC", "GATG", MaxDistance(3))
	if !errors.Is(err, ErrMaxDistance) {
		t.Errorf("Extract(...) error is %v, want %v", err, ErrMaxDistance)
	}
}

// Applying the extracted allele to the reference results in the observed sequence.
func TestExtractProperties(t *testing.T) {
	rng := random.New(3, 4)
	for range 300 {
		reference := random.Sequence(rng, 0, 20)
		observed := random.Sequence(rng, 0, 20)

		variants, err := Extract(reference, observed)
		if err != nil {
			t.Fatalf("Extract(%q, %q) failed: %v", reference, observed, err)
		}
		if err := Sort(append([]Variant(nil), variants...)); err != nil {
			t.Errorf("Extract(%q, %q) = %v is not orderable: %v", reference, observed, variants, err)
		}
		got, err := Patch(reference, variants)
		if err != nil {
			t.Fatalf("Patch(%q, %v) failed: %v", reference, variants, err)
		}
		if got != observed {
			t.Errorf("Extract(%q, %q) = %v describes %q", reference, observed, variants, got)
		}
	}
}

func TestExtractAllele(t *testing.T) {
	tests := []struct {
		reference string
		variants  []Variant
		want      []Variant
	}{
		{"ACGT", nil, nil},
		{"ACGT", []Variant{{0, 1, ""}, {1, 2, ""}}, []Variant{{0, 2, ""}}},
		{"GTGTGTTTTTTTAACAGGGA", []Variant{{8, 9, ""}}, []Variant{{5, 12, "TTTTTT"}}},
	}
	for _, tt := range tests {
		t.Run(HGVS(tt.variants, tt.reference), func(t *testing.T) {
			got, err := ExtractAllele(tt.reference, tt.variants)
			if err != nil {
				t.Fatalf("ExtractAllele(%q, %v) failed: %v", tt.reference, tt.variants, err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ExtractAllele(%q, %v) is different [-want,+got]:\n%s", tt.reference, tt.variants, diff)
			}
		})
	}
}

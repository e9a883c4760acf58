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

	"znkr.io/algebra/internal/random"
)

func TestSupremal(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		variants  []Variant
		want      Variant
	}{
		{
			name:      "deletion-in-run",
			reference: "GTGTGTTTTTTTAACAGGGA",
			variants:  []Variant{{8, 9, ""}},
			want:      Variant{5, 12, "TTTTTT"},
		},
		{
			name:      "no-change",
			reference: "ACTG",
			variants:  []Variant{{0, 1, "A"}},
			want:      Variant{0, 0, ""},
		},
		{
			name:      "deletion-with-repeat",
			reference: "TGCATTAGGGCAAGGGTCTTCGACTTTCCACGAAAATCGCGTCGGTTTGAC",
			variants:  []Variant{{24, 25, ""}},
			want:      Variant{24, 27, "TT"},
		},
		{
			name:      "empty",
			reference: "ACTG",
			want:      Variant{0, 0, ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Supremal(tt.reference, tt.variants, Offset(1))
			if err != nil {
				t.Fatalf("Supremal(...) failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Supremal(...) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSupremalDefaultOffset(t *testing.T) {
	got, err := Supremal("GTGTGTTTTTTTAACAGGGA", []Variant{{8, 9, ""}})
	if err != nil {
		t.Fatalf("Supremal(...) failed: %v", err)
	}
	if want := (Variant{5, 12, "TTTTTT"}); got != want {
		t.Errorf("Supremal(...) = %v, want %v", got, want)
	}
}

func TestSequenceGraphSupremal(t *testing.T) {
	reference := "TGCATTAGGGCAAGGGTCTTCGACTTTCCACGAAAATCGCGTCGGTTTGAC"
	observed := "TGCATTAGGGCAAGGGTCTTCGACTTCCACGAAAATCGCGTCGGTTTGAC"
	if got, want := SequenceGraph(reference, observed).Supremal(), (Variant{24, 27, "TT"}); got != want {
		t.Errorf("SequenceGraph(...).Supremal() = %v, want %v", got, want)
	}
}

func TestSupremalInvalid(t *testing.T) {
	_, err := Supremal("ACTG", []Variant{{3, 5, ""}})
	if !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("Supremal(...) error is %v, want %v", err, ErrInvalidInterval)
	}
}

// The supremal variant describes the same observed sequence as the allele.
func TestSupremalProperties(t *testing.T) {
	rng := random.New(1, 2)
	for range 200 {
		reference := random.Sequence(rng, 1, 40)
		var variants []Variant
		for _, v := range random.Variants(rng, reference, 0, 2, 2) {
			variants = append(variants, Variant(v))
		}

		sup, err := Supremal(reference, variants)
		if err != nil {
			t.Fatalf("Supremal(%q, %v) failed: %v", reference, variants, err)
		}
		want, err := Patch(reference, variants)
		if err != nil {
			t.Fatalf("Patch(...) failed: %v", err)
		}
		got, err := Patch(reference, []Variant{sup})
		if err != nil {
			t.Fatalf("Patch(...) failed: %v", err)
		}
		if got != want {
			t.Errorf("Supremal(%q, %v) = %v describes %q, want %q", reference, variants, sup, got, want)
		}
	}
}

func TestExplode(t *testing.T) {
	tests := []struct {
		v    Variant
		want []Variant
	}{
		{Variant{1, 3, "TC"}, []Variant{{1, 2, "T"}, {2, 3, "C"}}},
		{Variant{1, 3, ""}, []Variant{{1, 2, ""}, {2, 3, ""}}},
		{Variant{1, 1, "TC"}, []Variant{{1, 1, "T"}, {1, 1, "C"}}},
		{Variant{1, 2, "TC"}, []Variant{{1, 2, "T"}, {2, 2, "C"}}},
		{Variant{1, 3, "T"}, []Variant{{1, 2, "T"}, {2, 3, ""}}},
	}
	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, explode(tt.v)); diff != "" {
				t.Errorf("explode(%v) is different [-want,+got]:\n%s", tt.v, diff)
			}
		})
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		reference string
		lhs       Variant
		rhsA      Variant
		rhsB      Variant
	}{
		{"CACACAC", Variant{1, 6, "TCTCT"}, Variant{1, 6, "TCACT"}, Variant{3, 4, "T"}},
		{"ACCTGC", Variant{1, 5, "TCTT"}, Variant{1, 3, "TC"}, Variant{3, 5, "TT"}},
	}

	for _, tt := range tests {
		t.Run(tt.lhs.String(), func(t *testing.T) {
			for _, c := range []struct{ rhs, rest Variant }{{tt.rhsA, tt.rhsB}, {tt.rhsB, tt.rhsA}} {
				got, err := Subtract(tt.reference, tt.lhs, c.rhs)
				if err != nil {
					t.Fatalf("Subtract(%q, %v, %v) failed: %v", tt.reference, tt.lhs, c.rhs, err)
				}
				gotObserved, err := Patch(tt.reference, got)
				if err != nil {
					t.Fatalf("Patch(...) failed: %v", err)
				}
				wantObserved, err := Patch(tt.reference, []Variant{c.rest})
				if err != nil {
					t.Fatalf("Patch(...) failed: %v", err)
				}
				if gotObserved != wantObserved {
					t.Errorf("Subtract(%q, %v, %v) = %v describes %q, want %q", tt.reference, tt.lhs, c.rhs, got, gotObserved, wantObserved)
				}
			}
		})
	}
}

func TestSubtractUndefined(t *testing.T) {
	tests := []struct {
		reference string
		lhs, rhs  Variant
	}{
		{"CATATATC", Variant{1, 7, "ATATATAT"}, Variant{5, 6, "AA"}},
		{"CATATATC", Variant{1, 7, "ATATATAT"}, Variant{4, 5, "TT"}},
		{"ACCTGC", Variant{1, 3, "TC"}, Variant{3, 5, "TT"}},
		{"CAC", Variant{1, 2, "T"}, Variant{1, 2, "G"}},
	}

	for _, tt := range tests {
		t.Run(tt.lhs.String()+"_"+tt.rhs.String(), func(t *testing.T) {
			_, err := Subtract(tt.reference, tt.lhs, tt.rhs)
			if !errors.Is(err, ErrUndefined) {
				t.Errorf("Subtract(%q, %v, %v) error is %v, want %v", tt.reference, tt.lhs, tt.rhs, err, ErrUndefined)
			}
		})
	}
}

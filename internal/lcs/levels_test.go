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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		name         string
		x, y         string
		wantDistance int
		wantLevels   [][]Node
	}{
		{
			name:         "empty",
			x:            "",
			y:            "",
			wantDistance: 0,
			wantLevels:   nil,
		},
		{
			// Positions are zero-based, in one-based coordinates these runs start at (1,1) and
			// (2,3).
			name:         "insertion",
			x:            "AA",
			y:            "ACA",
			wantDistance: 1,
			wantLevels:   [][]Node{{{0, 0, 1}}, {{1, 2, 1}}},
		},
		{
			name:         "deletion",
			x:            "ACA",
			y:            "AA",
			wantDistance: 1,
			wantLevels:   [][]Node{{{0, 0, 1}}, {{2, 1, 1}}},
		},
		{
			name:         "CTCGGCATTA_to_GGCTGGCTGT",
			x:            "CTCGGCATTA",
			y:            "GGCTGGCTGT",
			wantDistance: 6,
			wantLevels: [][]Node{
				{{2, 2, 1}, {3, 1, 1}},
				{{0, 2, 2}},
				{{4, 4, 1}, {3, 0, 3}, {3, 5, 1}},
				{},
				{{3, 4, 3}},
				{{7, 7, 1}, {8, 7, 1}},
				{{8, 9, 1}},
			},
		},
		{
			name:         "CATATATCG_to_CTTATAGCAT",
			x:            "CATATATCG",
			y:            "CTTATAGCAT",
			wantDistance: 7,
			wantLevels: [][]Node{
				{{0, 0, 1}},
				{{2, 1, 1}, {4, 1, 1}, {1, 5, 1}},
				{},
				{{1, 3, 3}},
				{{2, 2, 4}, {4, 2, 3}},
				{{7, 7, 1}, {8, 6, 1}, {5, 8, 2}},
			},
		},
		{
			name:         "TTT_to_TTTTAT",
			x:            "TTT",
			y:            "TTTTAT",
			wantDistance: 3,
			wantLevels: [][]Node{
				{{0, 3, 1}},
				{{0, 2, 2}},
				{{0, 0, 3}, {0, 1, 3}, {2, 5, 1}},
			},
		},
	}

	opts := []cmp.Option{
		cmpopts.EquateEmpty(),
		cmpopts.SortSlices(func(a, b Node) bool {
			if a.Row != b.Row {
				return a.Row < b.Row
			}
			if a.Col != b.Col {
				return a.Col < b.Col
			}
			return a.Length < b.Length
		}),
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distance, levels, err := Levels([]byte(tt.x), []byte(tt.y), 0, 0)
			if err != nil {
				t.Fatalf("Levels(...) failed: %v", err)
			}
			if distance != tt.wantDistance {
				t.Errorf("Levels(...) distance is %d, want %d", distance, tt.wantDistance)
			}
			if diff := cmp.Diff(tt.wantLevels, levels, opts...); diff != "" {
				t.Errorf("Levels(...) levels are different [-want,+got]:\n%s", diff)
			}
			if got, want := distance, len(tt.x)+len(tt.y)-2*len(levels); got != want {
				t.Errorf("Levels(...) distance is %d, but LCS length implies %d", got, want)
			}
		})
	}
}

func TestLevelsShift(t *testing.T) {
	_, levels, err := Levels([]byte("AA"), []byte("ACA"), 10, 0)
	if err != nil {
		t.Fatalf("Levels(...) failed: %v", err)
	}
	want := [][]Node{{{10, 10, 1}}, {{11, 12, 1}}}
	if diff := cmp.Diff(want, levels); diff != "" {
		t.Errorf("Levels(...) levels are different [-want,+got]:\n%s", diff)
	}
}

func TestLevelsMaxDistance(t *testing.T) {
	x, y := []byte("CTCGGCATTA"), []byte("GGCTGGCTGT")

	distance, _, err := Levels(x, y, 0, 6)
	if err != nil {
		t.Fatalf("Levels(..., 6) failed: %v", err)
	}
	if distance != 6 {
		t.Errorf("Levels(..., 6) distance is %d, want 6", distance)
	}

	_, _, err = Levels(x, y, 0, 5)
	if !errors.Is(err, ErrMaxDistance) {
		t.Errorf("Levels(..., 5) error is %v, want %v", err, ErrMaxDistance)
	}
}

func TestNodeString(t *testing.T) {
	if got, want := (Node{0, 0, 0}).String(), "(0, 0)[0]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

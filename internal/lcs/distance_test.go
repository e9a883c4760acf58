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
	"math/rand/v2"
	"testing"
)

func newRand() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }

func randomSequence(rng *rand.Rand, maxLen int) []byte {
	const alphabet = "ACGT"
	seq := make([]byte, rng.IntN(maxLen+1))
	for i := range seq {
		seq[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return seq
}

func TestDistance(t *testing.T) {
	tests := []struct {
		x, y string
		want int
	}{
		{"", "", 0},
		{"", "ACGT", 4},
		{"ACGT", "", 4},
		{"AA", "ACA", 1},
		{"ABCABBA", "CBABAC", 5},
		{"CTCGGCATTA", "GGCTGGCTGT", 6},
		{"CATATATCG", "CTTATAGCAT", 7},
		{"TTT", "TTTTAT", 3},
		{"TTTTAT", "TTT", 3},
	}
	for _, tt := range tests {
		t.Run(tt.x+"_to_"+tt.y, func(t *testing.T) {
			if got := Distance([]byte(tt.x), []byte(tt.y)); got != tt.want {
				t.Errorf("Distance(%q, %q) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDistanceProperties(t *testing.T) {
	rng := newRand()
	for range 500 {
		a := randomSequence(rng, 20)
		b := randomSequence(rng, 20)
		c := randomSequence(rng, 20)

		ab, ba := Distance(a, b), Distance(b, a)
		if ab != ba {
			t.Fatalf("Distance(%q, %q) = %d, but reversed it's %d", a, b, ab, ba)
		}

		d, _, err := Levels(a, b, 0, 0)
		if err != nil {
			t.Fatalf("Levels(%q, %q) failed: %v", a, b, err)
		}
		if d != ab {
			t.Fatalf("Levels(%q, %q) distance is %d, want %d", a, b, d, ab)
		}

		if ac, bc := Distance(a, c), Distance(b, c); ac > ab+bc {
			t.Fatalf("triangle inequality violated for %q, %q, %q: %d > %d + %d", a, b, c, ac, ab, bc)
		}
	}
}

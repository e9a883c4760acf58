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

// Distance returns the simple edit distance (deletions and insertions only) between x and y.
func Distance[T comparable](x, y []T) int {
	if len(x) > len(y) {
		x, y = y, x
	}
	m, n := len(x), len(y)
	offset := m + 1
	delta := n - m

	// fp[k+offset] is the furthest column reached on diagonal k.
	fp := make([]int, m+n+3)
	for i := range fp {
		fp[i] = -1
	}

	snake := func(k, lower, upper int) int {
		t := max(lower, upper)
		s := t - k
		for s < m && t < n && x[s] == y[t] {
			s++
			t++
		}
		return t
	}

	p := -1
	for fp[delta+offset] < n {
		p++
		for k := -p; k < delta; k++ {
			fp[k+offset] = snake(k, fp[k-1+offset]+1, fp[k+1+offset])
		}
		for k := delta + p; k > delta; k-- {
			fp[k+offset] = snake(k, fp[k-1+offset]+1, fp[k+1+offset])
		}
		fp[delta+offset] = snake(delta, fp[delta-1+offset]+1, fp[delta+1+offset])
	}
	return delta + 2*p
}

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

// Relation describes how two variants relate to each other with respect to the same reference.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Relation -linecomment
type Relation int

const (
	Equivalent  Relation = iota // equivalent
	Contains                    // contains
	IsContained                 // is_contained
	Overlap                     // overlap
	Disjoint                    // disjoint
)

// Inverse returns the relation with the two sides swapped.
func (r Relation) Inverse() Relation {
	switch r {
	case Contains:
		return IsContained
	case IsContained:
		return Contains
	default:
		return r
	}
}

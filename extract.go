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

// Extract returns the canonical allele that describes the observed sequence with respect to the
// reference. The result is sorted and empty if both sequences are identical.
//
// The following options are supported: [MaxDistance]
func Extract(reference, observed string, opts ...Option) ([]Variant, error) {
	g, err := NewGraph(reference, observed, opts...)
	if err != nil {
		return nil, err
	}
	return g.Canonical(), nil
}

// ExtractAllele returns the canonical allele for an arbitrary allele.
//
// The following options are supported: [Offset]
func ExtractAllele(reference string, variants []Variant, opts ...Option) ([]Variant, error) {
	g, err := AlleleGraph(reference, variants, opts...)
	if err != nil {
		return nil, err
	}
	return g.Canonical(), nil
}

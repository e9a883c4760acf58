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

// Package random generates random DNA sequences and alleles for tests, benchmarks and
// evaluations.
package random

import (
	"math/rand/v2"
	"strings"
)

// Nucleotides is the default alphabet.
const Nucleotides = "ACGT"

// Variant mirrors algebra.Variant so that results can be converted without an import cycle.
type Variant struct {
	Start, End int
	Sequence   string
}

// New returns a deterministic random number generator.
func New(seed1, seed2 uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// Sequence returns a random sequence over [Nucleotides] with a length in [minLen, maxLen].
func Sequence(rng *rand.Rand, minLen, maxLen int) string {
	return SequenceOf(rng, Nucleotides, minLen, maxLen)
}

// SequenceOf returns a random sequence over alphabet with a length in [minLen, maxLen].
func SequenceOf(rng *rand.Rand, alphabet string, minLen, maxLen int) string {
	n := minLen + rng.IntN(maxLen-minLen+1)
	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteByte(alphabet[rng.IntN(len(alphabet))])
	}
	return sb.String()
}

// Variants returns a random sorted allele for reference. Every position starts a variant with
// probability p, a value <= 0 uses 1/len(reference). The lengths of deletions and insertions are
// exponentially distributed with the given means. Inserted symbols never equal the deleted
// symbol at the same position.
func Variants(rng *rand.Rand, reference string, p, meanDeletion, meanInsertion float64) []Variant {
	if len(reference) == 0 {
		return nil
	}
	if p <= 0 {
		p = 1 / float64(len(reference))
	}

	var out []Variant
	for pos := 0; pos < len(reference); {
		deletion := 0
		if rng.Float64() <= p {
			deletion = min(int(rng.ExpFloat64()*meanDeletion), len(reference)-pos)
			insertion := int(rng.ExpFloat64() * meanInsertion)
			if deletion == 0 && insertion == 0 {
				deletion, insertion = 1, 1
			}

			var sb strings.Builder
			if insertion > 0 {
				for i := range deletion {
					others := strings.ReplaceAll(Nucleotides, reference[pos+i:pos+i+1], "")
					sb.WriteByte(others[rng.IntN(len(others))])
				}
				for range insertion - deletion {
					sb.WriteByte(Nucleotides[rng.IntN(len(Nucleotides))])
				}
			}
			out = append(out, Variant{pos, pos + deletion, sb.String()})
		}
		pos += deletion + 1
	}
	return out
}

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

// Package algebra provides a boolean algebra for genetic variants.
//
// A variant replaces an interval of a reference sequence with another sequence. An allele is a
// sorted list of non-overlapping variants, applying it to the reference with [Patch] yields an
// observed sequence. The same observed sequence can usually be described by many different
// alleles. This package works on all of them at once: an LCS [Graph] contains every alignment
// of the observed sequence to the reference with the minimal number of deletions and insertions.
//
// The main functions are [Extract], which returns the canonical allele for an observed sequence,
// [Supremal], which returns the smallest variant containing all alignments, and [Compare], which
// decides if two variants are equivalent, contain one another, overlap or are disjoint.
//
// Performance: Building a graph takes O(ND) time, where N is the length of the sequences and D is
// the edit distance. Use [MaxDistance] to bound the work for sequences that might be very
// different.
//
// J.K. Vis, M.A. Santcroos, W.A. Kosters and J.F.J. Laros. A Boolean Algebra for Genetic
// Variants (2023).
package algebra

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


package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/spf13/cobra"

	"znkr.io/algebra"
	"znkr.io/algebra/hgvs"
	"znkr.io/algebra/internal/random"
)

// observation is an observed sequence or an allele on the reference.
type observation struct {
	sequence string
	variants []algebra.Variant
	isAllele bool
}

// observed returns the observed sequence for the observation.
func (o observation) observed(reference string) (string, error) {
	if !o.isAllele {
		return o.sequence, nil
	}
	return algebra.Patch(reference, o.variants)
}

// compare returns the relation between two observations. Two alleles are compared by their
// supremal variants, everything else by the observed sequences.
func compare(reference string, lhs, rhs observation, offset int) (algebra.Relation, error) {
	if lhs.isAllele && rhs.isAllele {
		return algebra.CompareAlleles(reference, lhs.variants, rhs.variants, algebra.Offset(offset))
	}
	l, err := lhs.observed(reference)
	if err != nil {
		return 0, err
	}
	r, err := rhs.observed(reference)
	if err != nil {
		return 0, err
	}
	return algebra.Compare(reference, l, r), nil
}

// addObservedFlags adds the mutually exclusive flags to describe an observation. If prefix is
// "lhs", the flags are --lhs, --lhs-hgvs, --lhs-spdi, --lhs-file, --lhs-random-variant and
// --lhs-random-sequence.
func addObservedFlags(cmd *cobra.Command, prefix, desc string) {
	flags := cmd.Flags()
	flags.String(prefix, "", "an observed sequence as string"+desc)
	flags.String(prefix+"-hgvs", "", "a variant in HGVS"+desc)
	flags.String(prefix+"-spdi", "", "a variant in SPDI"+desc)
	flags.String(prefix+"-file", "", "an observed sequence from a FASTA file"+desc)
	flags.Bool(prefix+"-random-variant", false, "a random variant"+desc)
	flags.Bool(prefix+"-random-sequence", false, "a random sequence (default)"+desc)
	cmd.MarkFlagsMutuallyExclusive(
		prefix,
		prefix+"-hgvs",
		prefix+"-spdi",
		prefix+"-file",
		prefix+"-random-variant",
		prefix+"-random-sequence",
	)
}

// observation reads the observation described by the flags added with addObservedFlags.
// Generated random sequences and variants are printed.
func (a *app) observation(cmd *cobra.Command, prefix string) (observation, error) {
	flags := cmd.Flags()
	w := cmd.OutOrStdout()
	switch {
	case flags.Changed(prefix):
		s, err := flags.GetString(prefix)
		return observation{sequence: s}, err
	case flags.Changed(prefix + "-hgvs"):
		expr, err := flags.GetString(prefix + "-hgvs")
		if err != nil {
			return observation{}, err
		}
		variants, err := hgvs.ParseWithReference(expr, a.reference)
		if err != nil {
			return observation{}, fmt.Errorf("--%s-hgvs: %w", prefix, err)
		}
		return observation{variants: variants, isAllele: true}, nil
	case flags.Changed(prefix + "-spdi"):
		expr, err := flags.GetString(prefix + "-spdi")
		if err != nil {
			return observation{}, err
		}
		v, err := hgvs.ParseSPDI(expr)
		if err != nil {
			return observation{}, fmt.Errorf("--%s-spdi: %w", prefix, err)
		}
		return observation{variants: []algebra.Variant{v}, isAllele: true}, nil
	case flags.Changed(prefix + "-file"):
		path, err := flags.GetString(prefix + "-file")
		if err != nil {
			return observation{}, err
		}
		s, err := readFASTA(path)
		return observation{sequence: s}, err
	case flags.Changed(prefix + "-random-variant"):
		variants := a.randomVariants()
		fmt.Fprintln(w, algebra.HGVS(variants, a.reference))
		return observation{variants: variants, isAllele: true}, nil
	default:
		s := a.randomSequence()
		fmt.Fprintln(w, s)
		return observation{sequence: s}, nil
	}
}

func (a *app) randomVariants() []algebra.Variant {
	var out []algebra.Variant
	for _, v := range random.Variants(a.rng, a.reference, a.cfg.Random.P, 1, 1) {
		out = append(out, algebra.Variant(v))
	}
	return out
}

// readFASTA returns the first sequence of a FASTA file.
func readFASTA(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	sc := seqio.NewScanner(fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNAredundant)))
	if !sc.Next() {
		if err := sc.Error(); err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return "", fmt.Errorf("reading %s: no sequence", path)
	}
	s := sc.Seq().(*linear.Seq)
	return string(alphabet.LettersToBytes(s.Seq)), nil
}

// writeFASTA writes a single sequence as a FASTA record.
func writeFASTA(w io.Writer, id, sequence string) error {
	s := linear.NewSeq(id, alphabet.BytesToLetters([]byte(sequence)), alphabet.DNAredundant)
	_, err := fasta.NewWriter(w, 60).Write(s)
	return err
}

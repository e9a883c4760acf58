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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"znkr.io/algebra"
	"znkr.io/algebra/hgvs"
)

// result is the outcome of a single comparison in a batch.
type result struct {
	Line     int    `yaml:"line"`
	LHS      string `yaml:"lhs"`
	RHS      string `yaml:"rhs"`
	Relation string `yaml:"relation,omitempty"`
	Error    string `yaml:"error,omitempty"`
}

// pair is a line of batch input.
type pair struct {
	line     int
	lhs, rhs string
}

func (a *app) batchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Compare many pairs of observations",
		Long: `Compare pairs of observations read from a file with one tab separated pair per line and
write the results as YAML. Every observation is either an observed sequence or an allele in HGVS.
Empty lines and lines starting with # are ignored. Failed comparisons are reported in the results
and make the command fail after all pairs have been compared.`,
		Args: cobra.NoArgs,
		RunE: a.runBatch,
	}
	flags := cmd.Flags()
	flags.String("input", "-", "file with tab separated pairs, - for stdin")
	flags.Int("workers", runtime.GOMAXPROCS(0), "number of comparisons to run in parallel")
	a.bind(flags, map[string]string{"workers": "batch.workers"})
	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	path, _ := cmd.Flags().GetString("input")

	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	pairs, err := readPairs(r)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	results, cerr := a.compareAll(ctx, pairs)
	if results == nil && cerr != nil {
		return cerr
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return cerr
}

func readPairs(r io.Reader) ([]pair, error) {
	var pairs []pair
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 1<<26)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lhs, rhs, ok := strings.Cut(text, "\t")
		if !ok || strings.Contains(rhs, "\t") {
			return nil, fmt.Errorf("line %d: expected two tab separated fields", line)
		}
		pairs = append(pairs, pair{line, lhs, rhs})
	}
	return pairs, sc.Err()
}

// compareAll compares all pairs concurrently. Failed comparisons are recorded in their results
// and returned together as a single error.
func (a *app) compareAll(ctx context.Context, pairs []pair) ([]result, error) {
	results := make([]result, len(pairs))
	var errs errors.M

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(a.cfg.Batch.Workers, 1))
	for i, p := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = result{Line: p.line, LHS: p.lhs, RHS: p.rhs}
			relation, err := a.comparePair(p)
			if err != nil {
				ctxlog.Logger(ctx).Warn("comparison failed", "line", p.line, "error", err)
				results[i].Error = err.Error()
				errs.Append(fmt.Errorf("line %d: %w", p.line, err))
				return nil
			}
			results[i].Relation = relation.String()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	ctxlog.Logger(ctx).Debug("batch done", "pairs", len(pairs))
	return results, errs.Err()
}

func (a *app) comparePair(p pair) (algebra.Relation, error) {
	lhs, err := a.parseObservation(p.lhs)
	if err != nil {
		return 0, err
	}
	rhs, err := a.parseObservation(p.rhs)
	if err != nil {
		return 0, err
	}
	return compare(a.reference, lhs, rhs, a.cfg.Offset)
}

// parseObservation reads a field of batch input. Fields consisting of letters only are observed
// sequences, everything else is HGVS.
func (a *app) parseObservation(field string) (observation, error) {
	if isSequence(field) {
		return observation{sequence: field}, nil
	}
	variants, err := hgvs.ParseWithReference(field, a.reference)
	if err != nil {
		return observation{}, err
	}
	return observation{variants: variants, isAllele: true}, nil
}

func isSequence(s string) bool {
	for i := range len(s) {
		c := s[i] | 0x20 // lower case
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

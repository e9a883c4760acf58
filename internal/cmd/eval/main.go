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


// eval validates the algebra on random sequences. For every case it checks that extracted
// alleles describe the observed sequences, that their HGVS representation can be parsed again,
// that supremal variants describe the same sequence, and that relations are consistent under
// inversion and between sequence and allele comparison.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"cloudeng.io/errors"

	"znkr.io/algebra"
	"znkr.io/algebra/hgvs"
	"znkr.io/algebra/internal/random"
)

type config struct {
	cases     int
	maxLength int
	seed      uint64
	parallel  int
	stats     string
}

func main() {
	var cfg config
	flag.IntVar(&cfg.cases, "cases", 10000, "number of random cases to evaluate")
	flag.IntVar(&cfg.maxLength, "max-length", 30, "maximum length of random sequences")
	flag.Uint64Var(&cfg.seed, "seed", 0, "seed for random cases, 0 picks a random seed")
	flag.IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "number of evaluations to run in parallel")
	flag.StringVar(&cfg.stats, "stats", "", "file to store stats in")
	flag.Parse()

	if len(flag.CommandLine.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected command line arguments: %v\n", flag.CommandLine.Args())
		os.Exit(1)
	}

	if err := run(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var bars = []string{
	" ",
	"▏",
	"▎",
	"▍",
	"▌",
	"▋",
	"▊",
	"▉",
	"█",
}

type note struct {
	prefix string
	msg    string
}

// evalCase is a reference with two observed sequences.
type evalCase struct {
	id        int
	reference string
	lhs, rhs  string
}

func (c evalCase) String() string {
	return fmt.Sprintf("case %d (%q, %q, %q)", c.id, c.reference, c.lhs, c.rhs)
}

type result struct {
	id       int
	N, M     int
	D        int
	relation algebra.Relation
	duration time.Duration
}

func run(cfg *config) error {
	start := time.Now()
	notes := make(chan note)
	done := make(chan struct{})
	var processed atomic.Int64
	var failures errors.M

	var stats *os.File
	if cfg.stats != "" {
		var err error
		stats, err = os.Create(cfg.stats)
		if err != nil {
			return fmt.Errorf("creating stats file: %v", err)
		}
		defer stats.Close()
	}

	if cfg.seed == 0 {
		cfg.seed = rand.Uint64()
	}
	fmt.Printf("seed: %d\n", cfg.seed)

	// Generate cases.
	cases := make(chan evalCase)
	go func() {
		defer close(cases)
		for i := range cfg.cases {
			rng := random.New(cfg.seed, uint64(i))
			cases <- evalCase{
				id:        i,
				reference: random.Sequence(rng, 0, cfg.maxLength),
				lhs:       random.Sequence(rng, 0, cfg.maxLength),
				rhs:       random.Sequence(rng, 0, cfg.maxLength),
			}
		}
	}()

	// Evaluate cases.
	var processWG sync.WaitGroup
	var results chan result
	if cfg.stats != "" {
		results = make(chan result)
	}
	for range cfg.parallel {
		processWG.Add(1)
		go func() {
			defer processWG.Done()
			for c := range cases {
				start := time.Now()
				relation, errs := evaluate(c)
				duration := time.Since(start)
				for _, err := range errs {
					failures.Append(fmt.Errorf("%v: %w", c, err))
					notes <- note{prefix: c.String(), msg: err.Error()}
				}
				if results != nil {
					results <- result{
						id:       c.id,
						N:        len(c.reference),
						M:        len(c.lhs) + len(c.rhs),
						D:        algebra.EditDistance(c.lhs, c.rhs),
						relation: relation,
						duration: duration,
					}
				}
				processed.Add(1)
			}
		}()
	}

	// Render progress
	var ioWG sync.WaitGroup
	render := func() {
		const width = 60
		processed := processed.Load()
		progress := float64(processed) / float64(max(cfg.cases, 1))
		whole := int(progress * width)
		remainder := math.Mod(progress*width, 1)
		last := bars[max(0, min(len(bars)-1, int(remainder*float64(len(bars)))))]
		if width-whole < 1 {
			last = ""
		}
		bar := strings.Repeat(bars[len(bars)-1], whole) + last
		var evalsPerSec int
		if processed > 0 {
			evalsPerSec = int((time.Duration(processed) * time.Second) / time.Since(start))
		}
		fmt.Printf("\r[%-*s] % 3.1f%% (%d evals/s) ", width, bar, 100*progress, evalsPerSec)
	}
	ioWG.Add(1)
	go func() {
		defer ioWG.Done()
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case note := <-notes:
				fmt.Printf("\r%s: %s\n", note.prefix, note.msg)
				render()

			case <-ticker.C:
				render()

			case <-done:
				render()
				fmt.Printf("\n")
				return
			}
		}
	}()
	var statsWG sync.WaitGroup
	if cfg.stats != "" {
		statsWG.Add(1)
		go func() {
			defer statsWG.Done()
			w := bufio.NewWriter(stats)
			w.WriteString("case,N,M,D,relation,duration_ns\n")
			for result := range results {
				_, err := fmt.Fprintf(w, "%d,%d,%d,%d,%s,%d\n", result.id, result.N, result.M, result.D, result.relation, result.duration.Nanoseconds())
				if err != nil {
					notes <- note{
						prefix: fmt.Sprintf("case %d", result.id),
						msg:    fmt.Sprintf("failed to write stats: %v", err),
					}
				}
			}
			err := w.Flush()
			if err != nil {
				notes <- note{
					prefix: "",
					msg:    fmt.Sprintf("failed to flush stats: %v", err),
				}
			}
		}()
	}

	// Shutdown
	processWG.Wait()
	if results != nil {
		close(results)
	}
	statsWG.Wait()
	close(done)
	ioWG.Wait()

	return failures.Err()
}

// evaluate checks all properties for a single case.
func evaluate(c evalCase) (algebra.Relation, []error) {
	var errs []error

	relation := algebra.Compare(c.reference, c.lhs, c.rhs)
	if inverse := algebra.Compare(c.reference, c.rhs, c.lhs); inverse != relation.Inverse() {
		errs = append(errs, fmt.Errorf("relation is %v, but inverse relation is %v", relation, inverse))
	}

	alleles := make([][]algebra.Variant, 2)
	for i, observed := range []string{c.lhs, c.rhs} {
		variants, err := validateAllele(c.reference, observed)
		if err != nil {
			errs = append(errs, err)
			return relation, errs
		}
		alleles[i] = variants
	}

	got, err := algebra.CompareAlleles(c.reference, alleles[0], alleles[1])
	if err != nil {
		errs = append(errs, fmt.Errorf("comparing alleles: %w", err))
	} else if !consistent(relation, got) {
		errs = append(errs, fmt.Errorf("relation of sequences is %v, but relation of alleles is %v", relation, got))
	}
	return relation, errs
}

// consistent reports whether the relation of two observed sequences and the relation of their
// alleles agree. Sequences are disjoint if they share no atomic deletion or insertion, alleles
// only if no pair of their variants shares one, so an overlap of alleles can be a disjoint
// relation of sequences and vice versa.
func consistent(sequences, alleles algebra.Relation) bool {
	if sequences == alleles {
		return true
	}
	isDisjointOrOverlap := func(r algebra.Relation) bool {
		return r == algebra.Disjoint || r == algebra.Overlap
	}
	return isDisjointOrOverlap(sequences) && isDisjointOrOverlap(alleles)
}

// validateAllele extracts the canonical allele for observed and checks that it, its HGVS
// representation and its supremal variant describe the observed sequence.
func validateAllele(reference, observed string) ([]algebra.Variant, error) {
	variants, err := algebra.Extract(reference, observed)
	if err != nil {
		return nil, fmt.Errorf("extracting %q: %w", observed, err)
	}
	if patched, err := algebra.Patch(reference, variants); err != nil || patched != observed {
		return nil, fmt.Errorf("extracted allele %v describes %q (%v), want %q", variants, patched, err, observed)
	}

	expr := hgvs.Format(variants, reference)
	parsed, err := hgvs.ParseWithReference(expr, reference)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", expr, err)
	}
	if patched, err := algebra.Patch(reference, parsed); err != nil || patched != observed {
		return nil, fmt.Errorf("%s describes %q (%v), want %q", expr, patched, err, observed)
	}

	sup, err := algebra.Supremal(reference, variants)
	if err != nil {
		return nil, fmt.Errorf("supremal of %v: %w", variants, err)
	}
	if patched, err := algebra.Patch(reference, []algebra.Variant{sup}); err != nil || patched != observed {
		return nil, fmt.Errorf("supremal variant %v describes %q (%v), want %q", sup, patched, err, observed)
	}
	return variants, nil
}

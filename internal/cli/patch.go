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

	"github.com/spf13/cobra"

	"znkr.io/algebra"
	"znkr.io/algebra/hgvs"
)

func (a *app) patchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Patch a reference sequence with a variant",
		Args:  cobra.NoArgs,
		RunE:  a.runPatch,
	}
	flags := cmd.Flags()
	flags.String("hgvs", "", "a variant in HGVS")
	flags.String("spdi", "", "a variant in SPDI")
	flags.Bool("random-variant", false, "a random variant (default)")
	flags.Bool("fasta", false, "output the observed sequence in FASTA format")
	cmd.MarkFlagsMutuallyExclusive("hgvs", "spdi", "random-variant")
	return cmd
}

func (a *app) runPatch(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	w := cmd.OutOrStdout()

	var variants []algebra.Variant
	switch {
	case flags.Changed("hgvs"):
		expr, _ := flags.GetString("hgvs")
		var err error
		variants, err = hgvs.ParseWithReference(expr, a.reference)
		if err != nil {
			return fmt.Errorf("--hgvs: %w", err)
		}
	case flags.Changed("spdi"):
		expr, _ := flags.GetString("spdi")
		v, err := hgvs.ParseSPDI(expr)
		if err != nil {
			return fmt.Errorf("--spdi: %w", err)
		}
		variants = []algebra.Variant{v}
	default:
		variants = a.randomVariants()
		fmt.Fprintln(w, algebra.HGVS(variants, a.reference))
	}

	observed, err := algebra.Patch(a.reference, variants)
	if err != nil {
		return err
	}
	if asFASTA, _ := flags.GetBool("fasta"); asFASTA {
		return writeFASTA(w, "observed", observed)
	}
	_, err = fmt.Fprintln(w, observed)
	return err
}

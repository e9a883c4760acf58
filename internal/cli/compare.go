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

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"
)

func (a *app) compareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two variants",
		Long: `Compare two observations of the same reference and print their relation: equivalent,
contains, is_contained, overlap or disjoint.`,
		Args: cobra.NoArgs,
		RunE: a.runCompare,
	}
	addObservedFlags(cmd, "lhs", " (lhs)")
	addObservedFlags(cmd, "rhs", " (rhs)")
	return cmd
}

func (a *app) runCompare(cmd *cobra.Command, _ []string) error {
	lhs, err := a.observation(cmd, "lhs")
	if err != nil {
		return err
	}
	rhs, err := a.observation(cmd, "rhs")
	if err != nil {
		return err
	}
	relation, err := compare(a.reference, lhs, rhs, a.cfg.Offset)
	if err != nil {
		return err
	}
	ctxlog.Logger(cmd.Context()).Debug("compared", "lhs_allele", lhs.isAllele, "rhs_allele", rhs.isAllele, "relation", relation.String())
	_, err = fmt.Fprintln(cmd.OutOrStdout(), relation)
	return err
}

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
)

func (a *app) sliceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slice",
		Short: "Slice a reference sequence",
		Long: `Print the slices of the reference between pairs of positions. Positions are zero-based and
every slice includes its start and excludes its end, e.g. --positions 0,2,4,8 prints the first
two symbols and the symbols at positions 4 to 7 on separate lines.`,
		Args: cobra.NoArgs,
		RunE: a.runSlice,
	}
	cmd.Flags().IntSlice("positions", nil, "pairs of positions to slice")
	cmd.Flags().Bool("reverse-complement", false, "output the reverse complement of every slice")
	if err := cmd.MarkFlagRequired("positions"); err != nil {
		panic(err)
	}
	return cmd
}

func (a *app) runSlice(cmd *cobra.Command, _ []string) error {
	positions, err := cmd.Flags().GetIntSlice("positions")
	if err != nil {
		return err
	}
	reverse, _ := cmd.Flags().GetBool("reverse-complement")
	if len(positions)%2 != 0 {
		return fmt.Errorf("--positions: expected pairs of positions, got %d positions", len(positions))
	}

	w := cmd.OutOrStdout()
	for i := 0; i < len(positions); i += 2 {
		start, end := positions[i], positions[i+1]
		if start < 0 || start > end || end > len(a.reference) {
			return fmt.Errorf("%w: slice %d:%d on a reference of length %d", algebra.ErrInvalidInterval, start, end, len(a.reference))
		}
		s := a.reference[start:end]
		if reverse {
			s = algebra.ReverseComplement(s)
		}
		fmt.Fprintln(w, s)
	}
	return nil
}

// SPDX-License-Identifier: MIT
// Command rqa: cross-recurrence subcommand.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cartersale/Recurrence-Quantification-Analysis/analysis"
)

// newCrossCmd quantifies the recurrence between two series. The Theiler
// flag is accepted but ignored: cross-recurrence always runs with
// exclusion window 0.
func newCrossCmd(root *rootOptions) *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "cross <series-file-x> <series-file-y>",
		Short: "Quantify the recurrence between two series",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			fallback := fmt.Sprintf("%s~%s", filepath.Base(args[0]), filepath.Base(args[1]))
			req, err := flags.request(fallback)
			if err != nil {
				return err
			}
			xs, err := readSeries(args[0])
			if err != nil {
				return err
			}
			ys, err := readSeries(args[1])
			if err != nil {
				return err
			}

			_, err = analysis.New(root.log).Cross(xs, ys, req)

			return err
		},
	}
	addRunFlags(cmd, &flags)

	return cmd
}

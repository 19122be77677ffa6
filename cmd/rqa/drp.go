// SPDX-License-Identifier: MIT
// Command rqa: diagonal recurrence profile subcommand.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cartersale/Recurrence-Quantification-Analysis/analysis"
)

// newDRPCmd extracts the diagonal recurrence profile of one series with
// itself, or of a pair when two files are given.
func newDRPCmd(root *rootOptions) *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "drp <series-file-x> [series-file-y]",
		Short: "Extract a diagonal recurrence profile",
		Long: `drp reports the recurrence rate per diagonal offset (lag). With one
series file the profile describes self-similarity across delays; with two
it locates the lead-lag relation between the pair at its peak.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			fallback := filepath.Base(args[0])
			if len(args) == 2 {
				fallback = fmt.Sprintf("%s~%s", fallback, filepath.Base(args[1]))
			}
			req, err := flags.request(fallback)
			if err != nil {
				return err
			}
			xs, err := readSeries(args[0])
			if err != nil {
				return err
			}

			a := analysis.New(root.log)
			if len(args) == 1 {
				_, err = a.AutoProfile(xs, req)

				return err
			}

			ys, err := readSeries(args[1])
			if err != nil {
				return err
			}
			_, err = a.CrossProfile(xs, ys, req)

			return err
		},
	}
	addRunFlags(cmd, &flags)
	addMaxLagFlag(cmd, &flags)

	return cmd
}

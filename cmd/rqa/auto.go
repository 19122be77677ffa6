// SPDX-License-Identifier: MIT
// Command rqa: auto-recurrence subcommand.

package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cartersale/Recurrence-Quantification-Analysis/analysis"
)

// newAutoCmd quantifies the recurrence of one series with itself.
func newAutoCmd(root *rootOptions) *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "auto <series-file>",
		Short: "Quantify the recurrence of a series with itself",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			req, err := flags.request(filepath.Base(args[0]))
			if err != nil {
				return err
			}
			xs, err := readSeries(args[0])
			if err != nil {
				return err
			}

			_, err = analysis.New(root.log).Auto(xs, req)

			return err
		},
	}
	addRunFlags(cmd, &flags)

	return cmd
}

// SPDX-License-Identifier: MIT
// Command rqa: recurrence quantification analysis from the shell.

package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

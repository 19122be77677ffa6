// SPDX-License-Identifier: MIT
// Command rqa: numeric series file reader.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// readSeries loads a whitespace-separated numeric series from path. Values
// may be spread over any number of lines; everything from '#' to the end
// of a line is a comment. An empty file is an error, a missing file too.
func readSeries(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("series file: %w", err)
	}
	defer f.Close()

	var xs []float64
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		for _, field := range strings.Fields(text) {
			v, perr := strconv.ParseFloat(field, 64)
			if perr != nil {
				return nil, fmt.Errorf("series file %s:%d: value %q: %w", path, line, field, perr)
			}
			xs = append(xs, v)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("series file %s: %w", path, err)
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("series file %s: no numeric samples", path)
	}

	return xs, nil
}

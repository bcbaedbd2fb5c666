// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge concatenates per-test quiz spreadsheets into a single
// workbook, unioning columns across inputs.
package merge

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/quizgen/internal/table"
)

// MergeXLSX reads every .xlsx file in inputDir whose name starts with prefix
// (all .xlsx files when prefix is empty), concatenates their rows, and writes
// one workbook to outputPath. Columns are unioned in first-seen order; rows
// missing a column leave it empty. Unreadable inputs are reported to w and
// skipped. It returns the number of files merged; with zero readable inputs
// no output file is written.
func MergeXLSX(inputDir, prefix, outputPath string, w io.Writer) (int, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return 0, fmt.Errorf("reading input directory %s: %w", inputDir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".xlsx") {
			continue
		}
		if prefix != "" && !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	merged := &table.Table{}
	colIndex := map[string]int{}
	mergedFiles := 0

	for _, name := range names {
		t, err := table.ReadXLSX(filepath.Join(inputDir, name), "")
		if err != nil {
			fmt.Fprintf(w, "failed: %s (%v)\n", name, err)
			continue
		}

		for _, c := range t.Columns {
			if _, ok := colIndex[c]; !ok {
				colIndex[c] = len(merged.Columns)
				merged.Columns = append(merged.Columns, c)
			}
		}

		for r := range t.Rows {
			row := make([]string, len(merged.Columns))
			for i, c := range t.Columns {
				row[colIndex[c]] = t.Cell(r, i)
			}
			merged.Rows = append(merged.Rows, row)
		}

		fmt.Fprintf(w, "merged: %s (%d rows)\n", name, len(t.Rows))
		mergedFiles++
	}

	if mergedFiles == 0 {
		fmt.Fprintf(w, "no readable input files, nothing written\n")
		return 0, nil
	}

	// Earlier rows may be narrower than the final column union.
	for i, row := range merged.Rows {
		if len(row) < len(merged.Columns) {
			padded := make([]string, len(merged.Columns))
			copy(padded, row)
			merged.Rows[i] = padded
		}
	}

	if err := table.WriteXLSX(merged, outputPath); err != nil {
		return mergedFiles, err
	}
	fmt.Fprintf(w, "wrote %s (%d rows from %d files)\n", outputPath, len(merged.Rows), mergedFiles)
	return mergedFiles, nil
}

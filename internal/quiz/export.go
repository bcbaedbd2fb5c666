// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quiz

import (
	"github.com/pdiddy/quizgen/internal/table"
	"github.com/pdiddy/quizgen/pkg/types"
)

// Export flattens records into the standard output layout and writes them to
// an xlsx file at path: Question, Answer, Answer Key, then one column per
// option label. The option width is the largest option count across records;
// shorter records leave trailing columns empty.
func Export(records []types.QuizRecord, path string) error {
	width := maxOptions(records)

	columns := []string{"Question", "Answer", "Answer Key"}
	columns = append(columns, OptionLabels(width)...)

	rows := make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, 0, len(columns))
		row = append(row, rec.Question, rec.Answer.Text, rec.Answer.Key)
		for _, opt := range rec.Options {
			row = append(row, opt.Text)
		}
		rows[i] = row
	}

	return table.WriteXLSX(&table.Table{Columns: columns, Rows: rows}, path)
}

// maxOptions returns the widest option count across records.
func maxOptions(records []types.QuizRecord) int {
	width := 0
	for _, rec := range records {
		if len(rec.Options) > width {
			width = len(rec.Options)
		}
	}
	return width
}

// OptionLabels returns "A", "B", ... up to n labels.
func OptionLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = string(rune('A' + i))
	}
	return labels
}

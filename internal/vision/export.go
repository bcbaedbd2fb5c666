// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vision

import (
	"strconv"

	"github.com/pdiddy/quizgen/internal/quiz"
	"github.com/pdiddy/quizgen/internal/table"
	"github.com/pdiddy/quizgen/pkg/types"
)

// Export flattens vision records into the output layout and writes them to
// an xlsx file at path: fixed metadata columns followed by one column per
// option label, sized to the widest record.
func Export(records []types.QuizRecord, path string) error {
	width := 0
	for _, rec := range records {
		if len(rec.Options) > width {
			width = len(rec.Options)
		}
	}

	columns := []string{
		"Vision Encoder", "Question", "Figure", "Explanation", "Human Accuracy",
		"Field", "Test", "Date", "Answer", "Answer Key",
	}
	columns = append(columns, quiz.OptionLabels(width)...)

	rows := make([][]string, len(records))
	for i, rec := range records {
		vision := "0"
		if rec.HasVision {
			vision = "1"
		}
		row := make([]string, 0, len(columns))
		row = append(row,
			vision,
			rec.Question,
			rec.Image,
			rec.Explanation,
			strconv.FormatFloat(rec.Accuracy, 'f', -1, 64),
			rec.Field,
			rec.Test,
			rec.Date,
			rec.Answer.Text,
			rec.Answer.Key,
		)
		for _, opt := range rec.Options {
			row = append(row, opt.Text)
		}
		rows[i] = row
	}

	return table.WriteXLSX(&table.Table{Columns: columns, Rows: rows}, path)
}

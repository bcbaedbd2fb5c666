// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vision builds quiz records from CBT exam sheets: rows carrying a
// question, an enumerated option field, an optional base64 figure, an
// explanation, and per-item metadata. Options arrive pre-ordered in the
// source, so records are labeled in parse order without shuffling.
package vision

import (
	"github.com/spf13/cast"

	"github.com/pdiddy/quizgen/internal/table"
	"github.com/pdiddy/quizgen/pkg/types"
)

// LoadEntries extracts vision quiz entries from a source table using the
// configured column names. Loose cell types are resolved here once: item
// numbers arrive as floats, figure cells may be empty, and explanation cells
// may hold non-text markers.
func LoadEntries(t *table.Table, cols types.VisionColumns) ([]types.QuizEntry, error) {
	idx := map[string]int{}
	for _, name := range []string{
		cols.Number, cols.Question, cols.Image, cols.Options, cols.Answer,
		cols.Explanation, cols.Rate, cols.Field, cols.Name, cols.Date, cols.Subject,
	} {
		i, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		idx[name] = i
	}

	entries := make([]types.QuizEntry, len(t.Rows))
	for r := range t.Rows {
		cell := func(name string) string { return t.Cell(r, idx[name]) }

		var image []byte
		if raw := cell(cols.Image); raw != "" {
			image = []byte(raw)
		}

		entries[r] = types.QuizEntry{
			Number:      int(cast.ToFloat64(cell(cols.Number))),
			Question:    cell(cols.Question),
			RawOptions:  cell(cols.Options),
			Image:       image,
			RawAnswer:   cell(cols.Answer),
			Explanation: cell(cols.Explanation),
			RawRate:     cell(cols.Rate),
			Field:       cell(cols.Field),
			Name:        cell(cols.Name),
			Date:        cell(cols.Date),
			Subject:     cell(cols.Subject),
		}
	}
	return entries, nil
}

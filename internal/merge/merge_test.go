// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/quizgen/internal/table"
)

func writeSheet(t *testing.T, dir, name string, tab *table.Table) {
	t.Helper()
	require.NoError(t, table.WriteXLSX(tab, filepath.Join(dir, name)))
}

func TestMergeXLSX(t *testing.T) {
	inDir := t.TempDir()
	outPath := filepath.Join(t.TempDir(), "merged.xlsx")

	writeSheet(t, inDir, "시험_a.xlsx", &table.Table{
		Columns: []string{"Question", "Answer"},
		Rows:    [][]string{{"q1", "a1"}, {"q2", "a2"}},
	})
	writeSheet(t, inDir, "시험_b.xlsx", &table.Table{
		Columns: []string{"Question", "Answer", "Answer Key"},
		Rows:    [][]string{{"q3", "a3", "A"}},
	})
	writeSheet(t, inDir, "other.xlsx", &table.Table{
		Columns: []string{"x"},
		Rows:    [][]string{{"ignored"}},
	})

	var log bytes.Buffer
	n, err := MergeXLSX(inDir, "시험_", outPath, &log)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	out, err := table.ReadXLSX(outPath, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Question", "Answer", "Answer Key"}, out.Columns)
	require.Len(t, out.Rows, 3)
	assert.Equal(t, "q3", out.Rows[2][0])

	// Rows from the narrower file leave the unioned column empty.
	key, err := out.Column("Answer Key")
	require.NoError(t, err)
	assert.Equal(t, "", out.Cell(0, key))
	assert.Equal(t, "A", out.Cell(2, key))

	assert.Contains(t, log.String(), "merged: 시험_a.xlsx (2 rows)")
}

func TestMergeXLSXSkipsUnreadable(t *testing.T) {
	inDir := t.TempDir()
	outPath := filepath.Join(t.TempDir(), "merged.xlsx")

	writeSheet(t, inDir, "good.xlsx", &table.Table{
		Columns: []string{"a"},
		Rows:    [][]string{{"1"}},
	})
	require.NoError(t, os.WriteFile(filepath.Join(inDir, "broken.xlsx"), []byte("not a workbook"), 0o644))

	var log bytes.Buffer
	n, err := MergeXLSX(inDir, "", outPath, &log)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, log.String(), "failed: broken.xlsx")
}

func TestMergeXLSXNoInputs(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "merged.xlsx")

	var log bytes.Buffer
	n, err := MergeXLSX(t.TempDir(), "", outPath, &log)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr))
	assert.Contains(t, log.String(), "nothing written")
}

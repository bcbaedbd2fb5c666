// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "words.xlsx")

	in := &Table{
		Columns: []string{"외래어", "우리말"},
		Rows: [][]string{
			{"가꾸목", "각목"},
			{"노가다", "막일"},
		},
	}
	require.NoError(t, WriteXLSX(in, path))

	out, err := ReadXLSX(path, "")
	require.NoError(t, err)

	assert.Equal(t, in.Columns, out.Columns)
	assert.Equal(t, in.Rows, out.Rows)
}

func TestColumn(t *testing.T) {
	tab := &Table{Columns: []string{"문제", "정답"}}

	i, err := tab.Column("정답")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	_, err = tab.Column("없음")
	assert.Error(t, err)
}

func TestCellRaggedRow(t *testing.T) {
	tab := &Table{
		Columns: []string{"a", "b", "c"},
		Rows:    [][]string{{"1"}},
	}

	col, err := tab.Column("c")
	require.NoError(t, err)
	assert.Equal(t, "", tab.Cell(0, col))
	assert.Equal(t, "1", tab.Cell(0, 0))
	assert.Equal(t, "", tab.Cell(5, 0))
}

func TestReadMissingSheet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "one.xlsx")
	require.NoError(t, WriteXLSX(&Table{Columns: []string{"a"}}, path))

	_, err := ReadXLSX(path, "NoSuchSheet")
	assert.Error(t, err)
}

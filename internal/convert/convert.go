// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert reads and writes tabular files across formats, dispatching
// purely on file extension. Spreadsheets go through excelize; delimited text,
// JSON, and Parquet go through DuckDB.
package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/quizgen/internal/table"
	"github.com/pdiddy/quizgen/pkg/types"
)

// ErrUnsupportedFormat reports a file extension the converter cannot read or
// write. Formats with one-sided library support fail explicitly on the
// unsupported side rather than silently doing nothing.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// knownNoSupport lists extensions the converter recognizes but has no backend
// for, with the reason reported to the user.
var knownNoSupport = map[string]string{
	".orc":   "ORC has no read or write backend",
	".sas":   "SAS files have no read or write backend",
	".stata": "Stata files have no read or write backend",
	".hdf":   "HDF5 files have no read or write backend",
	".pkl":   "pickled objects are Python-specific",
}

// Read loads the file at path into a table, dispatching on its extension.
func Read(path string, cfg types.ConvertConfig) (*table.Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return table.ReadXLSX(path, "")
	case ".csv":
		return readCSV(path, ",")
	case ".tsv":
		return readCSV(path, "\t")
	case ".txt":
		return readCSV(path, delimiter(cfg))
	case ".json", ".jsonl", ".ndjson":
		return readJSON(path)
	case ".parquet":
		return readParquet(path)
	default:
		if reason, ok := knownNoSupport[ext]; ok {
			return nil, fmt.Errorf("%w: reading %s: %s", ErrUnsupportedFormat, ext, reason)
		}
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// Write saves t to the file at path, dispatching on its extension. Parent
// directories are created; an existing file is overwritten.
func Write(t *table.Table, path string, cfg types.ConvertConfig) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return table.WriteXLSX(t, path)
	case ".csv":
		return writeCSV(t, path, ",")
	case ".tsv":
		return writeCSV(t, path, "\t")
	case ".txt":
		return writeCSV(t, path, delimiter(cfg))
	case ".json":
		return writeJSON(t, path, true)
	case ".jsonl", ".ndjson":
		return writeJSON(t, path, false)
	case ".parquet":
		return writeParquet(t, path)
	default:
		if reason, ok := knownNoSupport[ext]; ok {
			return fmt.Errorf("%w: writing %s: %s", ErrUnsupportedFormat, ext, reason)
		}
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// Convert reads inputPath and writes its contents to outputPath in the format
// implied by the output extension.
func Convert(inputPath, outputPath string, cfg types.ConvertConfig) error {
	t, err := Read(inputPath, cfg)
	if err != nil {
		return err
	}
	return Write(t, outputPath, cfg)
}

// BatchResult holds the outcome of a directory conversion run.
type BatchResult struct {
	Converted int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any files failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertDir converts every file with an extension in inputDir, writing each
// result to outputDir with the extension outType. Per-file status goes to w;
// a failed file does not stop the batch.
func ConvertDir(inputDir, outputDir, outType string, cfg types.ConvertConfig, w io.Writer) (BatchResult, error) {
	if outType == "" {
		return BatchResult{}, fmt.Errorf("output type is required (e.g. csv, parquet, jsonl)")
	}
	outType = strings.TrimPrefix(outType, ".")

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return BatchResult{}, fmt.Errorf("reading input directory %s: %w", inputDir, err)
	}

	var result BatchResult
	for _, entry := range entries {
		if entry.IsDir() || !strings.Contains(entry.Name(), ".") {
			continue
		}

		inPath := filepath.Join(inputDir, entry.Name())
		base := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		outPath := filepath.Join(outputDir, base+"."+outType)

		if err := Convert(inPath, outPath, cfg); err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", entry.Name(), err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "converted: %s -> %s\n", entry.Name(), outPath)
		result.Converted++
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result, nil
}

func delimiter(cfg types.ConvertConfig) string {
	if cfg.Delimiter == "" {
		return "\t"
	}
	return cfg.Delimiter
}

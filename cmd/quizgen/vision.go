// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/quizgen/internal/table"
	"github.com/pdiddy/quizgen/internal/vision"
	"github.com/pdiddy/quizgen/pkg/types"
)

var visionCmd = &cobra.Command{
	Use:   "vision [input-dir]",
	Short: "Generate vision quizzes from CBT exam spreadsheets",
	Long: `Vision processes every .xlsx file in a directory of CBT exam sheets.
Each row carries a question, an enumerated option field, an optional base64
figure, an explanation, and item metadata. Figures are decoded to PNG files;
rows whose stated answer cannot be matched to a parsed option are skipped
with a logged warning and never abort the run.

Source column names default to the Korean CBT sheet layout and can be
overridden under vision.columns in the config file.`,
	Args: cobra.ExactArgs(1),
	RunE: runVision,
}

func init() {
	visionCmd.Flags().String("sheet", table.DefaultSheet, "sheet name to read")
	visionCmd.Flags().String("output-dir", "output", "directory for generated spreadsheets")
	visionCmd.Flags().String("image-dir", "output/img", "directory for decoded figure files")
	visionCmd.Flags().String("prefix", "", "prefix for output spreadsheet filenames")

	rootCmd.AddCommand(visionCmd)
}

func runVision(cmd *cobra.Command, args []string) error {
	cols := types.DefaultVisionColumns()
	if viper.IsSet("vision.columns") {
		if err := viper.UnmarshalKey("vision.columns", &cols); err != nil {
			return fmt.Errorf("reading vision.columns config: %w", err)
		}
	}

	cfg := types.VisionConfig{
		Sheet:        stringFlag(cmd, "sheet", "vision.sheet"),
		OutputDir:    stringFlag(cmd, "output-dir", "vision.output_dir"),
		ImageDir:     stringFlag(cmd, "image-dir", "vision.image_dir"),
		OutputPrefix: stringFlag(cmd, "prefix", "vision.output_prefix"),
		Columns:      cols,
	}
	inputDir := args[0]

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return fmt.Errorf("reading input directory %s: %w", inputDir, err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".xlsx") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		return fmt.Errorf("no .xlsx files in %s", inputDir)
	}

	builder := vision.NewBuilder(cfg, log)
	w := cmd.OutOrStdout()

	for _, name := range names {
		src, err := table.ReadXLSX(filepath.Join(inputDir, name), cfg.Sheet)
		if err != nil {
			return err
		}
		rows, err := vision.LoadEntries(src, cfg.Columns)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		records, err := builder.BuildAll(rows)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		outPath := filepath.Join(cfg.OutputDir, cfg.OutputPrefix+name)
		if err := vision.Export(records, outPath); err != nil {
			return err
		}
		fmt.Fprintf(w, "wrote %s (%d records, %d skipped)\n", outPath, len(records), len(rows)-len(records))
	}
	return nil
}

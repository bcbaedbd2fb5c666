// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/quizgen/internal/merge"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Concatenate quiz spreadsheets into one workbook",
	Long: `Merge concatenates every .xlsx file in a directory (optionally
filtered by filename prefix) into a single workbook, unioning columns across
inputs. Unreadable files are reported and skipped.`,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().String("input-dir", "output", "directory holding the spreadsheets to merge")
	mergeCmd.Flags().String("prefix", "", "only merge files whose name starts with this prefix")
	mergeCmd.Flags().String("output", "output/merged.xlsx", "path of the merged workbook")

	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	inputDir := stringFlag(cmd, "input-dir", "merge.input_dir")
	prefix := stringFlag(cmd, "prefix", "merge.prefix")
	output := stringFlag(cmd, "output", "merge.output")

	n, err := merge.MergeXLSX(inputDir, prefix, output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no spreadsheets merged from %s", inputDir)
	}
	return nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/quizgen/internal/convert"
	"github.com/pdiddy/quizgen/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input output]",
	Short: "Convert tabular files between formats",
	Long: `Convert reads a tabular file and writes it in another format, chosen
by file extension. Supported: xlsx, csv, tsv, txt (delimited), json, jsonl,
ndjson, parquet.

With two arguments a single file is converted. With --input-dir, every file
in the directory is converted to --to and written under --output-dir.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("input-dir", "", "convert every file in this directory")
	convertCmd.Flags().String("output-dir", "", "directory for batch conversion output")
	convertCmd.Flags().String("to", "", "output extension for batch conversion (e.g. csv, parquet)")
	convertCmd.Flags().String("delimiter", "\t", "field separator for .txt files")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := types.ConvertConfig{
		Delimiter: stringFlag(cmd, "delimiter", "convert.delimiter"),
	}

	inputDir, _ := cmd.Flags().GetString("input-dir")
	if inputDir != "" {
		outputDir, _ := cmd.Flags().GetString("output-dir")
		outType, _ := cmd.Flags().GetString("to")
		if outputDir == "" {
			return fmt.Errorf("--output-dir is required with --input-dir")
		}

		result, err := convert.ConvertDir(inputDir, outputDir, outType, cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if result.HasFailures() {
			return fmt.Errorf("%d file(s) failed conversion", result.Failed)
		}
		return nil
	}

	if len(args) != 2 {
		return fmt.Errorf("provide input and output paths, or use --input-dir")
	}
	if err := convert.Convert(args[0], args[1], cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[1])
	return nil
}

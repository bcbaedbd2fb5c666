// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/quizgen/internal/quiz"
	"github.com/pdiddy/quizgen/internal/table"
	"github.com/pdiddy/quizgen/internal/template"
	"github.com/pdiddy/quizgen/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate [input.xlsx]",
	Short: "Generate word-pair quizzes from a spreadsheet",
	Long: `Generate reads term/answer pairs from a spreadsheet, composes one
multiple-choice question per row from a template, and writes the quizzes to a
spreadsheet in the output directory. Distractors are drawn at random from the
other rows' answers.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("template", "templates.yaml", "YAML file holding question templates")
	generateCmd.Flags().String("template-key", "standard_quiz_gen", "template entry to use")
	generateCmd.Flags().String("placeholder", "STANDARD", "placeholder token replaced with the term")
	generateCmd.Flags().String("sheet", table.DefaultSheet, "sheet name to read")
	generateCmd.Flags().Int("distractors", 4, "number of incorrect options per question")
	generateCmd.Flags().String("term-column", "해설", "source column holding the quizzed term")
	generateCmd.Flags().String("answer-column", "단어", "source column holding the correct answer")
	generateCmd.Flags().String("output-dir", "output", "directory for the generated spreadsheet")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := types.GenerateConfig{
		TemplatePath: stringFlag(cmd, "template", "generate.template_path"),
		TemplateKey:  stringFlag(cmd, "template-key", "generate.template_key"),
		Placeholder:  stringFlag(cmd, "placeholder", "generate.placeholder"),
		Sheet:        stringFlag(cmd, "sheet", "generate.sheet"),
		Distractors:  intFlag(cmd, "distractors", "generate.distractors"),
		TermColumn:   stringFlag(cmd, "term-column", "generate.term_column"),
		AnswerColumn: stringFlag(cmd, "answer-column", "generate.answer_column"),
		OutputDir:    stringFlag(cmd, "output-dir", "generate.output_dir"),
	}
	inputPath := args[0]

	src, err := table.ReadXLSX(inputPath, cfg.Sheet)
	if err != nil {
		return err
	}
	pairs, err := quiz.LoadPairs(src, cfg.TermColumn, cfg.AnswerColumn)
	if err != nil {
		return err
	}

	templateText, err := template.NewStore().Load(cfg.TemplatePath, cfg.TemplateKey)
	if err != nil {
		return err
	}

	records, err := quiz.NewBuilder(cfg, templateText, nil).BuildAll(pairs)
	if err != nil {
		return err
	}

	outPath := filepath.Join(cfg.OutputDir, filepath.Base(inputPath))
	if err := quiz.Export(records, outPath); err != nil {
		return err
	}

	log.Infof("quizzes saved to %s (%d records)", outPath, len(records))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d records)\n", outPath, len(records))
	return nil
}

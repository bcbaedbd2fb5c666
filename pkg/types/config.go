// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// GenerateConfig holds settings for standard quiz generation.
type GenerateConfig struct {
	// TemplatePath is the YAML file holding question templates.
	TemplatePath string `json:"template_path" yaml:"template_path"`

	// TemplateKey selects the template entry within the YAML file.
	TemplateKey string `json:"template_key" yaml:"template_key"`

	// Placeholder is the literal token in the template text that is
	// replaced with the source term (e.g. "LOANWORD" or "STANDARD").
	Placeholder string `json:"placeholder" yaml:"placeholder"`

	// Sheet is the spreadsheet sheet name to load (default "Sheet1").
	Sheet string `json:"sheet" yaml:"sheet"`

	// Distractors is the number of incorrect options per question (default 3).
	Distractors int `json:"distractors" yaml:"distractors"`

	// TermColumn is the source column holding the quizzed term.
	TermColumn string `json:"term_column" yaml:"term_column"`

	// AnswerColumn is the source column holding the correct answer.
	AnswerColumn string `json:"answer_column" yaml:"answer_column"`

	// OutputDir is the directory where generated spreadsheets are written.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// VisionColumns names the source columns for vision quiz input. The defaults
// match the Korean CBT spreadsheets the pipeline was built for.
type VisionColumns struct {
	Number      string `json:"number" yaml:"number"`
	Question    string `json:"question" yaml:"question"`
	Image       string `json:"image" yaml:"image"`
	Options     string `json:"options" yaml:"options"`
	Answer      string `json:"answer" yaml:"answer"`
	Explanation string `json:"explanation" yaml:"explanation"`
	Rate        string `json:"rate" yaml:"rate"`
	Field       string `json:"field" yaml:"field"`
	Name        string `json:"name" yaml:"name"`
	Date        string `json:"date" yaml:"date"`
	Subject     string `json:"subject" yaml:"subject"`
}

// DefaultVisionColumns returns the column names used by the CBT source sheets.
func DefaultVisionColumns() VisionColumns {
	return VisionColumns{
		Number:      "문제번호",
		Question:    "문제",
		Image:       "그림",
		Options:     "문항",
		Answer:      "정답",
		Explanation: "문제해설",
		Rate:        "정답률",
		Field:       "CBT",
		Name:        "시험",
		Date:        "출제일자",
		Subject:     "과목",
	}
}

// VisionConfig holds settings for vision quiz generation.
type VisionConfig struct {
	// Sheet is the spreadsheet sheet name to load (default "Sheet1").
	Sheet string `json:"sheet" yaml:"sheet"`

	// OutputDir is the directory where generated spreadsheets are written.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// ImageDir is the directory where decoded figures are written.
	ImageDir string `json:"image_dir" yaml:"image_dir"`

	// OutputPrefix is prepended to each output spreadsheet filename.
	OutputPrefix string `json:"output_prefix" yaml:"output_prefix"`

	// Columns maps record fields to source column names.
	Columns VisionColumns `json:"columns" yaml:"columns"`
}

// ConvertConfig holds settings for the tabular format converter.
type ConvertConfig struct {
	// Delimiter is the field separator for .txt files (default tab).
	Delimiter string `json:"delimiter" yaml:"delimiter"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Generate GenerateConfig `json:"generate" yaml:"generate"`
	Vision   VisionConfig   `json:"vision" yaml:"vision"`
	Convert  ConvertConfig  `json:"convert" yaml:"convert"`
}

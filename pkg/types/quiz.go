// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the domain types and stage configurations shared
// across the quizgen pipeline.
package types

// WordPair is one standard-mode source row: a term and its correct answer.
// Pairs are created at load time and read-only thereafter.
type WordPair struct {
	// Term is the quizzed term substituted into the question template.
	Term string `json:"term" yaml:"term"`

	// Answer is the correct option text for the term.
	Answer string `json:"answer" yaml:"answer"`
}

// Option is a single labeled choice within a quiz record.
type Option struct {
	// Label is a single uppercase letter assigned in option order ("A", "B", ...).
	Label string `json:"label" yaml:"label"`

	// Text is the option text shown to the quiz taker.
	Text string `json:"text" yaml:"text"`
}

// Answer identifies the correct option of a quiz record.
type Answer struct {
	// Text is the correct option text.
	Text string `json:"text" yaml:"text"`

	// Key is the label of the option whose text equals Text.
	Key string `json:"key" yaml:"key"`
}

// QuizRecord is the canonical output unit for both generation modes.
// Vision-only fields are zero-valued for standard records.
type QuizRecord struct {
	Question string   `json:"question" yaml:"question"`
	Options  []Option `json:"options" yaml:"options"`
	Answer   Answer   `json:"answer" yaml:"answer"`

	// Image is the path of the decoded figure file, or "" when absent.
	Image string `json:"image,omitempty" yaml:"image,omitempty"`

	// Explanation is the commentary for the question, "" when the source
	// cell was empty or not text.
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`

	// Accuracy is the human answer rate as a ratio in [0, 1].
	Accuracy float64 `json:"accuracy,omitempty" yaml:"accuracy,omitempty"`

	Field   string `json:"field,omitempty" yaml:"field,omitempty"`
	Test    string `json:"test,omitempty" yaml:"test,omitempty"`
	Date    string `json:"date,omitempty" yaml:"date,omitempty"`
	Subject string `json:"subject,omitempty" yaml:"subject,omitempty"`

	// HasVision reports whether a figure was decoded for this record.
	HasVision bool `json:"has_vision,omitempty" yaml:"has_vision,omitempty"`
}

// OptionByKey returns the option carrying the given label, or false when no
// option has it.
func (r QuizRecord) OptionByKey(key string) (Option, bool) {
	for _, o := range r.Options {
		if o.Label == key {
			return o, true
		}
	}
	return Option{}, false
}

// QuizEntry is one vision-mode source row with loose cell types resolved:
// the item number arrives as a float in the source sheet, the image cell may
// be absent, and the explanation cell may hold a missing-value marker.
type QuizEntry struct {
	// Number is the item number within the source test.
	Number int `json:"number" yaml:"number"`

	// Question is the question text, used verbatim.
	Question string `json:"question" yaml:"question"`

	// RawOptions is the single delimited field holding all enumerated options.
	RawOptions string `json:"raw_options" yaml:"raw_options"`

	// Image is the base64 figure payload, nil when the row has no figure.
	Image []byte `json:"image,omitempty" yaml:"image,omitempty"`

	// RawAnswer is the stated correct answer before normalization.
	RawAnswer string `json:"raw_answer" yaml:"raw_answer"`

	// Explanation is the commentary text, "" when the cell was not text.
	Explanation string `json:"explanation" yaml:"explanation"`

	// RawRate is the stated human answer rate, e.g. "82%".
	RawRate string `json:"raw_rate" yaml:"raw_rate"`

	Field   string `json:"field" yaml:"field"`
	Name    string `json:"name" yaml:"name"`
	Date    string `json:"date" yaml:"date"`
	Subject string `json:"subject" yaml:"subject"`
}

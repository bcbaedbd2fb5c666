// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quiz

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/pdiddy/quizgen/internal/table"
	"github.com/pdiddy/quizgen/pkg/types"
)

// Builder composes quiz records from word pairs. Configuration and the
// question template are fixed at construction; a Builder is read-only for the
// duration of a run.
type Builder struct {
	cfg      types.GenerateConfig
	template string
	rng      *rand.Rand
}

// NewBuilder returns a Builder using the given template text. rng may be nil,
// in which case a randomly seeded source is used; tests inject a seeded one.
func NewBuilder(cfg types.GenerateConfig, templateText string, rng *rand.Rand) *Builder {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Builder{cfg: cfg, template: templateText, rng: rng}
}

// Build composes one quiz record for pair, drawing distractors from the
// answers of all other pairs. Options are shuffled and labeled "A", "B", ...
// in post-shuffle order; the answer key is the label of the first option
// whose text equals the correct answer.
func (b *Builder) Build(pair types.WordPair, all []types.WordPair) (types.QuizRecord, error) {
	pool := make([]string, len(all))
	for i, p := range all {
		pool[i] = p.Answer
	}

	distractors, err := SampleDistractors(pool, pair.Answer, b.cfg.Distractors, b.rng)
	if err != nil {
		return types.QuizRecord{}, fmt.Errorf("sampling distractors for %q: %w", pair.Term, err)
	}

	texts := append(distractors, pair.Answer)
	b.rng.Shuffle(len(texts), func(i, j int) {
		texts[i], texts[j] = texts[j], texts[i]
	})

	options := make([]types.Option, len(texts))
	key := ""
	for i, text := range texts {
		label := string(rune('A' + i))
		options[i] = types.Option{Label: label, Text: text}
		if key == "" && text == pair.Answer {
			key = label
		}
	}

	return types.QuizRecord{
		Question: strings.ReplaceAll(b.template, b.cfg.Placeholder, pair.Term),
		Options:  options,
		Answer:   types.Answer{Text: pair.Answer, Key: key},
	}, nil
}

// BuildAll composes a record for every pair, in source row order. The first
// failure aborts the batch.
func (b *Builder) BuildAll(pairs []types.WordPair) ([]types.QuizRecord, error) {
	records := make([]types.QuizRecord, 0, len(pairs))
	for _, pair := range pairs {
		rec, err := b.Build(pair, pairs)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadPairs extracts word pairs from the named columns of a source table.
func LoadPairs(t *table.Table, termColumn, answerColumn string) ([]types.WordPair, error) {
	termCol, err := t.Column(termColumn)
	if err != nil {
		return nil, err
	}
	answerCol, err := t.Column(answerColumn)
	if err != nil {
		return nil, err
	}

	pairs := make([]types.WordPair, len(t.Rows))
	for i := range t.Rows {
		pairs[i] = types.WordPair{
			Term:   t.Cell(i, termCol),
			Answer: t.Cell(i, answerCol),
		}
	}
	return pairs, nil
}

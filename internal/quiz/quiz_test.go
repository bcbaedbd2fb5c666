// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quiz

import (
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/quizgen/internal/table"
	"github.com/pdiddy/quizgen/pkg/types"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

var testPairs = []types.WordPair{
	{Term: "가꾸목", Answer: "각목"},
	{Term: "노가다", Answer: "막일"},
	{Term: "시마이", Answer: "마무리"},
	{Term: "단도리", Answer: "채비"},
	{Term: "와쿠", Answer: "틀"},
}

func TestSampleDistractors(t *testing.T) {
	pool := []string{"각목", "막일", "마무리", "채비", "틀"}

	got, err := SampleDistractors(pool, "각목", 3, testRand())
	require.NoError(t, err)
	require.Len(t, got, 3)

	seen := map[string]bool{}
	for _, d := range got {
		assert.NotEqual(t, "각목", d, "sample must exclude the correct answer")
		assert.False(t, seen[d], "sample must not repeat entries")
		seen[d] = true
	}
}

func TestSampleDistractorsInsufficientPool(t *testing.T) {
	pool := []string{"각목", "막일", "마무리"}

	_, err := SampleDistractors(pool, "각목", 3, testRand())
	assert.ErrorIs(t, err, ErrInsufficientPool)
}

func TestBuild(t *testing.T) {
	cfg := types.GenerateConfig{Placeholder: "LOANWORD", Distractors: 3}
	b := NewBuilder(cfg, "LOANWORD의 순화어로 알맞은 것은?", testRand())

	rec, err := b.Build(testPairs[0], testPairs)
	require.NoError(t, err)

	assert.Equal(t, "가꾸목의 순화어로 알맞은 것은?", rec.Question)
	require.Len(t, rec.Options, 4)

	// Labels are contiguous from "A" and each option carries a unique one.
	matches := 0
	for i, opt := range rec.Options {
		assert.Equal(t, string(rune('A'+i)), opt.Label)
		if opt.Text == rec.Answer.Text {
			matches++
		}
	}
	assert.Equal(t, 1, matches, "exactly one option equals the correct answer")

	keyed, ok := rec.OptionByKey(rec.Answer.Key)
	require.True(t, ok)
	assert.Equal(t, rec.Answer.Text, keyed.Text)
	assert.Equal(t, "각목", rec.Answer.Text)
}

func TestBuildInsufficientPool(t *testing.T) {
	cfg := types.GenerateConfig{Placeholder: "LOANWORD", Distractors: 10}
	b := NewBuilder(cfg, "LOANWORD?", testRand())

	_, err := b.Build(testPairs[0], testPairs)
	assert.ErrorIs(t, err, ErrInsufficientPool)
}

func TestBuildAll(t *testing.T) {
	cfg := types.GenerateConfig{Placeholder: "LOANWORD", Distractors: 3}
	b := NewBuilder(cfg, "LOANWORD?", testRand())

	records, err := b.BuildAll(testPairs)
	require.NoError(t, err)
	require.Len(t, records, 5)

	for i, rec := range records {
		assert.Len(t, rec.Options, 4)
		// Output order follows source row order.
		assert.Equal(t, testPairs[i].Answer, rec.Answer.Text)
		keyed, ok := rec.OptionByKey(rec.Answer.Key)
		require.True(t, ok)
		assert.Equal(t, rec.Answer.Text, keyed.Text)
	}
}

// Duplicate answers in the source data are a known ambiguity: the correct
// answer may appear twice among the options and the key points at the first
// textual match. Assert only the structural invariant, not which copy wins.
func TestBuildDuplicateSourceAnswers(t *testing.T) {
	pairs := []types.WordPair{
		{Term: "가꾸목", Answer: "각목"},
		{Term: "가쿠모쿠", Answer: "각목"},
		{Term: "노가다", Answer: "막일"},
		{Term: "시마이", Answer: "마무리"},
	}
	cfg := types.GenerateConfig{Placeholder: "LOANWORD", Distractors: 2}
	b := NewBuilder(cfg, "LOANWORD?", testRand())

	rec, err := b.Build(pairs[0], pairs)
	require.NoError(t, err)

	keyed, ok := rec.OptionByKey(rec.Answer.Key)
	require.True(t, ok)
	assert.Equal(t, rec.Answer.Text, keyed.Text)
	for _, opt := range rec.Options {
		if opt.Text == rec.Answer.Text {
			// The key must point at the first match in label order.
			assert.Equal(t, opt.Label, rec.Answer.Key)
			break
		}
	}
}

func TestLoadPairs(t *testing.T) {
	tab := &table.Table{
		Columns: []string{"외래어", "우리말"},
		Rows:    [][]string{{"가꾸목", "각목"}, {"노가다", "막일"}},
	}

	pairs, err := LoadPairs(tab, "외래어", "우리말")
	require.NoError(t, err)
	assert.Equal(t, []types.WordPair{
		{Term: "가꾸목", Answer: "각목"},
		{Term: "노가다", Answer: "막일"},
	}, pairs)

	_, err = LoadPairs(tab, "없는열", "우리말")
	assert.Error(t, err)
}

func TestEndToEnd(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "words.xlsx")

	src := &table.Table{Columns: []string{"외래어", "우리말"}}
	for _, p := range testPairs {
		src.Rows = append(src.Rows, []string{p.Term, p.Answer})
	}
	require.NoError(t, table.WriteXLSX(src, srcPath))

	loaded, err := table.ReadXLSX(srcPath, "")
	require.NoError(t, err)
	pairs, err := LoadPairs(loaded, "외래어", "우리말")
	require.NoError(t, err)

	cfg := types.GenerateConfig{Placeholder: "LOANWORD", Distractors: 3}
	records, err := NewBuilder(cfg, "LOANWORD?", testRand()).BuildAll(pairs)
	require.NoError(t, err)

	outPath := filepath.Join(dir, "quizzes.xlsx")
	require.NoError(t, Export(records, outPath))

	out, err := table.ReadXLSX(outPath, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Question", "Answer", "Answer Key", "A", "B", "C", "D"}, out.Columns)
	require.Len(t, out.Rows, 5)

	key, err := out.Column("Answer Key")
	require.NoError(t, err)
	for r := range out.Rows {
		opt, err := out.Column(out.Cell(r, key))
		require.NoError(t, err)
		assert.Equal(t, out.Cell(r, 1), out.Cell(r, opt), "keyed option must equal the answer text")
	}
}

func TestExport(t *testing.T) {
	records := []types.QuizRecord{
		{
			Question: "가꾸목?",
			Options: []types.Option{
				{Label: "A", Text: "각목"}, {Label: "B", Text: "막일"},
				{Label: "C", Text: "채비"}, {Label: "D", Text: "틀"},
			},
			Answer: types.Answer{Text: "각목", Key: "A"},
		},
		{
			Question: "노가다?",
			Options: []types.Option{
				{Label: "A", Text: "막일"}, {Label: "B", Text: "각목"},
			},
			Answer: types.Answer{Text: "막일", Key: "A"},
		},
	}

	path := filepath.Join(t.TempDir(), "quizzes.xlsx")
	require.NoError(t, Export(records, path))

	out, err := table.ReadXLSX(path, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Question", "Answer", "Answer Key", "A", "B", "C", "D"}, out.Columns)
	require.Len(t, out.Rows, 2)
	assert.Equal(t, []string{"가꾸목?", "각목", "A", "각목", "막일", "채비", "틀"}, out.Rows[0])

	// The short record leaves its trailing option columns empty.
	c, err := out.Column("C")
	require.NoError(t, err)
	assert.Equal(t, "", out.Cell(1, c))
	assert.Equal(t, "막일", out.Cell(1, 3))
}

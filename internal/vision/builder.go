// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vision

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pdiddy/quizgen/pkg/types"
)

// Builder composes vision quiz records. Configuration is fixed at
// construction and read-only for the duration of a run.
type Builder struct {
	cfg types.VisionConfig
	log *zap.SugaredLogger
}

// NewBuilder returns a Builder writing figures under cfg.ImageDir. log may be
// nil, in which case warnings are discarded.
func NewBuilder(cfg types.VisionConfig, log *zap.SugaredLogger) *Builder {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Builder{cfg: cfg, log: log}
}

// Build composes one quiz record from a source entry. It returns (nil, nil)
// when the stated answer cannot be matched against any parsed option: messy
// source rows are an expected outcome, logged with enough context to locate
// them, and never abort a run.
func (b *Builder) Build(entry types.QuizEntry) (*types.QuizRecord, error) {
	answer := NormalizeAnswer(entry.RawAnswer)
	texts := ParseOptions(entry.RawOptions)

	options := make([]types.Option, len(texts))
	key := ""
	for i, text := range texts {
		label := string(rune('A' + i))
		options[i] = types.Option{Label: label, Text: text}
		if key == "" && text == answer {
			key = label
		}
	}
	if key == "" {
		b.log.Warnf("[%s-%s-%s-%d] correct answer %q not found in options %v, skipping",
			entry.Field, entry.Name, entry.Date, entry.Number, answer, texts)
		return nil, nil
	}

	imagePath := ""
	if len(entry.Image) > 0 {
		path, err := b.writeImage(entry)
		if err != nil {
			return nil, fmt.Errorf("decoding figure for %s-%s-%s-%d: %w",
				entry.Field, entry.Name, entry.Date, entry.Number, err)
		}
		imagePath = path
	}

	rate, ok := ParseRate(entry.RawRate)
	if !ok {
		b.log.Warnf("no valid percentage in %q, defaulting to 0.0", entry.RawRate)
	}

	date, err := ConvertDate(entry.Date)
	if err != nil {
		return nil, err
	}

	return &types.QuizRecord{
		Question:    entry.Question,
		Options:     options,
		Answer:      types.Answer{Text: answer, Key: key},
		Image:       imagePath,
		Explanation: NormalizeExplanation(entry.Explanation),
		Accuracy:    rate,
		Field:       entry.Field,
		Test:        entry.Name,
		Date:        date,
		Subject:     entry.Subject,
		HasVision:   imagePath != "",
	}, nil
}

// BuildAll composes records for all entries in source row order, dropping
// skipped rows. Hard failures (malformed dates, undecodable figures) abort
// the batch; skips only reduce the emitted count.
func (b *Builder) BuildAll(entries []types.QuizEntry) ([]types.QuizRecord, error) {
	records := make([]types.QuizRecord, 0, len(entries))
	for _, entry := range entries {
		rec, err := b.Build(entry)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			continue
		}
		records = append(records, *rec)
	}
	return records, nil
}

// writeImage pads the base64 payload to a multiple-of-4 length, decodes it,
// and persists it as {field}-{name}-{date}-{NNN}.png under the image
// directory. The filename keeps the source-form date.
func (b *Builder) writeImage(entry types.QuizEntry) (string, error) {
	payload := entry.Image
	if missing := len(payload) % 4; missing != 0 {
		payload = append(bytes.Clone(payload), bytes.Repeat([]byte{'='}, 4-missing)...)
	}

	data, err := base64.StdEncoding.DecodeString(string(payload))
	if err != nil {
		return "", fmt.Errorf("decoding base64 payload: %w", err)
	}

	if err := os.MkdirAll(b.cfg.ImageDir, 0o755); err != nil {
		return "", fmt.Errorf("creating image directory %s: %w", b.cfg.ImageDir, err)
	}

	name := fmt.Sprintf("%s-%s-%s-%03d.png", entry.Field, entry.Name, entry.Date, entry.Number)
	path := filepath.Join(b.cfg.ImageDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplates(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTemplates(t, `
quiz_gen:
  question: "LOANWORD의 순화어로 알맞은 것은?"
standard_quiz_gen:
  question: "STANDARD의 뜻으로 알맞은 것은?"
`)

	tests := []struct {
		name    string
		key     string
		want    string
		wantErr error
	}{
		{
			name: "existing key",
			key:  "quiz_gen",
			want: "LOANWORD의 순화어로 알맞은 것은?",
		},
		{
			name: "second key",
			key:  "standard_quiz_gen",
			want: "STANDARD의 뜻으로 알맞은 것은?",
		},
		{
			name:    "missing key",
			key:     "nonexistent",
			wantErr: ErrTemplateNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(path, tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), "quiz_gen")
	assert.Error(t, err)

	path := writeTemplates(t, "not: [valid: yaml: {{")
	_, err = Load(path, "quiz_gen")
	assert.Error(t, err)
}

func TestStoreCaches(t *testing.T) {
	path := writeTemplates(t, "quiz_gen:\n  question: \"LOANWORD?\"\n")

	s := NewStore()
	first, err := s.Load(path, "quiz_gen")
	require.NoError(t, err)

	// Removing the file must not invalidate the cached entry.
	require.NoError(t, os.Remove(path))
	second, err := s.Load(path, "quiz_gen")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = s.Load(path, "other_key")
	assert.Error(t, err)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package template loads question templates from a YAML file keyed by
// template name. Each entry holds a question string with a placeholder token
// to be substituted with the quizzed term.
package template

import (
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// ErrTemplateNotFound reports that the requested key is absent from an
// otherwise readable template file.
var ErrTemplateNotFound = errors.New("template not found")

// Entry is one named template in the YAML file.
type Entry struct {
	// Question is the template text containing the placeholder token.
	Question string `yaml:"question"`
}

// Load reads the template file at path and returns the question text stored
// under key.
func Load(path, key string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading template file %s: %w", path, err)
	}

	var entries map[string]Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return "", fmt.Errorf("parsing template file %s: %w", path, err)
	}

	entry, ok := entries[key]
	if !ok {
		return "", fmt.Errorf("%w: key %q in %s", ErrTemplateNotFound, key, path)
	}
	return entry.Question, nil
}

// Store caches template lookups per (path, key) for the duration of a run.
type Store struct {
	cache map[[2]string]string
}

// NewStore returns an empty template store.
func NewStore() *Store {
	return &Store{cache: make(map[[2]string]string)}
}

// Load returns the template under key in the file at path, reading the file
// at most once per (path, key).
func (s *Store) Load(path, key string) (string, error) {
	ck := [2]string{path, key}
	if text, ok := s.cache[ck]; ok {
		return text, nil
	}
	text, err := Load(path, key)
	if err != nil {
		return "", err
	}
	s.cache[ck] = text
	return text, nil
}

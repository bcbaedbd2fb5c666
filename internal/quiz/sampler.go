// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package quiz builds standard multiple-choice records from word-pair tables:
// distractor sampling, option shuffling, label assignment, and spreadsheet
// export.
package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInsufficientPool reports that the distractor pool holds fewer eligible
// entries than the requested sample size.
var ErrInsufficientPool = errors.New("insufficient distractor pool")

// SampleDistractors draws n entries uniformly without replacement from pool,
// excluding entries equal to exclude. The draw is a hard failure when fewer
// than n eligible entries remain; the pool is never silently truncated.
func SampleDistractors(pool []string, exclude string, n int, rng *rand.Rand) ([]string, error) {
	eligible := make([]string, 0, len(pool))
	for _, p := range pool {
		if p != exclude {
			eligible = append(eligible, p)
		}
	}
	if n > len(eligible) {
		return nil, fmt.Errorf("%w: need %d, have %d eligible entries", ErrInsufficientPool, n, len(eligible))
	}

	rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	return eligible[:n:n], nil
}

// MovieHub - Movie Catalog, Reviews, and Recommendations
// Copyright 2026 MovieHub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviehub/moviehub

// Package sentiment implements a lexicon-based sentiment scorer for
// review comments.
//
// The scorer is a weighted-keyword scanner: it sums the weights of
// every lexicon entry found as a substring of the lowercased text and
// normalizes by the number of matches. The result is clamped to
// [-1, 1]. Label derivation uses fixed thresholds: scores above 0.1
// are positive, below -0.1 negative, otherwise neutral.
//
// This is intentionally simple; it exists so stored reviews carry a
// tone label without an external NLP dependency.
package sentiment

import (
	"strings"

	"github.com/moviehub/moviehub/internal/models"
)

// Classification thresholds. Scores in (-0.1, 0.1] are neutral.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// positiveWords maps positive lexicon entries to their weights.
var positiveWords = map[string]float64{
	"great":     0.8,
	"excellent": 0.9,
	"amazing":   0.9,
	"wonderful": 0.8,
	"fantastic": 0.9,
	"awesome":   0.8,
	"brilliant": 0.9,
	"perfect":   1.0,
	"love":      0.8,
	"recommend": 0.7,
}

// negativeWords maps negative lexicon entries to their weights.
var negativeWords = map[string]float64{
	"bad":           -0.8,
	"terrible":      -0.9,
	"awful":         -0.9,
	"horrible":      -0.9,
	"boring":        -0.6,
	"disappointing": -0.8,
	"hate":          -0.8,
	"worst":         -1.0,
	"stupid":        -0.7,
	"waste":         -0.8,
}

// Score computes the sentiment score of text, clamped to [-1, 1].
// Blank text or text with no lexicon matches scores 0.
func Score(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	score := rawScore(text)
	if score > 1.0 {
		return 1.0
	}
	if score < -1.0 {
		return -1.0
	}
	return score
}

// Classify derives a sentiment label from the score of text.
func Classify(text string) models.SentimentLabel {
	score := Score(text)
	switch {
	case score > positiveThreshold:
		return models.SentimentPositive
	case score < negativeThreshold:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// rawScore sums matched lexicon weights and normalizes by match count.
func rawScore(text string) float64 {
	lower := strings.ToLower(text)

	var total float64
	var matches int

	for word, weight := range positiveWords {
		if strings.Contains(lower, word) {
			total += weight
			matches++
		}
	}
	for word, weight := range negativeWords {
		if strings.Contains(lower, word) {
			total += weight
			matches++
		}
	}

	if matches == 0 {
		return 0
	}
	return total / float64(matches)
}

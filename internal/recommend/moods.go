// MovieHub - Movie Catalog, Reviews, and Recommendations
// Copyright 2026 MovieHub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviehub/moviehub

package recommend

import (
	"sort"
	"strings"
)

// MoodTaxonomy maps mood labels to target genre sets. It is built once
// at construction time and never mutated afterwards, so it is safe to
// share across goroutines.
type MoodTaxonomy struct {
	genres map[string][]string
}

// NewMoodTaxonomy builds a taxonomy from a mood-to-genres mapping.
// Mood labels are normalized to lower case; genre lists are copied.
func NewMoodTaxonomy(mapping map[string][]string) *MoodTaxonomy {
	genres := make(map[string][]string, len(mapping))
	for mood, list := range mapping {
		copied := make([]string, len(list))
		copy(copied, list)
		genres[strings.ToLower(mood)] = copied
	}
	return &MoodTaxonomy{genres: genres}
}

// DefaultMoodTaxonomy returns the built-in mood-to-genre mapping.
func DefaultMoodTaxonomy() *MoodTaxonomy {
	return NewMoodTaxonomy(map[string][]string{
		"happy":       {"Comedy", "Animation", "Family", "Music"},
		"sad":         {"Drama", "Romance", "Music"},
		"excited":     {"Action", "Adventure", "Thriller", "Science Fiction"},
		"relaxed":     {"Drama", "Romance", "Documentary", "Music"},
		"romantic":    {"Romance", "Drama", "Comedy"},
		"scared":      {"Horror", "Thriller", "Mystery"},
		"adventurous": {"Adventure", "Action", "Fantasy", "Science Fiction"},
		"thoughtful":  {"Drama", "Documentary", "History", "Biography"},
	})
}

// Genres returns the target genre set for a mood. Lookup is
// case-insensitive; unknown moods map to an empty set. The returned
// slice is a copy and safe to modify.
func (t *MoodTaxonomy) Genres(mood string) []string {
	list, ok := t.genres[strings.ToLower(mood)]
	if !ok {
		return []string{}
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Moods returns all known mood labels, sorted.
func (t *MoodTaxonomy) Moods() []string {
	moods := make([]string, 0, len(t.genres))
	for mood := range t.genres {
		moods = append(moods, mood)
	}
	sort.Strings(moods)
	return moods
}

// MovieHub - Movie Catalog, Reviews, and Recommendations
// Copyright 2026 MovieHub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviehub/moviehub

package recommend

import (
	"reflect"
	"testing"
)

func TestMoodTaxonomyGenres(t *testing.T) {
	taxonomy := DefaultMoodTaxonomy()

	tests := []struct {
		name string
		mood string
		want []string
	}{
		{
			name: "known mood",
			mood: "happy",
			want: []string{"Comedy", "Animation", "Family", "Music"},
		},
		{
			name: "case insensitive",
			mood: "HAPPY",
			want: []string{"Comedy", "Animation", "Family", "Music"},
		},
		{
			name: "mixed case",
			mood: "Scared",
			want: []string{"Horror", "Thriller", "Mystery"},
		},
		{
			name: "unknown mood",
			mood: "melancholy",
			want: []string{},
		},
		{
			name: "empty mood",
			mood: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := taxonomy.Genres(tt.mood)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Genres(%q) = %v, want %v", tt.mood, got, tt.want)
			}
		})
	}
}

func TestMoodTaxonomyGenresReturnsCopy(t *testing.T) {
	taxonomy := DefaultMoodTaxonomy()

	first := taxonomy.Genres("happy")
	first[0] = "mutated"

	second := taxonomy.Genres("happy")
	if second[0] != "Comedy" {
		t.Errorf("taxonomy mutated through returned slice: %v", second)
	}
}

func TestMoodTaxonomyMoods(t *testing.T) {
	taxonomy := DefaultMoodTaxonomy()

	want := []string{"adventurous", "excited", "happy", "relaxed", "romantic", "sad", "scared", "thoughtful"}
	if got := taxonomy.Moods(); !reflect.DeepEqual(got, want) {
		t.Errorf("Moods() = %v, want %v", got, want)
	}
}

func TestNewMoodTaxonomyNormalizesKeys(t *testing.T) {
	taxonomy := NewMoodTaxonomy(map[string][]string{
		"Cozy": {"Family", "Animation"},
	})

	if got := taxonomy.Genres("cozy"); len(got) != 2 {
		t.Errorf("Genres(cozy) = %v, want the Cozy entry", got)
	}
}

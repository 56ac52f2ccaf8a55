// MovieHub - Movie Catalog, Reviews, and Recommendations
// Copyright 2026 MovieHub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviehub/moviehub

package api

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want int
	}{
		{"absent", "/x", 0},
		{"valid", "/x?limit=25", 25},
		{"zero", "/x?limit=0", 0},
		{"negative", "/x?limit=-5", 0},
		{"malformed", "/x?limit=abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			if got := parseLimit(r); got != tt.want {
				t.Errorf("parseLimit = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseContentBasedQuery(t *testing.T) {
	id := uuid.New()

	t.Run("valid", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/x?movieId="+id.String()+"&limit=5", nil)
		gotID, limit, err := parseContentBasedQuery(r)
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if gotID != id || limit != 5 {
			t.Errorf("got %s/%d, want %s/5", gotID, limit, id)
		}
	})

	t.Run("missing", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/x", nil)
		if _, _, err := parseContentBasedQuery(r); err == nil {
			t.Error("expected error for missing movieId")
		}
	})

	t.Run("malformed", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/x?movieId=zzz", nil)
		if _, _, err := parseContentBasedQuery(r); err == nil {
			t.Error("expected error for malformed movieId")
		}
	})
}

func TestParseTrendingQuery(t *testing.T) {
	t.Run("defaults to week", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/x", nil)
		timeRange, _, err := parseTrendingQuery(r)
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if timeRange != "week" {
			t.Errorf("timeRange = %q, want week", timeRange)
		}
	})

	t.Run("accepts known ranges", func(t *testing.T) {
		for _, tr := range []string{"day", "week", "month", "year", "all"} {
			r := httptest.NewRequest("GET", "/x?timeRange="+tr, nil)
			if _, _, err := parseTrendingQuery(r); err != nil {
				t.Errorf("timeRange %q rejected: %v", tr, err)
			}
		}
	})

	t.Run("rejects unknown range", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/x?timeRange=fortnight", nil)
		if _, _, err := parseTrendingQuery(r); err == nil {
			t.Error("expected error for unknown timeRange")
		}
	})
}

func TestParseMoodQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/x?mood=happy", nil)
		mood, _, err := parseMoodQuery(r)
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if mood != "happy" {
			t.Errorf("mood = %q, want happy", mood)
		}
	})

	t.Run("missing", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/x", nil)
		if _, _, err := parseMoodQuery(r); err == nil {
			t.Error("expected error for missing mood")
		}
	})
}

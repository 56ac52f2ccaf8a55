// MovieHub - Movie Catalog, Reviews, and Recommendations
// Copyright 2026 MovieHub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviehub/moviehub

package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validate is the shared validator instance. validator.Validate is
// safe for concurrent use and caches struct metadata.
var validate = validator.New()

// contentBasedQuery holds the query parameters of the content-based
// endpoint.
type contentBasedQuery struct {
	MovieID string `validate:"required,uuid"`
	Limit   int    `validate:"gte=0"`
}

// socialBasedQuery holds the query parameters of the social-based
// endpoint.
type socialBasedQuery struct {
	UserID string `validate:"required,uuid"`
	Limit  int    `validate:"gte=0"`
}

// trendingQuery holds the query parameters of the trending endpoint.
type trendingQuery struct {
	TimeRange string `validate:"omitempty,oneof=day week month year all"`
	Limit     int    `validate:"gte=0"`
}

// moodQuery holds the query parameters of the mood endpoint.
type moodQuery struct {
	Mood  string `validate:"required,max=64"`
	Limit int    `validate:"gte=0"`
}

// parseLimit reads the limit query parameter. Absent or malformed
// values map to 0, which the engine replaces with its default.
func parseLimit(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

// parseContentBasedQuery validates and extracts content-based params.
func parseContentBasedQuery(r *http.Request) (uuid.UUID, int, error) {
	q := contentBasedQuery{
		MovieID: r.URL.Query().Get("movieId"),
		Limit:   parseLimit(r),
	}
	if err := validate.Struct(&q); err != nil {
		return uuid.Nil, 0, fmt.Errorf("movieId must be a valid UUID")
	}
	id, err := uuid.Parse(q.MovieID)
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("movieId must be a valid UUID")
	}
	return id, q.Limit, nil
}

// parseSocialBasedQuery validates and extracts social-based params.
func parseSocialBasedQuery(r *http.Request) (uuid.UUID, int, error) {
	q := socialBasedQuery{
		UserID: r.URL.Query().Get("userId"),
		Limit:  parseLimit(r),
	}
	if err := validate.Struct(&q); err != nil {
		return uuid.Nil, 0, fmt.Errorf("userId must be a valid UUID")
	}
	id, err := uuid.Parse(q.UserID)
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("userId must be a valid UUID")
	}
	return id, q.Limit, nil
}

// parseTrendingQuery validates and extracts trending params. The time
// range defaults to "week".
func parseTrendingQuery(r *http.Request) (string, int, error) {
	q := trendingQuery{
		TimeRange: r.URL.Query().Get("timeRange"),
		Limit:     parseLimit(r),
	}
	if q.TimeRange == "" {
		q.TimeRange = "week"
	}
	if err := validate.Struct(&q); err != nil {
		return "", 0, fmt.Errorf("timeRange must be one of day, week, month, year, all")
	}
	return q.TimeRange, q.Limit, nil
}

// parseMoodQuery validates and extracts mood params.
func parseMoodQuery(r *http.Request) (string, int, error) {
	q := moodQuery{
		Mood:  r.URL.Query().Get("mood"),
		Limit: parseLimit(r),
	}
	if err := validate.Struct(&q); err != nil {
		return "", 0, fmt.Errorf("mood is required")
	}
	return q.Mood, q.Limit, nil
}

// parseUserIDParam parses the {userID} path parameter.
func parseUserIDParam(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("userID must be a valid UUID")
	}
	return id, nil
}

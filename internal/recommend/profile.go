// MovieHub - Movie Catalog, Reviews, and Recommendations
// Copyright 2026 MovieHub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviehub/moviehub

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/moviehub/moviehub/internal/store"
)

// genreStats accumulates per-genre rating data while scanning reviews.
type genreStats struct {
	sum   int
	count int
}

// TasteProfile aggregates a user's review history into genre
// preferences and a rating-distribution histogram. Returns
// store.ErrNotFound (wrapped) if the user does not exist. Reviews of
// movies missing from the catalog still count toward the rating
// pattern but contribute no genre signal.
func (e *Engine) TasteProfile(ctx context.Context, userID uuid.UUID) (*TasteProfile, error) {
	user, err := e.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	reviews, err := e.store.ReviewsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user reviews: %w", err)
	}

	favorites, err := e.store.FavoritesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user favorites: %w", err)
	}

	stats := make(map[string]*genreStats)
	buckets := make(map[int]int)
	ratingSum := 0

	for _, r := range reviews {
		ratingSum += r.Rating
		buckets[r.Rating]++

		movie, err := e.store.GetMovie(ctx, r.MovieID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("get reviewed movie: %w", err)
		}
		for _, genre := range movie.GenreList() {
			s, ok := stats[genre]
			if !ok {
				s = &genreStats{}
				stats[genre] = s
			}
			s.sum += r.Rating
			s.count++
		}
	}

	average := 0.0
	if len(reviews) > 0 {
		average = float64(ratingSum) / float64(len(reviews))
	}

	return &TasteProfile{
		UserID:           userID,
		Username:         user.Username,
		GenrePreferences: buildGenrePreferences(stats),
		RatingPattern: RatingPattern{
			AverageRating: average,
			TotalRatings:  len(reviews),
			Distribution:  buildDistribution(buckets, len(reviews)),
		},
		AverageRating:  average,
		TotalReviews:   len(reviews),
		TotalFavorites: len(favorites),
	}, nil
}

// buildGenrePreferences converts accumulated stats into preference
// records sorted descending by score, ties broken by genre name so
// output is deterministic.
func buildGenrePreferences(stats map[string]*genreStats) []GenrePreference {
	prefs := make([]GenrePreference, 0, len(stats))
	for genre, s := range stats {
		prefs = append(prefs, GenrePreference{
			Genre:           genre,
			PreferenceScore: float64(s.sum) / float64(s.count) / 10.0,
			MovieCount:      s.count,
		})
	}

	sort.Slice(prefs, func(i, j int) bool {
		if prefs[i].PreferenceScore != prefs[j].PreferenceScore {
			return prefs[i].PreferenceScore > prefs[j].PreferenceScore
		}
		return prefs[i].Genre < prefs[j].Genre
	})

	return prefs
}

// buildDistribution converts rating counts into histogram buckets
// sorted ascending by rating. Percentages sum to 100 modulo float
// rounding; ratings with zero reviews get no bucket.
func buildDistribution(buckets map[int]int, total int) []RatingBucket {
	dist := make([]RatingBucket, 0, len(buckets))
	for rating, count := range buckets {
		dist = append(dist, RatingBucket{
			Rating:     rating,
			Count:      count,
			Percentage: float64(count) / float64(total) * 100.0,
		})
	}

	sort.Slice(dist, func(i, j int) bool {
		return dist[i].Rating < dist[j].Rating
	})

	return dist
}

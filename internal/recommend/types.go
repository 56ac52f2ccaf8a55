// MovieHub - Movie Catalog, Reviews, and Recommendations
// Copyright 2026 MovieHub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviehub/moviehub

package recommend

import (
	"github.com/google/uuid"
	"github.com/moviehub/moviehub/internal/models"
)

// Strategy identifies the algorithm that produced a recommendation.
type Strategy string

// Recommendation strategies.
const (
	// StrategyContentBased ranks by genre-set Jaccard similarity.
	StrategyContentBased Strategy = "content_based"
	// StrategySocialBased ranks by taste-neighbor vote counts.
	StrategySocialBased Strategy = "social_based"
	// StrategyTrending ranks by popularity for the trending endpoint.
	StrategyTrending Strategy = "trending"
	// StrategyMoodBased ranks by mood-genre relevance.
	StrategyMoodBased Strategy = "mood_based"
	// StrategyPopular is the popularity fallback used on cold starts
	// and unknown moods.
	StrategyPopular Strategy = "popular"
)

// DefaultConfidence is the placeholder confidence attached to every
// recommendation. It is not derived from rank or similarity.
const DefaultConfidence = 0.8

// Recommendation is a single ranked result. Records are built fresh on
// each request and never persisted.
type Recommendation struct {
	// MovieID identifies the recommended movie.
	MovieID uuid.UUID `json:"movie_id"`

	// Title is the movie's display title.
	Title string `json:"title"`

	// OriginalTitle is the title in the original language.
	OriginalTitle string `json:"original_title,omitempty"`

	// Overview is the plot summary.
	Overview string `json:"overview,omitempty"`

	// ReleaseDate is the release date, if known.
	ReleaseDate string `json:"release_date,omitempty"`

	// PosterURL points at the poster artwork.
	PosterURL string `json:"poster_url,omitempty"`

	// Genres is the decoded genre set of the movie.
	Genres []string `json:"genres"`

	// VoteAverage is the mean community rating.
	VoteAverage float64 `json:"vote_average"`

	// VoteCount is the number of community votes.
	VoteCount int `json:"vote_count"`

	// Runtime is the running time in minutes.
	Runtime int `json:"runtime,omitempty"`

	// Reason explains why the movie was recommended.
	Reason string `json:"recommendation_reason"`

	// Confidence is the placeholder confidence score.
	Confidence float64 `json:"confidence_score"`

	// Strategy tags the algorithm that produced this result.
	Strategy Strategy `json:"recommendation_type"`
}

// newRecommendation builds a Recommendation from movie metadata.
func newRecommendation(m *models.Movie, strategy Strategy, reason string) Recommendation {
	return Recommendation{
		MovieID:       m.ID,
		Title:         m.Title,
		OriginalTitle: m.OriginalTitle,
		Overview:      m.Overview,
		ReleaseDate:   m.ReleaseDate,
		PosterURL:     m.PosterURL,
		Genres:        m.GenreList(),
		VoteAverage:   m.VoteAverage,
		VoteCount:     m.VoteCount,
		Runtime:       m.Runtime,
		Reason:        reason,
		Confidence:    DefaultConfidence,
		Strategy:      strategy,
	}
}

// GenrePreference is a user's aggregate preference for one genre.
type GenrePreference struct {
	// Genre is the genre name.
	Genre string `json:"genre"`

	// PreferenceScore is the user's average rating on the genre
	// normalized to [0, 1].
	PreferenceScore float64 `json:"preference_score"`

	// MovieCount is the number of reviewed movies carrying the genre.
	MovieCount int `json:"movie_count"`
}

// RatingBucket is one bar of the rating-distribution histogram.
type RatingBucket struct {
	// Rating is the bucket's rating value (1-10).
	Rating int `json:"rating"`

	// Count is the number of reviews with this rating.
	Count int `json:"count"`

	// Percentage is Count over total reviews, times 100.
	Percentage float64 `json:"percentage"`
}

// RatingPattern summarizes a user's rating behavior.
type RatingPattern struct {
	// AverageRating is the arithmetic mean of all ratings, 0 with no
	// reviews.
	AverageRating float64 `json:"average_rating"`

	// TotalRatings is the number of reviews considered.
	TotalRatings int `json:"total_ratings"`

	// Distribution holds histogram buckets sorted ascending by rating.
	Distribution []RatingBucket `json:"distribution"`
}

// TasteProfile summarizes a user's historical ratings. Built fresh on
// each request and never persisted.
type TasteProfile struct {
	// UserID identifies the profiled user.
	UserID uuid.UUID `json:"user_id"`

	// Username is the user's display name.
	Username string `json:"username"`

	// GenrePreferences lists preferences sorted descending by score.
	GenrePreferences []GenrePreference `json:"genre_preferences"`

	// RatingPattern summarizes the rating distribution.
	RatingPattern RatingPattern `json:"rating_pattern"`

	// AverageRating duplicates RatingPattern.AverageRating for callers
	// that only need the headline number.
	AverageRating float64 `json:"average_rating"`

	// TotalReviews is the number of reviews considered.
	TotalReviews int `json:"total_reviews"`

	// TotalFavorites is the cardinality of the user's favorites.
	TotalFavorites int `json:"total_favorites"`
}

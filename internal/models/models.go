// MovieHub - Movie Catalog, Reviews, and Recommendations
// Copyright 2026 MovieHub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviehub/moviehub

package models

import (
	"time"

	"github.com/google/uuid"
)

// Movie represents a catalog entry synced from an external metadata source.
type Movie struct {
	// ID is the internal movie identifier.
	ID uuid.UUID `json:"id"`

	// TmdbID is the upstream TMDB identifier, if known.
	TmdbID int `json:"tmdb_id,omitempty"`

	// Title is the localized display title.
	Title string `json:"title"`

	// OriginalTitle is the title in the original language.
	OriginalTitle string `json:"original_title,omitempty"`

	// Overview is the plot summary.
	Overview string `json:"overview,omitempty"`

	// ReleaseDate is the theatrical release date (YYYY-MM-DD), if known.
	ReleaseDate string `json:"release_date,omitempty"`

	// PosterURL points at the poster artwork.
	PosterURL string `json:"poster_url,omitempty"`

	// Genres is the serialized genre list, e.g. `["Action","Drama"]`.
	// It may be empty but is never meaningful as an error state; use
	// DecodeGenres to obtain the genre set.
	Genres string `json:"genres"`

	// Popularity is a non-negative popularity score from the upstream source.
	Popularity float64 `json:"popularity"`

	// VoteAverage is the mean community rating (0-10).
	VoteAverage float64 `json:"vote_average"`

	// VoteCount is the number of community votes.
	VoteCount int `json:"vote_count"`

	// Runtime is the running time in minutes.
	Runtime int `json:"runtime,omitempty"`
}

// GenreList returns the decoded genre set for the movie.
func (m *Movie) GenreList() []string {
	return DecodeGenres(m.Genres)
}

// User represents a registered account.
type User struct {
	// ID is the internal user identifier.
	ID uuid.UUID `json:"id"`

	// Username is the unique display name.
	Username string `json:"username"`

	// Email is the account email address.
	Email string `json:"email,omitempty"`

	// CreatedAt is when the account was created.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// SentimentLabel classifies the tone of a review comment.
type SentimentLabel string

// Sentiment labels derived from the lexicon scorer thresholds.
const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// Review is a user's rating of a movie. A user has at most one review
// per movie.
type Review struct {
	// ID is the internal review identifier.
	ID uuid.UUID `json:"id"`

	// UserID links the review to its author.
	UserID uuid.UUID `json:"user_id"`

	// MovieID links the review to the rated movie.
	MovieID uuid.UUID `json:"movie_id"`

	// Rating is the integer rating on a 1-10 scale.
	Rating int `json:"rating"`

	// Comment is optional free text.
	Comment string `json:"comment,omitempty"`

	// Sentiment is the lexicon-derived label for Comment.
	Sentiment SentimentLabel `json:"sentiment,omitempty"`

	// SentimentScore is the lexicon score for Comment, in [-1, 1].
	SentimentScore float64 `json:"sentiment_score,omitempty"`

	// CreatedAt is when the review was written.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Favorite marks a movie as a favorite of a user. Unique per (user, movie).
type Favorite struct {
	// ID is the internal favorite identifier.
	ID uuid.UUID `json:"id"`

	// UserID links the favorite to its owner.
	UserID uuid.UUID `json:"user_id"`

	// MovieID links the favorite to the movie.
	MovieID uuid.UUID `json:"movie_id"`

	// CreatedAt is when the favorite was added.
	CreatedAt time.Time `json:"created_at"`
}

// MovieHub - Movie Catalog, Reviews, and Recommendations
// Copyright 2026 MovieHub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviehub/moviehub

package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/moviehub/moviehub/internal/models"
)

func TestMemStoreGetMovie(t *testing.T) {
	s := NewMemStore()
	id := uuid.New()
	s.AddMovie(models.Movie{ID: id, Title: "Heat", Genres: `["Action","Crime"]`})

	t.Run("existing movie is returned", func(t *testing.T) {
		m, err := s.GetMovie(context.Background(), id)
		if err != nil {
			t.Fatalf("GetMovie() error = %v", err)
		}
		if m.Title != "Heat" {
			t.Errorf("Title = %q, want %q", m.Title, "Heat")
		}
	})

	t.Run("missing movie yields ErrNotFound", func(t *testing.T) {
		_, err := s.GetMovie(context.Background(), uuid.New())
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("GetMovie() error = %v, want ErrNotFound", err)
		}
	})
}

func TestMemStoreListMoviesOrder(t *testing.T) {
	s := NewMemStore()
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for i, id := range ids {
		s.AddMovie(models.Movie{ID: id, Popularity: float64(i)})
	}

	movies, err := s.ListMovies(context.Background())
	if err != nil {
		t.Fatalf("ListMovies() error = %v", err)
	}
	if len(movies) != 3 {
		t.Fatalf("len(movies) = %d, want 3", len(movies))
	}
	for i, m := range movies {
		if m.ID != ids[i] {
			t.Errorf("movies[%d].ID = %s, want %s (insertion order)", i, m.ID, ids[i])
		}
	}
}

func TestMemStoreReviewUniquePerPair(t *testing.T) {
	s := NewMemStore()
	userID := uuid.New()
	movieID := uuid.New()

	s.AddReview(models.Review{ID: uuid.New(), UserID: userID, MovieID: movieID, Rating: 5})
	s.AddReview(models.Review{ID: uuid.New(), UserID: userID, MovieID: movieID, Rating: 9})

	reviews, err := s.ReviewsByUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("ReviewsByUser() error = %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("len(reviews) = %d, want 1 (unique per user/movie pair)", len(reviews))
	}
	if reviews[0].Rating != 9 {
		t.Errorf("Rating = %d, want 9 (latest review wins)", reviews[0].Rating)
	}

	reviewers, err := s.ReviewersOfMovie(context.Background(), movieID)
	if err != nil {
		t.Fatalf("ReviewersOfMovie() error = %v", err)
	}
	if len(reviewers) != 1 || reviewers[0] != userID {
		t.Errorf("reviewers = %v, want [%s]", reviewers, userID)
	}
}

func TestMemStoreReviewSentiment(t *testing.T) {
	s := NewMemStore()
	userID := uuid.New()

	s.AddReview(models.Review{
		ID:      uuid.New(),
		UserID:  userID,
		MovieID: uuid.New(),
		Rating:  9,
		Comment: "amazing film, would recommend",
	})

	reviews, _ := s.ReviewsByUser(context.Background(), userID)
	if reviews[0].Sentiment != models.SentimentPositive {
		t.Errorf("Sentiment = %q, want positive", reviews[0].Sentiment)
	}
	if reviews[0].SentimentScore <= 0 {
		t.Errorf("SentimentScore = %f, want > 0", reviews[0].SentimentScore)
	}
}

func TestMemStoreFavoriteDeduplication(t *testing.T) {
	s := NewMemStore()
	userID := uuid.New()
	movieID := uuid.New()

	s.AddFavorite(models.Favorite{ID: uuid.New(), UserID: userID, MovieID: movieID})
	s.AddFavorite(models.Favorite{ID: uuid.New(), UserID: userID, MovieID: movieID})

	favorites, err := s.FavoritesByUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("FavoritesByUser() error = %v", err)
	}
	if len(favorites) != 1 {
		t.Errorf("len(favorites) = %d, want 1", len(favorites))
	}
}

func TestMemStoreLoadFixture(t *testing.T) {
	movieID := uuid.New()
	userID := uuid.New()
	fixture := `{
		"movies": [{"id": "` + movieID.String() + `", "title": "Alien", "genres": "[\"Horror\",\"Science Fiction\"]", "popularity": 80}],
		"users": [{"id": "` + userID.String() + `", "username": "ripley"}],
		"reviews": [{"id": "` + uuid.NewString() + `", "user_id": "` + userID.String() + `", "movie_id": "` + movieID.String() + `", "rating": 10, "comment": "perfect"}],
		"favorites": [{"id": "` + uuid.NewString() + `", "user_id": "` + userID.String() + `", "movie_id": "` + movieID.String() + `"}]
	}`

	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, []byte(fixture), 0o600); err != nil {
		t.Fatal(err)
	}

	s := NewMemStore()
	if err := s.LoadFixture(path); err != nil {
		t.Fatalf("LoadFixture() error = %v", err)
	}

	movies, users, reviews := s.Counts()
	if movies != 1 || users != 1 || reviews != 1 {
		t.Errorf("Counts() = (%d, %d, %d), want (1, 1, 1)", movies, users, reviews)
	}

	m, err := s.GetMovie(context.Background(), movieID)
	if err != nil {
		t.Fatalf("GetMovie() error = %v", err)
	}
	if got := m.GenreList(); len(got) != 2 {
		t.Errorf("GenreList() = %v, want 2 genres", got)
	}
}

func TestMemStoreLoadFixtureErrors(t *testing.T) {
	s := NewMemStore()

	if err := s.LoadFixture(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadFixture() = nil, want error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := s.LoadFixture(path); err == nil {
		t.Error("LoadFixture() = nil, want error for malformed JSON")
	}
}

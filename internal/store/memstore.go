// MovieHub - Movie Catalog, Reviews, and Recommendations
// Copyright 2026 MovieHub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviehub/moviehub

package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/moviehub/moviehub/internal/models"
	"github.com/moviehub/moviehub/internal/sentiment"
)

// MemStore is an in-memory Store implementation. It is safe for
// concurrent use: reads take a shared lock and return copies, so the
// recommendation core always observes a consistent snapshot.
type MemStore struct {
	mu sync.RWMutex

	movies     map[uuid.UUID]models.Movie
	movieOrder []uuid.UUID
	users      map[uuid.UUID]models.User

	reviewsByUser    map[uuid.UUID][]models.Review
	reviewersByMovie map[uuid.UUID][]uuid.UUID
	favoritesByUser  map[uuid.UUID][]models.Favorite
}

// Fixture is the JSON document format accepted by LoadFixture.
type Fixture struct {
	Movies    []models.Movie    `json:"movies"`
	Users     []models.User     `json:"users"`
	Reviews   []models.Review   `json:"reviews"`
	Favorites []models.Favorite `json:"favorites"`
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		movies:           make(map[uuid.UUID]models.Movie),
		users:            make(map[uuid.UUID]models.User),
		reviewsByUser:    make(map[uuid.UUID][]models.Review),
		reviewersByMovie: make(map[uuid.UUID][]uuid.UUID),
		favoritesByUser:  make(map[uuid.UUID][]models.Favorite),
	}
}

// LoadFixture populates the store from a JSON fixture file.
func (s *MemStore) LoadFixture(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixture: %w", err)
	}

	var fx Fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return fmt.Errorf("parse fixture %s: %w", path, err)
	}

	for i := range fx.Movies {
		s.AddMovie(fx.Movies[i])
	}
	for i := range fx.Users {
		s.AddUser(fx.Users[i])
	}
	for i := range fx.Reviews {
		s.AddReview(fx.Reviews[i])
	}
	for i := range fx.Favorites {
		s.AddFavorite(fx.Favorites[i])
	}

	return nil
}

// AddMovie inserts or replaces a movie. Insertion order is preserved
// for catalog scans.
func (s *MemStore) AddMovie(m models.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.movies[m.ID]; !exists {
		s.movieOrder = append(s.movieOrder, m.ID)
	}
	s.movies[m.ID] = m
}

// AddUser inserts or replaces a user.
func (s *MemStore) AddUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

// AddReview inserts a review, replacing any existing review by the
// same user for the same movie. If the review has a comment and no
// sentiment yet, the lexicon scorer fills in label and score.
func (s *MemStore) AddReview(r models.Review) {
	if r.Comment != "" && r.Sentiment == "" {
		r.Sentiment = sentiment.Classify(r.Comment)
		r.SentimentScore = sentiment.Score(r.Comment)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.reviewsByUser[r.UserID]
	replaced := false
	for i := range existing {
		if existing[i].MovieID == r.MovieID {
			existing[i] = r
			replaced = true
			break
		}
	}
	if !replaced {
		s.reviewsByUser[r.UserID] = append(existing, r)
		s.reviewersByMovie[r.MovieID] = append(s.reviewersByMovie[r.MovieID], r.UserID)
	}
}

// AddFavorite inserts a favorite unless the (user, movie) pair already
// exists.
func (s *MemStore) AddFavorite(f models.Favorite) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.favoritesByUser[f.UserID] {
		if existing.MovieID == f.MovieID {
			return
		}
	}
	s.favoritesByUser[f.UserID] = append(s.favoritesByUser[f.UserID], f)
}

// GetMovie returns the movie with the given ID, or ErrNotFound.
func (s *MemStore) GetMovie(_ context.Context, id uuid.UUID) (*models.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.movies[id]
	if !ok {
		return nil, fmt.Errorf("movie %s: %w", id, ErrNotFound)
	}
	return &m, nil
}

// ListMovies returns the full catalog in insertion order.
func (s *MemStore) ListMovies(_ context.Context) ([]models.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Movie, 0, len(s.movieOrder))
	for _, id := range s.movieOrder {
		out = append(out, s.movies[id])
	}
	return out, nil
}

// GetUser returns the user with the given ID, or ErrNotFound.
func (s *MemStore) GetUser(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return &u, nil
}

// ReviewsByUser returns all reviews written by the user.
func (s *MemStore) ReviewsByUser(_ context.Context, userID uuid.UUID) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := s.reviewsByUser[userID]
	out := make([]models.Review, len(reviews))
	copy(out, reviews)
	return out, nil
}

// ReviewersOfMovie returns the IDs of all users who reviewed the movie.
func (s *MemStore) ReviewersOfMovie(_ context.Context, movieID uuid.UUID) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviewers := s.reviewersByMovie[movieID]
	out := make([]uuid.UUID, len(reviewers))
	copy(out, reviewers)
	return out, nil
}

// FavoritesByUser returns all favorites belonging to the user.
func (s *MemStore) FavoritesByUser(_ context.Context, userID uuid.UUID) ([]models.Favorite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	favorites := s.favoritesByUser[userID]
	out := make([]models.Favorite, len(favorites))
	copy(out, favorites)
	return out, nil
}

// Counts returns the number of movies, users, and reviews in the store.
// Used for startup logging.
func (s *MemStore) Counts() (movies, users, reviews int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rs := range s.reviewsByUser {
		reviews += len(rs)
	}
	return len(s.movies), len(s.users), reviews
}

// Store interface conformance.
var _ Store = (*MemStore)(nil)

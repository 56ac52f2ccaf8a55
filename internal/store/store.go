// MovieHub - Movie Catalog, Reviews, and Recommendations
// Copyright 2026 MovieHub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviehub/moviehub

// Package store defines read access to persisted catalog entities.
//
// The recommendation core consumes the Store interface and never writes
// through it; all methods return immutable snapshots of the underlying
// data. MemStore provides the in-process implementation used by the
// server and by tests. Persistence-layer concerns (pooling, retries,
// transactions) live behind this boundary and are not the caller's
// responsibility.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/moviehub/moviehub/internal/models"
)

// ErrNotFound is returned when a requested entity does not exist.
// Callers should test for it with errors.Is.
var ErrNotFound = errors.New("not found")

// Store exposes read access to persisted entities.
type Store interface {
	// GetMovie returns the movie with the given ID, or ErrNotFound.
	GetMovie(ctx context.Context, id uuid.UUID) (*models.Movie, error)

	// ListMovies returns the full catalog in insertion order.
	ListMovies(ctx context.Context) ([]models.Movie, error)

	// GetUser returns the user with the given ID, or ErrNotFound.
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)

	// ReviewsByUser returns all reviews written by the user.
	ReviewsByUser(ctx context.Context, userID uuid.UUID) ([]models.Review, error)

	// ReviewersOfMovie returns the IDs of all users who reviewed the movie.
	ReviewersOfMovie(ctx context.Context, movieID uuid.UUID) ([]uuid.UUID, error)

	// FavoritesByUser returns all favorites belonging to the user.
	FavoritesByUser(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error)
}

// MovieHub - Movie Catalog, Reviews, and Recommendations
// Copyright 2026 MovieHub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviehub/moviehub

// Package models defines the core data structures shared across the
// application: catalog entities (movies, users, reviews, favorites)
// and the genre codec.
//
// Entities mirror the persisted schema and are treated as immutable
// read snapshots by the recommendation core. Genres are stored on the
// Movie as a serialized list-of-strings; use EncodeGenres and
// DecodeGenres to convert between the stored form and a []string.
package models

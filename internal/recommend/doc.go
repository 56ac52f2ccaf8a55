// MovieHub - Movie Catalog, Reviews, and Recommendations
// Copyright 2026 MovieHub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviehub/moviehub

// Package recommend implements the movie recommendation core.
//
// Four independent strategies produce ranked recommendation lists:
//
//   - Content-based: Jaccard similarity between genre sets
//   - Social-based: two-hop taste-neighbor vote aggregation
//   - Trending: popularity ranking
//   - Mood-based: fixed mood-to-genre taxonomy with asymmetric relevance
//
// A fifth read path aggregates a user's review history into a taste
// profile (per-genre preference scores and a rating histogram).
//
// # Design
//
// All strategies are stateless read-transform-rank pipelines over a
// snapshot of the store: no writes, no locks, and identical output for
// identical input snapshots. Degenerate inputs (empty genre set,
// unknown mood, no liked reviews) degrade to an empty list or the
// popularity fallback rather than failing; only a missing reference
// movie or user is an error (store.ErrNotFound).
//
// # Thread Safety
//
// The Engine holds only immutable configuration and is safe for
// concurrent use without coordination.
package recommend

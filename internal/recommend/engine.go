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
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/moviehub/moviehub/internal/models"
	"github.com/moviehub/moviehub/internal/store"
)

// Engine produces recommendations and taste profiles from a read-only
// store. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	store  store.Store
	moods  *MoodTaxonomy
	config *Config
	logger zerolog.Logger
}

// NewEngine creates a recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(st store.Store, moods *MoodTaxonomy, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if st == nil {
		return nil, errors.New("store is required")
	}
	if moods == nil {
		moods = DefaultMoodTaxonomy()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		store:  st,
		moods:  moods,
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// scoredMovie pairs a movie with a ranking score.
type scoredMovie struct {
	movie models.Movie
	score float64
}

// ContentBased ranks the catalog against a reference movie's genre set
// using Jaccard similarity; ties break by descending popularity.
// Candidates with zero similarity stay in the ranking, placed last.
// Returns store.ErrNotFound (wrapped) if the reference movie does not
// exist; a reference with an empty genre set yields an empty list.
func (e *Engine) ContentBased(ctx context.Context, movieID uuid.UUID, limit int) ([]Recommendation, error) {
	limit = e.clampLimit(limit)

	ref, err := e.store.GetMovie(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get reference movie: %w", err)
	}

	refGenres := ref.GenreList()
	if len(refGenres) == 0 {
		e.logger.Debug().
			Str("movie_id", movieID.String()).
			Msg("reference movie has no genres, no similarity basis")
		return []Recommendation{}, nil
	}

	movies, err := e.store.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	candidates := make([]scoredMovie, 0, len(movies))
	for i := range movies {
		if movies[i].ID == movieID {
			continue
		}
		candidates = append(candidates, scoredMovie{
			movie: movies[i],
			score: Jaccard(refGenres, movies[i].GenreList()),
		})
	}

	sortByScoreThenPopularity(candidates)
	candidates = truncate(candidates, limit)

	reason := "Genre similarity: " + strings.Join(refGenres, ", ")
	return e.toRecommendations(candidates, StrategyContentBased, reason), nil
}

// SocialBased recommends movies liked by taste neighbors: users who
// reviewed any of the reference user's liked (rating >= threshold)
// movies. Each neighbor's liked movies the user has not reviewed earn
// one vote; ranking is by votes, then popularity, then movie ID for
// determinism. Users without liked reviews get the popularity fallback.
func (e *Engine) SocialBased(ctx context.Context, userID uuid.UUID, limit int) ([]Recommendation, error) {
	limit = e.clampLimit(limit)

	reviews, err := e.store.ReviewsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user reviews: %w", err)
	}

	liked := make([]models.Review, 0, len(reviews))
	reviewed := make(map[uuid.UUID]struct{}, len(reviews))
	for _, r := range reviews {
		reviewed[r.MovieID] = struct{}{}
		if r.Rating >= e.config.LikeThreshold {
			liked = append(liked, r)
		}
	}

	if len(liked) == 0 {
		e.logger.Debug().
			Str("user_id", userID.String()).
			Msg("no liked reviews, falling back to popularity")
		return e.popularityRanked(ctx, limit, StrategyPopular, reasonPopular)
	}

	neighbors, err := e.collectNeighbors(ctx, userID, liked)
	if err != nil {
		return nil, err
	}

	votes, err := e.countNeighborVotes(ctx, neighbors, reviewed)
	if err != nil {
		return nil, err
	}

	ranked, err := e.rankByVotes(ctx, votes)
	if err != nil {
		return nil, err
	}
	ranked = truncateVotes(ranked, limit)

	recs := make([]Recommendation, 0, len(ranked))
	for i := range ranked {
		recs = append(recs, newRecommendation(&ranked[i].movie, StrategySocialBased, "Liked by users with similar taste"))
	}
	return recs, nil
}

// Trending ranks the catalog by popularity. The time range is accepted
// for API compatibility but not filtered on; ranking is static
// popularity regardless of range.
func (e *Engine) Trending(ctx context.Context, timeRange string, limit int) ([]Recommendation, error) {
	_ = timeRange
	return e.popularityRanked(ctx, e.clampLimit(limit), StrategyTrending, "Currently popular")
}

// MoodBased ranks movies against the mood's target genre set by
// asymmetric relevance (target coverage), ties broken by popularity.
// Only movies with non-zero overlap are returned. Unknown moods get
// the popularity fallback.
func (e *Engine) MoodBased(ctx context.Context, mood string, limit int) ([]Recommendation, error) {
	limit = e.clampLimit(limit)

	target := e.moods.Genres(mood)
	if len(target) == 0 {
		e.logger.Debug().
			Str("mood", mood).
			Msg("unknown mood, falling back to popularity")
		return e.popularityRanked(ctx, limit, StrategyPopular, reasonPopular)
	}

	movies, err := e.store.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	candidates := make([]scoredMovie, 0, len(movies))
	for i := range movies {
		relevance := MoodRelevance(target, movies[i].GenreList())
		if relevance > 0 {
			candidates = append(candidates, scoredMovie{movie: movies[i], score: relevance})
		}
	}

	sortByScoreThenPopularity(candidates)
	candidates = truncate(candidates, limit)

	reason := fmt.Sprintf("Matches the %s mood", strings.ToLower(mood))
	return e.toRecommendations(candidates, StrategyMoodBased, reason), nil
}

// reasonPopular is the reason text attached to fallback results.
const reasonPopular = "Popular with all users"

// popularityRanked returns the catalog sorted descending by popularity.
// The sort is stable, so equal popularity preserves catalog insertion
// order.
func (e *Engine) popularityRanked(ctx context.Context, limit int, strategy Strategy, reason string) ([]Recommendation, error) {
	movies, err := e.store.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	sorted := make([]models.Movie, len(movies))
	copy(sorted, movies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Popularity > sorted[j].Popularity
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	recs := make([]Recommendation, 0, len(sorted))
	for i := range sorted {
		recs = append(recs, newRecommendation(&sorted[i], strategy, reason))
	}
	return recs, nil
}

// collectNeighbors gathers the deduplicated set of other users who
// reviewed any of the liked movies, regardless of their rating.
func (e *Engine) collectNeighbors(ctx context.Context, userID uuid.UUID, liked []models.Review) (map[uuid.UUID]struct{}, error) {
	neighbors := make(map[uuid.UUID]struct{})
	for _, r := range liked {
		reviewers, err := e.store.ReviewersOfMovie(ctx, r.MovieID)
		if err != nil {
			return nil, fmt.Errorf("get reviewers of movie %s: %w", r.MovieID, err)
		}
		for _, id := range reviewers {
			if id != userID {
				neighbors[id] = struct{}{}
			}
		}
	}
	return neighbors, nil
}

// countNeighborVotes tallies one vote per neighbor liked-review for
// every movie the reference user has not reviewed.
func (e *Engine) countNeighborVotes(ctx context.Context, neighbors map[uuid.UUID]struct{}, reviewed map[uuid.UUID]struct{}) (map[uuid.UUID]int, error) {
	votes := make(map[uuid.UUID]int)
	for neighborID := range neighbors {
		reviews, err := e.store.ReviewsByUser(ctx, neighborID)
		if err != nil {
			return nil, fmt.Errorf("get neighbor reviews: %w", err)
		}
		for _, r := range reviews {
			if r.Rating < e.config.LikeThreshold {
				continue
			}
			if _, seen := reviewed[r.MovieID]; seen {
				continue
			}
			votes[r.MovieID]++
		}
	}
	return votes, nil
}

// votedMovie pairs a movie with its neighbor vote count.
type votedMovie struct {
	movie models.Movie
	votes int
}

// rankByVotes resolves vote counts to movie metadata and sorts by
// votes descending. The original behavior left ties to map iteration
// order; here ties break by popularity descending, then movie ID, so
// output is deterministic. Votes for movies no longer in the catalog
// are dropped.
func (e *Engine) rankByVotes(ctx context.Context, votes map[uuid.UUID]int) ([]votedMovie, error) {
	ranked := make([]votedMovie, 0, len(votes))
	for movieID, count := range votes {
		movie, err := e.store.GetMovie(ctx, movieID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("get voted movie: %w", err)
		}
		ranked = append(ranked, votedMovie{movie: *movie, votes: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].votes != ranked[j].votes {
			return ranked[i].votes > ranked[j].votes
		}
		if ranked[i].movie.Popularity != ranked[j].movie.Popularity {
			return ranked[i].movie.Popularity > ranked[j].movie.Popularity
		}
		return ranked[i].movie.ID.String() < ranked[j].movie.ID.String()
	})

	return ranked, nil
}

// clampLimit applies the default for non-positive limits and the
// configured cap.
func (e *Engine) clampLimit(limit int) int {
	if limit <= 0 {
		return e.config.DefaultLimit
	}
	if limit > e.config.MaxLimit {
		return e.config.MaxLimit
	}
	return limit
}

// toRecommendations converts scored candidates into result records.
func (e *Engine) toRecommendations(candidates []scoredMovie, strategy Strategy, reason string) []Recommendation {
	recs := make([]Recommendation, 0, len(candidates))
	for i := range candidates {
		recs = append(recs, newRecommendation(&candidates[i].movie, strategy, reason))
	}
	return recs
}

// sortByScoreThenPopularity orders candidates descending by score,
// then descending by popularity. The sort is stable so remaining ties
// preserve catalog insertion order.
func sortByScoreThenPopularity(candidates []scoredMovie) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].movie.Popularity > candidates[j].movie.Popularity
	})
}

func truncate(s []scoredMovie, limit int) []scoredMovie {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}

func truncateVotes(s []votedMovie, limit int) []votedMovie {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}

// MovieHub - Movie Catalog, Reviews, and Recommendations
// Copyright 2026 MovieHub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviehub/moviehub

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/moviehub/moviehub/internal/logging"
	"github.com/moviehub/moviehub/internal/metrics"
	"github.com/moviehub/moviehub/internal/recommend"
	"github.com/moviehub/moviehub/internal/store"
)

// Handler serves the recommendation endpoints.
type Handler struct {
	engine    *recommend.Engine
	store     *store.MemStore
	startTime time.Time
	version   string
}

// NewHandler creates the API handler.
func NewHandler(engine *recommend.Engine, st *store.MemStore, version string) *Handler {
	return &Handler{
		engine:    engine,
		store:     st,
		startTime: time.Now(),
		version:   version,
	}
}

// ContentBased handles GET /api/v1/recommendations/content-based.
func (h *Handler) ContentBased(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	movieID, limit, err := parseContentBasedQuery(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	start := time.Now()
	recs, err := h.engine.ContentBased(r.Context(), movieID, limit)
	metrics.RecordRecommendation(string(recommend.StrategyContentBased), len(recs), time.Since(start), err)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			rw.NotFound("movie not found")
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Msg("content-based recommendations failed")
		rw.InternalError("failed to compute recommendations")
		return
	}

	rw.SuccessWithCount(recs, len(recs))
}

// SocialBased handles GET /api/v1/recommendations/social-based.
func (h *Handler) SocialBased(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, limit, err := parseSocialBasedQuery(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	start := time.Now()
	recs, err := h.engine.SocialBased(r.Context(), userID, limit)
	metrics.RecordRecommendation(string(recommend.StrategySocialBased), len(recs), time.Since(start), err)

	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("social-based recommendations failed")
		rw.InternalError("failed to compute recommendations")
		return
	}

	rw.SuccessWithCount(recs, len(recs))
}

// Trending handles GET /api/v1/recommendations/trending.
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	timeRange, limit, err := parseTrendingQuery(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	start := time.Now()
	recs, err := h.engine.Trending(r.Context(), timeRange, limit)
	metrics.RecordRecommendation(string(recommend.StrategyTrending), len(recs), time.Since(start), err)

	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("trending recommendations failed")
		rw.InternalError("failed to compute recommendations")
		return
	}

	rw.SuccessWithCount(recs, len(recs))
}

// MoodBased handles GET /api/v1/recommendations/mood.
func (h *Handler) MoodBased(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	mood, limit, err := parseMoodQuery(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	start := time.Now()
	recs, err := h.engine.MoodBased(r.Context(), mood, limit)
	metrics.RecordRecommendation(string(recommend.StrategyMoodBased), len(recs), time.Since(start), err)

	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("mood recommendations failed")
		rw.InternalError("failed to compute recommendations")
		return
	}

	rw.SuccessWithCount(recs, len(recs))
}

// TasteProfile handles GET /api/v1/recommendations/user/{userID}/profile.
func (h *Handler) TasteProfile(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, err := parseUserIDParam(chi.URLParam(r, "userID"))
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	profile, err := h.engine.TasteProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			rw.NotFound("user not found")
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Msg("taste profile failed")
		rw.InternalError("failed to build taste profile")
		return
	}

	rw.Success(profile)
}

// healthStatus is the payload of the health endpoint.
type healthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
	Movies  int    `json:"movies"`
	Users   int    `json:"users"`
	Reviews int    `json:"reviews"`
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	movies, users, reviews := h.store.Counts()

	NewResponseWriter(w, r).Success(healthStatus{
		Status:  "ok",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
		Movies:  movies,
		Users:   users,
		Reviews: reviews,
	})
}

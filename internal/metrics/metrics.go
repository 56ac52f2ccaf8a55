// MovieHub - Movie Catalog, Reviews, and Recommendations
// Copyright 2026 MovieHub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviehub/moviehub

// Package metrics registers the Prometheus instruments exposed on
// /metrics: API request throughput and latency plus per-strategy
// recommendation counters.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviehub_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moviehub_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviehub_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Recommendation engine metrics.
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviehub_recommendations_total",
			Help: "Total number of recommendation requests by strategy",
		},
		[]string{"strategy"},
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moviehub_recommendation_duration_seconds",
			Help:    "Recommendation computation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"strategy"},
	)

	RecommendationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviehub_recommendation_errors_total",
			Help: "Total number of failed recommendation requests by strategy",
		},
		[]string{"strategy"},
	)

	RecommendationResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moviehub_recommendation_results",
			Help:    "Number of results returned per recommendation request",
			Buckets: []float64{0, 1, 5, 10, 20, 50},
		},
		[]string{"strategy"},
	)

	// Catalog metrics, set once after the fixture loads.
	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviehub_catalog_movies",
			Help: "Number of movies in the catalog",
		},
	)

	CatalogUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviehub_catalog_users",
			Help: "Number of registered users",
		},
	)

	CatalogReviews = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviehub_catalog_reviews",
			Help: "Number of reviews in the catalog",
		},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(start bool) {
	if start {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one recommendation computation.
func RecordRecommendation(strategy string, results int, duration time.Duration, err error) {
	RecommendationsTotal.WithLabelValues(strategy).Inc()
	RecommendationDuration.WithLabelValues(strategy).Observe(duration.Seconds())
	if err != nil {
		RecommendationErrors.WithLabelValues(strategy).Inc()
		return
	}
	RecommendationResults.WithLabelValues(strategy).Observe(float64(results))
}

// SetCatalogSize records the catalog gauges after a fixture load.
func SetCatalogSize(movies, users, reviews int) {
	CatalogMovies.Set(float64(movies))
	CatalogUsers.Set(float64(users))
	CatalogReviews.Set(float64(reviews))
}

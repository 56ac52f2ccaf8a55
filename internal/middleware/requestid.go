// MovieHub - Movie Catalog, Reviews, and Recommendations
// Copyright 2026 MovieHub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviehub/moviehub

// Package middleware provides HTTP middleware shared by the API
// router: request IDs, request logging, and Prometheus
// instrumentation.
package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/moviehub/moviehub/internal/logging"
)

// RequestID assigns each request a unique ID, honoring an existing
// X-Request-ID from an upstream proxy. The ID is echoed in the
// response header and stored in the request context for log
// correlation.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set("X-Request-ID", requestID)

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

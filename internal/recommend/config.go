// MovieHub - Movie Catalog, Reviews, and Recommendations
// Copyright 2026 MovieHub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviehub/moviehub

package recommend

import "fmt"

// Config contains the operational parameters of the recommendation
// engine.
type Config struct {
	// LikeThreshold is the minimum rating (1-10) for a review to count
	// as a "liked" signal in the social strategy.
	LikeThreshold int `json:"like_threshold" koanf:"like_threshold"`

	// DefaultLimit is the result count applied when a request passes a
	// non-positive limit.
	DefaultLimit int `json:"default_limit" koanf:"default_limit"`

	// MaxLimit caps the result count of any single request.
	MaxLimit int `json:"max_limit" koanf:"max_limit"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		LikeThreshold: 7,
		DefaultLimit:  10,
		MaxLimit:      50,
	}
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.LikeThreshold < 1 || c.LikeThreshold > 10 {
		return fmt.Errorf("like_threshold %d outside rating scale 1-10", c.LikeThreshold)
	}
	if c.DefaultLimit <= 0 {
		return fmt.Errorf("default_limit must be positive, got %d", c.DefaultLimit)
	}
	if c.MaxLimit < c.DefaultLimit {
		return fmt.Errorf("max_limit %d below default_limit %d", c.MaxLimit, c.DefaultLimit)
	}
	return nil
}

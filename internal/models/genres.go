// MovieHub - Movie Catalog, Reviews, and Recommendations
// Copyright 2026 MovieHub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviehub/moviehub

package models

import "strings"

// emptyGenres is the canonical encoding of an empty genre set.
const emptyGenres = "[]"

// EncodeGenres serializes a genre set to its stored string form.
// A nil or empty set encodes to the canonical empty-collection token.
func EncodeGenres(genres []string) string {
	if len(genres) == 0 {
		return emptyGenres
	}

	var b strings.Builder
	b.WriteByte('[')
	for i, g := range genres {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(g)
		b.WriteByte('"')
	}
	b.WriteByte(']')
	return b.String()
}

// DecodeGenres parses the stored genre string back into a genre set.
// Malformed, empty, or canonical-empty input yields an empty slice;
// decoding never fails. Whitespace around entries is trimmed and empty
// entries are dropped.
func DecodeGenres(s string) []string {
	if s == "" || s == emptyGenres {
		return []string{}
	}

	cleaned := strings.NewReplacer("[", "", "]", "", `"`, "").Replace(s)
	if cleaned == "" {
		return []string{}
	}

	parts := strings.Split(cleaned, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			genres = append(genres, p)
		}
	}
	return genres
}

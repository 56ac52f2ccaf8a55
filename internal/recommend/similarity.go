// MovieHub - Movie Catalog, Reviews, and Recommendations
// Copyright 2026 MovieHub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviehub/moviehub

package recommend

// Jaccard computes the Jaccard similarity of two genre sets:
// intersection size over union size, in [0, 1]. Either set being
// empty yields 0 rather than a division by zero. Duplicates and order
// are ignored.
func Jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	setA := toSet(a)
	setB := toSet(b)

	intersection := intersectionSize(setA, setB)
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}

// MoodRelevance computes how much of the mood's target genre set a
// candidate covers: intersection size over target size. Deliberately
// asymmetric, so extra genres on the candidate do not dilute the
// score. Either set being empty yields 0.
func MoodRelevance(target, candidate []string) float64 {
	if len(target) == 0 || len(candidate) == 0 {
		return 0
	}

	targetSet := toSet(target)
	return float64(intersectionSize(targetSet, toSet(candidate))) / float64(len(targetSet))
}

// toSet deduplicates a genre list into a set.
func toSet(genres []string) map[string]struct{} {
	set := make(map[string]struct{}, len(genres))
	for _, g := range genres {
		set[g] = struct{}{}
	}
	return set
}

// intersectionSize counts elements present in both sets.
func intersectionSize(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for g := range a {
		if _, ok := b[g]; ok {
			n++
		}
	}
	return n
}

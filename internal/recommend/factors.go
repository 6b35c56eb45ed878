// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

package recommend

import (
	"math"

	"github.com/mangacompass/mangacompass/internal/catalog"
	"github.com/mangacompass/mangacompass/internal/profile"
)

// computeFactors evaluates all four batch factors for one candidate.
func (e *Engine) computeFactors(item catalog.Item, p profile.Profile) Factors {
	return Factors{
		GenreMatch:      e.genreMatch(item, p),
		RatingScore:     e.ratingScore(item, p),
		PopularityScore: e.popularityScore(item),
		StatusMatch:     e.statusMatch(item, p),
	}
}

// genreMatch scores overlap between the item's genres and the
// reader's favorites on a 0-100 scale.
//
// No favorites yields a neutral 50. An empty intersection returns 10
// immediately, skipping the exclusion penalty. Otherwise the base is
// 40 plus up to 60 for the matched share of the favorite set, with 20
// subtracted per excluded genre the item carries, floored at 0.
func (e *Engine) genreMatch(item catalog.Item, p profile.Profile) int {
	if len(p.FavoriteGenres) == 0 {
		return 50
	}

	common := 0
	for _, genre := range item.Genres {
		for _, fav := range p.FavoriteGenres {
			if genre == fav {
				common++
				break
			}
		}
	}

	if common == 0 {
		return 10
	}

	matchRatio := float64(common) / float64(len(p.FavoriteGenres))
	baseScore := math.Min(100, 40+matchRatio*60)

	excluded := 0
	for _, genre := range item.Genres {
		if p.Preferences.Excludes(genre) {
			excluded++
		}
	}
	penalty := float64(excluded * 20)

	return int(math.Max(0, math.Round(baseScore-penalty)))
}

// ratingScore normalizes the item's rating to 0-100 against the
// configured ceiling. Items below the reader's minimum rating score 0.
func (e *Engine) ratingScore(item catalog.Item, p profile.Profile) int {
	if item.Rating < p.Preferences.MinRating {
		return 0
	}

	normalized := item.Rating / e.config.RatingCeiling * 100
	return int(math.Min(100, math.Round(normalized)))
}

// popularityScore passes the catalog popularity through on its native
// 0-100 scale.
func (e *Engine) popularityScore(item catalog.Item) int {
	return item.Popularity
}

// statusMatch scores how well the item's publication status fits the
// reader's preferred set: 100 for a direct hit, 50 with no stated
// preference, 70 when an ongoing-preferring reader meets a completed
// series, 30 for the reverse, 20 otherwise.
func (e *Engine) statusMatch(item catalog.Item, p profile.Profile) int {
	prefs := p.Preferences
	if len(prefs.PreferredStatus) == 0 {
		return 50
	}

	if prefs.PrefersStatus(item.Status) {
		return 100
	}

	if prefs.PrefersStatus(catalog.StatusOngoing) && item.Status == catalog.StatusCompleted {
		return 70
	}
	if prefs.PrefersStatus(catalog.StatusCompleted) && item.Status == catalog.StatusOngoing {
		return 30
	}

	return 20
}

// genreSimilarity is the Jaccard overlap of two genre sets on a
// 0-100 scale.
func genreSimilarity(a, b catalog.Item) int {
	common := 0
	union := make(map[string]struct{}, len(a.Genres)+len(b.Genres))
	for _, genre := range a.Genres {
		union[genre] = struct{}{}
	}
	for _, genre := range b.Genres {
		union[genre] = struct{}{}
	}
	for _, genre := range a.Genres {
		if b.HasGenre(genre) {
			common++
		}
	}

	if len(union) == 0 {
		return 0
	}
	return int(math.Round(float64(common) / float64(len(union)) * 100))
}

// ratingSimilarity maps the absolute rating difference to 0-100,
// where identical ratings score 100 and a gap of 5 or more scores 0.
func ratingSimilarity(a, b catalog.Item) int {
	diff := math.Abs(a.Rating - b.Rating)
	return int(math.Round(math.Max(0, (1-diff/5)*100)))
}

// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

package recommend

import (
	"math"
	"sort"

	"github.com/mangacompass/mangacompass/internal/catalog"
	"github.com/mangacompass/mangacompass/internal/mood"
	"github.com/mangacompass/mangacompass/internal/profile"
)

// Base-compatibility blend and bonus normalization constants.
const (
	genreCompatWeight  = 0.7
	authorCompatWeight = 0.3

	// neutralCompatibility is assumed for readers with no history.
	neutralCompatibility = 0.5

	// ratingBonusFloor and ratingBonusRange normalize a rating into
	// the bonus term: (rating - floor) / range, clamped to [0, 1].
	ratingBonusFloor = 3.0
	ratingBonusRange = 2.0

	// freshnessDecayStep is the penalty per prior recommendation of
	// the same item.
	freshnessDecayStep = 0.2
)

// GenerateSingle picks the one best unread item for the mood. The
// candidate pool is the mood-filtered unread catalog, bounded by the
// configured sample size; an empty pool yields ErrNoCandidates.
func (e *Engine) GenerateSingle(p profile.Profile, m mood.Mood) (SingleRecommendation, error) {
	pool := e.moodCandidates(p, m)
	if len(pool) == 0 {
		e.logger.Debug().
			Str("mood", m.ID).
			Int("read_history", len(p.ReadHistory)).
			Msg("no mood candidates")
		e.metrics.RecordNoCandidates(m.ID)
		return SingleRecommendation{}, ErrNoCandidates
	}

	type scored struct {
		item  catalog.Item
		score float64
	}
	candidates := make([]scored, len(pool))
	for i, item := range pool {
		candidates[i] = scored{item: item, score: e.moodScore(item, p, m)}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	best := candidates[0]
	confidence := e.confidence(best.score, len(candidates))
	display := int(math.Round(best.score * 100))

	rec := SingleRecommendation{
		Item:             best.item,
		Mood:             m,
		Score:            display,
		Reason:           e.moodReason(best.item, m),
		MatchPercentage:  display,
		Confidence:       confidence,
		AlternativeCount: len(candidates) - 1,
	}

	e.logger.Debug().
		Str("mood", m.ID).
		Str("item", best.item.ID).
		Int("score", display).
		Str("confidence", string(confidence)).
		Int("pool", len(candidates)).
		Msg("mood recommendation generated")
	e.metrics.RecordSingle(m.ID, confidence)

	return rec, nil
}

// GenerateAlternative re-runs GenerateSingle with the excluded item
// ids treated as already read, so a reader can reject a pick and ask
// again for the same mood.
func (e *Engine) GenerateAlternative(p profile.Profile, m mood.Mood, excludeIDs []string) (SingleRecommendation, error) {
	alt := p.Clone()
	alt.ReadHistory = append(alt.ReadHistory, excludeIDs...)
	return e.GenerateSingle(alt, m)
}

// moodCandidates builds the candidate pool: unread items with a
// positive mood affinity, top-N by plain mood match.
func (e *Engine) moodCandidates(p profile.Profile, m mood.Mood) []catalog.Item {
	var unread []catalog.Item
	for _, item := range e.catalog.Items() {
		if !p.HasRead(item.ID) {
			unread = append(unread, item)
		}
	}
	return e.matcher.FilterByMood(unread, m, e.config.Limits.MoodSampleSize)
}

// moodScore computes the composite mood score in [0, 1]:
// base compatibility, history-influenced mood match, rating bonus,
// and freshness, combined with the configured weights.
func (e *Engine) moodScore(item catalog.Item, p profile.Profile, m mood.Mood) float64 {
	readItems := e.catalog.Resolve(p.ReadHistory)

	score := e.baseCompatibility(item, p, readItems)*e.config.Mood.BaseCompatibility +
		e.matcher.HistoryMatch(item, m, readItems)*e.config.Mood.MoodMatch +
		e.ratingBonus(item)*e.config.Mood.RatingBonus +
		e.freshness(item, p)*e.config.Mood.Freshness

	return clampFloat(score, 0, 1)
}

// baseCompatibility measures fit with the read history: 70% genre
// frequency overlap, 30% shared authorship. A reader with no history
// gets the neutral value.
func (e *Engine) baseCompatibility(item catalog.Item, p profile.Profile, readItems []catalog.Item) float64 {
	if len(p.ReadHistory) == 0 {
		return neutralCompatibility
	}

	return genreCompatibility(item, readItems)*genreCompatWeight +
		authorCompatibility(item, readItems)*authorCompatWeight
}

// genreCompatibility sums, over the item's genres, each genre's share
// of all genre occurrences across the read items, capped at 1.0.
func genreCompatibility(item catalog.Item, readItems []catalog.Item) float64 {
	if len(readItems) == 0 {
		return neutralCompatibility
	}
	if len(item.Genres) == 0 {
		return 0
	}

	genreCounts := make(map[string]int)
	totalGenres := 0
	for _, read := range readItems {
		for _, genre := range read.Genres {
			genreCounts[genre]++
			totalGenres++
		}
	}
	if totalGenres == 0 {
		return 0
	}

	var compat float64
	for _, genre := range item.Genres {
		compat += float64(genreCounts[genre]) / float64(totalGenres)
	}

	return math.Min(1.0, compat/float64(len(item.Genres)))
}

// authorCompatibility is 1.0 when any read item shares the candidate's
// author, else 0.
func authorCompatibility(item catalog.Item, readItems []catalog.Item) float64 {
	if item.Author == "" {
		return 0
	}
	for _, read := range readItems {
		if read.Author == item.Author {
			return 1.0
		}
	}
	return 0
}

// ratingBonus maps the rating into [0, 1] around the configured
// anchor: 3.0 scores 0, 5.0 and above score 1.
func (e *Engine) ratingBonus(item catalog.Item) float64 {
	return clampFloat((item.Rating-ratingBonusFloor)/ratingBonusRange, 0, 1)
}

// freshness decays by a fixed step for every prior recommendation of
// the same item, flooring at 0.
func (e *Engine) freshness(item catalog.Item, p profile.Profile) float64 {
	n := p.TimesRecommended(item.ID)
	return clampFloat(1.0-freshnessDecayStep*float64(n), 0, 1)
}

// confidence grades the winning score against the pool it won in.
func (e *Engine) confidence(score float64, poolSize int) Confidence {
	switch {
	case score >= 0.8 && poolSize >= 10:
		return ConfidenceHigh
	case score >= 0.6 && poolSize >= 5:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

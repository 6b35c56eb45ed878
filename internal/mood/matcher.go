// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

package mood

import (
	"math"
	"sort"

	"github.com/mangacompass/mangacompass/internal/catalog"
)

// Blend ratios for history-influenced matching.
const (
	moodBlendWeight    = 0.7
	historyBlendWeight = 0.3
)

// multiGenreBonusCap limits the bonus applied when an item matches
// several of a mood's genres at once.
const multiGenreBonusCap = 1.2

// Matcher scores catalog items against moods. The zero value is ready
// to use; it holds no state.
type Matcher struct{}

// NewMatcher returns a ready-to-use Matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Match returns the affinity of an item for a mood in [0, 1].
//
// The score is the mean weight of the item's genres that appear in the
// mood's table, boosted by 10% per additional matched genre up to a
// 1.2x cap, then clipped to 1.0. Items with no matching genre score 0.
func (m *Matcher) Match(item catalog.Item, mood Mood) float64 {
	var total float64
	matched := 0

	for _, genre := range item.Genres {
		if w, ok := mood.GenreWeights[genre]; ok {
			total += w
			matched++
		}
	}

	if matched == 0 {
		return 0
	}

	avg := total / float64(matched)
	bonus := math.Min(multiGenreBonusCap, 1+0.1*float64(matched-1))
	return math.Min(1.0, avg*bonus)
}

// HistoryMatch blends the plain mood affinity with how well the item's
// genres follow the reader's history: 70% mood match, 30% history
// match. With an empty history it reduces to Match.
//
// The history term is the mean, over the item's genres, of each
// genre's share of all genre occurrences across the read items.
func (m *Matcher) HistoryMatch(item catalog.Item, mood Mood, readItems []catalog.Item) float64 {
	base := m.Match(item, mood)
	if len(readItems) == 0 {
		return base
	}

	genreCounts := make(map[string]int)
	totalGenres := 0
	for _, read := range readItems {
		for _, genre := range read.Genres {
			genreCounts[genre]++
			totalGenres++
		}
	}

	if len(item.Genres) == 0 || totalGenres == 0 {
		return base * moodBlendWeight
	}

	var historyMatch float64
	for _, genre := range item.Genres {
		historyMatch += float64(genreCounts[genre]) / float64(totalGenres)
	}
	historyMatch /= float64(len(item.Genres))

	return base*moodBlendWeight + historyMatch*historyBlendWeight
}

// FilterByMood returns the items with a positive mood affinity, sorted
// by affinity descending and truncated to limit. A limit <= 0 means no
// truncation. The input slice is not modified.
func (m *Matcher) FilterByMood(items []catalog.Item, mood Mood, limit int) []catalog.Item {
	type scored struct {
		item  catalog.Item
		score float64
	}

	candidates := make([]scored, 0, len(items))
	for _, item := range items {
		if s := m.Match(item, mood); s > 0 {
			candidates = append(candidates, scored{item: item, score: s})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]catalog.Item, len(candidates))
	for i, c := range candidates {
		out[i] = c.item
	}
	return out
}

// MatchedGenres returns the item's genres that carry a strong weight
// (above 0.5) in the mood's table, in the item's genre order. These
// are the genres worth naming in a recommendation reason.
func (m *Matcher) MatchedGenres(item catalog.Item, mood Mood) []string {
	var matched []string
	for _, genre := range item.Genres {
		if w, ok := mood.GenreWeights[genre]; ok && w > 0.5 {
			matched = append(matched, genre)
		}
	}
	return matched
}

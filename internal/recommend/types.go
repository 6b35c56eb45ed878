// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

package recommend

import (
	"errors"

	"github.com/mangacompass/mangacompass/internal/catalog"
	"github.com/mangacompass/mangacompass/internal/mood"
)

// ErrNoCandidates is returned by the mood engine when no unread item
// carries any affinity for the requested mood.
var ErrNoCandidates = errors.New("no candidates match the requested mood")

// Factors breaks a batch score down into its four components, each in
// [0, 100]. They are attached to every Recommendation so callers can
// explain a ranking.
type Factors struct {
	// GenreMatch measures overlap with the reader's favorite genres.
	GenreMatch int `json:"genre_match"`

	// RatingScore is the item's rating normalized to 0-100.
	RatingScore int `json:"rating_score"`

	// PopularityScore is the item's popularity on its native 0-100
	// scale.
	PopularityScore int `json:"popularity_score"`

	// StatusMatch measures fit with the reader's preferred statuses.
	StatusMatch int `json:"status_match"`
}

// Recommendation is one entry in a batch ranking.
type Recommendation struct {
	Item catalog.Item `json:"item"`

	// Score is the weighted factor combination, rounded and clamped
	// to [0, 100].
	Score int `json:"score"`

	// Reason is a short human-readable justification.
	Reason string `json:"reason"`

	// MatchPercentage is the unweighted mean of the four factors.
	// It deliberately differs from Score.
	MatchPercentage int `json:"match_percentage"`

	Factors Factors `json:"factors"`
}

// Confidence expresses how much trust to place in a single mood
// recommendation.
type Confidence string

// Confidence levels.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// SingleRecommendation is the mood engine's result: one item, chosen
// for one mood.
type SingleRecommendation struct {
	Item catalog.Item `json:"item"`
	Mood mood.Mood    `json:"mood"`

	// Score is the composite mood score scaled to 0-100.
	Score int `json:"score"`

	// Reason is a mood-flavored justification.
	Reason string `json:"reason"`

	// MatchPercentage equals Score; kept as a separate field for
	// display parity with batch recommendations.
	MatchPercentage int `json:"match_percentage"`

	// Confidence reflects both the winning score and the size of the
	// candidate pool it won against.
	Confidence Confidence `json:"confidence"`

	// AlternativeCount is how many other candidates were considered.
	AlternativeCount int `json:"alternative_count"`
}

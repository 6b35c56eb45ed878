// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mangacompass/mangacompass/internal/profile"
	"github.com/mangacompass/mangacompass/internal/recommend"
)

// MaxRecords caps the recommendation log; the oldest entries are
// evicted beyond it.
const MaxRecords = 50

// Clock returns the current time. Injectable for tests.
type Clock func() time.Time

// Recorder appends recommendation outcomes to a profile.
type Recorder struct {
	now Clock
}

// NewRecorder creates a Recorder. A nil clock uses time.Now.
func NewRecorder(now Clock) *Recorder {
	if now == nil {
		now = time.Now
	}
	return &Recorder{now: now}
}

// Record logs that the recommendation was shown, with the reader's
// action if known. It returns the updated profile (newest record
// first, log truncated to MaxRecords, LastRecommendation set) and the
// new record. The input profile is not modified. An unknown action is
// rejected.
func (r *Recorder) Record(p profile.Profile, rec recommend.SingleRecommendation, action profile.Action) (profile.Profile, profile.Record, error) {
	if action != "" && !action.Valid() {
		return profile.Profile{}, profile.Record{}, fmt.Errorf("unknown action %q", action)
	}

	record := profile.Record{
		ID:              uuid.NewString(),
		Item:            rec.Item,
		Mood:            rec.Mood,
		Score:           rec.Score,
		Reason:          rec.Reason,
		MatchPercentage: rec.MatchPercentage,
		Timestamp:       r.now(),
		Action:          action,
	}

	out := p.Clone()
	out.RecommendationHistory = append([]profile.Record{record}, out.RecommendationHistory...)
	if len(out.RecommendationHistory) > MaxRecords {
		out.RecommendationHistory = out.RecommendationHistory[:MaxRecords]
	}
	out.LastRecommendation = &record
	out.SelectedMoodID = rec.Mood.ID

	return out, record, nil
}

// Stats summarizes the recommendation log.
type Stats struct {
	// Total is the number of records in the log.
	Total int `json:"total"`

	// ByMood counts records per mood id.
	ByMood map[string]int `json:"by_mood"`

	// ByAction counts records per action; records without an action
	// count under "no_action".
	ByAction map[string]int `json:"by_action"`

	// AverageScore is the mean display score, 0 for an empty log.
	AverageScore float64 `json:"average_score"`
}

// ComputeStats derives Stats from the profile's recommendation log.
func ComputeStats(p profile.Profile) Stats {
	stats := Stats{
		Total:    len(p.RecommendationHistory),
		ByMood:   make(map[string]int),
		ByAction: make(map[string]int),
	}

	totalScore := 0
	for _, rec := range p.RecommendationHistory {
		stats.ByMood[rec.Mood.ID]++

		action := string(rec.Action)
		if action == "" {
			action = "no_action"
		}
		stats.ByAction[action]++

		totalScore += rec.Score
	}

	if stats.Total > 0 {
		stats.AverageScore = float64(totalScore) / float64(stats.Total)
	}
	return stats
}

// Quality grades how well past recommendations landed.
type Quality struct {
	// ClickThroughRate is the share of records the reader clicked
	// through on.
	ClickThroughRate float64 `json:"click_through_rate"`

	// AverageRating is the mean catalog rating of recommended items.
	AverageRating float64 `json:"average_rating"`

	// SatisfactionRate is one minus the dismissal share.
	SatisfactionRate float64 `json:"satisfaction_rate"`
}

// ComputeQuality derives Quality from the profile's recommendation
// log. An empty log yields the zero value.
func ComputeQuality(p profile.Profile) Quality {
	total := len(p.RecommendationHistory)
	if total == 0 {
		return Quality{}
	}

	clicked := 0
	dismissed := 0
	var ratingSum float64
	for _, rec := range p.RecommendationHistory {
		switch rec.Action {
		case profile.ActionClickedThrough:
			clicked++
		case profile.ActionDismissed:
			dismissed++
		}
		ratingSum += rec.Item.Rating
	}

	return Quality{
		ClickThroughRate: float64(clicked) / float64(total),
		AverageRating:    ratingSum / float64(total),
		SatisfactionRate: 1 - float64(dismissed)/float64(total),
	}
}

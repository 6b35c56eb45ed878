// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

package profile

import (
	"time"

	"github.com/mangacompass/mangacompass/internal/catalog"
	"github.com/mangacompass/mangacompass/internal/mood"
)

// Action records how the reader reacted to a recommendation.
type Action string

// Reader actions on a recommendation.
const (
	ActionViewed         Action = "viewed"
	ActionClickedThrough Action = "clicked_through"
	ActionBookmarked     Action = "bookmarked"
	ActionDismissed      Action = "dismissed"
)

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	switch a {
	case ActionViewed, ActionClickedThrough, ActionBookmarked, ActionDismissed:
		return true
	}
	return false
}

// Record is one entry in the recommendation log: the item that was
// recommended, the mood it was generated for, the scores shown to the
// reader, and the reader's action if any.
type Record struct {
	ID              string       `json:"id" validate:"required"`
	Item            catalog.Item `json:"item"`
	Mood            mood.Mood    `json:"mood"`
	Score           int          `json:"score" validate:"min=0,max=100"`
	Reason          string       `json:"reason"`
	MatchPercentage int          `json:"match_percentage" validate:"min=0,max=100"`
	Timestamp       time.Time    `json:"timestamp"`
	Action          Action       `json:"action,omitempty" validate:"omitempty,oneof=viewed clicked_through bookmarked dismissed"`
}

// Preferences narrow which catalog items a reader will accept.
type Preferences struct {
	// PreferredStatus lists acceptable publication statuses. Empty
	// means the reader has no preference.
	PreferredStatus []catalog.Status `json:"preferred_status,omitempty" validate:"dive,oneof=ongoing completed hiatus cancelled incomplete"`
	// MinRating filters out items rated below it (0 disables).
	MinRating float64 `json:"min_rating" validate:"min=0,max=10"`
	// MaxVolumes filters out longer series (0 disables).
	MaxVolumes int `json:"max_volumes,omitempty" validate:"min=0"`
	// ExcludeGenres penalizes items carrying any of these genres.
	ExcludeGenres []string `json:"exclude_genres,omitempty"`
}

// Profile is the full reader state the recommendation engines operate
// on. All fields are optional; the zero value is a valid new reader.
type Profile struct {
	ID             string   `json:"id"`
	FavoriteGenres []string `json:"favorite_genres,omitempty"`
	// ReadHistory holds catalog item ids the reader has already read.
	ReadHistory []string    `json:"read_history,omitempty"`
	Preferences Preferences `json:"preferences"`
	// SelectedMoodID is the mood the reader last picked, if any.
	SelectedMoodID string `json:"selected_mood_id,omitempty"`
	// RecommendationHistory is newest-first and capped by the recorder.
	RecommendationHistory []Record `json:"recommendation_history,omitempty"`
	LastRecommendation    *Record  `json:"last_recommendation,omitempty"`
}

// HasRead reports whether the reader's history contains the item id.
func (p Profile) HasRead(id string) bool {
	for _, read := range p.ReadHistory {
		if read == id {
			return true
		}
	}
	return false
}

// TimesRecommended counts how often the item id appears in the
// recommendation log. The mood engine uses this to demote items the
// reader has already been shown.
func (p Profile) TimesRecommended(id string) int {
	n := 0
	for _, rec := range p.RecommendationHistory {
		if rec.Item.ID == id {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the profile. Mutating the copy never
// affects the original.
func (p Profile) Clone() Profile {
	out := p
	out.FavoriteGenres = append([]string(nil), p.FavoriteGenres...)
	out.ReadHistory = append([]string(nil), p.ReadHistory...)
	out.Preferences.PreferredStatus = append([]catalog.Status(nil), p.Preferences.PreferredStatus...)
	out.Preferences.ExcludeGenres = append([]string(nil), p.Preferences.ExcludeGenres...)
	out.RecommendationHistory = append([]Record(nil), p.RecommendationHistory...)
	if p.LastRecommendation != nil {
		last := *p.LastRecommendation
		out.LastRecommendation = &last
	}
	return out
}

// PrefersStatus reports whether the status is in the reader's
// preferred set.
func (p Preferences) PrefersStatus(s catalog.Status) bool {
	for _, preferred := range p.PreferredStatus {
		if preferred == s {
			return true
		}
	}
	return false
}

// Excludes reports whether the genre is on the reader's exclusion
// list.
func (p Preferences) Excludes(genre string) bool {
	for _, excluded := range p.ExcludeGenres {
		if excluded == genre {
			return true
		}
	}
	return false
}

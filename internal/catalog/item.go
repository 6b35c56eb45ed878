// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

package catalog

// Status is the publication lifecycle state of a title.
type Status string

const (
	// StatusOngoing indicates the series is still being published.
	StatusOngoing Status = "ongoing"
	// StatusCompleted indicates the series has finished publication.
	StatusCompleted Status = "completed"
	// StatusHiatus indicates publication is paused indefinitely.
	StatusHiatus Status = "hiatus"
	// StatusCancelled indicates publication was cancelled.
	StatusCancelled Status = "cancelled"
	// StatusIncomplete indicates the series ended without a conclusion.
	StatusIncomplete Status = "incomplete"
)

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusOngoing, StatusCompleted, StatusHiatus, StatusCancelled, StatusIncomplete:
		return true
	default:
		return false
	}
}

// Genres lists the genre vocabulary used by the seed catalog and the mood
// weight tables. Items are not restricted to this list.
var Genres = []string{
	"Action", "Adventure", "Comedy", "Drama", "Fantasy",
	"Horror", "Mystery", "Romance", "Sci-Fi", "Slice of Life",
	"Sports", "Supernatural", "Thriller", "Historical", "Psychological",
	"School", "Mecha", "Military", "Music", "Cooking",
}

// Item is a single catalog entry. Items are immutable after catalog load.
type Item struct {
	// ID is the unique, stable identifier of the title.
	ID string `json:"id" validate:"required"`

	// Title is the display title.
	Title string `json:"title" validate:"required"`

	// Author is the author (or comma-separated authors) of the title.
	Author string `json:"author"`

	// Genres is the ordered list of genre tags.
	Genres []string `json:"genres" validate:"dive,required"`

	// Status is the publication lifecycle state.
	Status Status `json:"status" validate:"required,oneof=ongoing completed hiatus cancelled incomplete"`

	// Volumes is the published volume count.
	Volumes int `json:"volumes" validate:"min=0"`

	// Rating is the aggregate reader rating on a 1-10 scale.
	Rating float64 `json:"rating" validate:"min=0,max=10"`

	// Popularity is a pre-computed popularity metric (0-100).
	Popularity int `json:"popularity" validate:"min=0,max=100"`

	// Year is the first publication year, zero when unknown.
	Year int `json:"year,omitempty"`

	// Description is a short synopsis.
	Description string `json:"description,omitempty"`

	// ASIN is the Amazon product identifier, empty when unknown.
	ASIN string `json:"asin,omitempty" validate:"omitempty,asin"`

	// PurchaseLink is the external purchase URL.
	PurchaseLink string `json:"purchase_link,omitempty"`
}

// HasGenre reports whether the item carries the given genre tag.
func (i Item) HasGenre(genre string) bool {
	for _, g := range i.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

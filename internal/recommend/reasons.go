// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

package recommend

import (
	"fmt"
	"math"
	"strings"

	"github.com/mangacompass/mangacompass/internal/catalog"
	"github.com/mangacompass/mangacompass/internal/mood"
	"github.com/mangacompass/mangacompass/internal/profile"
)

// Factor sub-thresholds that earn a mention in a batch reason.
const (
	reasonGenreThreshold      = 70
	reasonRatingThreshold     = 80
	reasonPopularityThreshold = 80
	reasonStatusThreshold     = 90
)

// Mood-reason annotation thresholds.
const (
	moodReasonRatingFloor     = 8.0
	moodReasonPopularityFloor = 80
)

// batchReason builds a reason string from the factors that crossed
// their mention thresholds, in fixed priority order, capped at the
// configured count.
func (e *Engine) batchReason(item catalog.Item, factors Factors, p profile.Profile) string {
	var reasons []string

	if factors.GenreMatch >= reasonGenreThreshold {
		var common []string
		for _, genre := range item.Genres {
			for _, fav := range p.FavoriteGenres {
				if genre == fav {
					common = append(common, genre)
					break
				}
			}
		}
		if len(common) > 0 {
			if len(common) > 2 {
				common = common[:2]
			}
			reasons = append(reasons, fmt.Sprintf("Matches your favorite genres: %s", strings.Join(common, ", ")))
		}
	}

	if factors.RatingScore >= reasonRatingThreshold {
		reasons = append(reasons, fmt.Sprintf("Highly rated (★%.1f)", item.Rating))
	}

	if factors.PopularityScore >= reasonPopularityThreshold {
		reasons = append(reasons, "Widely popular")
	}

	if factors.StatusMatch >= reasonStatusThreshold {
		if item.Status == catalog.StatusCompleted {
			reasons = append(reasons, "Completed series, as you prefer")
		} else {
			reasons = append(reasons, "Ongoing series, as you prefer")
		}
	}

	if item.Volumes >= e.config.Reasons.LongSeriesVolumes {
		reasons = append(reasons, "Long-running series")
	}

	if item.Year >= e.config.Reasons.RecentYearCutoff {
		reasons = append(reasons, "Recent release")
	}

	if len(reasons) == 0 {
		return "Looks like a good fit for your tastes"
	}
	if len(reasons) > e.config.Reasons.MaxReasons {
		reasons = reasons[:e.config.Reasons.MaxReasons]
	}
	return strings.Join(reasons, ", ")
}

// similarityReason explains why an item resembles the target.
func (e *Engine) similarityReason(target, item catalog.Item) string {
	var reasons []string

	var common []string
	for _, genre := range target.Genres {
		if item.HasGenre(genre) {
			common = append(common, genre)
		}
	}
	if len(common) > 0 {
		if len(common) > 2 {
			common = common[:2]
		}
		reasons = append(reasons, fmt.Sprintf("shared genres (%s)", strings.Join(common, ", ")))
	}

	if item.Author != "" && item.Author == target.Author {
		reasons = append(reasons, "same author")
	}

	if math.Abs(target.Rating-item.Rating) <= 0.5 {
		reasons = append(reasons, "similarly rated")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "a comparable read")
	}

	return fmt.Sprintf("Similar to %q: %s", target.Title, strings.Join(reasons, ", "))
}

// moodReasonTemplates holds three phrasings per mood. Placeholders:
// %[1]s is the matched genres joined with " & ", %[2]s is the first
// matched genre.
var moodReasonTemplates = map[string][]string{
	mood.IDAdventure: {
		"Adventure awaits with %[1]s elements",
		"Epic %[2]s story satisfies your adventurous spirit",
		"Exploring unknown worlds through %[1]s is captivating",
	},
	mood.IDRelax: {
		"Relaxing read with %[1]s elements",
		"Soothing %[2]s for peaceful moments",
		"Gentle %[1]s atmosphere is charming",
	},
	mood.IDExcitement: {
		"Thrilling excitement with %[1]s",
		"Action-packed %[2]s scenes to enjoy",
		"Passionate %[1]s development is captivating",
	},
	mood.IDEmotional: {
		"Deep emotional impact with %[1]s",
		"Heart-touching %[2]s story",
		"Emotionally rich %[1]s resonates deeply",
	},
	mood.IDThoughtful: {
		"Deep themes in %[1]s make you think",
		"Philosophical %[2]s elements are impressive",
		"Thoughtful %[1]s content is appealing",
	},
	mood.IDThrilling: {
		"Heart-pounding suspense with %[1]s",
		"Tension-filled %[2]s development to enjoy",
		"Thrilling %[1]s is captivating",
	},
	mood.IDNostalgic: {
		"Nostalgic atmosphere with %[1]s",
		"Nostalgic %[2]s setting is charming",
		"Warm %[1]s world is comforting",
	},
	mood.IDLight: {
		"Light enjoyment with %[1]s",
		"Light %[2]s for a mood change",
		"Bright %[1]s atmosphere is appealing",
	},
}

// moodReason builds a reason string for a mood recommendation from
// the strongly-matched genres, annotated with rating and popularity
// when they stand out. Template choice comes from the seeded source.
func (e *Engine) moodReason(item catalog.Item, m mood.Mood) string {
	matched := e.matcher.MatchedGenres(item, m)

	var reason string
	templates, ok := moodReasonTemplates[m.ID]
	switch {
	case len(matched) == 0:
		reason = fmt.Sprintf("A strong pick for your %s mood", m.Name)
	case !ok:
		reason = fmt.Sprintf("%s perfect for %s", strings.Join(matched, " & "), m.Name)
	default:
		e.rngMu.Lock()
		idx := e.rng.Intn(len(templates))
		e.rngMu.Unlock()
		reason = fmt.Sprintf(templates[idx], strings.Join(matched, " & "), matched[0])
	}

	if item.Rating >= moodReasonRatingFloor {
		reason += fmt.Sprintf(" (Rating %.1f/10)", item.Rating)
	}
	if item.Popularity >= moodReasonPopularityFloor {
		reason += " • Popular"
	}

	return reason
}

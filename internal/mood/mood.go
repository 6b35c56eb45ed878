// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

package mood

// Mood describes one selectable reading mood. The GenreWeights table
// maps genre names to affinity weights in (0, 1]; genres absent from
// the table contribute nothing to the mood score.
type Mood struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Emoji        string             `json:"emoji"`
	Description  string             `json:"description"`
	Color        string             `json:"color"`
	GenreWeights map[string]float64 `json:"genre_weights"`
}

// Mood identifiers. These are stable across releases and safe to
// persist in recommendation records.
const (
	IDAdventure  = "adventure"
	IDRelax      = "relax"
	IDExcitement = "excitement"
	IDEmotional  = "emotional"
	IDThoughtful = "thoughtful"
	IDThrilling  = "thrilling"
	IDNostalgic  = "nostalgic"
	IDLight      = "light"
)

// moods is the canonical mood set, in selector display order.
var moods = []Mood{
	{
		ID:          IDAdventure,
		Name:        "Adventure",
		Emoji:       "🗺️",
		Description: "Want to explore new worlds",
		Color:       "#10B981",
		GenreWeights: map[string]float64{
			"Adventure":    1.0,
			"Action":       0.8,
			"Fantasy":      0.7,
			"Sci-Fi":       0.6,
			"Supernatural": 0.5,
		},
	},
	{
		ID:          IDRelax,
		Name:        "Relax",
		Emoji:       "😌",
		Description: "Want to read peacefully",
		Color:       "#6366F1",
		GenreWeights: map[string]float64{
			"Slice of Life": 1.0,
			"Comedy":        0.8,
			"Cooking":       0.7,
			"Romance":       0.6,
			"Music":         0.5,
		},
	},
	{
		ID:          IDExcitement,
		Name:        "Exciting",
		Emoji:       "⚡",
		Description: "Want thrilling excitement",
		Color:       "#F59E0B",
		GenreWeights: map[string]float64{
			"Action":   1.0,
			"Sports":   0.9,
			"Thriller": 0.8,
			"Mecha":    0.7,
			"Military": 0.6,
		},
	},
	{
		ID:          IDEmotional,
		Name:        "Emotional",
		Emoji:       "💝",
		Description: "Want to be moved emotionally",
		Color:       "#EF4444",
		GenreWeights: map[string]float64{
			"Drama":         1.0,
			"Romance":       0.8,
			"Music":         0.7,
			"Historical":    0.6,
			"Slice of Life": 0.5,
		},
	},
	{
		ID:          IDThoughtful,
		Name:        "Thoughtful",
		Emoji:       "🤔",
		Description: "Want to read while thinking deeply",
		Color:       "#8B5CF6",
		GenreWeights: map[string]float64{
			"Psychological": 1.0,
			"Mystery":       0.9,
			"Sci-Fi":        0.7,
			"Drama":         0.6,
			"Historical":    0.5,
		},
	},
	{
		ID:          IDThrilling,
		Name:        "Thrilling",
		Emoji:       "😰",
		Description: "Want to enjoy suspense",
		Color:       "#DC2626",
		GenreWeights: map[string]float64{
			"Horror":        1.0,
			"Thriller":      0.9,
			"Mystery":       0.8,
			"Supernatural":  0.7,
			"Psychological": 0.6,
		},
	},
	{
		ID:          IDNostalgic,
		Name:        "Nostalgic",
		Emoji:       "🌅",
		Description: "Want to feel nostalgic",
		Color:       "#F97316",
		GenreWeights: map[string]float64{
			"Historical":    1.0,
			"School":        0.8,
			"Slice of Life": 0.7,
			"Drama":         0.6,
			"Romance":       0.5,
		},
	},
	{
		ID:          IDLight,
		Name:        "Light",
		Emoji:       "☀️",
		Description: "Want to read casually and enjoyably",
		Color:       "#22D3EE",
		GenreWeights: map[string]float64{
			"Comedy":        1.0,
			"School":        0.8,
			"Slice of Life": 0.7,
			"Romance":       0.6,
			"Sports":        0.5,
		},
	},
}

// All returns the canonical mood set in display order. The slice is a
// copy; callers may reorder it freely but must treat the weight maps
// as read-only.
func All() []Mood {
	out := make([]Mood, len(moods))
	copy(out, moods)
	return out
}

// ByID looks up a mood by its stable identifier.
func ByID(id string) (Mood, bool) {
	for _, m := range moods {
		if m.ID == id {
			return m, true
		}
	}
	return Mood{}, false
}

// CombineWeights merges the genre weight tables of several moods into
// one. Each mood's table is scaled by its entry in weights before
// summation; when weights is empty or its length does not match, every
// mood contributes equally. An empty mood list yields an empty table.
func CombineWeights(selected []Mood, weights []float64) map[string]float64 {
	combined := make(map[string]float64)
	if len(selected) == 0 {
		return combined
	}

	if len(weights) != len(selected) {
		weights = make([]float64, len(selected))
		for i := range weights {
			weights[i] = 1.0 / float64(len(selected))
		}
	}

	for i, m := range selected {
		for genre, gw := range m.GenreWeights {
			combined[genre] += gw * weights[i]
		}
	}
	return combined
}

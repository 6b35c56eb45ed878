// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

package recommend

import (
	"fmt"
)

// Config contains all tunables for both recommendation engines.
type Config struct {
	// Batch defines the factor weights for the batch ranker.
	Batch BatchWeights `json:"batch"`

	// Mood defines the sub-score weights for the mood engine.
	Mood MoodWeights `json:"mood"`

	// Similar defines the term weights for similarity search.
	Similar SimilarWeights `json:"similar"`

	// Thresholds contains the score cut-offs.
	Thresholds Thresholds `json:"thresholds"`

	// Limits contains result and candidate-pool bounds.
	Limits Limits `json:"limits"`

	// Reasons contains tunables for reason-string generation.
	Reasons ReasonsConfig `json:"reasons"`

	// RatingCeiling is the scale ceiling used to normalize a catalog
	// rating into the 0-100 rating factor. Ratings at or above it map
	// to 100.
	RatingCeiling float64 `json:"rating_ceiling"`

	// Seed is the random seed for deterministic reason-template
	// selection. If zero, a fixed default seed is used.
	Seed int64 `json:"seed"`
}

// BatchWeights defines the contribution of each factor to the batch
// score. The weights are applied as given; they should sum to 1.0.
type BatchWeights struct {
	// GenreMatch is the weight of the genre-overlap factor.
	GenreMatch float64 `json:"genre_match"`

	// Rating is the weight of the rating factor.
	Rating float64 `json:"rating"`

	// Popularity is the weight of the popularity factor.
	Popularity float64 `json:"popularity"`

	// StatusMatch is the weight of the status-preference factor.
	StatusMatch float64 `json:"status_match"`
}

// MoodWeights defines the contribution of each sub-score to the mood
// engine's composite. All sub-scores are in [0, 1].
type MoodWeights struct {
	// BaseCompatibility weights the read-history fit.
	BaseCompatibility float64 `json:"base_compatibility"`

	// MoodMatch weights the history-influenced mood affinity.
	MoodMatch float64 `json:"mood_match"`

	// RatingBonus weights the normalized rating bonus.
	RatingBonus float64 `json:"rating_bonus"`

	// Freshness weights the repeat-recommendation decay.
	Freshness float64 `json:"freshness"`
}

// SimilarWeights defines the term weights for FindSimilar.
type SimilarWeights struct {
	// Genre weights the genre Jaccard similarity.
	Genre float64 `json:"genre"`

	// Rating weights the rating closeness term.
	Rating float64 `json:"rating"`

	// Author weights the same-author term.
	Author float64 `json:"author"`
}

// Thresholds contains the minimum scores a candidate must reach to be
// returned at all.
type Thresholds struct {
	// MinBatchScore drops batch candidates scoring below it.
	MinBatchScore int `json:"min_batch_score"`

	// MinSimilarScore drops similarity candidates scoring below it.
	MinSimilarScore int `json:"min_similar_score"`
}

// Limits contains result-count defaults and candidate-pool bounds.
type Limits struct {
	// MaxBatchResults is the default result cap for Generate.
	MaxBatchResults int `json:"max_batch_results"`

	// MaxGenreResults is the default result cap for GenerateByGenre.
	MaxGenreResults int `json:"max_genre_results"`

	// MaxSimilarResults is the default result cap for FindSimilar.
	MaxSimilarResults int `json:"max_similar_results"`

	// MoodSampleSize bounds the mood engine's candidate pool. The
	// pool also feeds the alternative count and confidence level.
	MoodSampleSize int `json:"mood_sample_size"`
}

// ReasonsConfig contains tunables for reason-string generation.
type ReasonsConfig struct {
	// RecentYearCutoff marks an item as a recent release when its
	// publication year is at or after it.
	RecentYearCutoff int `json:"recent_year_cutoff"`

	// LongSeriesVolumes marks an item as a long-running series when
	// its volume count is at or above it.
	LongSeriesVolumes int `json:"long_series_volumes"`

	// MaxReasons caps the number of reason fragments joined into one
	// batch reason string.
	MaxReasons int `json:"max_reasons"`
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Batch: BatchWeights{
			GenreMatch:  0.4,
			Rating:      0.3,
			Popularity:  0.2,
			StatusMatch: 0.1,
		},
		Mood: MoodWeights{
			BaseCompatibility: 0.5,
			MoodMatch:         0.3,
			RatingBonus:       0.15,
			Freshness:         0.05,
		},
		Similar: SimilarWeights{
			Genre:  0.6,
			Rating: 0.3,
			Author: 0.1,
		},
		Thresholds: Thresholds{
			MinBatchScore:   30,
			MinSimilarScore: 40,
		},
		Limits: Limits{
			MaxBatchResults:   10,
			MaxGenreResults:   5,
			MaxSimilarResults: 5,
			MoodSampleSize:    20,
		},
		Reasons: ReasonsConfig{
			RecentYearCutoff:  2018,
			LongSeriesVolumes: 20,
			MaxReasons:        3,
		},
		RatingCeiling: 5.0,
		Seed:          42,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	for _, w := range []struct {
		name  string
		value float64
	}{
		{"batch.genre_match", c.Batch.GenreMatch},
		{"batch.rating", c.Batch.Rating},
		{"batch.popularity", c.Batch.Popularity},
		{"batch.status_match", c.Batch.StatusMatch},
		{"mood.base_compatibility", c.Mood.BaseCompatibility},
		{"mood.mood_match", c.Mood.MoodMatch},
		{"mood.rating_bonus", c.Mood.RatingBonus},
		{"mood.freshness", c.Mood.Freshness},
		{"similar.genre", c.Similar.Genre},
		{"similar.rating", c.Similar.Rating},
		{"similar.author", c.Similar.Author},
	} {
		if w.value < 0 || w.value > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %f", w.name, w.value)
		}
	}

	if c.Thresholds.MinBatchScore < 0 || c.Thresholds.MinBatchScore > 100 {
		return fmt.Errorf("thresholds.min_batch_score must be in [0, 100], got %d", c.Thresholds.MinBatchScore)
	}
	if c.Thresholds.MinSimilarScore < 0 || c.Thresholds.MinSimilarScore > 100 {
		return fmt.Errorf("thresholds.min_similar_score must be in [0, 100], got %d", c.Thresholds.MinSimilarScore)
	}

	if c.Limits.MaxBatchResults < 1 {
		return fmt.Errorf("limits.max_batch_results must be positive, got %d", c.Limits.MaxBatchResults)
	}
	if c.Limits.MaxGenreResults < 1 {
		return fmt.Errorf("limits.max_genre_results must be positive, got %d", c.Limits.MaxGenreResults)
	}
	if c.Limits.MaxSimilarResults < 1 {
		return fmt.Errorf("limits.max_similar_results must be positive, got %d", c.Limits.MaxSimilarResults)
	}
	if c.Limits.MoodSampleSize < 1 {
		return fmt.Errorf("limits.mood_sample_size must be positive, got %d", c.Limits.MoodSampleSize)
	}

	if c.Reasons.MaxReasons < 1 {
		return fmt.Errorf("reasons.max_reasons must be positive, got %d", c.Reasons.MaxReasons)
	}

	if c.RatingCeiling <= 0 {
		return fmt.Errorf("rating_ceiling must be positive, got %f", c.RatingCeiling)
	}

	return nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// Direct field copy - all nested structs contain only value types.
	out := *c
	return &out
}

// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

// Package metrics provides Prometheus instrumentation for the
// recommendation engines: batch result counts, mood picks by mood and
// confidence, and empty candidate pools.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mangacompass/mangacompass/internal/recommend"
)

var (
	// BatchRankings counts batch ranking runs.
	BatchRankings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mangacompass_batch_rankings_total",
			Help: "Total number of batch ranking runs",
		},
	)

	// BatchResults observes how many recommendations each batch run
	// returned.
	BatchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mangacompass_batch_results",
			Help:    "Number of recommendations returned per batch run",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)

	// MoodRecommendations counts successful mood picks by mood and
	// confidence level.
	MoodRecommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mangacompass_mood_recommendations_total",
			Help: "Total number of mood recommendations generated",
		},
		[]string{"mood", "confidence"},
	)

	// MoodNoCandidates counts mood picks that failed for lack of
	// candidates.
	MoodNoCandidates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mangacompass_mood_no_candidates_total",
			Help: "Total number of mood recommendations with an empty candidate pool",
		},
		[]string{"mood"},
	)

	// ProfilesSaved counts profile store writes.
	ProfilesSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mangacompass_profiles_saved_total",
			Help: "Total number of profile saves",
		},
	)

	// RecordsWritten counts recommendation records appended to
	// profiles.
	RecordsWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mangacompass_records_written_total",
			Help: "Total number of recommendation records written",
		},
	)
)

// Recorder implements recommend.MetricsRecorder on the package
// collectors.
type Recorder struct{}

// NewRecorder returns a Recorder wired to the package collectors.
func NewRecorder() Recorder {
	return Recorder{}
}

// RecordBatch counts a batch ranking and its result size.
func (Recorder) RecordBatch(results int) {
	BatchRankings.Inc()
	BatchResults.Observe(float64(results))
}

// RecordSingle counts a successful mood recommendation.
func (Recorder) RecordSingle(moodID string, confidence recommend.Confidence) {
	MoodRecommendations.WithLabelValues(moodID, string(confidence)).Inc()
}

// RecordNoCandidates counts a failed mood recommendation.
func (Recorder) RecordNoCandidates(moodID string) {
	MoodNoCandidates.WithLabelValues(moodID).Inc()
}

// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

package recommend

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mangacompass/mangacompass/internal/catalog"
	"github.com/mangacompass/mangacompass/internal/mood"
	"github.com/mangacompass/mangacompass/internal/profile"
)

// MetricsRecorder receives engine events for instrumentation. The
// engine calls it synchronously; implementations must be cheap and
// safe for concurrent use.
type MetricsRecorder interface {
	// RecordBatch is called after a batch ranking with the number of
	// results returned.
	RecordBatch(results int)

	// RecordSingle is called after a successful mood recommendation.
	RecordSingle(moodID string, confidence Confidence)

	// RecordNoCandidates is called when a mood recommendation fails
	// for lack of candidates.
	RecordNoCandidates(moodID string)
}

// nopMetrics discards all events.
type nopMetrics struct{}

func (nopMetrics) RecordBatch(int)                 {}
func (nopMetrics) RecordSingle(string, Confidence) {}
func (nopMetrics) RecordNoCandidates(string)       {}

// Engine produces recommendations from a fixed catalog. It is safe
// for concurrent use.
type Engine struct {
	config  *Config
	catalog *catalog.Catalog
	matcher *mood.Matcher
	logger  zerolog.Logger
	metrics MetricsRecorder

	// Random source for reason-template selection (protected by rngMu
	// for concurrent access).
	rng   *rand.Rand
	rngMu sync.Mutex
}

// NewEngine creates a recommendation engine over the given catalog.
// A nil cfg selects DefaultConfig; a nil metrics recorder discards
// events.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat *catalog.Catalog, cfg *Config, logger zerolog.Logger, metrics MetricsRecorder) (*Engine, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog must not be nil")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = 42
	}

	return &Engine{
		config:  cfg.Clone(),
		catalog: cat,
		matcher: mood.NewMatcher(),
		logger:  logger.With().Str("component", "recommend").Logger(),
		metrics: metrics,
		rng:     rand.New(rand.NewSource(seed)), //nolint:gosec // math/rand is fine for template selection
	}, nil
}

// Generate ranks the catalog against the profile and returns up to
// maxResults recommendations ordered by score descending, ties keeping
// catalog order. Candidates scoring below the batch threshold are
// dropped; an empty result is not an error. A maxResults <= 0 selects
// the configured default.
func (e *Engine) Generate(p profile.Profile, excludeRead bool, maxResults int) []Recommendation {
	if maxResults <= 0 {
		maxResults = e.config.Limits.MaxBatchResults
	}

	var candidates []catalog.Item
	if excludeRead {
		for _, item := range e.catalog.Items() {
			if !p.HasRead(item.ID) {
				candidates = append(candidates, item)
			}
		}
	} else {
		candidates = e.catalog.Items()
	}

	recs := e.rank(candidates, p)

	filtered := recs[:0]
	for _, rec := range recs {
		if rec.Score >= e.config.Thresholds.MinBatchScore {
			filtered = append(filtered, rec)
		}
	}
	recs = filtered

	if len(recs) > maxResults {
		recs = recs[:maxResults]
	}

	e.logger.Debug().
		Int("candidates", len(candidates)).
		Int("results", len(recs)).
		Bool("exclude_read", excludeRead).
		Msg("batch ranking complete")
	e.metrics.RecordBatch(len(recs))

	return recs
}

// GenerateByGenre ranks only the items carrying the given genre. With
// a profile it runs the normal scoring machinery without a threshold
// cut; without one it falls back to a pure rating sort with synthetic
// factors.
func (e *Engine) GenerateByGenre(genre string, p *profile.Profile, maxResults int) []Recommendation {
	if maxResults <= 0 {
		maxResults = e.config.Limits.MaxGenreResults
	}

	inGenre := e.catalog.ByGenre(genre)

	if p == nil {
		sort.SliceStable(inGenre, func(i, j int) bool {
			return inGenre[i].Rating > inGenre[j].Rating
		})
		if len(inGenre) > maxResults {
			inGenre = inGenre[:maxResults]
		}

		recs := make([]Recommendation, len(inGenre))
		for i, item := range inGenre {
			score := int(math.Min(100, math.Round(item.Rating*20)))
			recs[i] = Recommendation{
				Item:            item,
				Score:           score,
				Reason:          fmt.Sprintf("Top-rated %s title", genre),
				MatchPercentage: score,
				Factors: Factors{
					GenreMatch:      100,
					RatingScore:     score,
					PopularityScore: item.Popularity,
					StatusMatch:     50,
				},
			}
		}
		return recs
	}

	recs := e.rank(inGenre, *p)
	if len(recs) > maxResults {
		recs = recs[:maxResults]
	}
	return recs
}

// FindSimilar returns catalog items similar to target, scored by
// genre overlap, rating closeness, and shared authorship. Candidates
// below the similarity threshold are dropped. When a profile is given
// its read history is excluded from the candidates.
func (e *Engine) FindSimilar(target catalog.Item, p *profile.Profile, maxResults int) []Recommendation {
	if maxResults <= 0 {
		maxResults = e.config.Limits.MaxSimilarResults
	}

	var recs []Recommendation
	for _, item := range e.catalog.Items() {
		if item.ID == target.ID {
			continue
		}
		if p != nil && p.HasRead(item.ID) {
			continue
		}

		genreSim := genreSimilarity(target, item)
		ratingSim := ratingSimilarity(target, item)
		authorTerm := 0
		if item.Author != "" && item.Author == target.Author {
			authorTerm = 50
		}

		score := int(math.Round(
			float64(genreSim)*e.config.Similar.Genre +
				float64(ratingSim)*e.config.Similar.Rating +
				float64(authorTerm)*e.config.Similar.Author))
		if score < e.config.Thresholds.MinSimilarScore {
			continue
		}

		statusTerm := 0
		if item.Status == target.Status {
			statusTerm = 100
		}

		recs = append(recs, Recommendation{
			Item:            item,
			Score:           score,
			Reason:          e.similarityReason(target, item),
			MatchPercentage: score,
			Factors: Factors{
				GenreMatch:      genreSim,
				RatingScore:     ratingSim,
				PopularityScore: item.Popularity,
				StatusMatch:     statusTerm,
			},
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if len(recs) > maxResults {
		recs = recs[:maxResults]
	}
	return recs
}

// rank scores the candidates against the profile and sorts them by
// score descending, catalog order on ties.
func (e *Engine) rank(candidates []catalog.Item, p profile.Profile) []Recommendation {
	recs := make([]Recommendation, 0, len(candidates))
	for _, item := range candidates {
		factors := e.computeFactors(item, p)

		score := int(math.Round(
			float64(factors.GenreMatch)*e.config.Batch.GenreMatch +
				float64(factors.RatingScore)*e.config.Batch.Rating +
				float64(factors.PopularityScore)*e.config.Batch.Popularity +
				float64(factors.StatusMatch)*e.config.Batch.StatusMatch))
		score = clampInt(score, 0, 100)

		matchPercentage := int(math.Round(float64(
			factors.GenreMatch+factors.RatingScore+
				factors.PopularityScore+factors.StatusMatch) / 4))

		recs = append(recs, Recommendation{
			Item:            item,
			Score:           score,
			Reason:          e.batchReason(item, factors, p),
			MatchPercentage: matchPercentage,
			Factors:         factors,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	return recs
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

// Package mangacompass assembles the recommendation core into one
// in-process service: catalog, batch and mood engines, recommendation
// recording, and profile persistence.
//
//	cfg, err := config.Load()
//	svc, err := mangacompass.New(cfg)
//	defer svc.Close()
//
//	rec, err := svc.RecommendForMood(ctx, "reader-1", mood.IDAdventure)
package mangacompass

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/mangacompass/mangacompass/internal/affiliate"
	"github.com/mangacompass/mangacompass/internal/catalog"
	"github.com/mangacompass/mangacompass/internal/config"
	"github.com/mangacompass/mangacompass/internal/history"
	"github.com/mangacompass/mangacompass/internal/logging"
	"github.com/mangacompass/mangacompass/internal/metrics"
	"github.com/mangacompass/mangacompass/internal/mood"
	"github.com/mangacompass/mangacompass/internal/profile"
	"github.com/mangacompass/mangacompass/internal/recommend"
	"github.com/mangacompass/mangacompass/internal/store"
)

// ErrUnknownMood is returned when a mood id is not in the mood set.
var ErrUnknownMood = errors.New("unknown mood")

// Service is the assembled recommendation core. It is safe for
// concurrent use.
type Service struct {
	catalog      *catalog.Catalog
	engine       *recommend.Engine
	recorder     *history.Recorder
	profiles     store.ProfileStore
	affiliateTag string
	logger       zerolog.Logger

	db *badger.DB // non-nil only for the badger backend
}

// New assembles a Service from the configuration, using the embedded
// seed catalog. Logging must already be initialized by the caller
// (typically via logging.Init).
func New(cfg *config.Config) (*Service, error) {
	cat, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("load seed catalog: %w", err)
	}
	return NewWithCatalog(cfg, cat)
}

// NewWithCatalog assembles a Service over a caller-provided catalog.
func NewWithCatalog(cfg *config.Config, cat *catalog.Catalog) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.With().Str("component", "service").Logger()

	engineCfg := cfg.Engine
	engine, err := recommend.NewEngine(cat, &engineCfg, logging.Logger(), metrics.NewRecorder())
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}

	affiliateTag := cfg.Affiliate.Tag
	if affiliateTag == "" {
		affiliateTag = affiliate.DefaultTag
	}

	svc := &Service{
		catalog:      cat,
		engine:       engine,
		recorder:     history.NewRecorder(nil),
		affiliateTag: affiliateTag,
		logger:       logger,
	}

	switch cfg.Store.Backend {
	case config.StoreBadger:
		opts := badger.DefaultOptions(cfg.Store.Path).WithLogger(nil)
		db, err := badger.Open(opts)
		if err != nil {
			return nil, fmt.Errorf("open profile store: %w", err)
		}
		svc.db = db
		svc.profiles = store.NewBadgerProfileStore(db)
	default:
		svc.profiles = store.NewMemoryProfileStore()
	}

	logger.Info().
		Int("catalog_items", cat.Len()).
		Str("store", cfg.Store.Backend).
		Msg("service assembled")

	return svc, nil
}

// Close releases the profile store. Safe to call on a memory-backed
// service.
func (s *Service) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Catalog exposes the item catalog.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Profiles exposes the profile store.
func (s *Service) Profiles() store.ProfileStore {
	return s.profiles
}

// PurchaseLink builds the tagged purchase URL for a catalog item. It
// prefers the item's ASIN, then its stored purchase link, and falls
// back to a search link by title and author.
func (s *Service) PurchaseLink(itemID string) (string, error) {
	item, ok := s.catalog.Get(itemID)
	if !ok {
		return "", fmt.Errorf("unknown item %q", itemID)
	}

	if item.ASIN != "" {
		return affiliate.ProductLink(item.ASIN, s.affiliateTag)
	}
	if item.PurchaseLink != "" {
		return affiliate.AddTag(item.PurchaseLink, s.affiliateTag), nil
	}
	return affiliate.SearchLink(item.Title, item.Author, s.affiliateTag)
}

// CoverImageURL builds the cover image URL for a catalog item. Items
// without an ASIN have no cover image.
func (s *Service) CoverImageURL(itemID string, size affiliate.ImageSize) (string, error) {
	item, ok := s.catalog.Get(itemID)
	if !ok {
		return "", fmt.Errorf("unknown item %q", itemID)
	}
	if item.ASIN == "" {
		return "", affiliate.ErrInvalidASIN
	}
	return affiliate.ImageURL(item.ASIN, size)
}

// loadProfile fetches a stored profile; a missing id yields a fresh
// profile carrying it.
func (s *Service) loadProfile(ctx context.Context, id string) (profile.Profile, error) {
	p, err := s.profiles.Load(ctx, id)
	if errors.Is(err, store.ErrProfileNotFound) {
		return profile.Profile{ID: id}, nil
	}
	if err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

// SaveProfile stores the profile.
func (s *Service) SaveProfile(ctx context.Context, p profile.Profile) error {
	if err := s.profiles.Save(ctx, p); err != nil {
		return err
	}
	metrics.ProfilesSaved.Inc()
	return nil
}

// Recommend ranks the catalog for the stored profile.
func (s *Service) Recommend(ctx context.Context, profileID string, excludeRead bool, maxResults int) ([]recommend.Recommendation, error) {
	p, err := s.loadProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return s.engine.Generate(p, excludeRead, maxResults), nil
}

// RecommendByGenre lists the best items in one genre, personalized
// when the profile exists.
func (s *Service) RecommendByGenre(ctx context.Context, profileID, genre string, maxResults int) ([]recommend.Recommendation, error) {
	if profileID == "" {
		return s.engine.GenerateByGenre(genre, nil, maxResults), nil
	}

	p, err := s.loadProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return s.engine.GenerateByGenre(genre, &p, maxResults), nil
}

// FindSimilar lists catalog items similar to the given one.
func (s *Service) FindSimilar(ctx context.Context, profileID, itemID string, maxResults int) ([]recommend.Recommendation, error) {
	target, ok := s.catalog.Get(itemID)
	if !ok {
		return nil, fmt.Errorf("unknown item %q", itemID)
	}

	if profileID == "" {
		return s.engine.FindSimilar(target, nil, maxResults), nil
	}

	p, err := s.loadProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return s.engine.FindSimilar(target, &p, maxResults), nil
}

// RecommendForMood picks the single best item for the mood, records
// it in the profile, and persists the updated profile.
func (s *Service) RecommendForMood(ctx context.Context, profileID, moodID string) (recommend.SingleRecommendation, error) {
	m, ok := mood.ByID(moodID)
	if !ok {
		return recommend.SingleRecommendation{}, fmt.Errorf("%w: %q", ErrUnknownMood, moodID)
	}

	p, err := s.loadProfile(ctx, profileID)
	if err != nil {
		return recommend.SingleRecommendation{}, err
	}

	rec, err := s.engine.GenerateSingle(p, m)
	if err != nil {
		return recommend.SingleRecommendation{}, err
	}

	updated, _, err := s.recorder.Record(p, rec, "")
	if err != nil {
		return recommend.SingleRecommendation{}, err
	}
	metrics.RecordsWritten.Inc()

	if err := s.SaveProfile(ctx, updated); err != nil {
		return recommend.SingleRecommendation{}, fmt.Errorf("persist profile: %w", err)
	}

	return rec, nil
}

// AlternativeForMood re-picks for the same mood, excluding the given
// item ids, and records the result.
func (s *Service) AlternativeForMood(ctx context.Context, profileID, moodID string, excludeIDs []string) (recommend.SingleRecommendation, error) {
	m, ok := mood.ByID(moodID)
	if !ok {
		return recommend.SingleRecommendation{}, fmt.Errorf("%w: %q", ErrUnknownMood, moodID)
	}

	p, err := s.loadProfile(ctx, profileID)
	if err != nil {
		return recommend.SingleRecommendation{}, err
	}

	rec, err := s.engine.GenerateAlternative(p, m, excludeIDs)
	if err != nil {
		return recommend.SingleRecommendation{}, err
	}

	updated, _, err := s.recorder.Record(p, rec, "")
	if err != nil {
		return recommend.SingleRecommendation{}, err
	}
	metrics.RecordsWritten.Inc()

	if err := s.SaveProfile(ctx, updated); err != nil {
		return recommend.SingleRecommendation{}, fmt.Errorf("persist profile: %w", err)
	}

	return rec, nil
}

// RecordAction attaches the reader's action to their latest
// recommendation of the item and persists the profile.
func (s *Service) RecordAction(ctx context.Context, profileID, itemID string, action profile.Action) error {
	if !action.Valid() {
		return fmt.Errorf("unknown action %q", action)
	}

	p, err := s.profiles.Load(ctx, profileID)
	if err != nil {
		return err
	}

	updated := p.Clone()
	found := false
	for i := range updated.RecommendationHistory {
		if updated.RecommendationHistory[i].Item.ID == itemID {
			updated.RecommendationHistory[i].Action = action
			if updated.LastRecommendation != nil && updated.LastRecommendation.ID == updated.RecommendationHistory[i].ID {
				updated.LastRecommendation.Action = action
			}
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no recommendation of item %q on record", itemID)
	}

	return s.SaveProfile(ctx, updated)
}

// Stats summarizes the profile's recommendation log.
func (s *Service) Stats(ctx context.Context, profileID string) (history.Stats, error) {
	p, err := s.loadProfile(ctx, profileID)
	if err != nil {
		return history.Stats{}, err
	}
	return history.ComputeStats(p), nil
}

// Quality grades the profile's recommendation log.
func (s *Service) Quality(ctx context.Context, profileID string) (history.Quality, error) {
	p, err := s.loadProfile(ctx, profileID)
	if err != nil {
		return history.Quality{}, err
	}
	return history.ComputeQuality(p), nil
}

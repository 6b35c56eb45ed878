// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/dgraph-io/badger/v4"

	"github.com/mangacompass/mangacompass/internal/catalog"
	"github.com/mangacompass/mangacompass/internal/profile"
)

func newBadgerStore(t *testing.T) *BadgerProfileStore {
	t.Helper()

	opts := badger.DefaultOptions(t.TempDir()).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("badger.Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("db.Close() error = %v", err)
		}
	})
	return NewBadgerProfileStore(db)
}

func testProfile(id string) profile.Profile {
	return profile.Profile{
		ID:             id,
		FavoriteGenres: []string{"Action", "Drama"},
		ReadHistory:    []string{"one-piece", "monster"},
		Preferences: profile.Preferences{
			PreferredStatus: []catalog.Status{catalog.StatusCompleted},
			MinRating:       7.5,
			ExcludeGenres:   []string{"Horror"},
		},
	}
}

// runProfileStoreTests exercises the ProfileStore contract against any
// implementation.
func runProfileStoreTests(t *testing.T, s ProfileStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("load missing profile", func(t *testing.T) {
		_, err := s.Load(ctx, "nobody")
		if !errors.Is(err, ErrProfileNotFound) {
			t.Errorf("Load(missing) error = %v, want ErrProfileNotFound", err)
		}
	})

	t.Run("save and load round trip", func(t *testing.T) {
		want := testProfile("reader-1")
		if err := s.Save(ctx, want); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		got, err := s.Load(ctx, "reader-1")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got.ID != want.ID {
			t.Errorf("ID = %q, want %q", got.ID, want.ID)
		}
		if len(got.FavoriteGenres) != 2 || got.FavoriteGenres[0] != "Action" {
			t.Errorf("FavoriteGenres = %v", got.FavoriteGenres)
		}
		if got.Preferences.MinRating != 7.5 {
			t.Errorf("MinRating = %v, want 7.5", got.Preferences.MinRating)
		}
	})

	t.Run("save overwrites", func(t *testing.T) {
		p := testProfile("reader-2")
		if err := s.Save(ctx, p); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		p.FavoriteGenres = []string{"Romance"}
		if err := s.Save(ctx, p); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		got, err := s.Load(ctx, "reader-2")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(got.FavoriteGenres) != 1 || got.FavoriteGenres[0] != "Romance" {
			t.Errorf("FavoriteGenres = %v, want [Romance]", got.FavoriteGenres)
		}
	})

	t.Run("save rejects empty id", func(t *testing.T) {
		if err := s.Save(ctx, profile.Profile{}); err == nil {
			t.Error("Save(empty id) = nil error, want error")
		}
	})

	t.Run("delete", func(t *testing.T) {
		p := testProfile("reader-3")
		if err := s.Save(ctx, p); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if err := s.Delete(ctx, "reader-3"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, err := s.Load(ctx, "reader-3"); !errors.Is(err, ErrProfileNotFound) {
			t.Errorf("Load(deleted) error = %v, want ErrProfileNotFound", err)
		}

		// Double delete is fine.
		if err := s.Delete(ctx, "reader-3"); err != nil {
			t.Errorf("Delete(missing) error = %v, want nil", err)
		}
	})
}

func TestMemoryProfileStore(t *testing.T) {
	t.Parallel()

	runProfileStoreTests(t, NewMemoryProfileStore())
}

func TestMemoryProfileStore_Isolation(t *testing.T) {
	t.Parallel()

	s := NewMemoryProfileStore()
	ctx := context.Background()

	p := testProfile("reader-1")
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Mutating the caller's copy after save must not affect the store.
	p.FavoriteGenres[0] = "mutated"

	got, err := s.Load(ctx, "reader-1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.FavoriteGenres[0] != "Action" {
		t.Error("store shares state with the caller's profile")
	}

	// Mutating a loaded copy must not affect later loads.
	got.FavoriteGenres[0] = "mutated"
	again, err := s.Load(ctx, "reader-1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if again.FavoriteGenres[0] != "Action" {
		t.Error("loaded profile shares state with the store")
	}
}

func TestBadgerProfileStore(t *testing.T) {
	t.Parallel()

	runProfileStoreTests(t, newBadgerStore(t))
}

func TestBadgerProfileStore_PersistsRecords(t *testing.T) {
	t.Parallel()

	s := newBadgerStore(t)
	ctx := context.Background()

	p := testProfile("reader-1")
	p.RecommendationHistory = []profile.Record{
		{ID: "rec-1", Item: catalog.Item{ID: "berserk", Rating: 9.5}, Score: 88},
	}
	last := p.RecommendationHistory[0]
	p.LastRecommendation = &last

	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Load(ctx, "reader-1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got.RecommendationHistory) != 1 || got.RecommendationHistory[0].Score != 88 {
		t.Errorf("RecommendationHistory = %+v", got.RecommendationHistory)
	}
	if got.LastRecommendation == nil || got.LastRecommendation.ID != "rec-1" {
		t.Error("LastRecommendation not round-tripped")
	}
}

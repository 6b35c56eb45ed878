// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/mangacompass/mangacompass/internal/profile"
)

// Key prefix for BadgerDB storage.
const profileKeyPrefix = "profile:"

// BadgerProfileStore implements ProfileStore using BadgerDB for
// durable storage. This is suitable for production use with
// persistence across restarts.
type BadgerProfileStore struct {
	db *badger.DB
}

// NewBadgerProfileStore creates a BadgerDB-backed profile store over
// an already-opened database. The caller owns the database lifecycle.
func NewBadgerProfileStore(db *badger.DB) *BadgerProfileStore {
	return &BadgerProfileStore{db: db}
}

// Load fetches the profile for the id.
func (s *BadgerProfileStore) Load(_ context.Context, id string) (profile.Profile, error) {
	var p profile.Profile

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(profileKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrProfileNotFound
		}
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &p)
		})
	})
	if err != nil {
		return profile.Profile{}, err
	}

	return p, nil
}

// Save writes the profile under its own id.
func (s *BadgerProfileStore) Save(_ context.Context, p profile.Profile) error {
	if p.ID == "" {
		return errors.New("profile id must not be empty")
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(profileKey(p.ID), data); err != nil {
			return fmt.Errorf("set profile: %w", err)
		}
		return nil
	})
}

// Delete removes the profile. Deleting a missing profile is not an
// error.
func (s *BadgerProfileStore) Delete(_ context.Context, id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(profileKey(id)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete profile: %w", err)
		}
		return nil
	})
}

func profileKey(id string) []byte {
	return []byte(profileKeyPrefix + id)
}

// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/mangacompass/mangacompass/internal/profile"
)

// ErrProfileNotFound is returned when no profile exists for the id.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileStore persists reader profiles keyed by profile id.
type ProfileStore interface {
	// Load fetches the profile for the id, or ErrProfileNotFound.
	Load(ctx context.Context, id string) (profile.Profile, error)

	// Save writes the profile under its own id, overwriting any
	// previous version.
	Save(ctx context.Context, p profile.Profile) error

	// Delete removes the profile. Deleting a missing profile is not
	// an error.
	Delete(ctx context.Context, id string) error
}

// MemoryProfileStore implements ProfileStore in process memory. It is
// safe for concurrent use; data is lost on restart.
type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]profile.Profile
}

// NewMemoryProfileStore creates an empty in-memory store.
func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{profiles: make(map[string]profile.Profile)}
}

// Load fetches a stored profile.
func (s *MemoryProfileStore) Load(_ context.Context, id string) (profile.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[id]
	if !ok {
		return profile.Profile{}, ErrProfileNotFound
	}
	return p.Clone(), nil
}

// Save stores a deep copy of the profile.
func (s *MemoryProfileStore) Save(_ context.Context, p profile.Profile) error {
	if p.ID == "" {
		return errors.New("profile id must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles[p.ID] = p.Clone()
	return nil
}

// Delete removes a profile.
func (s *MemoryProfileStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.profiles, id)
	return nil
}

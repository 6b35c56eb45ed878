// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

// Package catalog provides the immutable in-memory manga catalog.
//
// The catalog is loaded once (from the embedded seed data or from
// caller-supplied items), validated, and never mutated afterwards. It may
// therefore be shared across concurrent readers without locking.
//
// Lookup by identifier and the genre/status filters exist for the
// convenience of calling layers; the recommendation engines only need
// Items and Resolve.
package catalog

// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

// Package store persists reader profiles. Two implementations back
// the same interface: a BadgerDB store for durable use and an
// in-memory store for tests and ephemeral setups.
package store

// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

// Package recommend implements the two recommendation engines: the
// batch ranker, which scores the whole catalog against a reader
// profile and returns an ordered explainable list, and the mood
// engine, which picks the single best item for a selected mood.
//
// Scoring is deterministic for a fixed profile, catalog, and seed.
// The only randomness is the choice of reason template for mood
// recommendations, drawn from a seeded source.
package recommend

// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

// Package profile holds the reader profile model: favorite genres,
// read history, filtering preferences, and the rolling log of past
// recommendations with the reader's reaction to each.
package profile

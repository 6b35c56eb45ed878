// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

// Package history records shown recommendations into the profile's
// bounded log and derives aggregate statistics and quality measures
// from it. Recording is a pure function: the caller receives the
// updated profile and decides when to persist it.
package history

// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

// Package mood defines the fixed set of reading moods and the matcher
// that scores catalog items against them. Each mood carries a genre
// weight table; the matcher turns those weights into a 0..1 affinity
// score, optionally blended with the reader's history.
package mood

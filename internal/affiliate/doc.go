// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

// Package affiliate builds Amazon affiliate links for catalog items:
// product links from an ASIN, ASIN extraction from product URLs, tag
// injection into existing links, search links, and product image
// URLs.
package affiliate

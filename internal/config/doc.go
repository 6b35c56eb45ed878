// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

// Package config loads the application configuration with a clear
// precedence: built-in defaults, then an optional YAML file, then
// environment variables. Loading goes through koanf; the result is
// validated before use.
package config

// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

package catalog

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-json"
)

//go:embed seed.json
var seedData []byte

// Default returns the catalog built from the embedded seed data.
func Default() (*Catalog, error) {
	var items []Item
	if err := json.Unmarshal(seedData, &items); err != nil {
		return nil, fmt.Errorf("decode seed catalog: %w", err)
	}

	c, err := New(items)
	if err != nil {
		return nil, fmt.Errorf("build seed catalog: %w", err)
	}

	return c, nil
}

// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

package catalog

import (
	"fmt"

	"github.com/mangacompass/mangacompass/internal/validation"
)

// Catalog is a fixed, fully materialized set of items. The zero value is
// not usable; construct with New or Default.
type Catalog struct {
	items []Item
	byID  map[string]int
}

// New builds a catalog from the given items. Every item is validated and
// duplicate identifiers are rejected; a catalog is either fully valid or
// not constructed at all.
func New(items []Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]Item, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	copy(c.items, items)

	for i, item := range c.items {
		if err := validation.ValidateStruct(&item); err != nil {
			return nil, fmt.Errorf("item %q: %w", item.ID, err)
		}
		if _, exists := c.byID[item.ID]; exists {
			return nil, fmt.Errorf("duplicate item id %q", item.ID)
		}
		c.byID[item.ID] = i
	}

	return c, nil
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns all items in catalog order. The returned slice is a copy;
// the underlying items are never mutated.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the item with the given id.
func (c *Catalog) Get(id string) (Item, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Resolve maps item ids to items, silently skipping unknown ids. Order
// follows the input ids.
func (c *Catalog) Resolve(ids []string) []Item {
	out := make([]Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := c.Get(id); ok {
			out = append(out, item)
		}
	}
	return out
}

// ByGenre returns the items carrying the given genre tag, in catalog order.
func (c *Catalog) ByGenre(genre string) []Item {
	var out []Item
	for _, item := range c.items {
		if item.HasGenre(genre) {
			out = append(out, item)
		}
	}
	return out
}

// ByStatus returns the items with the given lifecycle status, in catalog order.
func (c *Catalog) ByStatus(status Status) []Item {
	var out []Item
	for _, item := range c.items {
		if item.Status == status {
			out = append(out, item)
		}
	}
	return out
}

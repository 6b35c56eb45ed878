// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

package config

import (
	"fmt"

	"github.com/mangacompass/mangacompass/internal/recommend"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreBadger = "badger"
)

// Config is the full application configuration.
type Config struct {
	// Logging controls log output.
	Logging LoggingConfig `json:"logging"`

	// Store selects and configures profile persistence.
	Store StoreConfig `json:"store"`

	// Affiliate configures link generation.
	Affiliate AffiliateConfig `json:"affiliate"`

	// Engine carries the recommendation engine tunables.
	Engine recommend.Config `json:"engine"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level"`

	// Format is json or console.
	Format string `json:"format"`
}

// StoreConfig selects and configures profile persistence.
type StoreConfig struct {
	// Backend is memory or badger.
	Backend string `json:"backend"`

	// Path is the BadgerDB directory; required for the badger
	// backend.
	Path string `json:"path"`
}

// AffiliateConfig configures affiliate link generation.
type AffiliateConfig struct {
	// Tag is the Amazon associate tag injected into links.
	Tag string `json:"tag"`
}

// Default returns a Config with all defaults applied. Load layers the
// config file and env vars on top of these.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Store: StoreConfig{
			Backend: StoreMemory,
			Path:    "/data/mangacompass",
		},
		Affiliate: AffiliateConfig{
			Tag: "mangacompass-20",
		},
		Engine: *recommend.DefaultConfig(),
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}

	switch c.Store.Backend {
	case StoreMemory:
	case StoreBadger:
		if c.Store.Path == "" {
			return fmt.Errorf("store.path is required for the badger backend")
		}
	default:
		return fmt.Errorf("store.backend must be memory or badger, got %q", c.Store.Backend)
	}

	if c.Affiliate.Tag == "" {
		return fmt.Errorf("affiliate.tag must not be empty")
	}

	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	return nil
}

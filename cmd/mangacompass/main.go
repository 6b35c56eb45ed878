// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

// Package main is the MangaCompass command line interface.
//
// The binary assembles the recommendation core (catalog, batch ranker,
// mood engine, profile store) from the layered configuration and runs
// one command against it, printing the result as JSON:
//
//	mangacompass recommend -profile reader-1 -limit 10
//	mangacompass mood -profile reader-1 -mood adventure
//	mangacompass alternative -profile reader-1 -mood adventure -exclude one-piece
//	mangacompass genre -genre Action -limit 5
//	mangacompass similar -item one-piece -limit 5
//	mangacompass record -profile reader-1 -item one-piece -action clicked_through
//	mangacompass stats -profile reader-1
//	mangacompass moods
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (MANGACOMPASS_ prefix)
//   - Config file (config.yaml, or MANGACOMPASS_CONFIG)
//   - Built-in defaults
//
// With the default memory backend each run starts from an empty
// profile store; set MANGACOMPASS_STORE_BACKEND=badger and
// MANGACOMPASS_STORE_PATH to keep profiles across runs.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/mangacompass/mangacompass"
	"github.com/mangacompass/mangacompass/internal/config"
	"github.com/mangacompass/mangacompass/internal/logging"
	"github.com/mangacompass/mangacompass/internal/mood"
	"github.com/mangacompass/mangacompass/internal/profile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	svc, err := mangacompass.New(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to assemble service")
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing service")
		}
	}()

	if err := run(context.Background(), svc, os.Args[1], os.Args[2:]); err != nil {
		logging.Fatal().Err(err).Str("command", os.Args[1]).Msg("Command failed")
	}
}

func run(ctx context.Context, svc *mangacompass.Service, command string, args []string) error {
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	profileID := fs.String("profile", "", "profile id")
	moodID := fs.String("mood", "", "mood id (see the moods command)")
	genre := fs.String("genre", "", "genre name")
	itemID := fs.String("item", "", "catalog item id")
	action := fs.String("action", "", "reader action")
	exclude := fs.String("exclude", "", "comma-separated item ids to exclude")
	limit := fs.Int("limit", 10, "maximum results")
	includeRead := fs.Bool("include-read", false, "include items from the read history")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch command {
	case "recommend":
		recs, err := svc.Recommend(ctx, *profileID, !*includeRead, *limit)
		if err != nil {
			return err
		}
		return print(recs)

	case "mood":
		rec, err := svc.RecommendForMood(ctx, *profileID, *moodID)
		if err != nil {
			return err
		}
		return print(rec)

	case "alternative":
		var excludeIDs []string
		if *exclude != "" {
			excludeIDs = strings.Split(*exclude, ",")
		}
		rec, err := svc.AlternativeForMood(ctx, *profileID, *moodID, excludeIDs)
		if err != nil {
			return err
		}
		return print(rec)

	case "genre":
		recs, err := svc.RecommendByGenre(ctx, *profileID, *genre, *limit)
		if err != nil {
			return err
		}
		return print(recs)

	case "similar":
		recs, err := svc.FindSimilar(ctx, *profileID, *itemID, *limit)
		if err != nil {
			return err
		}
		return print(recs)

	case "record":
		return svc.RecordAction(ctx, *profileID, *itemID, profile.Action(*action))

	case "stats":
		stats, err := svc.Stats(ctx, *profileID)
		if err != nil {
			return err
		}
		quality, err := svc.Quality(ctx, *profileID)
		if err != nil {
			return err
		}
		return print(map[string]any{"stats": stats, "quality": quality})

	case "moods":
		return print(mood.All())

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func print(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: mangacompass <command> [flags]")
	fmt.Fprintln(os.Stderr, "commands: recommend, mood, alternative, genre, similar, record, stats, moods")
}

// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched
// in order of priority. The first file found is used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/mangacompass/config.yaml",
	"/etc/mangacompass/config.yml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "MANGACOMPASS_CONFIG"

// envPrefix namespaces the environment variables read by Load.
const envPrefix = "MANGACOMPASS_"

// Load builds the configuration in three layers:
//
//  1. Defaults: built-in sensible defaults
//  2. Config file: optional YAML file (if one exists)
//  3. Environment variables: override any setting
//
// The merged result is validated before it is returned.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(Default(), "json"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	// Layer 2: optional config file
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	envProvider := env.Provider(envPrefix, ".", envTransform)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file, env override first.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings maps environment variable names (after the prefix is
// stripped and lowercased) to config paths. Unlisted variables are
// ignored.
//
// Examples:
//   - MANGACOMPASS_LOGGING_LEVEL  -> logging.level
//   - MANGACOMPASS_STORE_BACKEND  -> store.backend
//   - MANGACOMPASS_ENGINE_SEED    -> engine.seed
var envMappings = map[string]string{
	"logging_level":  "logging.level",
	"logging_format": "logging.format",

	"store_backend": "store.backend",
	"store_path":    "store.path",

	"affiliate_tag": "affiliate.tag",

	"engine_seed":               "engine.seed",
	"engine_rating_ceiling":     "engine.rating_ceiling",
	"engine_min_batch_score":    "engine.thresholds.min_batch_score",
	"engine_min_similar_score":  "engine.thresholds.min_similar_score",
	"engine_max_batch_results":  "engine.limits.max_batch_results",
	"engine_mood_sample_size":   "engine.limits.mood_sample_size",
	"engine_recent_year_cutoff": "engine.reasons.recent_year_cutoff",
}

// envTransform maps an environment variable name to its config path,
// or "" to skip it. The koanf provider has already matched the
// prefix; the raw name still carries it.
func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	if path, ok := envMappings[key]; ok {
		return path
	}
	return ""
}

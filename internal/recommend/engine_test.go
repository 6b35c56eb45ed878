// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

package recommend

import (
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mangacompass/mangacompass/internal/catalog"
	"github.com/mangacompass/mangacompass/internal/profile"
)

func newTestEngine(t *testing.T, items []catalog.Item) *Engine {
	t.Helper()

	cat, err := catalog.New(items)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	engine, err := NewEngine(cat, nil, zerolog.Nop(), nil)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

func newSeedEngine(t *testing.T) *Engine {
	t.Helper()

	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error = %v", err)
	}
	engine, err := NewEngine(cat, nil, zerolog.Nop(), nil)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

// --- Test: engine construction ---

func TestNewEngine(t *testing.T) {
	t.Parallel()

	cat, err := catalog.New(nil)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}

	if _, err := NewEngine(nil, nil, zerolog.Nop(), nil); err == nil {
		t.Error("NewEngine(nil catalog) = nil error, want error")
	}

	bad := DefaultConfig()
	bad.Batch.GenreMatch = 1.5
	if _, err := NewEngine(cat, bad, zerolog.Nop(), nil); err == nil {
		t.Error("NewEngine(invalid config) = nil error, want error")
	}

	if _, err := NewEngine(cat, nil, zerolog.Nop(), nil); err != nil {
		t.Errorf("NewEngine(defaults) error = %v, want nil", err)
	}
}

// --- Test: genre match factor ---

func TestGenreMatch(t *testing.T) {
	t.Parallel()

	engine := newSeedEngine(t)
	item := catalog.Item{Genres: []string{"Action", "Adventure", "Comedy"}}

	tests := []struct {
		name    string
		profile profile.Profile
		want    int
	}{
		{
			name:    "no favorites gives neutral 50",
			profile: profile.Profile{},
			want:    50,
		},
		{
			name:    "no overlap gives 10",
			profile: profile.Profile{FavoriteGenres: []string{"Romance", "Horror"}},
			want:    10,
		},
		{
			name: "no overlap skips the exclusion penalty",
			profile: profile.Profile{
				FavoriteGenres: []string{"Romance"},
				Preferences:    profile.Preferences{ExcludeGenres: []string{"Action", "Comedy"}},
			},
			want: 10,
		},
		{
			name:    "full overlap gives 100",
			profile: profile.Profile{FavoriteGenres: []string{"Action", "Adventure"}},
			// ratio 2/2 -> 40 + 60 = 100.
			want: 100,
		},
		{
			name:    "half overlap",
			profile: profile.Profile{FavoriteGenres: []string{"Action", "Horror"}},
			// ratio 1/2 -> 40 + 30 = 70.
			want: 70,
		},
		{
			name: "excluded genre penalty",
			profile: profile.Profile{
				FavoriteGenres: []string{"Action"},
				Preferences:    profile.Preferences{ExcludeGenres: []string{"Comedy"}},
			},
			// ratio 1/1 -> 100, minus 20 -> 80.
			want: 80,
		},
		{
			name: "penalty floors at zero",
			profile: profile.Profile{
				FavoriteGenres: []string{"Action", "Horror", "Romance", "Mecha", "Sports", "Drama"},
				Preferences: profile.Preferences{
					ExcludeGenres: []string{"Action", "Adventure", "Comedy"},
				},
			},
			// ratio 1/6 -> 50, minus 60 -> floored at 0.
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := engine.genreMatch(item, tt.profile); got != tt.want {
				t.Errorf("genreMatch() = %d, want %d", got, tt.want)
			}
		})
	}
}

// --- Test: rating factor ---

func TestRatingScore(t *testing.T) {
	t.Parallel()

	engine := newSeedEngine(t)

	tests := []struct {
		name      string
		rating    float64
		minRating float64
		want      int
	}{
		{"below reader minimum scores zero", 6.5, 7.0, 0},
		{"at ceiling scores 100", 5.0, 0, 100},
		{"above ceiling is capped", 9.2, 0, 100},
		{"mid scale", 2.5, 0, 50},
		{"at minimum still scores", 7.0, 7.0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			item := catalog.Item{Rating: tt.rating}
			p := profile.Profile{Preferences: profile.Preferences{MinRating: tt.minRating}}
			if got := engine.ratingScore(item, p); got != tt.want {
				t.Errorf("ratingScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRatingScoreMonotonic(t *testing.T) {
	t.Parallel()

	engine := newSeedEngine(t)
	p := profile.Profile{}

	prev := -1
	for rating := 0.0; rating <= 10.0; rating += 0.1 {
		got := engine.ratingScore(catalog.Item{Rating: rating}, p)
		if got < prev {
			t.Fatalf("ratingScore(%v) = %d decreased from %d", rating, got, prev)
		}
		prev = got
	}
}

// --- Test: status factor ---

func TestStatusMatch(t *testing.T) {
	t.Parallel()

	engine := newSeedEngine(t)

	tests := []struct {
		name      string
		status    catalog.Status
		preferred []catalog.Status
		want      int
	}{
		{"no preference gives neutral 50", catalog.StatusOngoing, nil, 50},
		{"direct hit gives 100", catalog.StatusHiatus, []catalog.Status{catalog.StatusHiatus}, 100},
		{"prefers ongoing, item completed", catalog.StatusCompleted, []catalog.Status{catalog.StatusOngoing}, 70},
		{"prefers completed, item ongoing", catalog.StatusOngoing, []catalog.Status{catalog.StatusCompleted}, 30},
		{"no partial rule applies", catalog.StatusCancelled, []catalog.Status{catalog.StatusHiatus}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			item := catalog.Item{Status: tt.status}
			p := profile.Profile{Preferences: profile.Preferences{PreferredStatus: tt.preferred}}
			if got := engine.statusMatch(item, p); got != tt.want {
				t.Errorf("statusMatch() = %d, want %d", got, tt.want)
			}
		})
	}
}

// --- Test: batch ranking ---

func TestGenerate_WorkedExample(t *testing.T) {
	t.Parallel()

	engine := newSeedEngine(t)
	p := profile.Profile{
		FavoriteGenres: []string{"Action", "Adventure"},
		Preferences: profile.Preferences{
			PreferredStatus: []catalog.Status{catalog.StatusOngoing},
		},
	}

	recs := engine.Generate(p, true, 0)
	if len(recs) == 0 {
		t.Fatal("Generate() returned no recommendations")
	}

	var got *Recommendation
	for i := range recs {
		if recs[i].Item.ID == "one-piece" {
			got = &recs[i]
			break
		}
	}
	if got == nil {
		t.Fatal("Generate() did not include one-piece")
	}

	want := Factors{GenreMatch: 100, RatingScore: 100, PopularityScore: 98, StatusMatch: 100}
	if got.Factors != want {
		t.Errorf("Factors = %+v, want %+v", got.Factors, want)
	}
	// 100*0.4 + 100*0.3 + 98*0.2 + 100*0.1 = 99.6 -> 100.
	if got.Score != 100 {
		t.Errorf("Score = %d, want 100", got.Score)
	}
	// (100+100+98+100)/4 = 99.5 -> 100.
	if got.MatchPercentage != 100 {
		t.Errorf("MatchPercentage = %d, want 100", got.MatchPercentage)
	}
}

func TestGenerate_Laws(t *testing.T) {
	t.Parallel()

	engine := newSeedEngine(t)
	p := profile.Profile{
		FavoriteGenres: []string{"Action", "Drama"},
		ReadHistory:    []string{"one-piece", "naruto", "berserk"},
		Preferences: profile.Preferences{
			PreferredStatus: []catalog.Status{catalog.StatusCompleted},
		},
	}

	recs := engine.Generate(p, true, 100)

	t.Run("read items never returned", func(t *testing.T) {
		for _, rec := range recs {
			if p.HasRead(rec.Item.ID) {
				t.Errorf("read item %s was recommended", rec.Item.ID)
			}
		}
	})

	t.Run("no score below threshold", func(t *testing.T) {
		for _, rec := range recs {
			if rec.Score < 30 {
				t.Errorf("item %s scored %d, below threshold", rec.Item.ID, rec.Score)
			}
		}
	})

	t.Run("scores and factors stay in range", func(t *testing.T) {
		for _, rec := range recs {
			for name, v := range map[string]int{
				"score":            rec.Score,
				"match_percentage": rec.MatchPercentage,
				"genre_match":      rec.Factors.GenreMatch,
				"rating_score":     rec.Factors.RatingScore,
				"popularity_score": rec.Factors.PopularityScore,
				"status_match":     rec.Factors.StatusMatch,
			} {
				if v < 0 || v > 100 {
					t.Errorf("item %s: %s = %d outside [0,100]", rec.Item.ID, name, v)
				}
			}
		}
	})

	t.Run("ordered by score descending", func(t *testing.T) {
		for i := 1; i < len(recs); i++ {
			if recs[i].Score > recs[i-1].Score {
				t.Errorf("recs[%d].Score = %d above recs[%d].Score = %d",
					i, recs[i].Score, i-1, recs[i-1].Score)
			}
		}
	})

	t.Run("idempotent for identical input", func(t *testing.T) {
		again := engine.Generate(p, true, 100)
		if len(again) != len(recs) {
			t.Fatalf("second run returned %d recs, first %d", len(again), len(recs))
		}
		for i := range recs {
			if again[i].Item.ID != recs[i].Item.ID || again[i].Score != recs[i].Score {
				t.Errorf("run mismatch at %d: %s/%d vs %s/%d",
					i, recs[i].Item.ID, recs[i].Score, again[i].Item.ID, again[i].Score)
			}
		}
	})

	t.Run("every reason is non-empty", func(t *testing.T) {
		for _, rec := range recs {
			if rec.Reason == "" {
				t.Errorf("item %s has an empty reason", rec.Item.ID)
			}
		}
	})
}

func TestGenerate_MaxResults(t *testing.T) {
	t.Parallel()

	engine := newSeedEngine(t)
	p := profile.Profile{FavoriteGenres: []string{"Action"}}

	if recs := engine.Generate(p, true, 3); len(recs) > 3 {
		t.Errorf("Generate(max=3) = %d results", len(recs))
	}

	// Default limit is 10.
	if recs := engine.Generate(p, true, 0); len(recs) > 10 {
		t.Errorf("Generate(max=0) = %d results, want <= 10", len(recs))
	}
}

func TestGenerate_IncludeRead(t *testing.T) {
	t.Parallel()

	engine := newSeedEngine(t)
	p := profile.Profile{
		FavoriteGenres: []string{"Action", "Adventure"},
		ReadHistory:    []string{"one-piece"},
	}

	recs := engine.Generate(p, false, 100)
	found := false
	for _, rec := range recs {
		if rec.Item.ID == "one-piece" {
			found = true
		}
	}
	if !found {
		t.Error("excludeRead=false did not surface a read item")
	}
}

func TestGenerate_AllBelowThresholdIsEmptyNotError(t *testing.T) {
	t.Parallel()

	// A single low-rated, unpopular item that shares nothing with the
	// reader lands well under the threshold.
	engine := newTestEngine(t, []catalog.Item{
		{ID: "dud", Title: "Dud", Genres: []string{"Mecha"}, Status: catalog.StatusCancelled, Rating: 0.5, Popularity: 1},
	})
	p := profile.Profile{
		FavoriteGenres: []string{"Romance"},
		Preferences: profile.Preferences{
			PreferredStatus: []catalog.Status{catalog.StatusHiatus},
		},
	}

	if recs := engine.Generate(p, true, 10); len(recs) != 0 {
		t.Errorf("Generate() = %d results, want 0", len(recs))
	}
}

func TestGenerate_TieKeepsCatalogOrder(t *testing.T) {
	t.Parallel()

	// Two identical items except for id; they tie exactly.
	items := []catalog.Item{
		{ID: "first", Title: "First", Genres: []string{"Action"}, Status: catalog.StatusOngoing, Rating: 8.0, Popularity: 80},
		{ID: "second", Title: "Second", Genres: []string{"Action"}, Status: catalog.StatusOngoing, Rating: 8.0, Popularity: 80},
	}
	engine := newTestEngine(t, items)

	recs := engine.Generate(profile.Profile{FavoriteGenres: []string{"Action"}}, true, 10)
	if len(recs) != 2 {
		t.Fatalf("Generate() = %d results, want 2", len(recs))
	}
	if recs[0].Item.ID != "first" || recs[1].Item.ID != "second" {
		t.Errorf("tie order = [%s %s], want catalog order", recs[0].Item.ID, recs[1].Item.ID)
	}
}

// --- Test: genre listings ---

func TestGenerateByGenre(t *testing.T) {
	t.Parallel()

	engine := newSeedEngine(t)

	t.Run("without profile sorts by rating", func(t *testing.T) {
		t.Parallel()

		recs := engine.GenerateByGenre("Horror", nil, 0)
		if len(recs) == 0 {
			t.Fatal("GenerateByGenre(Horror) returned nothing")
		}
		for i := 1; i < len(recs); i++ {
			if recs[i].Item.Rating > recs[i-1].Item.Rating {
				t.Errorf("results not rating-sorted at %d", i)
			}
		}
		for _, rec := range recs {
			if !rec.Item.HasGenre("Horror") {
				t.Errorf("item %s lacks the requested genre", rec.Item.ID)
			}
			want := int(math.Min(100, math.Round(rec.Item.Rating*20)))
			if rec.Score != want {
				t.Errorf("item %s score = %d, want %d", rec.Item.ID, rec.Score, want)
			}
			if rec.Factors.GenreMatch != 100 || rec.Factors.StatusMatch != 50 {
				t.Errorf("item %s synthetic factors = %+v", rec.Item.ID, rec.Factors)
			}
			if rec.Score > 100 {
				t.Errorf("item %s score %d above 100", rec.Item.ID, rec.Score)
			}
		}
	})

	t.Run("with profile uses full scoring", func(t *testing.T) {
		t.Parallel()

		p := profile.Profile{FavoriteGenres: []string{"Horror"}}
		recs := engine.GenerateByGenre("Horror", &p, 0)
		if len(recs) == 0 {
			t.Fatal("GenerateByGenre(Horror, profile) returned nothing")
		}
		for i := 1; i < len(recs); i++ {
			if recs[i].Score > recs[i-1].Score {
				t.Errorf("results not score-sorted at %d", i)
			}
		}
	})

	t.Run("unknown genre yields empty", func(t *testing.T) {
		t.Parallel()

		if recs := engine.GenerateByGenre("Isekai", nil, 0); len(recs) != 0 {
			t.Errorf("GenerateByGenre(Isekai) = %d results, want 0", len(recs))
		}
	})
}

// --- Test: similarity search ---

func TestFindSimilar(t *testing.T) {
	t.Parallel()

	engine := newSeedEngine(t)
	target, ok := engineItem(engine, "attack-on-titan")
	if !ok {
		t.Fatal("seed catalog missing attack-on-titan")
	}

	recs := engine.FindSimilar(target, nil, 0)
	if len(recs) == 0 {
		t.Fatal("FindSimilar() returned nothing")
	}

	for _, rec := range recs {
		if rec.Item.ID == target.ID {
			t.Error("FindSimilar() returned the target itself")
		}
		if rec.Score < 40 {
			t.Errorf("item %s scored %d, below similarity threshold", rec.Item.ID, rec.Score)
		}
	}

	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Errorf("results not score-sorted at %d", i)
		}
	}
}

func TestFindSimilar_AuthorTerm(t *testing.T) {
	t.Parallel()

	items := []catalog.Item{
		{ID: "a", Title: "A", Author: "Same Author", Genres: []string{"Action"}, Status: catalog.StatusOngoing, Rating: 8.0, Popularity: 50},
		{ID: "b", Title: "B", Author: "Same Author", Genres: []string{"Action"}, Status: catalog.StatusOngoing, Rating: 8.0, Popularity: 50},
		{ID: "c", Title: "C", Author: "Other Author", Genres: []string{"Action"}, Status: catalog.StatusOngoing, Rating: 8.0, Popularity: 50},
	}
	engine := newTestEngine(t, items)
	target := items[0]

	recs := engine.FindSimilar(target, nil, 0)
	if len(recs) != 2 {
		t.Fatalf("FindSimilar() = %d results, want 2", len(recs))
	}

	// b: 100*0.6 + 100*0.3 + 50*0.1 = 95; c: 90.
	if recs[0].Item.ID != "b" || recs[0].Score != 95 {
		t.Errorf("recs[0] = %s/%d, want b/95", recs[0].Item.ID, recs[0].Score)
	}
	if recs[1].Item.ID != "c" || recs[1].Score != 90 {
		t.Errorf("recs[1] = %s/%d, want c/90", recs[1].Item.ID, recs[1].Score)
	}
	if !strings.Contains(recs[0].Reason, "same author") {
		t.Errorf("reason %q does not mention the shared author", recs[0].Reason)
	}
}

func TestFindSimilar_ExcludesReadHistory(t *testing.T) {
	t.Parallel()

	items := []catalog.Item{
		{ID: "a", Title: "A", Genres: []string{"Action"}, Status: catalog.StatusOngoing, Rating: 8.0, Popularity: 50},
		{ID: "b", Title: "B", Genres: []string{"Action"}, Status: catalog.StatusOngoing, Rating: 8.0, Popularity: 50},
		{ID: "c", Title: "C", Genres: []string{"Action"}, Status: catalog.StatusOngoing, Rating: 8.0, Popularity: 50},
	}
	engine := newTestEngine(t, items)
	p := profile.Profile{ReadHistory: []string{"b"}}

	recs := engine.FindSimilar(items[0], &p, 0)
	for _, rec := range recs {
		if rec.Item.ID == "b" {
			t.Error("FindSimilar() returned an already-read item")
		}
	}
	if len(recs) != 1 || recs[0].Item.ID != "c" {
		t.Errorf("FindSimilar() = %v, want [c]", recs)
	}
}

func engineItem(e *Engine, id string) (catalog.Item, bool) {
	return e.catalog.Get(id)
}

// --- Test: batch reasons ---

func TestBatchReason(t *testing.T) {
	t.Parallel()

	engine := newSeedEngine(t)

	t.Run("priority order and cap", func(t *testing.T) {
		t.Parallel()

		item := catalog.Item{
			Title: "X", Genres: []string{"Action", "Adventure", "Comedy"},
			Status: catalog.StatusCompleted, Volumes: 30, Rating: 9.0, Popularity: 95, Year: 2020,
		}
		p := profile.Profile{FavoriteGenres: []string{"Action", "Adventure", "Comedy"}}
		factors := Factors{GenreMatch: 100, RatingScore: 90, PopularityScore: 95, StatusMatch: 100}

		reason := engine.batchReason(item, factors, p)
		parts := strings.Split(reason, ", ")
		// "Matches your favorite genres: Action" counts as two comma
		// parts only if genres are comma-joined; count fragments by
		// known prefixes instead.
		if !strings.Contains(reason, "Matches your favorite genres: Action, Adventure") {
			t.Errorf("reason %q lacks the genre fragment naming two genres", reason)
		}
		if !strings.Contains(reason, "Highly rated (★9.0)") {
			t.Errorf("reason %q lacks the rating fragment", reason)
		}
		if !strings.Contains(reason, "Widely popular") {
			t.Errorf("reason %q lacks the popularity fragment", reason)
		}
		// Capped at 3 fragments, so the later status/volumes/recency
		// mentions never appear.
		if strings.Contains(reason, "Long-running") || strings.Contains(reason, "Recent release") {
			t.Errorf("reason %q exceeds the fragment cap: %v", reason, parts)
		}
	})

	t.Run("recency uses publication year", func(t *testing.T) {
		t.Parallel()

		recent := catalog.Item{Title: "New", Genres: []string{"Action"}, Status: catalog.StatusOngoing, Rating: 5.0, Popularity: 10, Year: 2021}
		old := recent
		old.Year = 1995

		p := profile.Profile{}
		factors := Factors{GenreMatch: 50, RatingScore: 50, PopularityScore: 10, StatusMatch: 50}

		if got := engine.batchReason(recent, factors, p); !strings.Contains(got, "Recent release") {
			t.Errorf("reason %q lacks the recency fragment for year 2021", got)
		}
		if got := engine.batchReason(old, factors, p); strings.Contains(got, "Recent release") {
			t.Errorf("reason %q mentions recency for year 1995", got)
		}
	})

	t.Run("generic fallback", func(t *testing.T) {
		t.Parallel()

		item := catalog.Item{Title: "Plain", Genres: []string{"Action"}, Status: catalog.StatusOngoing, Rating: 3.0, Popularity: 20, Year: 2000}
		factors := Factors{GenreMatch: 50, RatingScore: 60, PopularityScore: 20, StatusMatch: 50}

		got := engine.batchReason(item, factors, profile.Profile{})
		if got != "Looks like a good fit for your tastes" {
			t.Errorf("reason = %q, want the generic fallback", got)
		}
	})
}

package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestFallbackSearch_BatmanMatchesOnlyDarkKnight(t *testing.T) {
	f := NewFallback()

	resp, err := f.Search(context.Background(), "batman")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("got %d results, want 1: %+v", len(resp.Results), resp.Results)
	}
	if resp.Results[0].Title != "The Dark Knight" {
		t.Errorf("got %q, want The Dark Knight", resp.Results[0].Title)
	}
	if resp.TotalResults != 1 {
		t.Errorf("total_results = %d, want 1", resp.TotalResults)
	}
}

func TestFallbackSearch_CaseInsensitiveSubstring(t *testing.T) {
	f := NewFallback()

	resp, err := f.Search(context.Background(), "The BATMAN Returns")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].Title != "The Dark Knight" {
		t.Errorf("substring match failed: %+v", resp.Results)
	}
}

func TestFallbackSearch_MarvelMatchesTwo(t *testing.T) {
	f := NewFallback()

	resp, err := f.Search(context.Background(), "marvel")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(resp.Results))
	}
	for _, m := range resp.Results {
		lower := strings.ToLower(m.Title)
		if !strings.Contains(lower, "avengers") && !strings.Contains(lower, "iron man") {
			t.Errorf("unexpected marvel result %q", m.Title)
		}
	}
}

func TestFallbackSearch_DefaultSubset(t *testing.T) {
	f := NewFallback()

	resp, err := f.Search(context.Background(), "some unknown query")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(resp.Results) != fallbackPageSize {
		t.Errorf("default result count = %d, want %d", len(resp.Results), fallbackPageSize)
	}
}

func TestFallbackDetails(t *testing.T) {
	f := NewFallback()

	detail, err := f.Details(context.Background(), 2)
	if err != nil {
		t.Fatalf("Details failed: %v", err)
	}
	if detail.Title != "The Dark Knight" {
		t.Errorf("title = %q, want The Dark Knight", detail.Title)
	}
	if detail.Runtime == 0 || len(detail.Genres) == 0 || detail.Tagline == "" {
		t.Errorf("detail projection incomplete: %+v", detail)
	}

	if _, err := f.Details(context.Background(), 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: err = %v, want ErrNotFound", err)
	}
}

func TestFallbackSimilar_DerivedByGenre(t *testing.T) {
	f := NewFallback()

	// The Avengers (28, 12, 878): Titanic (18, 10749) shares no genre.
	result, err := f.SimilarAndRecommended(context.Background(), 1)
	if err != nil {
		t.Fatalf("SimilarAndRecommended failed: %v", err)
	}
	if len(result.Similar) == 0 {
		t.Fatal("expected similar movies for The Avengers")
	}
	for _, m := range result.Similar {
		if m.ID == 1 {
			t.Error("target movie included in its own similar list")
		}
		if m.Title == "Titanic" {
			t.Error("Titanic shares no genre with The Avengers")
		}
	}
	avengersGenres := map[int]bool{28: true, 12: true, 878: true}
	for _, m := range result.Recommended {
		if sharesGenre(m.GenreIDs, avengersGenres) {
			t.Errorf("recommended movie %q shares a genre with the target", m.Title)
		}
	}
	if len(result.Recommended) == 0 {
		t.Error("expected no-shared-genre movies in the recommended list")
	}

	if _, err := f.SimilarAndRecommended(context.Background(), 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: err = %v, want ErrNotFound", err)
	}
}

func TestFallbackDiscoverByGenre(t *testing.T) {
	f := NewFallback()

	resp, err := f.DiscoverByGenre(context.Background(), nil, 8.0)
	if err != nil {
		t.Fatalf("DiscoverByGenre failed: %v", err)
	}
	for _, m := range resp.Results {
		if m.VoteAverage < 8.0 {
			t.Errorf("%q rated %.1f, below the bound", m.Title, m.VoteAverage)
		}
	}

	resp, err = f.DiscoverByGenre(context.Background(), []int{14}, 0)
	if err != nil {
		t.Fatalf("DiscoverByGenre failed: %v", err)
	}
	for _, m := range resp.Results {
		if !sharesGenre(m.GenreIDs, map[int]bool{14: true}) {
			t.Errorf("%q does not match genre 14", m.Title)
		}
	}
}

func TestCollaborativeDemo_IsACopy(t *testing.T) {
	first := CollaborativeDemo()
	first[0].Title = "mutated"

	second := CollaborativeDemo()
	if second[0].Title == "mutated" {
		t.Error("CollaborativeDemo returned shared backing data")
	}
}

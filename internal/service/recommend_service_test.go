package service

import (
	"context"
	"errors"
	"testing"

	"movie-explorer-service/internal/aggregate"
	"movie-explorer-service/internal/catalog"
	"movie-explorer-service/internal/favorites"
	"movie-explorer-service/internal/models"
	"movie-explorer-service/internal/store"
)

// fakeSource scripts DiscoverByGenre responses per rating bound.
type fakeSource struct {
	catalog.Source
	discover func(genreIDs []int, minRating float64) (*models.SearchResponse, error)
}

func (f *fakeSource) DiscoverByGenre(_ context.Context, genreIDs []int, minRating float64) (*models.SearchResponse, error) {
	return f.discover(genreIDs, minRating)
}

func TestSections_NoFavorites(t *testing.T) {
	favs := favorites.NewStore(store.NewMemory())
	src := &fakeSource{discover: func(genreIDs []int, minRating float64) (*models.SearchResponse, error) {
		if len(genreIDs) > 0 {
			t.Error("genre candidates must not be fetched without favorites")
		}
		return &models.SearchResponse{Results: []models.Movie{{ID: 100, Title: "High Rated"}}}, nil
	}}

	sections := NewRecommendService(src, favs).Sections(context.Background())

	if len(sections) != 2 {
		t.Fatalf("expected collaborative + high-rated, got %d sections", len(sections))
	}
	if sections[0].Title != aggregate.TitlePopularMovies {
		t.Errorf("collaborative title = %q, want %q", sections[0].Title, aggregate.TitlePopularMovies)
	}
	for _, sec := range sections {
		if sec.Reason == models.ReasonGenreBased {
			t.Error("genre section must not appear without favorites")
		}
	}
}

func TestSections_WithFavorites(t *testing.T) {
	favs := favorites.NewStore(store.NewMemory())
	if _, err := favs.Add(models.Movie{ID: 200, Title: "Fav", GenreIDs: []int{28}}, 5, ""); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	src := &fakeSource{discover: func(genreIDs []int, minRating float64) (*models.SearchResponse, error) {
		if len(genreIDs) > 0 {
			return &models.SearchResponse{Results: []models.Movie{{ID: 300, Title: "Genre Match"}}}, nil
		}
		return &models.SearchResponse{Results: []models.Movie{{ID: 400, Title: "High Rated"}}}, nil
	}}

	sections := NewRecommendService(src, favs).Sections(context.Background())

	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	if sections[0].Title != aggregate.TitleRecommendedForYou {
		t.Errorf("collaborative title = %q, want %q", sections[0].Title, aggregate.TitleRecommendedForYou)
	}
	if sections[1].Reason != models.ReasonGenreBased || sections[2].Reason != models.ReasonHighRated {
		t.Errorf("section order wrong: %q then %q", sections[1].Reason, sections[2].Reason)
	}
}

func TestSections_SecondarySourceFailureDegrades(t *testing.T) {
	favs := favorites.NewStore(store.NewMemory())
	if _, err := favs.Add(models.Movie{ID: 200, GenreIDs: []int{28}}, 4, ""); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	src := &fakeSource{discover: func(genreIDs []int, minRating float64) (*models.SearchResponse, error) {
		return nil, errors.New("provider down")
	}}

	sections := NewRecommendService(src, favs).Sections(context.Background())

	// Only the collaborative stub survives; the failing sources degrade to
	// omitted sections instead of failing the whole pass.
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Title != aggregate.TitleRecommendedForYou {
		t.Errorf("surviving section = %q, want the collaborative one", sections[0].Title)
	}
}

func TestCollaborative_UserStats(t *testing.T) {
	svc := NewRecommendService(&fakeSource{}, favorites.NewStore(store.NewMemory()))

	resp := svc.Collaborative(models.CollaborativeRequest{
		Favorites: []models.Favorite{{Movie: models.Movie{ID: 1}, Rating: 5}},
		Ratings:   map[string]int{"1": 4, "2": 2},
	})

	if resp.TotalRecommendations != len(resp.Recommendations) {
		t.Errorf("totalRecommendations = %d, want %d", resp.TotalRecommendations, len(resp.Recommendations))
	}
	if len(resp.Recommendations) == 0 {
		t.Error("collaborative stub returned no recommendations")
	}
	if resp.UserStats.TotalMovies != 1 {
		t.Errorf("totalMovies = %d, want 1", resp.UserStats.TotalMovies)
	}
	if resp.UserStats.AverageRating != 3.0 {
		t.Errorf("averageRating = %v, want 3.0", resp.UserStats.AverageRating)
	}
}

func TestCollaborative_DefaultAverageWithoutRatings(t *testing.T) {
	svc := NewRecommendService(&fakeSource{}, favorites.NewStore(store.NewMemory()))

	resp := svc.Collaborative(models.CollaborativeRequest{})
	if resp.UserStats.AverageRating != defaultAverageRating {
		t.Errorf("averageRating = %v, want %v", resp.UserStats.AverageRating, defaultAverageRating)
	}
}

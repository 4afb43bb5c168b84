package catalog

import (
	"context"
	"log/slog"
	"strings"

	"movie-explorer-service/internal/models"
)

// Fallback serves a fixed demo dataset when no provider credential is
// configured. Search matches query substrings against a handful of known
// titles and categories; details come from a small in-memory detail map.
type Fallback struct{}

// NewFallback creates the demo-data catalog source.
func NewFallback() *Fallback {
	return &Fallback{}
}

const fallbackPageSize = 6

// Search matches the query against known demo categories, defaulting to a
// generic subset of the trending list.
func (f *Fallback) Search(_ context.Context, query string) (*models.SearchResponse, error) {
	q := strings.ToLower(query)

	var results []models.Movie
	switch {
	case strings.Contains(q, "trending") || strings.Contains(q, "popular"):
		results = demoTrending
	case strings.Contains(q, "marvel"):
		results = filterByTitle("avengers", "iron man")
	case strings.Contains(q, "batman"):
		results = filterByTitle("dark knight")
	case strings.Contains(q, "star wars"):
		results = filterByTitle("star wars")
	case strings.Contains(q, "inception"):
		results = filterByTitle("inception")
	case strings.Contains(q, "harry potter"):
		results = filterByTitle("harry potter")
	case strings.Contains(q, "avatar"):
		results = filterByTitle("avatar")
	case strings.Contains(q, "titanic"):
		results = filterByTitle("titanic")
	case strings.Contains(q, "the godfather"):
		results = filterByTitle("the godfather")
	default:
		results = demoTrending[:fallbackPageSize]
	}

	slog.Debug("serving fallback search results", "query", query, "count", len(results))
	return &models.SearchResponse{
		Page:         1,
		Results:      results,
		TotalPages:   1,
		TotalResults: len(results),
	}, nil
}

// Details looks up the demo detail map.
func (f *Fallback) Details(_ context.Context, id int) (*models.Movie, error) {
	detail, ok := demoDetails[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &detail, nil
}

// SimilarAndRecommended derives both lists from the demo set: movies sharing
// at least one genre id are similar, the rest are recommended.
func (f *Fallback) SimilarAndRecommended(_ context.Context, id int) (*SimilarResult, error) {
	target, ok := findDemoMovie(id)
	if !ok {
		return nil, ErrNotFound
	}

	targetGenres := make(map[int]bool)
	for _, g := range target.GenreIDs {
		targetGenres[g] = true
	}

	result := &SimilarResult{}
	for _, m := range demoCatalog() {
		if m.ID == id {
			continue
		}
		if sharesGenre(m.GenreIDs, targetGenres) {
			result.Similar = append(result.Similar, m)
		} else {
			result.Recommended = append(result.Recommended, m)
		}
	}
	return result, nil
}

// DiscoverByGenre filters the demo genre recommendations by genre and vote.
func (f *Fallback) DiscoverByGenre(_ context.Context, genreIDs []int, minRating float64) (*models.SearchResponse, error) {
	wanted := make(map[int]bool)
	for _, g := range genreIDs {
		wanted[g] = true
	}

	var results []models.Movie
	for _, m := range demoGenreRecs {
		if m.VoteAverage < minRating {
			continue
		}
		if len(wanted) > 0 && !sharesGenre(m.GenreIDs, wanted) {
			continue
		}
		results = append(results, m)
	}

	return &models.SearchResponse{
		Page:         1,
		Results:      results,
		TotalPages:   1,
		TotalResults: len(results),
	}, nil
}

// DemoDetails exposes the demo detail lookup for the demo-details endpoint,
// which always serves fixed data regardless of the active source.
func DemoDetails(id int) (*models.Movie, error) {
	return NewFallback().Details(context.Background(), id)
}

// CollaborativeDemo returns the fixed collaborative-filtering stub list.
func CollaborativeDemo() []models.Movie {
	out := make([]models.Movie, len(demoCollaborative))
	copy(out, demoCollaborative)
	return out
}

func filterByTitle(substrings ...string) []models.Movie {
	var out []models.Movie
	for _, m := range demoCatalog() {
		title := strings.ToLower(m.Title)
		for _, s := range substrings {
			if strings.Contains(title, s) {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

func demoCatalog() []models.Movie {
	return append(append([]models.Movie{}, demoTrending...), demoExtra...)
}

func findDemoMovie(id int) (models.Movie, bool) {
	for _, m := range demoCatalog() {
		if m.ID == id {
			return m, true
		}
	}
	return models.Movie{}, false
}

func sharesGenre(genreIDs []int, wanted map[int]bool) bool {
	for _, g := range genreIDs {
		if wanted[g] {
			return true
		}
	}
	return false
}

package catalog

import (
	"context"
	"errors"
	"fmt"

	"movie-explorer-service/internal/models"
)

// ErrNotFound means the id is unknown to the active data source.
var ErrNotFound = errors.New("movie not found")

// UpstreamError means the catalog provider responded with a non-success
// status. The body is logged by callers, never returned to clients.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("catalog provider returned status %d: %s", e.Status, e.Body)
}

// SimilarResult holds the two independently fetched candidate lists for a
// movie. A recommendations failure degrades Recommended to empty; a similar
// failure fails the whole call.
type SimilarResult struct {
	Similar     []models.Movie
	Recommended []models.Movie
}

// Source is the catalog capability. The concrete variant (live provider or
// fallback dataset) is selected once at startup from configuration.
type Source interface {
	// Search returns page 1 of movies matching the query.
	Search(ctx context.Context, query string) (*models.SearchResponse, error)
	// Details returns the full detail projection for a movie id.
	Details(ctx context.Context, id int) (*models.Movie, error)
	// SimilarAndRecommended returns the similar and recommended lists.
	SimilarAndRecommended(ctx context.Context, id int) (*SimilarResult, error)
	// DiscoverByGenre returns movies matching any of the genre ids (all
	// movies when empty) with an average vote at or above minRating.
	DiscoverByGenre(ctx context.Context, genreIDs []int, minRating float64) (*models.SearchResponse, error)
}

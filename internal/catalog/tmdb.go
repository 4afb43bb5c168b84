package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"movie-explorer-service/internal/models"
)

// Live is the TMDB-backed catalog source.
type Live struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewLive creates a live catalog source against the TMDB API.
func NewLive(apiKey, baseURL string) *Live {
	return &Live{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Search fetches page 1 of the TMDB movie search.
func (l *Live) Search(ctx context.Context, query string) (*models.SearchResponse, error) {
	u := fmt.Sprintf(
		"%s/search/movie?api_key=%s&query=%s&page=1",
		l.baseURL, l.apiKey, url.QueryEscape(query),
	)

	slog.Debug("fetching TMDB search", "query", query)
	var result models.SearchResponse
	if err := l.getJSON(ctx, u, &result); err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	return &result, nil
}

// Details fetches the full movie detail from TMDB.
func (l *Live) Details(ctx context.Context, id int) (*models.Movie, error) {
	u := fmt.Sprintf("%s/movie/%d?api_key=%s", l.baseURL, id, l.apiKey)

	slog.Debug("fetching TMDB movie detail", "id", id)
	var result models.Movie
	if err := l.getJSON(ctx, u, &result); err != nil {
		var ue *UpstreamError
		if errors.As(err, &ue) && ue.Status == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("movie detail: %w", err)
	}
	return &result, nil
}

// SimilarAndRecommended fetches the similar and recommendations lists for a
// movie. The two calls are independent: a recommendations failure degrades
// to an empty list, a similar failure fails the call.
func (l *Live) SimilarAndRecommended(ctx context.Context, id int) (*SimilarResult, error) {
	similarURL := fmt.Sprintf("%s/movie/%d/similar?api_key=%s&page=1", l.baseURL, id, l.apiKey)

	var similar models.SearchResponse
	if err := l.getJSON(ctx, similarURL, &similar); err != nil {
		return nil, fmt.Errorf("similar movies: %w", err)
	}

	recURL := fmt.Sprintf("%s/movie/%d/recommendations?api_key=%s&page=1", l.baseURL, id, l.apiKey)

	var recommended models.SearchResponse
	if err := l.getJSON(ctx, recURL, &recommended); err != nil {
		slog.Warn("recommendations fetch failed, continuing without", "id", id, "error", err)
		recommended.Results = nil
	}

	return &SimilarResult{
		Similar:     similar.Results,
		Recommended: recommended.Results,
	}, nil
}

// DiscoverByGenre fetches movies via the TMDB discover endpoint.
func (l *Live) DiscoverByGenre(ctx context.Context, genreIDs []int, minRating float64) (*models.SearchResponse, error) {
	u := fmt.Sprintf(
		"%s/discover/movie?api_key=%s&sort_by=popularity.desc&vote_average.gte=%.1f&page=1",
		l.baseURL, l.apiKey, minRating,
	)
	if len(genreIDs) > 0 {
		parts := make([]string, len(genreIDs))
		for i, id := range genreIDs {
			parts[i] = strconv.Itoa(id)
		}
		u += "&with_genres=" + strings.Join(parts, ",")
	}

	slog.Debug("fetching TMDB discover", "genres", genreIDs, "min_rating", minRating)
	var result models.SearchResponse
	if err := l.getJSON(ctx, u, &result); err != nil {
		return nil, fmt.Errorf("discover movies: %w", err)
	}
	return &result, nil
}

func (l *Live) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := l.http.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

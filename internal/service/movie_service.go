package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"movie-explorer-service/internal/aggregate"
	"movie-explorer-service/internal/catalog"
	"movie-explorer-service/internal/models"
)

// catalogCacheTTL is the advisory freshness window for live provider
// responses. Staleness beyond it requires a re-fetch; it is not a
// correctness requirement.
const catalogCacheTTL = time.Hour

// MovieService handles catalog lookups with advisory response caching.
type MovieService struct {
	source catalog.Source
	redis  *redis.Client
	// Fallback responses are fixed data; only live responses are cached.
	cacheable bool
}

// NewMovieService creates a MovieService over the active catalog source.
func NewMovieService(source catalog.Source, rdb *redis.Client, cacheable bool) *MovieService {
	return &MovieService{
		source:    source,
		redis:     rdb,
		cacheable: cacheable,
	}
}

// Search returns page 1 of movies matching the query.
func (s *MovieService) Search(ctx context.Context, query string) (*models.SearchResponse, error) {
	cacheKey := fmt.Sprintf("movies:search:%s", query)

	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		var result models.SearchResponse
		if json.Unmarshal([]byte(cached), &result) == nil {
			slog.Debug("cache hit", "key", cacheKey)
			return &result, nil
		}
	}

	result, err := s.source.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(result); err == nil {
		s.setCache(ctx, cacheKey, string(data))
	}

	return result, nil
}

// Details returns the full detail projection for a movie id.
func (s *MovieService) Details(ctx context.Context, id int) (*models.Movie, error) {
	cacheKey := fmt.Sprintf("movie:detail:%d", id)

	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		var result models.Movie
		if json.Unmarshal([]byte(cached), &result) == nil {
			slog.Debug("cache hit", "key", cacheKey)
			return &result, nil
		}
	}

	detail, err := s.source.Details(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(detail); err == nil {
		s.setCache(ctx, cacheKey, string(data))
	}

	return detail, nil
}

// Similar returns the combined similar/recommended display lists for a
// movie, deduplicated and capped by the aggregation pipeline.
func (s *MovieService) Similar(ctx context.Context, id int) (*aggregate.Combined, error) {
	cacheKey := fmt.Sprintf("movie:similar:%d", id)

	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		var result aggregate.Combined
		if json.Unmarshal([]byte(cached), &result) == nil {
			slog.Debug("cache hit", "key", cacheKey)
			return &result, nil
		}
	}

	lists, err := s.source.SimilarAndRecommended(ctx, id)
	if err != nil {
		return nil, err
	}
	combined := aggregate.CombineSimilar(lists.Similar, lists.Recommended)

	if data, err := json.Marshal(combined); err == nil {
		s.setCache(ctx, cacheKey, string(data))
	}

	return combined, nil
}

// DemoDetails always serves the fixed in-memory dataset.
func (s *MovieService) DemoDetails(id int) (*models.Movie, error) {
	return catalog.DemoDetails(id)
}

// ---- Redis Helpers ----

func (s *MovieService) getFromCache(ctx context.Context, key string) (string, error) {
	if s.redis == nil || !s.cacheable {
		return "", fmt.Errorf("cache not available")
	}
	return s.redis.Get(ctx, key).Result()
}

func (s *MovieService) setCache(ctx context.Context, key, value string) {
	if s.redis == nil || !s.cacheable {
		return
	}
	if err := s.redis.Set(ctx, key, value, catalogCacheTTL).Err(); err != nil {
		slog.Error("failed to set cache", "key", key, "error", err)
	}
}

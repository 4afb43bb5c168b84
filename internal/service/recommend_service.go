package service

import (
	"context"
	"log/slog"

	"movie-explorer-service/internal/aggregate"
	"movie-explorer-service/internal/catalog"
	"movie-explorer-service/internal/favorites"
	"movie-explorer-service/internal/models"
)

const (
	// Vote bounds for the genre-matched and high-rated candidate pools.
	genreMinRating     = 6.5
	highRatedMinRating = 8.0

	defaultAverageRating = 4.5
	recommendationScore  = 0.95
)

// demoFavoriteGenres is part of the collaborative stub's fixed profile.
var demoFavoriteGenres = []string{"Action", "Adventure", "Science Fiction"}

// RecommendService aggregates recommendation candidate lists into display
// sections. The collaborative source is a fixed stub, not a real model.
type RecommendService struct {
	source    catalog.Source
	favorites *favorites.Store
}

// NewRecommendService creates a RecommendService.
func NewRecommendService(source catalog.Source, favs *favorites.Store) *RecommendService {
	return &RecommendService{source: source, favorites: favs}
}

// Collaborative returns the stubbed collaborative-filtering result together
// with user profile stats derived from the submitted favorites and ratings.
func (s *RecommendService) Collaborative(req models.CollaborativeRequest) *models.CollaborativeResponse {
	recs := catalog.CollaborativeDemo()

	avg := defaultAverageRating
	if len(req.Ratings) > 0 {
		var sum int
		for _, r := range req.Ratings {
			sum += r
		}
		avg = float64(sum) / float64(len(req.Ratings))
	}

	return &models.CollaborativeResponse{
		Recommendations: recs,
		UserStats: models.UserStats{
			TotalMovies:         len(req.Favorites),
			AverageRating:       avg,
			FavoriteGenres:      demoFavoriteGenres,
			RecommendationScore: recommendationScore,
		},
		TotalRecommendations: len(recs),
	}
}

// Genre returns genre-matched movies at or above minRating.
func (s *RecommendService) Genre(ctx context.Context, genreIDs []int, minRating float64) (*models.SearchResponse, error) {
	return s.source.DiscoverByGenre(ctx, genreIDs, minRating)
}

// Sections assembles the recommendation view: the collaborative section,
// then genre-matched candidates when the user has favorites, then
// high-rated candidates. Secondary source failures degrade that section to
// empty rather than failing the whole pass.
func (s *RecommendService) Sections(ctx context.Context) []models.Section {
	favs := s.favorites.All()

	collaborative := catalog.CollaborativeDemo()

	var genreCandidates []models.Movie
	if len(favs) > 0 {
		if genreIDs := aggregate.FavoriteGenreIDs(favs); len(genreIDs) > 0 {
			resp, err := s.source.DiscoverByGenre(ctx, genreIDs, genreMinRating)
			if err != nil {
				slog.Warn("genre recommendations unavailable", "error", err)
			} else {
				genreCandidates = resp.Results
			}
		}
	}

	var highRated []models.Movie
	resp, err := s.source.DiscoverByGenre(ctx, nil, highRatedMinRating)
	if err != nil {
		slog.Warn("high-rated recommendations unavailable", "error", err)
	} else {
		highRated = resp.Results
	}

	return aggregate.AssembleSections(favs, collaborative, genreCandidates, highRated)
}

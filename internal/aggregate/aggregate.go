// Package aggregate combines heterogeneous candidate movie lists into
// deduplicated, size-bounded display sections. All functions are pure; the
// only movie identity is the integer id.
package aggregate

import "movie-explorer-service/internal/models"

const (
	// MaxSectionSize caps each similar/recommendations/section list.
	MaxSectionSize = 6
	// MaxCombined caps the combined similar+recommended list.
	MaxCombined = 12
	// MaxFavoriteGenres caps the genre ids derived from favorites.
	MaxFavoriteGenres = 3
)

// Section titles.
const (
	TitleRecommendedForYou = "Recommended For You"
	TitlePopularMovies     = "Popular Movies"
	TitleMoreLikeFavorites = "More Like Your Favorites"
	TitleHighlyRated       = "Highly Rated Movies"
)

// Dedup removes duplicate movie ids, keeping the first occurrence.
func Dedup(movies []models.Movie) []models.Movie {
	seen := make(map[int]bool, len(movies))
	out := make([]models.Movie, 0, len(movies))
	for _, m := range movies {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		out = append(out, m)
	}
	return out
}

// Combined holds the three outputs of the similar+recommended combination.
type Combined struct {
	Similar         []models.Movie `json:"similar"`
	Recommendations []models.Movie `json:"recommendations"`
	Combined        []models.Movie `json:"combined"`
}

// CombineSimilar concatenates similar and recommended in that order,
// deduplicates by id with first occurrence winning (so an id in both lists
// is attributed to similar), and truncates each output as a prefix take.
func CombineSimilar(similar, recommended []models.Movie) *Combined {
	combined := Dedup(append(append([]models.Movie{}, similar...), recommended...))
	return &Combined{
		Similar:         prefix(similar, MaxSectionSize),
		Recommendations: prefix(recommended, MaxSectionSize),
		Combined:        prefix(combined, MaxCombined),
	}
}

// FavoriteGenreIDs derives candidate genre ids from the union of the
// favorited movies' genres, in first-seen order, capped at MaxFavoriteGenres.
func FavoriteGenreIDs(favorites []models.Favorite) []int {
	seen := make(map[int]bool)
	var out []int
	for _, fav := range favorites {
		for _, id := range genreIDs(fav.Movie) {
			if seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, id)
			if len(out) == MaxFavoriteGenres {
				return out
			}
		}
	}
	return out
}

// AssembleSections builds recommendation sections in fixed priority order:
// collaborative, then genre-based, then high-rated. Each later section is
// filtered against favorites and every section already assembled; sections
// with no surviving candidates are omitted entirely.
func AssembleSections(favorites []models.Favorite, collaborative, genreCandidates, highRated []models.Movie) []models.Section {
	excluded := make(map[int]bool)
	for _, fav := range favorites {
		excluded[fav.Movie.ID] = true
	}

	var sections []models.Section

	if len(collaborative) > 0 {
		title := TitlePopularMovies
		if len(favorites) > 0 {
			title = TitleRecommendedForYou
		}
		sections = append(sections, models.Section{
			Title:  title,
			Reason: models.ReasonCollaborative,
			Movies: collaborative,
		})
		for _, m := range collaborative {
			excluded[m.ID] = true
		}
	}

	// Genre-based recommendations only apply once the user has favorites.
	if len(favorites) > 0 {
		if survivors := filterExcluded(genreCandidates, excluded); len(survivors) > 0 {
			sections = append(sections, models.Section{
				Title:  TitleMoreLikeFavorites,
				Reason: models.ReasonGenreBased,
				Movies: survivors,
			})
			for _, m := range survivors {
				excluded[m.ID] = true
			}
		}
	}

	if survivors := filterExcluded(highRated, excluded); len(survivors) > 0 {
		sections = append(sections, models.Section{
			Title:  TitleHighlyRated,
			Reason: models.ReasonHighRated,
			Movies: survivors,
		})
	}

	return sections
}

func filterExcluded(movies []models.Movie, excluded map[int]bool) []models.Movie {
	var out []models.Movie
	for _, m := range movies {
		if excluded[m.ID] {
			continue
		}
		out = append(out, m)
		if len(out) == MaxSectionSize {
			break
		}
	}
	return out
}

func prefix(movies []models.Movie, n int) []models.Movie {
	if len(movies) > n {
		movies = movies[:n]
	}
	return append([]models.Movie{}, movies...)
}

func genreIDs(m models.Movie) []int {
	if len(m.GenreIDs) > 0 {
		return m.GenreIDs
	}
	ids := make([]int, len(m.Genres))
	for i, g := range m.Genres {
		ids[i] = g.ID
	}
	return ids
}

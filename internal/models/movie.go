package models

// Genre is a (genre id, genre name) pair as returned by TMDB.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Movie is a projection of upstream catalog state. Search results carry
// genre_ids only; detail responses carry the full genres list plus runtime,
// tagline, budget and revenue. Every upstream-optional field is optional here
// as well.
type Movie struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path,omitempty"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	GenreIDs     []int   `json:"genre_ids,omitempty"`
	Genres       []Genre `json:"genres,omitempty"`
	Runtime      int     `json:"runtime,omitempty"`
	Tagline      string  `json:"tagline,omitempty"`
	Budget       int64   `json:"budget,omitempty"`
	Revenue      int64   `json:"revenue,omitempty"`
}

// SearchResponse is the paginated search/discover result shape.
type SearchResponse struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

package models

// Section reason tags.
const (
	ReasonGenreBased    = "genre_based"
	ReasonHighRated     = "high_rated"
	ReasonCollaborative = "collaborative"
)

// Section is an ephemeral display grouping of recommended movies. Built
// fresh on every aggregation pass, never persisted.
type Section struct {
	Title  string  `json:"title"`
	Reason string  `json:"reason,omitempty"`
	Movies []Movie `json:"movies"`
}

// SectionsResponse wraps the assembled recommendation sections.
type SectionsResponse struct {
	Sections []Section `json:"sections"`
}

// CollaborativeRequest is the request body for collaborative filtering.
// Ratings maps movie id (JSON object key, so a string) to the user's rating.
type CollaborativeRequest struct {
	Favorites []Favorite     `json:"favorites"`
	Ratings   map[string]int `json:"ratings"`
}

// UserStats summarizes the user's profile alongside collaborative results.
type UserStats struct {
	TotalMovies         int      `json:"totalMovies"`
	AverageRating       float64  `json:"averageRating"`
	FavoriteGenres      []string `json:"favoriteGenres"`
	RecommendationScore float64  `json:"recommendationScore"`
}

// CollaborativeResponse is the collaborative filtering result.
type CollaborativeResponse struct {
	Recommendations      []Movie   `json:"recommendations"`
	UserStats            UserStats `json:"userStats"`
	TotalRecommendations int       `json:"totalRecommendations"`
}

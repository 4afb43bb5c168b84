package models

// Action types recorded in the behavior log.
const (
	ActionSearch         = "search"
	ActionViewMovie      = "view_movie"
	ActionAddFavorite    = "add_favorite"
	ActionRemoveFavorite = "remove_favorite"
	ActionRateMovie      = "rate_movie"
)

// ValidActionTypes whitelists the action types accepted by the tracker.
var ValidActionTypes = map[string]bool{
	ActionSearch:         true,
	ActionViewMovie:      true,
	ActionAddFavorite:    true,
	ActionRemoveFavorite: true,
	ActionRateMovie:      true,
}

// UserAction is an immutable behavior log record. Timestamp is epoch
// milliseconds, assigned at append time.
type UserAction struct {
	Type      string `json:"type"`
	MovieID   int    `json:"movieId,omitempty"`
	Query     string `json:"query,omitempty"`
	Rating    int    `json:"rating,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// UserBehavior is the derived summary of the action log, recomputed in full
// on every append.
type UserBehavior struct {
	SearchHistory        []string `json:"searchHistory"`
	ViewedMovies         []int    `json:"viewedMovies"`
	AverageSessionTime   float64  `json:"averageSessionTime"`
	TotalActions         int      `json:"totalActions"`
	PreferredRatingRange [2]int   `json:"preferredRatingRange"`
}

// RecordActionRequest is the request body for appending a user action.
type RecordActionRequest struct {
	Type    string `json:"type"`
	MovieID int    `json:"movieId"`
	Query   string `json:"query"`
	Rating  int    `json:"rating"`
}

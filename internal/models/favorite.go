package models

// Favorite is a movie the user saved with a personal rating and note.
// AddedAt is set once on first insert and preserved across edits.
type Favorite struct {
	Movie   Movie  `json:"movie"`
	Rating  int    `json:"rating"`
	Note    string `json:"note,omitempty"`
	AddedAt string `json:"addedAt"`
}

// AddFavoriteRequest is the request body for saving a favorite.
type AddFavoriteRequest struct {
	Movie  Movie  `json:"movie"`
	Rating int    `json:"rating"`
	Note   string `json:"note"`
}

// UpdateFavoriteRequest is the request body for editing a favorite.
type UpdateFavoriteRequest struct {
	Rating int    `json:"rating"`
	Note   string `json:"note"`
}

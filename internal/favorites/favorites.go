// Package favorites holds the user's saved movies with personal ratings and
// notes, persisted as a full replace-on-write snapshot.
package favorites

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"movie-explorer-service/internal/models"
	"movie-explorer-service/internal/store"
)

const favoritesKey = "movieFavorites"

// ErrInvalidRating means the rating is outside the required 1-5 range.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Store keeps at most one favorite per movie id. Persistence failures are
// logged, never surfaced: saving favorites must not break the browse flow.
type Store struct {
	mu    sync.Mutex
	kv    store.KV
	items []models.Favorite
	now   func() time.Time
}

// NewStore creates a favorites store, loading any persisted snapshot.
func NewStore(kv store.KV) *Store {
	s := &Store{kv: kv, now: time.Now}

	data, err := kv.Get(favoritesKey)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			slog.Error("failed to load favorites", "error", err)
		}
		return s
	}
	if err := json.Unmarshal(data, &s.items); err != nil {
		slog.Error("failed to decode favorites snapshot, starting empty", "error", err)
		s.items = nil
	}
	return s
}

// Add upserts a favorite by movie id. AddedAt is set only on first insert;
// editing an existing favorite preserves it.
func (s *Store) Add(movie models.Movie, rating int, note string) (*models.Favorite, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Movie.ID == movie.ID {
			s.items[i].Movie = movie
			s.items[i].Rating = rating
			s.items[i].Note = note
			s.persist()
			fav := s.items[i]
			return &fav, nil
		}
	}

	fav := models.Favorite{
		Movie:   movie,
		Rating:  rating,
		Note:    note,
		AddedAt: s.now().UTC().Format(time.RFC3339),
	}
	s.items = append(s.items, fav)
	s.persist()
	return &fav, nil
}

// Remove deletes a favorite by movie id. Removing an unknown id is a no-op.
func (s *Store) Remove(movieID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Movie.ID == movieID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// Update edits the rating and note of an existing favorite. It never
// creates: the second return is false when the id is not favorited.
func (s *Store) Update(movieID, rating int, note string) (*models.Favorite, bool, error) {
	if rating < 1 || rating > 5 {
		return nil, false, ErrInvalidRating
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Movie.ID == movieID {
			s.items[i].Rating = rating
			s.items[i].Note = note
			s.persist()
			fav := s.items[i]
			return &fav, true, nil
		}
	}
	return nil, false, nil
}

// Get returns the favorite for a movie id.
func (s *Store) Get(movieID int) (*models.Favorite, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Movie.ID == movieID {
			fav := s.items[i]
			return &fav, true
		}
	}
	return nil, false
}

// IsFavorite reports whether the movie id is favorited.
func (s *Store) IsFavorite(movieID int) bool {
	_, ok := s.Get(movieID)
	return ok
}

// All returns a copy of every favorite in insertion order.
func (s *Store) All() []models.Favorite {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Favorite, len(s.items))
	copy(out, s.items)
	return out
}

// persist rewrites the full snapshot. Callers hold the lock.
func (s *Store) persist() {
	data, err := json.Marshal(s.items)
	if err != nil {
		slog.Error("failed to encode favorites", "error", err)
		return
	}
	if err := s.kv.Put(favoritesKey, data); err != nil {
		slog.Error("failed to persist favorites", "error", err)
	}
}

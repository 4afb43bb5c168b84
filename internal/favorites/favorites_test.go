package favorites

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"movie-explorer-service/internal/models"
	"movie-explorer-service/internal/store"
)

func movie(id int) models.Movie {
	return models.Movie{ID: id, Title: "Movie", GenreIDs: []int{28}}
}

func TestAdd_ThenUpdate_PreservesAddedAt(t *testing.T) {
	s := NewStore(store.NewMemory())

	first := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return first }

	fav, err := s.Add(movie(1), 4, "great")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if fav.AddedAt != first.Format(time.RFC3339) {
		t.Errorf("AddedAt = %q, want %q", fav.AddedAt, first.Format(time.RFC3339))
	}

	s.now = func() time.Time { return first.Add(48 * time.Hour) }

	updated, ok, err := s.Update(1, 2, "rewatched, less great")
	if err != nil || !ok {
		t.Fatalf("Update failed: ok=%v err=%v", ok, err)
	}
	if updated.AddedAt != fav.AddedAt {
		t.Errorf("Update changed AddedAt from %q to %q", fav.AddedAt, updated.AddedAt)
	}
	if updated.Rating != 2 || updated.Note != "rewatched, less great" {
		t.Errorf("Update did not apply rating/note: %+v", updated)
	}
}

func TestAdd_UpsertsByMovieID(t *testing.T) {
	s := NewStore(store.NewMemory())

	if _, err := s.Add(movie(1), 3, ""); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := s.Add(movie(1), 5, "changed my mind"); err != nil {
		t.Fatalf("second Add failed: %v", err)
	}

	all := s.All()
	if len(all) != 1 {
		t.Fatalf("expected 1 favorite after re-add, got %d", len(all))
	}
	if all[0].Rating != 5 {
		t.Errorf("rating = %d, want 5", all[0].Rating)
	}
}

func TestAdd_RejectsInvalidRating(t *testing.T) {
	s := NewStore(store.NewMemory())

	for _, rating := range []int{0, -1, 6} {
		if _, err := s.Add(movie(1), rating, ""); !errors.Is(err, ErrInvalidRating) {
			t.Errorf("Add with rating %d: err = %v, want ErrInvalidRating", rating, err)
		}
	}
	if len(s.All()) != 0 {
		t.Error("invalid add must not store anything")
	}
}

func TestRemove_UnknownIDIsNoOp(t *testing.T) {
	s := NewStore(store.NewMemory())
	if _, err := s.Add(movie(1), 4, ""); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	s.Remove(999)

	if len(s.All()) != 1 {
		t.Error("removing an unknown id must not change the store")
	}

	s.Remove(1)
	if s.IsFavorite(1) {
		t.Error("favorite still present after Remove")
	}
	s.Remove(1) // second removal is also a no-op
}

func TestUpdate_UnknownIDDoesNotCreate(t *testing.T) {
	s := NewStore(store.NewMemory())

	_, ok, err := s.Update(42, 3, "ghost")
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if ok {
		t.Error("Update reported success for an unknown id")
	}
	if len(s.All()) != 0 {
		t.Error("Update must never create a favorite")
	}
}

func TestPersistence_FullSnapshotRoundTrip(t *testing.T) {
	kv := store.NewMemory()

	s := NewStore(kv)
	if _, err := s.Add(movie(1), 4, "note"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := s.Add(movie(2), 5, ""); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// The persisted blob is a JSON array of favorites.
	data, err := kv.Get("movieFavorites")
	if err != nil {
		t.Fatalf("snapshot not persisted: %v", err)
	}
	var snapshot []models.Favorite
	if err := json.Unmarshal(data, &snapshot); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	if len(snapshot) != 2 {
		t.Fatalf("snapshot has %d favorites, want 2", len(snapshot))
	}

	// A fresh store over the same KV loads the snapshot.
	reloaded := NewStore(kv)
	if !reloaded.IsFavorite(1) || !reloaded.IsFavorite(2) {
		t.Error("reloaded store is missing favorites")
	}
	fav, ok := reloaded.Get(1)
	if !ok || fav.Note != "note" {
		t.Errorf("reloaded favorite 1 = %+v, want note %q", fav, "note")
	}
}

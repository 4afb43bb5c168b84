// Package behavior keeps the append-only, size-bounded user action log and
// the behavior summary derived from it. Tracking is best-effort: persistence
// failures are logged and never propagate to the caller.
package behavior

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"movie-explorer-service/internal/models"
	"movie-explorer-service/internal/store"
)

const (
	actionsKey  = "movieExplorerActions"
	behaviorKey = "movieExplorerBehavior"

	maxActions       = 1000
	maxSearchHistory = 20
	maxViewedMovies  = 50

	// Gaps at or above this ceiling are treated as session boundaries and
	// excluded from the average, not clamped.
	sessionGapCeiling = 30 * time.Minute
)

// Tracker owns the action log and its derived summary.
type Tracker struct {
	mu      sync.Mutex
	kv      store.KV
	actions []models.UserAction
	now     func() time.Time
}

// NewTracker creates a tracker, loading any persisted action log.
func NewTracker(kv store.KV) *Tracker {
	t := &Tracker{kv: kv, now: time.Now}

	data, err := kv.Get(actionsKey)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			slog.Error("failed to load action log", "error", err)
		}
		return t
	}
	if err := json.Unmarshal(data, &t.actions); err != nil {
		slog.Error("failed to decode action log, starting empty", "error", err)
		t.actions = nil
	}
	return t
}

// Record stamps the current time onto the action, appends it, evicts the
// oldest records beyond the cap, and persists both the log and the
// recomputed summary.
func (t *Tracker) Record(action models.UserAction) models.UserAction {
	t.mu.Lock()
	defer t.mu.Unlock()

	action.Timestamp = t.now().UnixMilli()
	t.actions = append(t.actions, action)
	if len(t.actions) > maxActions {
		t.actions = t.actions[len(t.actions)-maxActions:]
	}

	if data, err := json.Marshal(t.actions); err != nil {
		slog.Error("failed to encode action log", "error", err)
	} else if err := t.kv.Put(actionsKey, data); err != nil {
		slog.Error("failed to persist action log", "error", err)
	}

	summary := Summarize(t.actions)
	if data, err := json.Marshal(summary); err != nil {
		slog.Error("failed to encode behavior summary", "error", err)
	} else if err := t.kv.Put(behaviorKey, data); err != nil {
		slog.Error("failed to persist behavior summary", "error", err)
	}

	return action
}

// Actions returns a copy of the current log, oldest first.
func (t *Tracker) Actions() []models.UserAction {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]models.UserAction, len(t.actions))
	copy(out, t.actions)
	return out
}

// Summary recomputes the behavior summary from the current log.
func (t *Tracker) Summary() models.UserBehavior {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Summarize(t.actions)
}

// Clear removes the log and the derived summary.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.actions = nil
	if err := t.kv.Delete(actionsKey); err != nil {
		slog.Error("failed to clear action log", "error", err)
	}
	if err := t.kv.Delete(behaviorKey); err != nil {
		slog.Error("failed to clear behavior summary", "error", err)
	}
}

// Summarize is the pure reduction of an action log into a behavior summary.
func Summarize(actions []models.UserAction) models.UserBehavior {
	behavior := models.UserBehavior{
		SearchHistory:        []string{},
		ViewedMovies:         []int{},
		TotalActions:         len(actions),
		PreferredRatingRange: [2]int{0, 10},
	}

	// Walk newest to oldest so distinct entries keep most-recent order.
	seenQueries := make(map[string]bool)
	seenMovies := make(map[int]bool)
	for i := len(actions) - 1; i >= 0; i-- {
		a := actions[i]
		switch a.Type {
		case models.ActionSearch:
			if a.Query != "" && !seenQueries[a.Query] && len(behavior.SearchHistory) < maxSearchHistory {
				seenQueries[a.Query] = true
				behavior.SearchHistory = append(behavior.SearchHistory, a.Query)
			}
		case models.ActionViewMovie:
			if a.MovieID > 0 && !seenMovies[a.MovieID] && len(behavior.ViewedMovies) < maxViewedMovies {
				seenMovies[a.MovieID] = true
				behavior.ViewedMovies = append(behavior.ViewedMovies, a.MovieID)
			}
		}
	}

	ratingsSeen := false
	for _, a := range actions {
		if a.Type != models.ActionRateMovie || a.Rating == 0 {
			continue
		}
		if !ratingsSeen {
			behavior.PreferredRatingRange = [2]int{a.Rating, a.Rating}
			ratingsSeen = true
			continue
		}
		if a.Rating < behavior.PreferredRatingRange[0] {
			behavior.PreferredRatingRange[0] = a.Rating
		}
		if a.Rating > behavior.PreferredRatingRange[1] {
			behavior.PreferredRatingRange[1] = a.Rating
		}
	}

	var gapSum, gapCount int64
	for i := 1; i < len(actions); i++ {
		gap := actions[i].Timestamp - actions[i-1].Timestamp
		if gap < sessionGapCeiling.Milliseconds() {
			gapSum += gap
			gapCount++
		}
	}
	if gapCount > 0 {
		behavior.AverageSessionTime = float64(gapSum) / float64(gapCount)
	}

	return behavior
}

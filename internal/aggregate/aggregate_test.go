package aggregate

import (
	"testing"

	"movie-explorer-service/internal/models"
)

func movieList(ids ...int) []models.Movie {
	out := make([]models.Movie, len(ids))
	for i, id := range ids {
		out[i] = models.Movie{ID: id}
	}
	return out
}

func ids(movies []models.Movie) []int {
	out := make([]int, len(movies))
	for i, m := range movies {
		out[i] = m.ID
	}
	return out
}

func TestDedup_FirstOccurrenceWins(t *testing.T) {
	a := []models.Movie{
		{ID: 1, Title: "from A"},
		{ID: 2, Title: "also from A"},
	}
	b := []models.Movie{
		{ID: 2, Title: "from B"},
		{ID: 3, Title: "also from B"},
	}

	got := Dedup(append(append([]models.Movie{}, a...), b...))

	if len(got) != 3 {
		t.Fatalf("expected 3 distinct movies, got %d", len(got))
	}

	seen := make(map[int]int)
	for _, m := range got {
		seen[m.ID]++
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("id %d appears %d times, want 1", id, count)
		}
	}

	// The duplicate id must keep the entry from the first list.
	if got[1].Title != "also from A" {
		t.Errorf("expected first-occurrence entry for id 2, got %q", got[1].Title)
	}
}

func TestCombineSimilar_Caps(t *testing.T) {
	similar := movieList(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	recommended := movieList(11, 12, 13, 14, 15, 16, 17, 18, 19, 20)

	got := CombineSimilar(similar, recommended)

	if len(got.Similar) != MaxSectionSize {
		t.Errorf("similar length = %d, want %d", len(got.Similar), MaxSectionSize)
	}
	if len(got.Recommendations) != MaxSectionSize {
		t.Errorf("recommendations length = %d, want %d", len(got.Recommendations), MaxSectionSize)
	}
	if len(got.Combined) != MaxCombined {
		t.Errorf("combined length = %d, want %d", len(got.Combined), MaxCombined)
	}

	// Truncation is a prefix take, never a reorder.
	for i, id := range ids(got.Similar) {
		if id != similar[i].ID {
			t.Errorf("similar[%d] = %d, want %d", i, id, similar[i].ID)
		}
	}
	for i, id := range ids(got.Combined)[:6] {
		if id != similar[i].ID {
			t.Errorf("combined[%d] = %d, want %d", i, id, similar[i].ID)
		}
	}
}

func TestCombineSimilar_OverlapAttributedToSimilar(t *testing.T) {
	similar := []models.Movie{{ID: 1, Title: "similar"}}
	recommended := []models.Movie{{ID: 1, Title: "recommended"}, {ID: 2}}

	got := CombineSimilar(similar, recommended)

	if len(got.Combined) != 2 {
		t.Fatalf("combined length = %d, want 2", len(got.Combined))
	}
	if got.Combined[0].Title != "similar" {
		t.Errorf("overlapping id attributed to %q, want the similar entry", got.Combined[0].Title)
	}
	// Each standalone output keeps its own full list.
	if len(got.Recommendations) != 2 {
		t.Errorf("recommendations length = %d, want 2", len(got.Recommendations))
	}
}

func TestCombineSimilar_Empty(t *testing.T) {
	got := CombineSimilar(nil, nil)
	if len(got.Similar) != 0 || len(got.Recommendations) != 0 || len(got.Combined) != 0 {
		t.Errorf("expected all outputs empty, got %d/%d/%d",
			len(got.Similar), len(got.Recommendations), len(got.Combined))
	}
}

func TestAssembleSections_NoFavorites(t *testing.T) {
	collaborative := movieList(1, 2, 3)
	genreCandidates := movieList(4, 5)
	highRated := movieList(6, 7)

	sections := AssembleSections(nil, collaborative, genreCandidates, highRated)

	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Title != TitlePopularMovies {
		t.Errorf("collaborative title = %q, want %q", sections[0].Title, TitlePopularMovies)
	}
	if sections[0].Reason != models.ReasonCollaborative {
		t.Errorf("collaborative reason = %q, want %q", sections[0].Reason, models.ReasonCollaborative)
	}
	for _, sec := range sections {
		if sec.Reason == models.ReasonGenreBased {
			t.Error("genre-based section must never appear without favorites")
		}
	}
}

func TestAssembleSections_WithFavorites(t *testing.T) {
	favs := []models.Favorite{
		{Movie: models.Movie{ID: 100, GenreIDs: []int{28}}, Rating: 5},
	}
	collaborative := movieList(1, 2)
	genreCandidates := movieList(3, 4, 100) // 100 is favorited, must be filtered
	highRated := movieList(5)

	sections := AssembleSections(favs, collaborative, genreCandidates, highRated)

	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	if sections[0].Title != TitleRecommendedForYou {
		t.Errorf("collaborative title = %q, want %q", sections[0].Title, TitleRecommendedForYou)
	}
	if sections[1].Reason != models.ReasonGenreBased {
		t.Errorf("second section reason = %q, want %q", sections[1].Reason, models.ReasonGenreBased)
	}
	for _, m := range sections[1].Movies {
		if m.ID == 100 {
			t.Error("favorited movie leaked into the genre section")
		}
	}
}

func TestAssembleSections_HighRatedFullOverlapOmitted(t *testing.T) {
	collaborative := movieList(1, 2, 3)
	highRated := movieList(3, 2, 1) // overlaps the collaborative section entirely

	sections := AssembleSections(nil, collaborative, nil, highRated)

	if len(sections) != 1 {
		t.Fatalf("expected only the collaborative section, got %d sections", len(sections))
	}
	if sections[0].Reason == models.ReasonHighRated {
		t.Error("fully-overlapping high-rated section must be omitted")
	}
}

func TestAssembleSections_SectionCap(t *testing.T) {
	highRated := movieList(1, 2, 3, 4, 5, 6, 7, 8, 9)

	sections := AssembleSections(nil, nil, nil, highRated)

	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if len(sections[0].Movies) != MaxSectionSize {
		t.Errorf("high-rated section length = %d, want %d", len(sections[0].Movies), MaxSectionSize)
	}
}

func TestAssembleSections_AllEmpty(t *testing.T) {
	sections := AssembleSections(nil, nil, nil, nil)
	if len(sections) != 0 {
		t.Errorf("expected no sections, got %d", len(sections))
	}
}

func TestFavoriteGenreIDs(t *testing.T) {
	favs := []models.Favorite{
		{Movie: models.Movie{ID: 1, GenreIDs: []int{28, 12}}},
		{Movie: models.Movie{ID: 2, Genres: []models.Genre{{ID: 12}, {ID: 878}, {ID: 53}}}},
	}

	got := FavoriteGenreIDs(favs)

	want := []int{28, 12, 878}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("genre id %d = %d, want %d (first-seen order)", i, got[i], want[i])
		}
	}
}

func TestFavoriteGenreIDs_NoGenres(t *testing.T) {
	favs := []models.Favorite{{Movie: models.Movie{ID: 1}}}
	if got := FavoriteGenreIDs(favs); len(got) != 0 {
		t.Errorf("expected no genre ids, got %v", got)
	}
}

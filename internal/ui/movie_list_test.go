package ui

import (
	"strings"
	"testing"

	"movielist/internal/movie"
)

func TestMovieListView_RendersTitlesAndIDs(t *testing.T) {
	v := NewMovieListView(movie.DefaultSeed())
	out := v.View()
	for _, want := range []string{"Movie List (2)", "Interstellar", "#1", "Harry Potter", "#2"} {
		if !strings.Contains(out, want) {
			t.Errorf("View missing %q:\n%s", want, out)
		}
	}
}

func TestMovieListView_Empty(t *testing.T) {
	v := NewMovieListView(nil)
	if !strings.Contains(v.View(), "No movies yet") {
		t.Errorf("empty view: %s", v.View())
	}
	if _, ok := v.Selected(); ok {
		t.Error("empty list should have no selection")
	}
}

func TestMovieListView_JKNavigation(t *testing.T) {
	v := NewMovieListView(append(movie.DefaultSeed(), movie.Movie{ID: 3, Title: "Dune"}))

	v.Update(keyMsg("j"))
	if v.Index() != 1 {
		t.Errorf("after j: expected 1, got %d", v.Index())
	}
	v.Update(keyMsg("j"))
	v.Update(keyMsg("j"))
	if v.Index() != 2 {
		t.Errorf("j at bottom: expected 2, got %d", v.Index())
	}
	v.Update(keyMsg("k"))
	if v.Index() != 1 {
		t.Errorf("after k: expected 1, got %d", v.Index())
	}
	sel, ok := v.Selected()
	if !ok || sel.Title != "Harry Potter" {
		t.Errorf("selected: got %+v ok=%v", sel, ok)
	}
}

func TestMovieListView_SetMoviesClampsSelection(t *testing.T) {
	v := NewMovieListView(movie.DefaultSeed())
	v.Update(keyMsg("j"))

	v.SetMovies([]movie.Movie{{ID: 1, Title: "Interstellar"}})
	if v.Index() != 0 {
		t.Errorf("expected selection clamped to 0, got %d", v.Index())
	}

	// Growing the list keeps the cursor where it was.
	v.SetMovies(append(movie.DefaultSeed(), movie.Movie{ID: 3, Title: "Dune"}))
	if v.Index() != 0 {
		t.Errorf("expected selection to stay at 0, got %d", v.Index())
	}
}

func TestMovieListView_LongTitleTruncated(t *testing.T) {
	long := strings.Repeat("Very Long Title ", 10)
	v := NewMovieListView([]movie.Movie{{ID: 1, Title: long}})
	v.SetSize(40, 10)
	out := v.View()
	if strings.Contains(out, long) {
		t.Error("expected long title to be truncated")
	}
	if !strings.Contains(out, "…") {
		t.Errorf("expected ellipsis in %s", out)
	}
}

package ui

import (
	"strings"
	"testing"

	"movielist/internal/movie"
)

func TestRemoveMovieConfirmModal(t *testing.T) {
	m := NewRemoveMovieConfirmModal(movie.Movie{ID: 7, Title: "Heat"})
	if !strings.Contains(m.View(), "#7 Heat") {
		t.Errorf("modal view missing movie: %s", m.View())
	}

	for _, k := range []string{"y", "enter"} {
		_, cmd := m.Update(keyMsg(k))
		if cmd == nil {
			t.Fatalf("%s: expected confirm cmd", k)
		}
		if msg, ok := cmd().(RemoveMovieMsg); !ok || msg.ID != 7 {
			t.Errorf("%s: expected RemoveMovieMsg{7}, got %#v", k, cmd())
		}
	}

	for _, k := range []string{"esc", "n"} {
		_, cmd := m.Update(keyMsg(k))
		if cmd == nil {
			t.Fatalf("%s: expected dismiss cmd", k)
		}
		if _, ok := cmd().(DismissModalMsg); !ok {
			t.Errorf("%s: expected DismissModalMsg, got %#v", k, cmd())
		}
	}

	if _, cmd := m.Update(keyMsg("j")); cmd != nil {
		t.Error("unrelated key should be ignored")
	}
}

func TestOverlayStack(t *testing.T) {
	var s OverlayStack
	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty stack: expected false")
	}
	if _, ok := s.UpdateTop(keyMsg("y")); ok {
		t.Error("UpdateTop on empty stack: expected false")
	}

	s.Push(Overlay{View: NewRemoveMovieConfirmModal(movie.Movie{ID: 1, Title: "a"})})
	s.Push(Overlay{View: NewRemoveMovieConfirmModal(movie.Movie{ID: 2, Title: "b"})})
	cmd, ok := s.UpdateTop(keyMsg("y"))
	if !ok || cmd == nil {
		t.Fatal("UpdateTop: expected handled with cmd")
	}
	if msg := cmd().(RemoveMovieMsg); msg.ID != 2 {
		t.Errorf("top overlay should be the last pushed, got id %d", msg.ID)
	}
	if s.Len() != 2 {
		t.Errorf("UpdateTop should not pop, len=%d", s.Len())
	}
}

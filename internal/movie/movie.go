// Package movie holds the movie collection: the record type, the pure reducer
// that transitions one collection state to the next, and the Store that owns
// the current state for a session.
package movie

import (
	"errors"
	"slices"
)

var (
	// ErrEmptyTitle is returned when a movie is added with a blank title.
	ErrEmptyTitle = errors.New("movie title is empty")
	// ErrUnknownAction is returned by Reduce for action types it does not handle.
	ErrUnknownAction = errors.New("unknown action")
)

// Movie is a single entry in the collection.
type Movie struct {
	ID    int    `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
}

// DefaultSeed returns the collection a fresh session starts with.
func DefaultSeed() []Movie {
	return []Movie{
		{ID: 1, Title: "Interstellar"},
		{ID: 2, Title: "Harry Potter"},
	}
}

// maxID returns the largest ID in movies, or 0 when empty.
func maxID(movies []Movie) int {
	hi := 0
	for _, m := range movies {
		hi = max(hi, m.ID)
	}
	return hi
}

// indexOf returns the position of the movie with the given ID, or -1.
func indexOf(movies []Movie, id int) int {
	return slices.IndexFunc(movies, func(m Movie) bool { return m.ID == id })
}

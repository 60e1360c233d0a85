package movie

import (
	"fmt"
	"slices"
	"strings"
)

// Action is a request to change the collection. Actions are plain values so
// they can be queued, logged and replayed.
type Action interface {
	// Name identifies the action in logs and traces ("add", "remove").
	Name() string
}

// AddMovie appends a movie with the given title.
type AddMovie struct {
	Title string
}

// Name implements Action.
func (AddMovie) Name() string { return "add" }

// RemoveMovie drops the movie with the given ID.
type RemoveMovie struct {
	ID int
}

// Name implements Action.
func (RemoveMovie) Name() string { return "remove" }

// State is the complete collection state. HighWater is the largest ID ever
// assigned; new IDs are always HighWater+1 so they are never reused.
type State struct {
	Movies    []Movie
	HighWater int
}

// NewState builds a state from seed data. The seed slice is copied.
func NewState(seed []Movie) State {
	return State{
		Movies:    slices.Clone(seed),
		HighWater: maxID(seed),
	}
}

// Result describes what an action did.
type Result struct {
	Movie   Movie // the added or removed movie, zero if none
	Removed bool  // true when RemoveMovie dropped a record
}

// Reduce applies a to s and returns the next state. It never mutates s.
// Removing an unknown ID is not an error; the returned state equals s.
func Reduce(s State, a Action) (State, Result, error) {
	switch a := a.(type) {
	case AddMovie:
		title := strings.TrimSpace(a.Title)
		if title == "" {
			return s, Result{}, ErrEmptyTitle
		}
		m := Movie{ID: s.HighWater + 1, Title: title}
		next := State{
			Movies:    append(slices.Clone(s.Movies), m),
			HighWater: m.ID,
		}
		return next, Result{Movie: m}, nil
	case RemoveMovie:
		idx := indexOf(s.Movies, a.ID)
		if idx < 0 {
			return s, Result{}, nil
		}
		removed := s.Movies[idx]
		survivors := make([]Movie, 0, len(s.Movies)-1)
		for _, m := range s.Movies {
			if m.ID != a.ID {
				survivors = append(survivors, m)
			}
		}
		return State{Movies: survivors, HighWater: s.HighWater}, Result{Movie: removed, Removed: true}, nil
	default:
		return s, Result{}, fmt.Errorf("reduce %T: %w", a, ErrUnknownAction)
	}
}

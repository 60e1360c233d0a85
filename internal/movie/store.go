package movie

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

// Change is broadcast to subscribers after every successful dispatch.
type Change struct {
	Action Action
	Result Result
	Movies []Movie // snapshot of the collection after the action
}

// Observer is notified around every dispatch. ObserveDispatch is called before
// the action is reduced; the returned func is called with the outcome and the
// collection size afterwards. The returned context is used for the rest of the
// dispatch.
type Observer interface {
	ObserveDispatch(ctx context.Context, a Action) (context.Context, func(res Result, size int, err error))
}

// Store owns the collection for a session. All mutations go through Dispatch,
// which serializes them, so a Store may be shared by several collaborators.
type Store struct {
	mu       sync.Mutex
	state    State
	subs     map[int]chan Change
	nextSub  int
	observer Observer
	logger   *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithObserver installs a dispatch observer (e.g. a tracer).
func WithObserver(o Observer) Option {
	return func(s *Store) { s.observer = o }
}

// WithLogger sets the logger used for dispatch events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore creates a store holding a copy of seed.
func NewStore(seed []Movie, opts ...Option) *Store {
	s := &Store{
		state:  NewState(seed),
		subs:   make(map[int]chan Change),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies a to the collection and notifies subscribers on success.
// A failed action leaves the collection unchanged.
func (s *Store) Dispatch(ctx context.Context, a Action) (Result, error) {
	var done func(Result, int, error)
	if s.observer != nil {
		ctx, done = s.observer.ObserveDispatch(ctx, a)
	}

	s.mu.Lock()
	next, res, err := Reduce(s.state, a)
	if err == nil {
		s.state = next
		s.broadcastLocked(Change{Action: a, Result: res, Movies: slices.Clone(next.Movies)})
	}
	size := len(s.state.Movies)
	s.mu.Unlock()

	if err != nil {
		s.logger.WarnContext(ctx, "movie dispatch rejected", "action", a.Name(), "error", err)
	} else {
		s.logger.DebugContext(ctx, "movie dispatch",
			"action", a.Name(),
			"movie_id", res.Movie.ID,
			"removed", res.Removed,
			"size", size,
		)
	}
	if done != nil {
		done(res, size, err)
	}
	return res, err
}

// Add appends a movie with the given title and returns it.
func (s *Store) Add(ctx context.Context, title string) (Movie, error) {
	res, err := s.Dispatch(ctx, AddMovie{Title: title})
	if err != nil {
		return Movie{}, err
	}
	return res.Movie, nil
}

// Remove drops the movie with the given ID. It reports whether a record was
// removed; an unknown ID leaves the collection unchanged.
func (s *Store) Remove(ctx context.Context, id int) bool {
	res, _ := s.Dispatch(ctx, RemoveMovie{ID: id})
	return res.Removed
}

// List returns a copy of the collection in insertion order.
func (s *Store) List() []Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.Movies)
}

// Get returns the movie with the given ID.
func (s *Store) Get(id int) (Movie, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := indexOf(s.state.Movies, id); idx >= 0 {
		return s.state.Movies[idx], true
	}
	return Movie{}, false
}

// Len returns the number of movies in the collection.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.Movies)
}

// Subscribe returns a channel that receives a Change after every successful
// dispatch. The channel holds at most one pending change; a slow reader skips
// intermediate changes but always sees the latest one. Call cancel to
// unsubscribe, which closes the channel.
func (s *Store) Subscribe() (<-chan Change, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan Change, 1)
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// broadcastLocked must be called with s.mu held.
func (s *Store) broadcastLocked(c Change) {
	for _, ch := range s.subs {
		select {
		case ch <- c:
			continue
		default:
		}
		// Replace the stale pending change with the latest one.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- c:
		default:
		}
	}
}

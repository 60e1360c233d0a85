package trace

import (
	"github.com/google/uuid"
)

// Span names, one per store action.
const (
	SpanAdd    = "movie.add"
	SpanRemove = "movie.remove"
)

// NewSessionID returns a random identifier for one run of the app. It is
// attached to every span and log line so a session can be followed end to end.
func NewSessionID() string {
	return uuid.NewString()
}

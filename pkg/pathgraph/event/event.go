// Package event streams search lifecycle events to subscribers.
//
// This is the append-only alternative to the batch callback: instead of
// receiving the growing accumulated path list on every batch boundary,
// subscribers receive each event once over a buffered channel and build
// whatever view they need.
package event

import (
	"time"

	"github.com/google/uuid"
)

// Type identifies a search event.
type Type string

// Event types published by the search engines.
const (
	// TypeSearchStarted fires once per search, before traversal begins.
	TypeSearchStarted Type = "search.started"

	// TypePathFound fires for each complete path; Data is the Path.
	TypePathFound Type = "search.path_found"

	// TypeLoopFound fires for each detected loop; Data is the Loop.
	TypeLoopFound Type = "search.loop_found"

	// TypeProgress fires at progress checkpoints; Data is the percent as a
	// float64.
	TypeProgress Type = "search.progress"

	// TypeSearchCompleted fires once on successful completion; Data is the
	// result count as an int.
	TypeSearchCompleted Type = "search.completed"

	// TypeSearchCancelled fires once when a search observes cancellation.
	TypeSearchCancelled Type = "search.cancelled"
)

// Event is one search lifecycle notification. Events are immutable once
// published.
type Event struct {
	// ID uniquely identifies the event.
	ID string `json:"id"`

	// Type is the event kind.
	Type Type `json:"type"`

	// SearchID correlates events from the same search run.
	SearchID string `json:"search_id"`

	// Timestamp is when the event was created.
	Timestamp time.Time `json:"timestamp"`

	// Data is the type-specific payload, nil for lifecycle-only events.
	Data any `json:"data,omitempty"`
}

// New creates an event with a fresh ID and the current time.
func New(t Type, searchID string, data any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      t,
		SearchID:  searchID,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

// Package pathgraph provides exhaustive path enumeration, loop detection,
// and shortest-path queries over a state machine's directed rule graph.
package pathgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for input validation.
var (
	// ErrNoStates indicates an empty states snapshot was supplied.
	ErrNoStates = errors.New("states snapshot is empty")

	// ErrStateNotFound indicates a referenced state ID does not exist in
	// the snapshot. Wrapped by NotFoundError.
	ErrStateNotFound = errors.New("state not found")

	// ErrEndStateRequired indicates an intermediate state was requested
	// without an end state.
	ErrEndStateRequired = errors.New("intermediate state requires an end state")

	// ErrNilContext indicates a search was started with a nil context.
	ErrNilContext = errors.New("context cannot be nil")
)

// ErrCancelled indicates a search observed its cancellation token or context
// cancellation at a checkpoint. Wrapped by CancelledError.
var ErrCancelled = errors.New("search cancelled")

// StateKind identifies which search parameter a NotFoundError refers to.
type StateKind string

// Kinds of state references a search validates before traversal.
const (
	StateKindStart        StateKind = "start"
	StateKindEnd          StateKind = "end"
	StateKindIntermediate StateKind = "intermediate"
)

// NotFoundError reports a start, end, or intermediate state ID that does not
// exist in the supplied snapshot. It is returned before any traversal work
// begins.
type NotFoundError struct {
	// Kind says which parameter was missing.
	Kind StateKind
	// ID is the state ID that failed to resolve.
	ID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s state %q not found", e.Kind, e.ID)
}

// Unwrap returns ErrStateNotFound for errors.Is support.
func (e *NotFoundError) Unwrap() error {
	return ErrStateNotFound
}

// CancelledError reports a search stopped by its cancellation token or by
// context cancellation. It is expected control flow, not a failure; hosts
// typically match it with errors.Is(err, ErrCancelled) and reset UI state
// silently.
type CancelledError struct {
	// SearchID is the run identifier of the cancelled search.
	SearchID string
	// Phase is the search kind that was cancelled ("paths" or "loops").
	Phase string
	// Cause is the context error when cancellation came from the context,
	// nil when it came from the token.
	Cause error
}

// Error implements the error interface.
func (e *CancelledError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s search %s cancelled: %v", e.Phase, e.SearchID, e.Cause)
	}
	return fmt.Sprintf("%s search %s cancelled", e.Phase, e.SearchID)
}

// Unwrap exposes ErrCancelled and, when set, the underlying context error,
// so errors.Is works against both (e.g. context.Canceled vs a token cancel).
func (e *CancelledError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrCancelled, e.Cause}
	}
	return []error{ErrCancelled}
}

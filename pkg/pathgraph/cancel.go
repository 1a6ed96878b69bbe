package pathgraph

import "sync/atomic"

// Token is a shared cancellation flag for cooperative abort of a running
// search. The host keeps a reference, passes it in with WithCancelToken, and
// calls Cancel from any goroutine (typically a UI handler or a wall-clock
// timer). The search observes the flag at its checkpoints and fails with a
// CancelledError.
//
// Setting the flag does not interrupt work in progress between checkpoints;
// it takes effect at the next check. A Token is single-use per search
// conceptually, but Reset allows reuse between searches.
type Token struct {
	cancelled atomic.Bool
}

// NewToken creates a cancellation token in the not-cancelled state.
func NewToken() *Token {
	return &Token{}
}

// Cancel sets the flag. Safe for concurrent use; idempotent.
func (t *Token) Cancel() {
	t.cancelled.Store(true)
}

// Cancelled reports whether Cancel has been called.
// A nil token is never cancelled.
func (t *Token) Cancelled() bool {
	if t == nil {
		return false
	}
	return t.cancelled.Load()
}

// Reset clears the flag so the token can drive another search.
func (t *Token) Reset() {
	t.cancelled.Store(false)
}

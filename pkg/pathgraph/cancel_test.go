package pathgraph

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestToken_Lifecycle verifies the basic flag transitions.
func TestToken_Lifecycle(t *testing.T) {
	token := NewToken()
	assert.False(t, token.Cancelled())

	token.Cancel()
	assert.True(t, token.Cancelled())

	// Idempotent.
	token.Cancel()
	assert.True(t, token.Cancelled())

	token.Reset()
	assert.False(t, token.Cancelled())
}

// TestToken_NilIsNeverCancelled verifies searches run without a token.
func TestToken_NilIsNeverCancelled(t *testing.T) {
	var token *Token
	assert.False(t, token.Cancelled())
}

// TestToken_ConcurrentCancel verifies Cancel is safe from multiple
// goroutines.
func TestToken_ConcurrentCancel(t *testing.T) {
	token := NewToken()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token.Cancel()
		}()
	}
	wg.Wait()

	assert.True(t, token.Cancelled())
}

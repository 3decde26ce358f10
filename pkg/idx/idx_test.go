package idx

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewProducesValidIDs(t *testing.T) {
	id := New()
	require.False(t, id.IsZero())

	parsed, err := Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	require.WithinDuration(t, time.Now().UTC(), id.Time(), 5*time.Second)
}

func TestNewIsUniqueUnderConcurrency(t *testing.T) {
	const n = 200

	var mu sync.Mutex
	seen := make(map[ID]struct{}, n)

	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := New()
			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, seen, n, "all generated IDs should be distinct")
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []string{"", "   ", "not-a-ulid", "0000000000000000000000000!"}
	for _, s := range tests {
		_, err := Parse(s)
		require.ErrorIs(t, err, ErrInvalid)
	}
}

package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammyshhilt/tgbot-service/internal/model"
)

func TestGetOrCreateAssignsRole(t *testing.T) {
	store := NewStore([]string{"boss", "anotherAdmin"})

	admin := store.GetOrCreate(1, "boss")
	assert.Equal(t, model.RoleAdmin, admin.Role)

	user := store.GetOrCreate(2, "alice")
	assert.Equal(t, model.RoleUser, user.Role)
}

func TestGetOrCreateIdempotent(t *testing.T) {
	store := NewStore(nil)

	first := store.GetOrCreate(5, "alice")
	second := store.GetOrCreate(5, "alice")
	require.Same(t, first, second)

	got, ok := store.Get(5)
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestGetAbsent(t *testing.T) {
	store := NewStore(nil)
	_, ok := store.Get(404)
	assert.False(t, ok)
}

// The second of two concurrent creators must observe the first one's session,
// never overwrite it.
func TestGetOrCreateConcurrent(t *testing.T) {
	store := NewStore(nil)

	const workers = 32
	results := make([]*model.Session, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = store.GetOrCreate(7, "alice")
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		require.Same(t, results[0], results[i])
	}
}

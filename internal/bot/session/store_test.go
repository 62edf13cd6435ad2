package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreBasics(t *testing.T) {
	store := NewMemoryStore[*AddSession](0)

	_, ok := store.Get(1)
	assert.False(t, ok)

	store.Set(1, &AddSession{Step: StepName})
	s, ok := store.Get(1)
	require.True(t, ok)
	assert.Equal(t, StepName, s.Step)

	// one session per chat, last write wins
	store.Set(1, &AddSession{Step: StepPotency})
	s, ok = store.Get(1)
	require.True(t, ok)
	assert.Equal(t, StepPotency, s.Step)

	store.Delete(1)
	_, ok = store.Get(1)
	assert.False(t, ok)
}

func TestMemoryStoreIsolatesChats(t *testing.T) {
	store := NewMemoryStore[*DeleteSession](0)
	store.Set(10, &DeleteSession{CardID: 5})
	store.Set(20, &DeleteSession{CardID: 7})

	a, ok := store.Get(10)
	require.True(t, ok)
	b, ok2 := store.Get(20)
	require.True(t, ok2)
	assert.Equal(t, int64(5), a.CardID)
	assert.Equal(t, int64(7), b.CardID)
}

func TestMemoryStoreIdleEviction(t *testing.T) {
	store := NewMemoryStore[*EditSession](20 * time.Millisecond)
	store.Set(1, &EditSession{CardID: 3})

	time.Sleep(50 * time.Millisecond)

	_, ok := store.Get(1)
	assert.False(t, ok, "idle session should be evicted on access")
}

func TestMemoryStoreGetRefreshesIdleClock(t *testing.T) {
	store := NewMemoryStore[*EditSession](60 * time.Millisecond)
	store.Set(1, &EditSession{CardID: 3})

	// keep touching before the deadline
	for i := 0; i < 3; i++ {
		time.Sleep(30 * time.Millisecond)
		_, ok := store.Get(1)
		require.True(t, ok, "active session must survive access %d", i)
	}
}

func TestMemoryStoreSweep(t *testing.T) {
	store := NewMemoryStore[*AddSession](20 * time.Millisecond)
	store.Set(1, &AddSession{})
	store.Set(2, &AddSession{})

	time.Sleep(50 * time.Millisecond)
	store.Set(3, &AddSession{})

	assert.Equal(t, 2, store.Sweep())

	_, ok := store.Get(3)
	assert.True(t, ok, "fresh session must survive the sweep")
}

func TestMemoryStoreTTLDisabled(t *testing.T) {
	store := NewMemoryStore[*AddSession](0)
	store.Set(1, &AddSession{})

	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, 0, store.Sweep())
	_, ok := store.Get(1)
	assert.True(t, ok)
}

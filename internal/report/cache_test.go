package report

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_EmptyMisses(t *testing.T) {
	cache := NewCache(2*time.Minute, clockwork.NewFakeClock())

	_, _, ok := cache.Get()
	assert.False(t, ok)

	_, exists := cache.Age()
	assert.False(t, exists)
}

func TestCache_FreshWithinWindow(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cache := NewCache(2*time.Minute, clock)

	payload := &Payload{Status: StatusActive}
	cache.Set(payload)

	clock.Advance(90 * time.Second)

	got, age, ok := cache.Get()
	require.True(t, ok)
	assert.Same(t, payload, got)
	assert.Equal(t, 90*time.Second, age)
}

func TestCache_StaleAfterWindow(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cache := NewCache(2*time.Minute, clock)

	cache.Set(&Payload{})
	clock.Advance(2 * time.Minute)

	_, _, ok := cache.Get()
	assert.False(t, ok, "age equal to the window is stale")

	// Age still reports the stale entry for health purposes.
	age, exists := cache.Age()
	assert.True(t, exists)
	assert.Equal(t, 2*time.Minute, age)
}

func TestCache_SetOverwritesWholesale(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cache := NewCache(2*time.Minute, clock)

	cache.Set(&Payload{Status: StatusQuiet})
	clock.Advance(time.Minute)

	replacement := &Payload{Status: StatusActive}
	cache.Set(replacement)

	got, age, ok := cache.Get()
	require.True(t, ok)
	assert.Same(t, replacement, got)
	assert.Equal(t, time.Duration(0), age, "age resets on overwrite")
}

func TestCache_Clear(t *testing.T) {
	cache := NewCache(2*time.Minute, clockwork.NewFakeClock())
	cache.Set(&Payload{})

	cache.Clear()

	_, _, ok := cache.Get()
	assert.False(t, ok)
	_, exists := cache.Age()
	assert.False(t, exists)
}

func TestCache_TTL(t *testing.T) {
	cache := NewCache(5*time.Minute, nil)
	assert.Equal(t, 5*time.Minute, cache.TTL())
}

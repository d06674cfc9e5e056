package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestCacheGetSet(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	c := New[string](30*time.Minute, clock)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("query", "ranking")
	got, ok := c.Get("query")
	require.True(t, ok)
	assert.Equal(t, "ranking", got)
	assert.True(t, c.HasValid("query"))
}

func TestCacheExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	c := New[int](30*time.Minute, clock)

	c.Set("k", 42)

	clock.Advance(29 * time.Minute)
	_, ok := c.Get("k")
	assert.True(t, ok, "entry must stay valid inside the TTL window")

	clock.Advance(2 * time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok, "entry must expire after the TTL window")
	assert.False(t, c.HasValid("k"))
	assert.Equal(t, 0, c.Len())
}

func TestCacheOverwrite(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	c := New[int](time.Minute, clock)

	c.Set("k", 1)
	clock.Advance(2 * time.Minute)
	c.Set("k", 2)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 2, got, "a rewrite must refresh the entry")
	assert.Equal(t, 1, c.Len())
}

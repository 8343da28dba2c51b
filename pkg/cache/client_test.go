package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheSetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "key", "value", time.Minute))

	value, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)
}

func TestMemoryCacheMiss(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	_, err := c.Get(ctx, "absent")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "key", "value", -time.Second))

	_, err := c.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "a", "1", time.Minute))
	require.NoError(t, c.Set(ctx, "b", "2", time.Minute))
	require.NoError(t, c.Delete(ctx, "a", "b"))

	_, err := c.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestDisabledRedisClient(t *testing.T) {
	ctx := context.Background()

	c, err := NewRedisClient("", "", 0)
	require.NoError(t, err)

	assert.NoError(t, c.Set(ctx, "key", "value", time.Minute))

	_, err = c.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrCacheMiss)

	assert.NoError(t, c.Delete(ctx, "key"))
	assert.NoError(t, c.Close())
}

func TestJSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, SetJSON(ctx, c, "key", payload{Name: "go", Count: 3}, time.Minute))

	var got payload
	require.NoError(t, GetJSON(ctx, c, "key", &got))
	assert.Equal(t, payload{Name: "go", Count: 3}, got)
}

func TestGetJSONMiss(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	var got map[string]string
	err := GetJSON(ctx, c, "absent", &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

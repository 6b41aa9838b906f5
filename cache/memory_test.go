package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemory_SetGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	s.Set(ctx, "steam_profile_76561197960265729_USD", "payload", time.Minute)

	got, ok := s.Get(ctx, "steam_profile_76561197960265729_USD")
	assert.True(t, ok)
	assert.Equal(t, "payload", got)
}

func TestMemory_MissingKey(t *testing.T) {
	s := NewMemory()
	_, ok := s.Get(context.Background(), "nope")
	assert.False(t, ok)
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	current := time.Now()
	s.now = func() time.Time { return current }

	s.Set(ctx, "key", "value", time.Minute)

	_, ok := s.Get(ctx, "key")
	assert.True(t, ok)

	current = current.Add(2 * time.Minute)

	_, ok = s.Get(ctx, "key")
	assert.False(t, ok)
}

func TestMemory_SetOverwritesExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	current := time.Now()
	s.now = func() time.Time { return current }

	s.Set(ctx, "key", "old", time.Minute)
	current = current.Add(30 * time.Second)
	s.Set(ctx, "key", "new", time.Minute)
	current = current.Add(45 * time.Second)

	got, ok := s.Get(ctx, "key")
	assert.True(t, ok)
	assert.Equal(t, "new", got)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "steam_profile_76561197960265729_USD", ProfileKey("76561197960265729", "USD"))
	assert.Equal(t, "vanity_gaben", VanityKey("gaben"))
}

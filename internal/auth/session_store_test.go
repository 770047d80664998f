package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// Without a reachable cache every session looks dead: writes are dropped and
// lookups miss. The store must still never error, so auth degrades to
// "please log in again" instead of failing requests outright.
func TestSessionStore_DegradesWithoutCache(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(nil)

	assert.NoError(t, store.Create(ctx, "jti-1", uuid.New()))

	_, live := store.Lookup(ctx, "jti-1")
	assert.False(t, live)

	assert.NoError(t, store.Delete(ctx, "jti-1"))
	assert.NoError(t, store.Delete(ctx, "jti-1"), "repeated logout is a no-op")
}

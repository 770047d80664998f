package auth

import (
	"context"

	"github.com/google/uuid"

	"pressroom/internal/cache"
)

const sessionKeyPrefix = "session:"

// SessionStoreInterface tracks which session token IDs are live. A token
// whose JTI is absent here is dead even if its signature still verifies,
// which is what makes logout effective.
type SessionStoreInterface interface {
	Create(ctx context.Context, tokenID string, accountID uuid.UUID) error
	Lookup(ctx context.Context, tokenID string) (uuid.UUID, bool)
	Delete(ctx context.Context, tokenID string) error
}

// SessionStore keeps live sessions in Redis.
type SessionStore struct {
	cache *cache.Client
}

var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a session store over the cache client.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

// Create registers a live session for the account.
func (s *SessionStore) Create(ctx context.Context, tokenID string, accountID uuid.UUID) error {
	key := sessionKeyPrefix + tokenID
	return s.cache.Set(ctx, key, []byte(accountID.String()), SessionTokenExpiry)
}

// Lookup resolves a live session token to its account id.
func (s *SessionStore) Lookup(ctx context.Context, tokenID string) (uuid.UUID, bool) {
	key := sessionKeyPrefix + tokenID
	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(string(data))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// Delete ends a session. Deleting a session that does not exist is a
// no-op, so repeated logouts are harmless.
func (s *SessionStore) Delete(ctx context.Context, tokenID string) error {
	key := sessionKeyPrefix + tokenID
	return s.cache.Delete(ctx, key)
}

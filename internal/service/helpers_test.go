package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pressroom/internal/model"
)

// fakeStore is an in-memory store.Store for tests.
type fakeStore struct {
	docs map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: make(map[string][]byte)}
}

func (f *fakeStore) Read(ctx context.Context, key string) ([]byte, error) {
	doc, ok := f.docs[key]
	if !ok {
		return nil, nil
	}
	return doc, nil
}

func (f *fakeStore) Write(ctx context.Context, key string, doc []byte) error {
	f.docs[key] = doc
	return nil
}

func (f *fakeStore) has(key string) bool {
	_, ok := f.docs[key]
	return ok
}

func testAccount(name string, role model.Role) model.Account {
	return model.Account{
		ID:       uuid.New(),
		Name:     name,
		Email:    name + "@newspaper.com",
		Role:     role,
		JoinedAt: time.Now().UTC(),
	}
}

// newsroom bundles the services a workflow test needs, all backed by the
// same in-memory store.
type newsroom struct {
	store       *fakeStore
	settings    SettingsService
	editorial   EditorialService
	publication PublicationService
}

func newNewsroom(t *testing.T) *newsroom {
	t.Helper()
	ctx := context.Background()
	st := newFakeStore()
	log := zap.NewNop()

	settings, err := NewSettingsService(ctx, st, log)
	require.NoError(t, err)
	editorial, err := NewEditorialService(ctx, st, settings, log)
	require.NoError(t, err)
	publication, err := NewPublicationService(ctx, st, editorial, nil, log)
	require.NoError(t, err)

	return &newsroom{store: st, settings: settings, editorial: editorial, publication: publication}
}

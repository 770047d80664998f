package service

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pressroom/internal/errors"
	"pressroom/internal/model"
	"pressroom/internal/store"
)

func TestSettings_DefaultsNotPersisted(t *testing.T) {
	ctx := context.Background()
	st := newFakeStore()
	svc, err := NewSettingsService(ctx, st, zap.NewNop())
	require.NoError(t, err)

	got := svc.Get(ctx)
	assert.Equal(t, "Community Press", got.Name)
	assert.Contains(t, got.Categories, "General News")

	// Defaults are a fallback, not data: nothing is written until the
	// first explicit save.
	assert.False(t, st.has(store.KeyOrgSettings))
}

func TestSettings_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	n := newNewsroom(t)

	got := n.settings.Get(ctx)
	got.Categories[0] = "Mutated"

	assert.Equal(t, "General News", n.settings.Get(ctx).Categories[0])
}

func TestSettings_Update(t *testing.T) {
	ctx := context.Background()
	st := newFakeStore()
	svc, err := NewSettingsService(ctx, st, zap.NewNop())
	require.NoError(t, err)
	admin := testAccount("admin", model.RoleAdmin)

	updated, err := svc.Update(ctx, admin, model.OrgSettings{
		Name:       "The Harbor Gazette",
		Subtitle:   "All the news that floats",
		Categories: []string{"Harbor", "Opinion"},
	})
	require.NoError(t, err)
	assert.Equal(t, "The Harbor Gazette", updated.Name)
	assert.True(t, st.has(store.KeyOrgSettings))

	// The saved configuration survives a reload.
	reloaded, err := NewSettingsService(ctx, st, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"Harbor", "Opinion"}, reloaded.Get(ctx).Categories)
}

func TestSettings_UpdateRefusals(t *testing.T) {
	ctx := context.Background()
	admin := testAccount("admin", model.RoleAdmin)
	chief := testAccount("morgan", model.RoleChiefEditor)
	editor := testAccount("jamie", model.RoleEditor)

	valid := model.OrgSettings{Name: "N", Categories: []string{"A"}}

	tests := []struct {
		name     string
		actor    model.Account
		settings model.OrgSettings
		wantErr  error
	}{
		{"editor cannot manage settings", editor, valid, errors.ErrPermissionDenied},
		{"even the chief cannot manage settings", chief, valid, errors.ErrPermissionDenied},
		{"admin can manage settings", admin, valid, nil},
		{"empty name", admin, model.OrgSettings{Categories: []string{"A"}}, errors.ErrTitleRequired},
		{"blank category label", admin, model.OrgSettings{Name: "N", Categories: []string{"A", "  "}}, errors.ErrValidation},
		{"duplicate category", admin, model.OrgSettings{Name: "N", Categories: []string{"A", "A"}}, errors.ErrDuplicateCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newNewsroom(t)
			_, err := n.settings.Update(ctx, tt.actor, tt.settings)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, tt.wantErr))
			assert.Equal(t, "Community Press", n.settings.Get(ctx).Name, "refused update must not mutate")
		})
	}
}

func TestSettings_CategoryRenameOrphansArticles(t *testing.T) {
	ctx := context.Background()
	n := newNewsroom(t)
	admin := testAccount("admin", model.RoleAdmin)
	reporter := testAccount("riley", model.RoleReporter)

	article := submitArticle(t, n, reporter, "T")

	// Removing a category does not touch existing articles; they keep the
	// stale label until their next edit, which then fails validation.
	_, err := n.settings.Update(ctx, admin, model.OrgSettings{
		Name:       "Community Press",
		Categories: []string{"Local"},
	})
	require.NoError(t, err)

	got, err := n.editorial.Get(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, "General News", got.Category)

	_, err = n.editorial.Update(ctx, reporter, article.ID, ArticleInput{
		Title: "T", Content: "<p>x</p>", Category: "General News", Status: model.StatusPending,
	})
	assert.True(t, stderrors.Is(err, errors.ErrUnknownCategory))
}

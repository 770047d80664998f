package service

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pressroom/internal/errors"
	"pressroom/internal/model"
)

func submitArticle(t *testing.T, n *newsroom, author model.Account, title string) *model.Article {
	t.Helper()
	article, err := n.editorial.Create(context.Background(), author, ArticleInput{
		Title:    title,
		Content:  "<p>body text</p>",
		Category: "General News",
		Status:   model.StatusPending,
	})
	require.NoError(t, err)
	return article
}

func TestCreate_SubmitForReview(t *testing.T) {
	ctx := context.Background()
	n := newNewsroom(t)
	reporter := testAccount("riley", model.RoleReporter)

	article, err := n.editorial.Create(ctx, reporter, ArticleInput{
		Title:    "T",
		Content:  "<p>x</p>",
		Category: "Events",
		Status:   model.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, article.Status)
	assert.Equal(t, reporter.ID, article.AuthorID)
	assert.Equal(t, reporter.Name, article.Author)
	assert.Nil(t, article.UpdatedAt)
}

func TestCreate_Validation(t *testing.T) {
	ctx := context.Background()
	reporter := testAccount("riley", model.RoleReporter)

	tests := []struct {
		name    string
		input   ArticleInput
		wantErr error
	}{
		{
			"empty title",
			ArticleInput{Title: "   ", Content: "<p>x</p>", Category: "Events", Status: model.StatusPending},
			errors.ErrTitleRequired,
		},
		{
			"empty content",
			ArticleInput{Title: "T", Content: "", Category: "Events", Status: model.StatusDraft},
			errors.ErrContentRequired,
		},
		{
			"markup-only body cannot be submitted",
			ArticleInput{Title: "T", Content: "<p>&nbsp; </p><p></p>", Category: "Events", Status: model.StatusPending},
			errors.ErrContentRequired,
		},
		{
			"unknown category",
			ArticleInput{Title: "T", Content: "<p>x</p>", Category: "Sports", Status: model.StatusPending},
			errors.ErrUnknownCategory,
		},
		{
			"save target must be draft or pending",
			ArticleInput{Title: "T", Content: "<p>x</p>", Category: "Events", Status: model.StatusApproved},
			errors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newNewsroom(t)
			_, err := n.editorial.Create(ctx, reporter, tt.input)
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, tt.wantErr))
			assert.Empty(t, n.editorial.List(ctx), "rejected input must not create anything")
		})
	}
}

func TestCreate_DraftKeepsMarkupOnlyBody(t *testing.T) {
	ctx := context.Background()
	n := newNewsroom(t)
	reporter := testAccount("riley", model.RoleReporter)

	// A draft only needs a raw body; the stripped-text rule applies to
	// submission, not to saving work in progress.
	article, err := n.editorial.Create(ctx, reporter, ArticleInput{
		Title:    "Work in progress",
		Content:  "<p>&nbsp;</p>",
		Category: "Events",
		Status:   model.StatusDraft,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusDraft, article.Status)
}

func TestUpdate_AuthorOnly(t *testing.T) {
	ctx := context.Background()
	n := newNewsroom(t)
	author := testAccount("riley", model.RoleReporter)
	other := testAccount("sam", model.RoleReporter)
	admin := testAccount("admin", model.RoleAdmin)

	article := submitArticle(t, n, author, "Original")
	input := ArticleInput{Title: "Edited", Content: "<p>new</p>", Category: "Events", Status: model.StatusDraft}

	updated, err := n.editorial.Update(ctx, author, article.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Edited", updated.Title)
	assert.Equal(t, model.StatusDraft, updated.Status)
	require.NotNil(t, updated.UpdatedAt)

	// Nobody but the author edits, regardless of rank.
	for _, actor := range []model.Account{other, admin} {
		_, err = n.editorial.Update(ctx, actor, article.ID, input)
		assert.True(t, stderrors.Is(err, errors.ErrPermissionDenied))
	}

	_, err = n.editorial.Update(ctx, author, uuid.New(), input)
	assert.True(t, stderrors.Is(err, errors.ErrNotFound))
}

func TestReviewWorkflow(t *testing.T) {
	ctx := context.Background()
	n := newNewsroom(t)
	reporter := testAccount("riley", model.RoleReporter)
	editor := testAccount("jamie", model.RoleEditor)

	article := submitArticle(t, n, reporter, "T")

	// Reporters cannot review, not even their own work.
	_, err := n.editorial.Review(ctx, reporter, article.ID, true)
	assert.True(t, stderrors.Is(err, errors.ErrPermissionDenied))

	approved, err := n.editorial.Review(ctx, editor, article.ID, true)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, approved.Status)

	// Approved is final: no re-review, no author edits.
	_, err = n.editorial.Review(ctx, editor, article.ID, false)
	assert.True(t, stderrors.Is(err, errors.ErrValidation))

	_, err = n.editorial.Update(ctx, reporter, article.ID, ArticleInput{
		Title: "T", Content: "<p>x</p>", Category: "General News", Status: model.StatusDraft,
	})
	assert.True(t, stderrors.Is(err, errors.ErrPermissionDenied))
}

func TestReview_RejectedCanBeResubmitted(t *testing.T) {
	ctx := context.Background()
	n := newNewsroom(t)
	reporter := testAccount("riley", model.RoleReporter)
	chief := testAccount("morgan", model.RoleChiefEditor)

	article := submitArticle(t, n, reporter, "T")

	rejected, err := n.editorial.Review(ctx, chief, article.ID, false)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, rejected.Status)

	// The author reworks it and submits again through the normal edit path.
	resubmitted, err := n.editorial.Update(ctx, reporter, article.ID, ArticleInput{
		Title: "T, revised", Content: "<p>better</p>", Category: "General News", Status: model.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, resubmitted.Status)

	_, err = n.editorial.Review(ctx, chief, article.ID, true)
	require.NoError(t, err)
}

func TestReview_OnlyPendingTransitions(t *testing.T) {
	ctx := context.Background()
	n := newNewsroom(t)
	reporter := testAccount("riley", model.RoleReporter)
	editor := testAccount("jamie", model.RoleEditor)

	draft, err := n.editorial.Create(ctx, reporter, ArticleInput{
		Title: "Draft", Content: "<p>x</p>", Category: "Events", Status: model.StatusDraft,
	})
	require.NoError(t, err)

	_, err = n.editorial.Review(ctx, editor, draft.ID, true)
	assert.True(t, stderrors.Is(err, errors.ErrValidation))

	got, err := n.editorial.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusDraft, got.Status)
}

func TestDelete_Permissions(t *testing.T) {
	ctx := context.Background()
	n := newNewsroom(t)
	author := testAccount("riley", model.RoleReporter)
	other := testAccount("sam", model.RoleReporter)
	editor := testAccount("jamie", model.RoleEditor)
	chief := testAccount("morgan", model.RoleChiefEditor)

	article := submitArticle(t, n, author, "T")

	// Peers and plain editors cannot remove someone else's article.
	for _, actor := range []model.Account{other, editor} {
		err := n.editorial.Delete(ctx, actor, article.ID)
		assert.True(t, stderrors.Is(err, errors.ErrPermissionDenied))
	}

	// Chiefs (and admins) can.
	require.NoError(t, n.editorial.Delete(ctx, chief, article.ID))
	_, err := n.editorial.Get(ctx, article.ID)
	assert.True(t, stderrors.Is(err, errors.ErrNotFound))

	// Authors can always delete their own.
	own := submitArticle(t, n, author, "Mine")
	require.NoError(t, n.editorial.Delete(ctx, author, own.ID))
}

func TestListing(t *testing.T) {
	ctx := context.Background()
	n := newNewsroom(t)
	riley := testAccount("riley", model.RoleReporter)
	sam := testAccount("sam", model.RoleReporter)
	editor := testAccount("jamie", model.RoleEditor)

	a := submitArticle(t, n, riley, "A")
	submitArticle(t, n, sam, "B")
	_, err := n.editorial.Review(ctx, editor, a.ID, true)
	require.NoError(t, err)

	assert.Len(t, n.editorial.List(ctx), 2)
	assert.Len(t, n.editorial.ListByAuthor(ctx, riley.ID), 1)
	assert.Len(t, n.editorial.ListApproved(ctx), 1)

	pending, err := n.editorial.ListPending(ctx, editor)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "B", pending[0].Title)

	// The review queue itself is gated.
	_, err = n.editorial.ListPending(ctx, riley)
	assert.True(t, stderrors.Is(err, errors.ErrPermissionDenied))
}

func TestArticles_PersistAcrossReload(t *testing.T) {
	ctx := context.Background()
	n := newNewsroom(t)
	reporter := testAccount("riley", model.RoleReporter)
	article := submitArticle(t, n, reporter, "T")

	reloaded, err := NewEditorialService(ctx, n.store, n.settings, zap.NewNop())
	require.NoError(t, err)
	got, err := reloaded.Get(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)
}

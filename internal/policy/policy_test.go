package policy

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"pressroom/internal/model"
)

func account(role model.Role) model.Account {
	return model.Account{ID: uuid.New(), Role: role}
}

func TestAllows(t *testing.T) {
	tests := []struct {
		cap     Capability
		allowed []model.Role
	}{
		{ReviewArticles, []model.Role{model.RoleAdmin, model.RoleChiefEditor, model.RoleEditor}},
		{PublishNewspaper, []model.Role{model.RoleAdmin, model.RoleChiefEditor, model.RoleEditor}},
		{ManageUsers, []model.Role{model.RoleAdmin, model.RoleChiefEditor}},
		{ManageOrgSettings, []model.Role{model.RoleAdmin}},
	}

	for _, tt := range tests {
		t.Run(string(tt.cap), func(t *testing.T) {
			allowed := make(map[model.Role]bool)
			for _, r := range tt.allowed {
				allowed[r] = true
			}
			for _, role := range model.Roles {
				got := Allows(account(role), tt.cap)
				assert.Equal(t, allowed[role], got, "role %s", role)
			}
		})
	}
}

func TestCanEditArticle(t *testing.T) {
	author := account(model.RoleReporter)
	other := account(model.RoleAdmin)

	tests := []struct {
		name    string
		actor   model.Account
		status  model.ArticleStatus
		allowed bool
	}{
		{"author edits draft", author, model.StatusDraft, true},
		{"author edits pending", author, model.StatusPending, true},
		{"author edits rejected", author, model.StatusRejected, true},
		{"author edits approved", author, model.StatusApproved, false},
		{"admin edits someone else's draft", other, model.StatusDraft, false},
		{"admin edits someone else's approved", other, model.StatusApproved, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article := model.Article{ID: uuid.New(), AuthorID: author.ID, Status: tt.status}
			assert.Equal(t, tt.allowed, CanEditArticle(tt.actor, article))
		})
	}
}

// Approved articles are frozen against edits for every role, including the
// author holding that role.
func TestCanEditArticle_ApprovedFrozenForEveryRole(t *testing.T) {
	for _, role := range model.Roles {
		author := account(role)
		article := model.Article{ID: uuid.New(), AuthorID: author.ID, Status: model.StatusApproved}
		assert.False(t, CanEditArticle(author, article), "role %s", role)
	}
}

func TestCanDeleteArticle(t *testing.T) {
	author := account(model.RoleReporter)
	article := model.Article{ID: uuid.New(), AuthorID: author.ID, Status: model.StatusDraft}

	assert.True(t, CanDeleteArticle(author, article), "author deletes own")
	assert.True(t, CanDeleteArticle(account(model.RoleAdmin), article), "admin deletes any")
	assert.True(t, CanDeleteArticle(account(model.RoleChiefEditor), article), "chief editor deletes any")
	assert.False(t, CanDeleteArticle(account(model.RoleEditor), article), "editor may not delete others'")
	assert.False(t, CanDeleteArticle(account(model.RoleReporter), article), "other reporter may not delete")
}

// Exhaustive table over the full actor-role x target-role x new-role space.
// Only the admin row and the two chief-editor moves (reporter->editor,
// reporter->reporter, editor->reporter) are permitted.
func TestCanAssignRole_Exhaustive(t *testing.T) {
	chiefAllowed := map[[2]model.Role]bool{
		{model.RoleReporter, model.RoleEditor}:   true,
		{model.RoleReporter, model.RoleReporter}: true,
		{model.RoleEditor, model.RoleReporter}:   true,
	}

	for _, actorRole := range model.Roles {
		for _, targetRole := range model.Roles {
			for _, newRole := range model.Roles {
				name := fmt.Sprintf("%s assigns %s to %s", actorRole, newRole, targetRole)
				t.Run(name, func(t *testing.T) {
					want := false
					switch actorRole {
					case model.RoleAdmin:
						want = true
					case model.RoleChiefEditor:
						want = chiefAllowed[[2]model.Role{targetRole, newRole}]
					}
					got := CanAssignRole(account(actorRole), account(targetRole), newRole)
					assert.Equal(t, want, got)
				})
			}
		}
	}
}

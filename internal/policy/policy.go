// Package policy holds the pure permission predicates of the editorial
// workflow. Every function is side-effect free and evaluable over plain
// (actor, subject) data; there is no stored state.
package policy

import "pressroom/internal/model"

// Capability is a named permission checked against a role allow-list.
type Capability string

const (
	ReviewArticles    Capability = "review_articles"
	PublishNewspaper  Capability = "publish_newspaper"
	ManageUsers       Capability = "manage_users"
	ManageOrgSettings Capability = "manage_org_settings"
)

// Capability allow-lists. These are deliberately not derived from a role
// rank: chief_editor and editor are peers for reviewing and publishing,
// and differ only in account administration.
var capabilities = map[Capability]map[model.Role]bool{
	ReviewArticles: {
		model.RoleAdmin:       true,
		model.RoleChiefEditor: true,
		model.RoleEditor:      true,
	},
	PublishNewspaper: {
		model.RoleAdmin:       true,
		model.RoleChiefEditor: true,
		model.RoleEditor:      true,
	},
	ManageUsers: {
		model.RoleAdmin:       true,
		model.RoleChiefEditor: true,
	},
	ManageOrgSettings: {
		model.RoleAdmin: true,
	},
}

// Allows reports whether the actor's role is in the allow-list for the
// given capability.
func Allows(actor model.Account, cap Capability) bool {
	return capabilities[cap][actor.Role]
}

// CanEditArticle reports whether the actor may edit the article: only the
// author, and never once the article has been approved. Pending and
// rejected articles stay editable by their author.
func CanEditArticle(actor model.Account, article model.Article) bool {
	if article.AuthorID != actor.ID {
		return false
	}
	return article.Status != model.StatusApproved
}

// CanDeleteArticle reports whether the actor may delete the article: the
// author, or an admin/chief editor. Editors may not delete others' work.
func CanDeleteArticle(actor model.Account, article model.Article) bool {
	if article.AuthorID == actor.ID {
		return true
	}
	return actor.Role == model.RoleAdmin || actor.Role == model.RoleChiefEditor
}

// CanAssignRole reports whether the actor may set target's role to newRole.
// Admins may assign anything. A chief editor may only promote a reporter to
// editor (or leave them a reporter) and demote an editor back to reporter;
// chief_editor and admin accounts and grants are out of reach. Everyone
// else may not assign roles at all.
func CanAssignRole(actor, target model.Account, newRole model.Role) bool {
	switch actor.Role {
	case model.RoleAdmin:
		return true
	case model.RoleChiefEditor:
		if target.Role == model.RoleReporter {
			return newRole == model.RoleEditor || newRole == model.RoleReporter
		}
		if target.Role == model.RoleEditor {
			return newRole == model.RoleReporter
		}
		return false
	default:
		return false
	}
}

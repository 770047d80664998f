package model

// Role is the editorial role held by an account.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleChiefEditor Role = "chief_editor"
	RoleEditor      Role = "editor"
	RoleReporter    Role = "reporter"
)

// Roles lists every role in rank order, admin first.
var Roles = []Role{RoleAdmin, RoleChiefEditor, RoleEditor, RoleReporter}

var roleNames = map[Role]string{
	RoleAdmin:       "Administrator",
	RoleChiefEditor: "Chief Editor",
	RoleEditor:      "Editor",
	RoleReporter:    "Reporter",
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// DisplayName returns the human-readable role name, falling back to the
// raw value for unknown roles.
func (r Role) DisplayName() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return string(r)
}

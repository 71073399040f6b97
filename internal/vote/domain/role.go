package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Role is an account-wide role.
type Role string

const (
	RoleVoter       Role = "voter"
	RoleClubAdmin   Role = "clubAdmin"
	RoleSystemAdmin Role = "systemAdmin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleVoter, RoleClubAdmin, RoleSystemAdmin:
		return true
	}
	return false
}

// ParseRole converts s to a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.TrimSpace(s))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// ParseRoles splits a space-delimited role list, dropping unknown entries.
func ParseRoles(s string) []Role {
	var out []Role
	for _, f := range strings.Fields(s) {
		if r, err := ParseRole(f); err == nil && !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}

// FormatRoles is the inverse of ParseRoles.
func FormatRoles(roles []Role) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// RoleStrings returns roles as plain strings for token claims.
func RoleStrings(roles []Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

// Token scopes.
const (
	ScopeVoteRead   = "vote:read"
	ScopeVoteCast   = "vote:cast"
	ScopeClubWrite  = "club:write"
	ScopeAdminRead  = "admin:read"
	ScopeAdminWrite = "admin:write"
)

// ScopesFor maps a role set to the scopes carried in access tokens.
func ScopesFor(roles []Role) []string {
	scopes := []string{ScopeVoteRead, ScopeVoteCast}
	if slices.Contains(roles, RoleClubAdmin) || slices.Contains(roles, RoleSystemAdmin) {
		scopes = append(scopes, ScopeClubWrite)
	}
	if slices.Contains(roles, RoleSystemAdmin) {
		scopes = append(scopes, ScopeAdminRead, ScopeAdminWrite)
	}
	return scopes
}

// Caller is the authenticated identity behind a request.
type Caller struct {
	UserID string
	Roles  []Role
}

// Has reports whether the caller holds r.
func (c Caller) Has(r Role) bool {
	return slices.Contains(c.Roles, r)
}

// Action is something a caller may be allowed to do.
type Action int

const (
	ActionCreateClub Action = iota
	ActionUpdateClub
	ActionDeleteClub
	ActionManageMembers
	ActionManageElections
	ActionViewAnalytics
	ActionListUsers
	ActionDeleteUser
)

func (a Action) String() string {
	switch a {
	case ActionCreateClub:
		return "create club"
	case ActionUpdateClub:
		return "update club"
	case ActionDeleteClub:
		return "delete club"
	case ActionManageMembers:
		return "manage members"
	case ActionManageElections:
		return "manage elections"
	case ActionViewAnalytics:
		return "view analytics"
	case ActionListUsers:
		return "list users"
	case ActionDeleteUser:
		return "delete user"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Can decides whether caller may perform action. club is the club the action
// targets and may be nil for account-wide actions. System admins may do
// anything; club-scoped actions are also open to that club's admins.
func Can(caller Caller, action Action, club *Club) bool {
	if caller.UserID == "" {
		return false
	}
	if caller.Has(RoleSystemAdmin) {
		return true
	}
	switch action {
	case ActionUpdateClub, ActionManageMembers, ActionManageElections, ActionViewAnalytics:
		return club != nil && club.IsAdmin(caller.UserID)
	}
	return false
}

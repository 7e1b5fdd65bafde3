package auth

import (
	"encoding/json"
	"strings"
)

type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleEditor     Role = "EDITOR"
	RoleViewer     Role = "VIEWER"
)

var Roles = []Role{RoleSuperAdmin, RoleEditor, RoleViewer}

func ValidRole(s string) bool {
	for _, r := range Roles {
		if string(r) == s {
			return true
		}
	}
	return false
}

// AdminPage is one admin management surface, keyed by its capability.
type AdminPage struct {
	Key   string
	Label string
	Path  string
}

// AdminPages is the closed set of capability keys and the admin paths they own.
var AdminPages = []AdminPage{
	{Key: "portfolio", Label: "Portfolio", Path: "/admin/portfolio"},
	{Key: "skills", Label: "Skills", Path: "/admin/skills"},
	{Key: "experience", Label: "Experience", Path: "/admin/experience"},
	{Key: "pages", Label: "Pages", Path: "/admin/pages"},
	{Key: "settings", Label: "Settings", Path: "/admin/settings"},
}

// PermissionKeys returns every capability key.
func PermissionKeys() []string {
	keys := make([]string, len(AdminPages))
	for i, p := range AdminPages {
		keys[i] = p.Key
	}
	return keys
}

// DefaultPermissions is the permission set assigned when a user of the given
// role is created without an explicit set.
func DefaultPermissions(role Role) []string {
	switch role {
	case RoleSuperAdmin:
		return PermissionKeys()
	case RoleEditor:
		return []string{"portfolio", "skills", "experience"}
	default:
		return []string{}
	}
}

// ParsePermissions decodes the serialized permission set stored on the user
// row. Malformed input yields an empty set rather than an error; this is the
// only place the storage representation is interpreted.
func ParsePermissions(raw string) []string {
	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil || parsed == nil {
		return []string{}
	}
	return parsed
}

// SerializePermissions is the inverse adapter at the persistence boundary.
func SerializePermissions(perms []string) string {
	if perms == nil {
		perms = []string{}
	}
	b, err := json.Marshal(perms)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// IsSuperAdmin reports whether the role is the unrestricted admin role.
// Role comparisons elsewhere in the codebase go through this helper so
// the privileged role is named in exactly one place.
func IsSuperAdmin(role Role) bool {
	return role == RoleSuperAdmin
}

// Can reports whether a user with the given role and permission set may use
// the admin surface identified by pageKey. SUPER_ADMIN bypasses the set.
func Can(role Role, permissions []string, pageKey string) bool {
	if IsSuperAdmin(role) {
		return true
	}
	for _, p := range permissions {
		if p == pageKey {
			return true
		}
	}
	return false
}

// CanAccessPath maps an admin path to its owning capability and checks it.
// The admin root is a privileged overview and stays closed to non-admins.
// Unmapped paths fall back to allowing every role except VIEWER.
func CanAccessPath(role Role, permissions []string, path string) bool {
	if IsSuperAdmin(role) {
		return true
	}
	if path == "/admin" || path == "/admin/" {
		return false
	}
	for _, p := range AdminPages {
		if strings.HasPrefix(path, p.Path) {
			return Can(role, permissions, p.Key)
		}
	}
	return role != RoleViewer
}

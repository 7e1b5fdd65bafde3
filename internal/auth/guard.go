package auth

import (
	"log/slog"
	"net/http"
	"strings"
)

// Zone is the surface a path belongs to.
type Zone int

const (
	ZonePublic Zone = iota
	ZoneAdmin
	ZonePortal
)

// Decision is the route guard's verdict for one request.
type Decision int

const (
	DecisionAllow Decision = iota
	DecisionAdminLogin
	DecisionPortalLogin
	DecisionAccessDenied
	DecisionAdminHome
)

const (
	AdminLoginPath     = "/login"
	PortalLoginPath    = "/portal/login"
	PortalRegisterPath = "/portal/register"
	AccessDeniedPath   = "/access-denied"
	AdminHomePath      = "/admin"
)

func ZoneForPath(path string) Zone {
	switch {
	case path == "/admin" || strings.HasPrefix(path, "/admin/"):
		return ZoneAdmin
	case path == "/portal" || strings.HasPrefix(path, "/portal/"):
		return ZonePortal
	default:
		return ZonePublic
	}
}

// isOpenPath reports paths that must stay reachable without a session so the
// login surfaces never redirect to themselves.
func isOpenPath(path string) bool {
	switch {
	case path == AdminLoginPath, path == AccessDeniedPath:
		return true
	case path == PortalLoginPath, strings.HasPrefix(path, PortalLoginPath+"/"):
		return true
	case path == PortalRegisterPath, strings.HasPrefix(path, PortalRegisterPath+"/"):
		return true
	}
	return false
}

// Decide resolves which surface the principal may reach for the given path.
// A nil principal means no session. Authentication failures go to the login
// surface of the zone; authorization failures go to the access-denied page.
func Decide(p *Principal, path string) Decision {
	if isOpenPath(path) {
		return DecisionAllow
	}

	zone := ZoneForPath(path)
	if zone == ZonePublic {
		return DecisionAllow
	}

	if p == nil {
		if zone == ZoneAdmin {
			return DecisionAdminLogin
		}
		return DecisionPortalLogin
	}

	if zone == ZoneAdmin {
		if !IsSuperAdmin(p.Role) {
			return DecisionAccessDenied
		}
		if !CanAccessPath(p.Role, p.Permissions, path) {
			return DecisionAccessDenied
		}
		return DecisionAllow
	}

	// Portal zone: super admins belong in the admin shell.
	if IsSuperAdmin(p.Role) {
		return DecisionAdminHome
	}
	return DecisionAllow
}

// RedirectTarget returns where a non-allow decision sends the request.
func (d Decision) RedirectTarget() (string, bool) {
	switch d {
	case DecisionAdminLogin:
		return AdminLoginPath, true
	case DecisionPortalLogin:
		return PortalLoginPath, true
	case DecisionAccessDenied:
		return AccessDeniedPath, true
	case DecisionAdminHome:
		return AdminHomePath, true
	}
	return "", false
}

// Guard applies Decide to shell navigation, redirecting to the login or
// access-denied surface instead of serving the zone.
type Guard struct {
	logger *slog.Logger
}

func NewGuard(logger *slog.Logger) *Guard {
	return &Guard{logger: logger}
}

func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, _ := PrincipalFromContext(r.Context())

		decision := Decide(principal, r.URL.Path)
		if target, redirect := decision.RedirectTarget(); redirect {
			if decision == DecisionAccessDenied {
				g.logger.Warn("route guard: access denied",
					"path", r.URL.Path,
					"principal", principalID(principal),
				)
			}
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func principalID(p *Principal) string {
	if p == nil {
		return ""
	}
	return p.ID
}

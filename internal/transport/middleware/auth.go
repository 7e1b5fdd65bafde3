package middleware

import (
	"net/http"

	"github.com/sevginserbest/portal/internal/auth"
	"github.com/sevginserbest/portal/pkg/logger"
)

// PrincipalContext copies the authenticated user's identity into the
// logging context so every log line downstream carries it. Mount after
// the auth middleware.
func PrincipalContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if principal, ok := auth.PrincipalFromContext(r.Context()); ok && principal != nil {
			ctx := logger.With(r.Context(), "user_id", principal.ID, "role", string(principal.Role))
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

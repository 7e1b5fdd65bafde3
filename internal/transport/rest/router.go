package rest

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi"
	"github.com/sevginserbest/portal/internal/app"
	"github.com/sevginserbest/portal/internal/auth"
	"github.com/sevginserbest/portal/internal/content"
	"github.com/sevginserbest/portal/internal/invitation"
	"github.com/sevginserbest/portal/internal/settings"
	"github.com/sevginserbest/portal/internal/transport/middleware"
	"github.com/sevginserbest/portal/internal/transport/swagger"
	"github.com/sevginserbest/portal/internal/user"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth       *auth.Handler
	Guard      *auth.Guard
	User       *user.Handler
	Invitation *invitation.Handler
	App        *app.Handler
	Settings   *settings.Handler
	Content    *content.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(strings.Split(allowedOrigins, ",")))
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	// Shell routes: the admin and portal frontends. The guard decides
	// between serving the shell and redirecting to a login or denial page.
	router.Group(func(sr chi.Router) {
		sr.Use(h.Auth.WithPrincipal)
		sr.Use(h.Guard.Middleware)
		sr.Get("/", serveShell)
		sr.Get("/login", serveShell)
		sr.Get("/access-denied", serveShell)
		sr.Get("/admin", serveShell)
		sr.Get("/admin/*", serveShell)
		sr.Get("/portal", serveShell)
		sr.Get("/portal/*", serveShell)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(ar chi.Router) {
			ar.Post("/login", h.Auth.Login)
			ar.Post("/refresh", h.Auth.RefreshToken)
			ar.Post("/logout", h.Auth.Logout)
		})

		// Public reads for the portfolio site.
		r.Get("/settings", h.Settings.GetSettings)
		r.Get("/portfolio", h.Content.ListPortfolio)
		r.Get("/skills", h.Content.ListSkills)
		r.Get("/experience", h.Content.ListExperience)
		r.Get("/pages/{slug}", h.Content.GetPage)

		// Invitation redemption is public: the invitee has no session yet.
		r.Get("/invitations/{token}", h.Invitation.GetInvitation)
		r.Post("/invitations/{token}/accept", h.Invitation.AcceptInvitation)

		// Session routes.
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)
			pr.Use(middleware.PrincipalContext)

			pr.Get("/users/me", h.User.Me)
			pr.Patch("/users/me", h.User.UpdateMe)
			pr.Get("/portal/apps", h.App.PortalApps)

			// User, app and invitation management stays with SUPER_ADMIN.
			pr.Group(func(ar chi.Router) {
				ar.Use(h.Auth.RequireSuperAdmin)

				ar.Get("/users", h.User.ListUsers)
				ar.Post("/users", h.User.CreateUser)
				ar.Get("/users/apps", h.App.ListUsersWithApps)
				ar.Get("/users/{id}", h.User.GetUser)
				ar.Patch("/users/{id}", h.User.UpdateUser)
				ar.Delete("/users/{id}", h.User.DeleteUser)
				ar.Get("/users/{id}/apps", h.App.GetUserApps)
				ar.Put("/users/{id}/apps", h.App.SetUserApps)

				ar.Post("/invitations", h.Invitation.CreateInvitation)
				ar.Get("/invitations", h.Invitation.ListPendingInvitations)

				ar.Get("/apps", h.App.ListApps)
				ar.Post("/apps", h.App.CreateApp)
				ar.Get("/apps/{id}", h.App.GetApp)
				ar.Patch("/apps/{id}", h.App.UpdateApp)
				ar.Delete("/apps/{id}", h.App.DeleteApp)
			})

			// Content writes are capability-gated per admin page.
			pr.Group(func(cr chi.Router) {
				cr.Use(h.Auth.RequireCapability("portfolio"))
				cr.Post("/portfolio", h.Content.CreatePortfolioItem)
				cr.Put("/portfolio/{id}", h.Content.UpdatePortfolioItem)
				cr.Delete("/portfolio/{id}", h.Content.DeletePortfolioItem)
			})
			pr.Group(func(cr chi.Router) {
				cr.Use(h.Auth.RequireCapability("skills"))
				cr.Post("/skills", h.Content.CreateSkill)
				cr.Put("/skills/{id}", h.Content.UpdateSkill)
				cr.Delete("/skills/{id}", h.Content.DeleteSkill)
			})
			pr.Group(func(cr chi.Router) {
				cr.Use(h.Auth.RequireCapability("experience"))
				cr.Post("/experience", h.Content.CreateExperience)
				cr.Put("/experience/{id}", h.Content.UpdateExperience)
				cr.Delete("/experience/{id}", h.Content.DeleteExperience)
			})
			pr.Group(func(cr chi.Router) {
				cr.Use(h.Auth.RequireCapability("pages"))
				cr.Get("/pages", h.Content.ListPages)
				cr.Post("/pages", h.Content.CreatePage)
				cr.Put("/pages/{id}", h.Content.UpdatePage)
				cr.Delete("/pages/{id}", h.Content.DeletePage)
			})
			pr.Group(func(cr chi.Router) {
				cr.Use(h.Auth.RequireCapability("settings"))
				cr.Put("/settings", h.Settings.UpdateSettings)
			})
		})
	})
}

// serveShell stands in for the frontend bundle. Anything that reaches it
// has already passed the route guard.
func serveShell(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("<!doctype html><html><body></body></html>"))
}

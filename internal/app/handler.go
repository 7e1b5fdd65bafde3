package app

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/sevginserbest/portal/internal/auth"
	"github.com/sevginserbest/portal/internal/transport"
)

type ServiceAPI interface {
	GetAllApps() ([]*App, error)
	GetApp(id string) (*App, error)
	CreateApp(dto CreateAppDTO) (*App, error)
	UpdateApp(id string, dto UpdateAppDTO) (*App, error)
	DeleteApp(id string) error
	SetUserApps(userID string, appIDs []string) error
	GetUserApps(userID string) ([]*App, error)
	GetPortalUserApps(userID string) ([]*App, error)
	ListUsersWithApps() ([]*UserWithApps, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(base *transport.BaseHandler, svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: base,
		Service:     svc,
	}
}

func (h *Handler) ListApps(w http.ResponseWriter, r *http.Request) {
	apps, err := h.Service.GetAllApps()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"apps": apps})
}

func (h *Handler) GetApp(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	app, err := h.Service.GetApp(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, app)
}

func (h *Handler) CreateApp(w http.ResponseWriter, r *http.Request) {
	var dto CreateAppDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	app, err := h.Service.CreateApp(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, app)
}

func (h *Handler) UpdateApp(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto UpdateAppDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	app, err := h.Service.UpdateApp(id, dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, app)
}

func (h *Handler) DeleteApp(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Service.DeleteApp(id); err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// SetUserApps replaces the target user's assignment wholesale.
func (h *Handler) SetUserApps(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var dto SetUserAppsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.SetUserApps(userID, dto.AppIDs); err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) GetUserApps(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	apps, err := h.Service.GetUserApps(userID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"apps": apps})
}

func (h *Handler) ListUsersWithApps(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Service.ListUsersWithApps()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"users": overview})
}

// PortalApps returns the signed-in user's dashboard tiles.
func (h *Handler) PortalApps(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
		return
	}

	apps, err := h.Service.GetPortalUserApps(principal.ID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"apps": apps})
}

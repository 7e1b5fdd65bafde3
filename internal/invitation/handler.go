package invitation

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/sevginserbest/portal/internal"
	"github.com/sevginserbest/portal/internal/auth"
	"github.com/sevginserbest/portal/internal/transport"
)

type ServiceAPI interface {
	Create(principal *auth.Principal, dto CreateInvitationDTO) (*Invitation, error)
	GetByToken(token string) (*Preview, error)
	Accept(token string, dto AcceptInvitationDTO) error
	ListPending(principal *auth.Principal) ([]*Invitation, error)
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

func (h *Handler) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
		return
	}

	var dto CreateInvitationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inv, err := h.Service.Create(principal, dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, inv)
}

func (h *Handler) ListPendingInvitations(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
		return
	}

	invs, err := h.Service.ListPending(principal)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"invitations": invs})
}

// GetInvitation is public: the register page resolves a token into the
// invited email and app set. Every invalid token looks the same.
func (h *Handler) GetInvitation(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	preview, err := h.Service.GetByToken(token)
	if err != nil {
		h.WriteAppError(w, internal.ErrInvalidOrExpired)
		return
	}

	h.WriteJSON(w, http.StatusOK, preview)
}

// AcceptInvitation is public: it redeems the token and creates the account.
func (h *Handler) AcceptInvitation(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var dto AcceptInvitationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.Accept(token, dto); err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]bool{"success": true})
}

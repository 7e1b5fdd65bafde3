package settings

import (
	"encoding/json"
	"net/http"

	"github.com/sevginserbest/portal/internal/transport"
)

type ServiceAPI interface {
	Get() (*SiteSettings, error)
	Update(dto UpdateSettingsDTO) (*SiteSettings, error)
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

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.Service.Get()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, s)
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var dto UpdateSettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.Service.Update(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, s)
}

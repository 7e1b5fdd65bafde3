package content

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/sevginserbest/portal/internal/transport"
)

type ServiceAPI interface {
	ListPortfolio() ([]*PortfolioItem, error)
	CreatePortfolioItem(item *PortfolioItem) (*PortfolioItem, error)
	UpdatePortfolioItem(id string, item *PortfolioItem) (*PortfolioItem, error)
	DeletePortfolioItem(id string) error

	ListSkills() ([]*Skill, error)
	CreateSkill(skill *Skill) (*Skill, error)
	UpdateSkill(id string, skill *Skill) (*Skill, error)
	DeleteSkill(id string) error

	ListExperience() ([]*Experience, error)
	CreateExperience(entry *Experience) (*Experience, error)
	UpdateExperience(id string, entry *Experience) (*Experience, error)
	DeleteExperience(id string) error

	ListPages() ([]*Page, error)
	GetPublishedPage(slug string) (*Page, error)
	CreatePage(page *Page) (*Page, error)
	UpdatePage(id string, page *Page) (*Page, error)
	DeletePage(id string) error
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

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *Handler) ListPortfolio(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListPortfolio()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *Handler) CreatePortfolioItem(w http.ResponseWriter, r *http.Request) {
	var item PortfolioItem
	if !h.decode(w, r, &item) {
		return
	}
	created, err := h.Service.CreatePortfolioItem(&item)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdatePortfolioItem(w http.ResponseWriter, r *http.Request) {
	var item PortfolioItem
	if !h.decode(w, r, &item) {
		return
	}
	updated, err := h.Service.UpdatePortfolioItem(chi.URLParam(r, "id"), &item)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeletePortfolioItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeletePortfolioItem(chi.URLParam(r, "id")); err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) ListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.Service.ListSkills()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"skills": skills})
}

func (h *Handler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var skill Skill
	if !h.decode(w, r, &skill) {
		return
	}
	created, err := h.Service.CreateSkill(&skill)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	var skill Skill
	if !h.decode(w, r, &skill) {
		return
	}
	updated, err := h.Service.UpdateSkill(chi.URLParam(r, "id"), &skill)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteSkill(chi.URLParam(r, "id")); err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) ListExperience(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.ListExperience()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"experience": entries})
}

func (h *Handler) CreateExperience(w http.ResponseWriter, r *http.Request) {
	var entry Experience
	if !h.decode(w, r, &entry) {
		return
	}
	created, err := h.Service.CreateExperience(&entry)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	var entry Experience
	if !h.decode(w, r, &entry) {
		return
	}
	updated, err := h.Service.UpdateExperience(chi.URLParam(r, "id"), &entry)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteExperience(chi.URLParam(r, "id")); err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) ListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.Service.ListPages()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"pages": pages})
}

// GetPage serves the public route; only published pages resolve.
func (h *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.Service.GetPublishedPage(chi.URLParam(r, "slug"))
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) CreatePage(w http.ResponseWriter, r *http.Request) {
	var page Page
	if !h.decode(w, r, &page) {
		return
	}
	created, err := h.Service.CreatePage(&page)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	var page Page
	if !h.decode(w, r, &page) {
		return
	}
	updated, err := h.Service.UpdatePage(chi.URLParam(r, "id"), &page)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeletePage(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeletePage(chi.URLParam(r, "id")); err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

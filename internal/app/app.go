package app

import (
	"time"

	appDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/app"
)

const (
	TypeInternal = "internal"
	TypeExternal = "external"
)

// App is a tile on the portal dashboard. Internal apps route inside the
// portal shell; external apps carry a target URL.
type App struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	Color       *string   `json:"color"`
	Type        string    `json:"type"`
	URL         *string   `json:"url"`
	IsPublished bool      `json:"isPublished"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (a *App) IsExternal() bool {
	return a.Type == TypeExternal
}

// UserWithApps is the admin overview row: one user and the apps assigned
// to them.
type UserWithApps struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   *string `json:"name"`
	Apps   []*App  `json:"apps"`
}

func ToDataModel(a *App) *appDatamodel.App {
	return &appDatamodel.App{
		ID:          a.ID,
		Name:        a.Name,
		Slug:        a.Slug,
		Description: a.Description,
		Icon:        a.Icon,
		Color:       a.Color,
		Type:        a.Type,
		URL:         a.URL,
		IsPublished: a.IsPublished,
		Order:       a.Order,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func FromDataModel(a *appDatamodel.App) *App {
	return &App{
		ID:          a.ID,
		Name:        a.Name,
		Slug:        a.Slug,
		Description: a.Description,
		Icon:        a.Icon,
		Color:       a.Color,
		Type:        a.Type,
		URL:         a.URL,
		IsPublished: a.IsPublished,
		Order:       a.Order,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

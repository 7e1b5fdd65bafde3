package app

import (
	"github.com/sevginserbest/portal/internal"
	"github.com/sevginserbest/portal/internal/core/common/validation"
)

// CreateAppDTO registers a new portal app. Slug must be unique; external
// apps must carry a URL.
type CreateAppDTO struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	Type        string  `json:"type"`
	URL         *string `json:"url"`
	IsPublished bool    `json:"isPublished"`
	Order       int     `json:"order"`
}

func (d *CreateAppDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required()
	v.Field("slug", d.Slug).Required()
	v.Field("type", d.Type).Required().OneOf(TypeInternal, TypeExternal)
	return v.Validate()
}

// UpdateAppDTO patches an existing app. Nil fields are left untouched.
type UpdateAppDTO struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	Type        *string `json:"type"`
	URL         *string `json:"url"`
	IsPublished *bool   `json:"isPublished"`
	Order       *int    `json:"order"`
}

func (d *UpdateAppDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	if d.Name != nil {
		v.Field("name", *d.Name).Required()
	}
	if d.Slug != nil {
		v.Field("slug", *d.Slug).Required()
	}
	if d.Type != nil {
		v.Field("type", *d.Type).OneOf(TypeInternal, TypeExternal)
	}
	return v.Validate()
}

// SetUserAppsDTO replaces a user's full app assignment.
type SetUserAppsDTO struct {
	AppIDs []string `json:"app_ids"`
}

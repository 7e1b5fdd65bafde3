package user

import (
	"github.com/sevginserbest/portal/internal"
	"github.com/sevginserbest/portal/internal/auth"
	"github.com/sevginserbest/portal/internal/core/common/validation"
)

// CreateUserDTO is the admin payload for creating an account directly,
// bypassing the invitation flow.
type CreateUserDTO struct {
	Email       string    `json:"email"`
	Name        *string   `json:"name"`
	Password    string    `json:"password"`
	Role        auth.Role `json:"role"`
	Permissions []string  `json:"permissions"`
}

func (d *CreateUserDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("email", d.Email).Required().Email()
	v.Field("password", d.Password).Required().MinLength(8)
	v.Field("role", string(d.Role)).Required().OneOf(
		string(auth.RoleSuperAdmin), string(auth.RoleEditor), string(auth.RoleViewer))
	return v.Validate()
}

// UpdateUserDTO patches an account. A nil password leaves the hash alone.
type UpdateUserDTO struct {
	Email       *string    `json:"email"`
	Name        *string    `json:"name"`
	Password    *string    `json:"password"`
	Role        *auth.Role `json:"role"`
	Permissions []string   `json:"permissions"`
}

func (d *UpdateUserDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	if d.Email != nil {
		v.Field("email", *d.Email).Required().Email()
	}
	if d.Password != nil {
		v.Field("password", *d.Password).MinLength(8)
	}
	if d.Role != nil {
		v.Field("role", string(*d.Role)).OneOf(
			string(auth.RoleSuperAdmin), string(auth.RoleEditor), string(auth.RoleViewer))
	}
	return v.Validate()
}

// UpdateProfileDTO is the self-service edit on /users/me. Changing the
// password requires the current one.
type UpdateProfileDTO struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	CurrentPassword *string `json:"currentPassword"`
	NewPassword     *string `json:"newPassword"`
}

func (d *UpdateProfileDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	if d.Email != nil {
		v.Field("email", *d.Email).Required().Email()
	}
	if d.NewPassword != nil {
		v.Field("newPassword", *d.NewPassword).MinLength(8)
	}
	return v.Validate()
}

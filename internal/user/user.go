package user

import (
	"time"

	"github.com/sevginserbest/portal/internal/auth"
	userDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/user"
)

// User is the admin-facing view of an account. The password hash never
// leaves the package.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        *string   `json:"name"`
	Password    string    `json:"-"`
	Role        auth.Role `json:"role"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Password:    u.Password,
		Role:        auth.Role(u.Role),
		Permissions: auth.ParsePermissions(u.Permissions),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func ToDataModel(u *User) *userDatamodel.User {
	return &userDatamodel.User{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Password:    u.Password,
		Role:        string(u.Role),
		Permissions: auth.SerializePermissions(u.Permissions),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

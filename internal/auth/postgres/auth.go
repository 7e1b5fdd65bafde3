package auth

import (
	"errors"

	"github.com/sevginserbest/portal/internal/auth"
	userDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/user"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByEmail(email string) (*auth.Account, error) {
	var dm userDatamodel.User
	if err := r.db.Where("email = ?", email).First(&dm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}
	return toAccount(&dm), nil
}

func (r *Repository) GetByID(id string) (*auth.Account, error) {
	var dm userDatamodel.User
	if err := r.db.Where("id = ?", id).First(&dm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, err
	}
	return toAccount(&dm), nil
}

func toAccount(dm *userDatamodel.User) *auth.Account {
	return &auth.Account{
		ID:          dm.ID,
		Email:       dm.Email,
		Name:        dm.Name,
		Password:    dm.Password,
		Role:        dm.Role,
		Permissions: dm.Permissions,
	}
}

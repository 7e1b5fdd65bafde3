package postgres

import (
	"errors"

	"github.com/sevginserbest/portal/internal"
	appDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/app"
	userDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/user"
	"github.com/sevginserbest/portal/internal/user"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.RepositoryAPI {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetAll() ([]*userDatamodel.User, error) {
	var users []*userDatamodel.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepository) GetByID(id string) (*userDatamodel.User, error) {
	var row userDatamodel.User
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *UserRepository) GetByEmail(email string) (*userDatamodel.User, error) {
	var row userDatamodel.User
	err := r.db.Where("email = ?", email).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *UserRepository) Create(row *userDatamodel.User) error {
	err := r.db.Create(row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return internal.ErrUserAlreadyExists
	}
	return err
}

func (r *UserRepository) Update(row *userDatamodel.User) error {
	err := r.db.Save(row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return internal.ErrEmailTaken
	}
	return err
}

// Delete removes the user and their app grants in one transaction.
func (r *UserRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&appDatamodel.UserApp{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&userDatamodel.User{}).Error
	})
}

package postgres

import (
	"errors"

	"github.com/sevginserbest/portal/internal"
	"github.com/sevginserbest/portal/internal/app"
	appDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/app"
	userDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/user"
	"gorm.io/gorm"
)

type AppRepository struct {
	db *gorm.DB
}

func NewAppRepository(db *gorm.DB) app.RepositoryAPI {
	return &AppRepository{db: db}
}

func (r *AppRepository) GetAll() ([]*appDatamodel.App, error) {
	var apps []*appDatamodel.App
	err := r.db.Order("display_order ASC, name ASC").Find(&apps).Error
	return apps, err
}

func (r *AppRepository) GetByID(id string) (*appDatamodel.App, error) {
	var row appDatamodel.App
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrAppNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *AppRepository) GetBySlug(slug string) (*appDatamodel.App, error) {
	var row appDatamodel.App
	err := r.db.Where("slug = ?", slug).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *AppRepository) Create(row *appDatamodel.App) error {
	err := r.db.Create(row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return internal.ErrSlugTaken
	}
	return err
}

func (r *AppRepository) Update(row *appDatamodel.App) error {
	err := r.db.Save(row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return internal.ErrSlugTaken
	}
	return err
}

func (r *AppRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("app_id = ?", id).Delete(&appDatamodel.UserApp{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&appDatamodel.App{}).Error
	})
}

// ReplaceUserApps swaps a user's assignment atomically. Readers either see
// the old set or the new set, never a mix.
func (r *AppRepository) ReplaceUserApps(userID string, appIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&appDatamodel.UserApp{}).Error; err != nil {
			return err
		}
		for _, appID := range appIDs {
			grant := &appDatamodel.UserApp{UserID: userID, AppID: appID}
			if err := tx.Create(grant).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *AppRepository) GetUserApps(userID string) ([]*appDatamodel.App, error) {
	var apps []*appDatamodel.App
	err := r.db.
		Joins("JOIN user_apps ON user_apps.app_id = apps.id").
		Where("user_apps.user_id = ?", userID).
		Order("apps.display_order ASC, apps.name ASC").
		Find(&apps).Error
	return apps, err
}

func (r *AppRepository) GetUserAppIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&appDatamodel.UserApp{}).
		Where("user_id = ?", userID).
		Pluck("app_id", &ids).Error
	return ids, err
}

func (r *AppRepository) GetPortalUserApps(userID string) ([]*appDatamodel.App, error) {
	var apps []*appDatamodel.App
	err := r.db.
		Joins("JOIN user_apps ON user_apps.app_id = apps.id").
		Where("user_apps.user_id = ? AND apps.is_published = ?", userID, true).
		Order("apps.display_order ASC, apps.name ASC").
		Find(&apps).Error
	return apps, err
}

func (r *AppRepository) ListUsersWithApps() ([]*app.UserWithApps, error) {
	var users []*userDatamodel.User
	if err := r.db.Order("email ASC").Find(&users).Error; err != nil {
		return nil, err
	}

	overview := make([]*app.UserWithApps, 0, len(users))
	for _, u := range users {
		rows, err := r.GetUserApps(u.ID)
		if err != nil {
			return nil, err
		}
		apps := make([]*app.App, 0, len(rows))
		for _, row := range rows {
			apps = append(apps, app.FromDataModel(row))
		}
		overview = append(overview, &app.UserWithApps{
			UserID: u.ID,
			Email:  u.Email,
			Name:   u.Name,
			Apps:   apps,
		})
	}
	return overview, nil
}

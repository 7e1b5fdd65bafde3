package postgres

import (
	"errors"

	settingsDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/settings"
	"github.com/sevginserbest/portal/internal/settings"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) settings.RepositoryAPI {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) GetOrCreate() (*settingsDatamodel.SiteSettings, error) {
	var row settingsDatamodel.SiteSettings
	err := r.db.Where("id = ?", settingsDatamodel.SingletonID).First(&row).Error
	if err == nil {
		return &row, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	row = settingsDatamodel.SiteSettings{ID: settingsDatamodel.SingletonID}
	// Two first reads can race; the conflict clause makes the loser a no-op.
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *SettingsRepository) Upsert(row *settingsDatamodel.SiteSettings) error {
	row.ID = settingsDatamodel.SingletonID
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(row).Error
}

package app

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type App struct {
	ID          string    `gorm:"primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Slug        string    `gorm:"column:slug;uniqueIndex;not null"`
	Description *string   `gorm:"column:description"`
	Icon        *string   `gorm:"column:icon"`
	Color       *string   `gorm:"column:color"`
	Type        string    `gorm:"column:type;not null;default:internal"`
	URL         *string   `gorm:"column:url"`
	IsPublished bool      `gorm:"column:is_published;not null;default:false"`
	Order       int       `gorm:"column:display_order;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (App) TableName() string {
	return "apps"
}

func (a *App) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// UserApp grants one user access to one portal app. Uniqueness is on the
// (user_id, app_id) pair; rows are only ever written in bulk replacements.
type UserApp struct {
	ID        string    `gorm:"primaryKey"`
	UserID    string    `gorm:"column:user_id;not null;uniqueIndex:idx_user_apps_user_app"`
	AppID     string    `gorm:"column:app_id;not null;uniqueIndex:idx_user_apps_user_app"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (UserApp) TableName() string {
	return "user_apps"
}

func (ua *UserApp) BeforeCreate(tx *gorm.DB) error {
	if ua.ID == "" {
		ua.ID = uuid.NewString()
	}
	return nil
}

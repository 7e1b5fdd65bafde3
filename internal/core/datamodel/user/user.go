package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID          string    `gorm:"primaryKey"`
	Email       string    `gorm:"column:email;uniqueIndex;not null"`
	Name        *string   `gorm:"column:name"`
	Password    string    `gorm:"column:password;not null"`
	Role        string    `gorm:"column:role;not null;default:VIEWER"`
	Permissions string    `gorm:"column:permissions;not null;default:[]"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

package invitation

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Invitation struct {
	ID          string     `gorm:"primaryKey"`
	Email       string     `gorm:"column:email;index;not null"`
	Token       string     `gorm:"column:token;uniqueIndex;not null"`
	AppIDs      string     `gorm:"column:app_ids;not null;default:[]"`
	ExpiresAt   time.Time  `gorm:"column:expires_at;not null"`
	UsedAt      *time.Time `gorm:"column:used_at"`
	InvitedByID string     `gorm:"column:invited_by_id;not null"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
}

func (Invitation) TableName() string {
	return "invitations"
}

func (i *Invitation) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

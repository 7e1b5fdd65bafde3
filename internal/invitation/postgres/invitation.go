package postgres

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/sevginserbest/portal/internal"
	appDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/app"
	invitationDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/invitation"
	userDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/user"
	"github.com/sevginserbest/portal/internal/invitation"
	"gorm.io/gorm"
)

// app id sets are stored as JSON text; these are the only serialization
// points for that column.
func encodeAppIDs(ids []string) string {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeAppIDs(raw string) []string {
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil || ids == nil {
		return []string{}
	}
	return ids
}

type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) invitation.RepositoryAPI {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) Create(inv *invitation.Invitation) error {
	dm := toDataModel(inv)
	if err := r.db.Create(dm).Error; err != nil {
		return err
	}
	inv.ID = dm.ID
	return nil
}

func (r *InvitationRepository) GetByToken(token string) (*invitation.Invitation, error) {
	var dm invitationDatamodel.Invitation
	err := r.db.Where("token = ?", token).First(&dm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return fromDataModel(&dm), nil
}

// GetPendingByEmail returns the most recent unused invitation for the email,
// expired or not; the service decides whether it still blocks a new one.
func (r *InvitationRepository) GetPendingByEmail(email string) (*invitation.Invitation, error) {
	var dm invitationDatamodel.Invitation
	err := r.db.Where("email = ? AND used_at IS NULL", email).
		Order("created_at DESC").
		First(&dm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return fromDataModel(&dm), nil
}

func (r *InvitationRepository) ListPending(now time.Time) ([]*invitation.Invitation, error) {
	var dms []invitationDatamodel.Invitation
	err := r.db.Where("used_at IS NULL AND expires_at > ?", now).
		Order("created_at DESC").
		Find(&dms).Error
	if err != nil {
		return nil, err
	}

	invs := make([]*invitation.Invitation, len(dms))
	for i := range dms {
		invs[i] = fromDataModel(&dms[i])
	}
	return invs, nil
}

func (r *InvitationRepository) UserExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&userDatamodel.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Accept commits the redemption as one transaction. The conditional used_at
// update runs first: whichever concurrent acceptance loses the race sees
// zero affected rows and rolls back with ALREADY_USED.
func (r *InvitationRepository) Accept(invitationID string, user *invitation.AcceptedUser, appIDs []string, usedAt time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&invitationDatamodel.Invitation{}).
			Where("id = ? AND used_at IS NULL", invitationID).
			Update("used_at", usedAt)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return internal.ErrInvitationUsed
		}

		name := user.Name
		userRow := &userDatamodel.User{
			Email:       user.Email,
			Name:        &name,
			Password:    user.PasswordHash,
			Role:        user.Role,
			Permissions: user.Permissions,
		}
		if err := tx.Create(userRow).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return internal.ErrAccountExists
			}
			return err
		}

		for _, appID := range appIDs {
			grant := &appDatamodel.UserApp{
				UserID: userRow.ID,
				AppID:  appID,
			}
			if err := tx.Create(grant).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func toDataModel(inv *invitation.Invitation) *invitationDatamodel.Invitation {
	return &invitationDatamodel.Invitation{
		ID:          inv.ID,
		Email:       inv.Email,
		Token:       inv.Token,
		AppIDs:      encodeAppIDs(inv.AppIDs),
		ExpiresAt:   inv.ExpiresAt,
		UsedAt:      inv.UsedAt,
		InvitedByID: inv.InvitedByID,
		CreatedAt:   inv.CreatedAt,
	}
}

func fromDataModel(dm *invitationDatamodel.Invitation) *invitation.Invitation {
	return &invitation.Invitation{
		ID:          dm.ID,
		Email:       dm.Email,
		Token:       dm.Token,
		AppIDs:      decodeAppIDs(dm.AppIDs),
		ExpiresAt:   dm.ExpiresAt,
		UsedAt:      dm.UsedAt,
		InvitedByID: dm.InvitedByID,
		CreatedAt:   dm.CreatedAt,
	}
}

package invitation

import (
	"time"
)

// Invitation is a pending grant of portal access for one email address. It
// is terminal once used or expired; rows are retained either way.
type Invitation struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Token       string     `json:"-"`
	AppIDs      []string   `json:"app_ids,omitempty"`
	ExpiresAt   time.Time  `json:"expires_at"`
	UsedAt      *time.Time `json:"used_at,omitempty"`
	InvitedByID string     `json:"invited_by_id"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (i *Invitation) Expired(now time.Time) bool {
	return i.ExpiresAt.Before(now)
}

func (i *Invitation) Used() bool {
	return i.UsedAt != nil
}

// AcceptedUser is the user row created when an invitation is redeemed.
type AcceptedUser struct {
	Email        string
	Name         string
	PasswordHash string
	Role         string
	Permissions  string
}

type RepositoryAPI interface {
	Create(inv *Invitation) error
	GetByToken(token string) (*Invitation, error)
	GetPendingByEmail(email string) (*Invitation, error)
	ListPending(now time.Time) ([]*Invitation, error)
	UserExistsByEmail(email string) (bool, error)
	// Accept atomically creates the user, its app grants, and marks the
	// invitation used. The used_at write is conditional on the row still
	// being unused; a second concurrent acceptance rolls back.
	Accept(invitationID string, user *AcceptedUser, appIDs []string, usedAt time.Time) error
}

// Preview is the public shape returned for a valid token before acceptance.
type Preview struct {
	Email  string   `json:"email"`
	AppIDs []string `json:"app_ids"`
}

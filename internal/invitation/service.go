package invitation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sevginserbest/portal/internal"
	"github.com/sevginserbest/portal/internal/auth"
	"github.com/sevginserbest/portal/internal/email"
)

const minPasswordLength = 8

type Service struct {
	repo       RepositoryAPI
	sender     email.Sender
	logger     *slog.Logger
	baseURL    string
	ttl        time.Duration
	bcryptCost int
	now        func() time.Time
}

func NewService(repo RepositoryAPI, sender email.Sender, logger *slog.Logger, baseURL string, ttl time.Duration, bcryptCost int) *Service {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Service{
		repo:       repo,
		sender:     sender,
		logger:     logger,
		baseURL:    strings.TrimRight(baseURL, "/"),
		ttl:        ttl,
		bcryptCost: bcryptCost,
		now:        time.Now,
	}
}

// Create issues a new invitation and emails the registration link. Only a
// super admin may invite. The invitation row is written before the email is
// dispatched; when dispatch fails the caller sees the failure and the row
// stays pending until it expires.
func (s *Service) Create(principal *auth.Principal, dto CreateInvitationDTO) (*Invitation, error) {
	if principal == nil || !auth.IsSuperAdmin(principal.Role) {
		return nil, internal.ErrUnauthorized
	}

	normalizedEmail := auth.NormalizeEmail(dto.Email)
	if normalizedEmail == "" {
		return nil, internal.ErrEmailRequired
	}

	exists, err := s.repo.UserExistsByEmail(normalizedEmail)
	if err != nil {
		return nil, internal.NewInternalError("failed to check existing user", err)
	}
	if exists {
		return nil, internal.ErrUserAlreadyExists
	}

	now := s.now()
	pending, err := s.repo.GetPendingByEmail(normalizedEmail)
	if err != nil {
		return nil, internal.NewInternalError("failed to check pending invitations", err)
	}
	if pending != nil && !pending.Expired(now) {
		return nil, internal.ErrInvitationPending
	}

	token, err := auth.GenerateRandomToken()
	if err != nil {
		return nil, internal.NewInternalError("failed to generate invitation token", err)
	}

	appIDs := dto.AppIDs
	if appIDs == nil {
		appIDs = []string{}
	}

	inv := &Invitation{
		Email:       normalizedEmail,
		Token:       token,
		AppIDs:      appIDs,
		ExpiresAt:   now.Add(s.ttl),
		InvitedByID: principal.ID,
		CreatedAt:   now,
	}

	if err := s.repo.Create(inv); err != nil {
		return nil, internal.NewInternalError("failed to create invitation", err)
	}

	if err := s.sendInvitationEmail(inv); err != nil {
		s.logger.Error("invitation email dispatch failed",
			"email", inv.Email,
			"invitation_id", inv.ID,
			"error", err)
		return nil, internal.NewExternalError("Failed to send invitation email", internal.ErrCodeEmailDispatchFailed, err)
	}

	s.logger.Info("invitation created",
		"email", inv.Email,
		"invited_by", principal.ID,
		"expires_at", inv.ExpiresAt)
	return inv, nil
}

func (s *Service) sendInvitationEmail(inv *Invitation) error {
	registerURL := fmt.Sprintf("%s%s?token=%s", s.baseURL, auth.PortalRegisterPath, inv.Token)
	appCount := len(inv.AppIDs)
	plural := ""
	if appCount != 1 {
		plural = "s"
	}

	html := fmt.Sprintf(`
		<p>You've been invited to access applications at sevginserbest.com.</p>
		<p>You will have access to %d application%s after you complete registration.</p>
		<p><a href="%s" style="display:inline-block; margin-top:12px; padding:10px 20px; background:#0D9488; color:white; text-decoration:none; border-radius:8px;">Accept invitation &amp; set password</a></p>
		<p style="margin-top:16px; color:#666; font-size:14px;">This link expires in %d days. If you didn't expect this email, you can ignore it.</p>
	`, appCount, plural, registerURL, int(s.ttl.Hours()/24))

	ctx, cancel := internal.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return s.sender.Send(ctx, email.Message{
		To:      inv.Email,
		Subject: "You're invited to Sevgin Serbest",
		HTML:    html,
	})
}

// GetByToken is the public lookup backing the register page. Every invalid
// state (blank, unknown, used, expired) collapses into the same error so a
// probing caller learns nothing.
func (s *Service) GetByToken(token string) (*Preview, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, internal.ErrInvalidOrExpired
	}

	inv, err := s.repo.GetByToken(token)
	if err != nil || inv == nil {
		return nil, internal.ErrInvalidOrExpired
	}
	if inv.Used() || inv.Expired(s.now()) {
		return nil, internal.ErrInvalidOrExpired
	}

	return &Preview{Email: inv.Email, AppIDs: inv.AppIDs}, nil
}

// Accept redeems an invitation. Everything is re-validated here regardless
// of any earlier GetByToken; the conditional used_at update inside the
// repository transaction guarantees a token is redeemed at most once.
func (s *Service) Accept(token string, dto AcceptInvitationDTO) error {
	inv, err := s.repo.GetByToken(strings.TrimSpace(token))
	if err != nil || inv == nil {
		return internal.ErrInvalidOrExpired
	}
	if inv.Used() {
		return internal.ErrInvitationUsed
	}

	now := s.now()
	if inv.Expired(now) {
		return internal.ErrInvitationExpired
	}

	exists, err := s.repo.UserExistsByEmail(inv.Email)
	if err != nil {
		return internal.NewInternalError("failed to check existing user", err)
	}
	if exists {
		return internal.ErrAccountExists
	}

	password := strings.TrimSpace(dto.Password)
	if len(password) < minPasswordLength {
		return internal.ErrPasswordTooShort
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return internal.NewInternalError("failed to hash password", err)
	}

	name := strings.TrimSpace(dto.Name)
	if name == "" {
		name = inv.Email
	}

	user := &AcceptedUser{
		Email:        inv.Email,
		Name:         name,
		PasswordHash: hash,
		Role:         string(auth.RoleViewer),
		Permissions:  auth.SerializePermissions(nil),
	}

	if err := s.repo.Accept(inv.ID, user, inv.AppIDs, now); err != nil {
		if appErr, ok := internal.IsAppError(err); ok {
			return appErr
		}
		return internal.NewInternalError("failed to accept invitation", err)
	}

	s.logger.Info("invitation accepted", "email", inv.Email, "invitation_id", inv.ID)
	return nil
}

// ListPending returns unused, unexpired invitations for the admin screen.
func (s *Service) ListPending(principal *auth.Principal) ([]*Invitation, error) {
	if principal == nil || !auth.IsSuperAdmin(principal.Role) {
		return nil, internal.ErrUnauthorized
	}

	invs, err := s.repo.ListPending(s.now())
	if err != nil {
		return nil, internal.NewInternalError("failed to list invitations", err)
	}
	return invs, nil
}

package app

import (
	"log/slog"
	"strings"

	"github.com/sevginserbest/portal/internal"
	appDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/app"
)

type RepositoryAPI interface {
	GetAll() ([]*appDatamodel.App, error)
	GetByID(id string) (*appDatamodel.App, error)
	GetBySlug(slug string) (*appDatamodel.App, error)
	Create(app *appDatamodel.App) error
	Update(app *appDatamodel.App) error
	Delete(id string) error

	ReplaceUserApps(userID string, appIDs []string) error
	GetUserApps(userID string) ([]*appDatamodel.App, error)
	GetUserAppIDs(userID string) ([]string, error)
	GetPortalUserApps(userID string) ([]*appDatamodel.App, error)
	ListUsersWithApps() ([]*UserWithApps, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAllApps() ([]*App, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list apps", "error", err)
		return nil, internal.NewInternalError("failed to list apps", err)
	}

	apps := make([]*App, 0, len(rows))
	for _, row := range rows {
		apps = append(apps, FromDataModel(row))
	}
	return apps, nil
}

func (s *Service) GetApp(id string) (*App, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return FromDataModel(row), nil
}

func (s *Service) CreateApp(dto CreateAppDTO) (*App, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	slug := strings.TrimSpace(strings.ToLower(dto.Slug))
	if err := s.checkSlugFree(slug, ""); err != nil {
		return nil, err
	}
	if dto.Type == TypeExternal && emptyURL(dto.URL) {
		return nil, internal.ErrExternalURLEmpty
	}

	row := &appDatamodel.App{
		Name:        dto.Name,
		Slug:        slug,
		Description: dto.Description,
		Icon:        dto.Icon,
		Color:       dto.Color,
		Type:        dto.Type,
		URL:         dto.URL,
		IsPublished: dto.IsPublished,
		Order:       dto.Order,
	}
	if err := s.repo.Create(row); err != nil {
		s.logger.Error("failed to create app", "slug", slug, "error", err)
		return nil, err
	}

	s.logger.Info("app created", "app_id", row.ID, "slug", row.Slug)
	return FromDataModel(row), nil
}

func (s *Service) UpdateApp(id string, dto UpdateAppDTO) (*App, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Slug != nil {
		slug := strings.TrimSpace(strings.ToLower(*dto.Slug))
		if slug != row.Slug {
			if err := s.checkSlugFree(slug, id); err != nil {
				return nil, err
			}
		}
		row.Slug = slug
	}
	if dto.Name != nil {
		row.Name = *dto.Name
	}
	if dto.Description != nil {
		row.Description = dto.Description
	}
	if dto.Icon != nil {
		row.Icon = dto.Icon
	}
	if dto.Color != nil {
		row.Color = dto.Color
	}
	if dto.Type != nil {
		row.Type = *dto.Type
	}
	if dto.URL != nil {
		row.URL = dto.URL
	}
	if dto.IsPublished != nil {
		row.IsPublished = *dto.IsPublished
	}
	if dto.Order != nil {
		row.Order = *dto.Order
	}

	if row.Type == TypeExternal && emptyURL(row.URL) {
		return nil, internal.ErrExternalURLEmpty
	}

	if err := s.repo.Update(row); err != nil {
		s.logger.Error("failed to update app", "app_id", id, "error", err)
		return nil, err
	}
	return FromDataModel(row), nil
}

func (s *Service) DeleteApp(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete app", "app_id", id, "error", err)
		return err
	}
	s.logger.Info("app deleted", "app_id", id)
	return nil
}

// SetUserApps replaces the user's whole assignment in one transaction.
// There is no partial grant or revoke; callers always send the full set.
func (s *Service) SetUserApps(userID string, appIDs []string) error {
	if err := s.repo.ReplaceUserApps(userID, appIDs); err != nil {
		s.logger.Error("failed to replace user apps", "user_id", userID, "error", err)
		return err
	}
	s.logger.Info("user apps replaced", "user_id", userID, "count", len(appIDs))
	return nil
}

func (s *Service) GetUserApps(userID string) ([]*App, error) {
	rows, err := s.repo.GetUserApps(userID)
	if err != nil {
		return nil, internal.NewInternalError("failed to load user apps", err)
	}
	apps := make([]*App, 0, len(rows))
	for _, row := range rows {
		apps = append(apps, FromDataModel(row))
	}
	return apps, nil
}

func (s *Service) GetUserAppIDs(userID string) ([]string, error) {
	ids, err := s.repo.GetUserAppIDs(userID)
	if err != nil {
		return nil, internal.NewInternalError("failed to load user app ids", err)
	}
	return ids, nil
}

// GetPortalUserApps is what the portal dashboard renders: only published
// apps, in display order.
func (s *Service) GetPortalUserApps(userID string) ([]*App, error) {
	rows, err := s.repo.GetPortalUserApps(userID)
	if err != nil {
		return nil, internal.NewInternalError("failed to load portal apps", err)
	}
	apps := make([]*App, 0, len(rows))
	for _, row := range rows {
		apps = append(apps, FromDataModel(row))
	}
	return apps, nil
}

func (s *Service) ListUsersWithApps() ([]*UserWithApps, error) {
	overview, err := s.repo.ListUsersWithApps()
	if err != nil {
		return nil, internal.NewInternalError("failed to load user app overview", err)
	}
	return overview, nil
}

func (s *Service) checkSlugFree(slug, selfID string) error {
	existing, err := s.repo.GetBySlug(slug)
	if err != nil {
		return internal.NewInternalError("failed to check slug", err)
	}
	if existing != nil && existing.ID != selfID {
		return internal.ErrSlugTaken
	}
	return nil
}

func emptyURL(u *string) bool {
	return u == nil || strings.TrimSpace(*u) == ""
}

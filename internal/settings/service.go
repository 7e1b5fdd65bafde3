package settings

import (
	"log/slog"

	"github.com/sevginserbest/portal/internal"
	settingsDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/settings"
)

type RepositoryAPI interface {
	GetOrCreate() (*settingsDatamodel.SiteSettings, error)
	Upsert(row *settingsDatamodel.SiteSettings) error
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

// Get materializes the singleton on first read so the public site never
// sees a missing-settings state.
func (s *Service) Get() (*SiteSettings, error) {
	row, err := s.repo.GetOrCreate()
	if err != nil {
		s.logger.Error("failed to load site settings", "error", err)
		return nil, internal.NewInternalError("failed to load site settings", err)
	}
	return FromDataModel(row), nil
}

func (s *Service) Update(dto UpdateSettingsDTO) (*SiteSettings, error) {
	row := &settingsDatamodel.SiteSettings{
		ID:           settingsDatamodel.SingletonID,
		SiteName:     dto.SiteName,
		Tagline:      dto.Tagline,
		AboutText:    dto.AboutText,
		ContactEmail: dto.ContactEmail,
		GithubURL:    dto.GithubURL,
		LinkedinURL:  dto.LinkedinURL,
	}
	if err := s.repo.Upsert(row); err != nil {
		s.logger.Error("failed to update site settings", "error", err)
		return nil, internal.NewInternalError("failed to update site settings", err)
	}
	s.logger.Info("site settings updated")
	return FromDataModel(row), nil
}

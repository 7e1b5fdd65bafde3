package content

import (
	"log/slog"
	"strings"

	"github.com/sevginserbest/portal/internal"
	contentDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/content"
)

// CrudRepository is the storage contract shared by all four content
// entities. Implementations order lists the way the public site renders.
type CrudRepository[M any] interface {
	List() ([]*M, error)
	GetByID(id string) (*M, error)
	Create(row *M) error
	Update(row *M) error
	Delete(id string) error
}

type PageRepositoryAPI interface {
	CrudRepository[contentDatamodel.Page]
	GetBySlug(slug string) (*contentDatamodel.Page, error)
}

type Service struct {
	portfolio  CrudRepository[contentDatamodel.PortfolioItem]
	skills     CrudRepository[contentDatamodel.Skill]
	experience CrudRepository[contentDatamodel.Experience]
	pages      PageRepositoryAPI
	logger     *slog.Logger
}

func NewService(
	portfolio CrudRepository[contentDatamodel.PortfolioItem],
	skills CrudRepository[contentDatamodel.Skill],
	experience CrudRepository[contentDatamodel.Experience],
	pages PageRepositoryAPI,
	logger *slog.Logger,
) *Service {
	return &Service{
		portfolio:  portfolio,
		skills:     skills,
		experience: experience,
		pages:      pages,
		logger:     logger,
	}
}

func (s *Service) ListPortfolio() ([]*PortfolioItem, error) {
	rows, err := s.portfolio.List()
	if err != nil {
		return nil, internal.NewInternalError("failed to list portfolio items", err)
	}
	items := make([]*PortfolioItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, PortfolioItemFromDataModel(row))
	}
	return items, nil
}

func (s *Service) CreatePortfolioItem(item *PortfolioItem) (*PortfolioItem, error) {
	if strings.TrimSpace(item.Title) == "" {
		return nil, internal.NewValidationError("title is required", internal.ErrCodeValidationFailed)
	}
	row := PortfolioItemToDataModel(item)
	row.ID = ""
	if err := s.portfolio.Create(row); err != nil {
		s.logger.Error("failed to create portfolio item", "error", err)
		return nil, internal.NewInternalError("failed to create portfolio item", err)
	}
	return PortfolioItemFromDataModel(row), nil
}

func (s *Service) UpdatePortfolioItem(id string, item *PortfolioItem) (*PortfolioItem, error) {
	row, err := s.portfolio.GetByID(id)
	if err != nil {
		return nil, err
	}
	row.Title = item.Title
	row.Description = item.Description
	row.ImageURL = item.ImageURL
	row.ProjectURL = item.ProjectURL
	row.Tags = encodeTags(item.Tags)
	row.Order = item.Order
	if err := s.portfolio.Update(row); err != nil {
		return nil, internal.NewInternalError("failed to update portfolio item", err)
	}
	return PortfolioItemFromDataModel(row), nil
}

func (s *Service) DeletePortfolioItem(id string) error {
	if _, err := s.portfolio.GetByID(id); err != nil {
		return err
	}
	return s.portfolio.Delete(id)
}

func (s *Service) ListSkills() ([]*Skill, error) {
	rows, err := s.skills.List()
	if err != nil {
		return nil, internal.NewInternalError("failed to list skills", err)
	}
	skills := make([]*Skill, 0, len(rows))
	for _, row := range rows {
		skills = append(skills, SkillFromDataModel(row))
	}
	return skills, nil
}

func (s *Service) CreateSkill(skill *Skill) (*Skill, error) {
	if strings.TrimSpace(skill.Name) == "" {
		return nil, internal.NewValidationError("name is required", internal.ErrCodeValidationFailed)
	}
	row := SkillToDataModel(skill)
	row.ID = ""
	if err := s.skills.Create(row); err != nil {
		s.logger.Error("failed to create skill", "error", err)
		return nil, internal.NewInternalError("failed to create skill", err)
	}
	return SkillFromDataModel(row), nil
}

func (s *Service) UpdateSkill(id string, skill *Skill) (*Skill, error) {
	row, err := s.skills.GetByID(id)
	if err != nil {
		return nil, err
	}
	row.Name = skill.Name
	row.Category = skill.Category
	row.Level = skill.Level
	row.Order = skill.Order
	if err := s.skills.Update(row); err != nil {
		return nil, internal.NewInternalError("failed to update skill", err)
	}
	return SkillFromDataModel(row), nil
}

func (s *Service) DeleteSkill(id string) error {
	if _, err := s.skills.GetByID(id); err != nil {
		return err
	}
	return s.skills.Delete(id)
}

func (s *Service) ListExperience() ([]*Experience, error) {
	rows, err := s.experience.List()
	if err != nil {
		return nil, internal.NewInternalError("failed to list experience", err)
	}
	entries := make([]*Experience, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, ExperienceFromDataModel(row))
	}
	return entries, nil
}

func (s *Service) CreateExperience(entry *Experience) (*Experience, error) {
	if strings.TrimSpace(entry.Company) == "" || strings.TrimSpace(entry.Title) == "" {
		return nil, internal.NewValidationError("company and title are required", internal.ErrCodeValidationFailed)
	}
	row := ExperienceToDataModel(entry)
	row.ID = ""
	if err := s.experience.Create(row); err != nil {
		s.logger.Error("failed to create experience", "error", err)
		return nil, internal.NewInternalError("failed to create experience", err)
	}
	return ExperienceFromDataModel(row), nil
}

func (s *Service) UpdateExperience(id string, entry *Experience) (*Experience, error) {
	row, err := s.experience.GetByID(id)
	if err != nil {
		return nil, err
	}
	row.Company = entry.Company
	row.Title = entry.Title
	row.Description = entry.Description
	row.StartDate = entry.StartDate
	row.EndDate = entry.EndDate
	row.Order = entry.Order
	if err := s.experience.Update(row); err != nil {
		return nil, internal.NewInternalError("failed to update experience", err)
	}
	return ExperienceFromDataModel(row), nil
}

func (s *Service) DeleteExperience(id string) error {
	if _, err := s.experience.GetByID(id); err != nil {
		return err
	}
	return s.experience.Delete(id)
}

// ListPages returns every page for the admin surface.
func (s *Service) ListPages() ([]*Page, error) {
	rows, err := s.pages.List()
	if err != nil {
		return nil, internal.NewInternalError("failed to list pages", err)
	}
	pages := make([]*Page, 0, len(rows))
	for _, row := range rows {
		pages = append(pages, PageFromDataModel(row))
	}
	return pages, nil
}

// GetPublishedPage resolves a public page by slug. Unpublished pages are
// indistinguishable from missing ones.
func (s *Service) GetPublishedPage(slug string) (*Page, error) {
	row, err := s.pages.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if row == nil || !row.IsPublished {
		return nil, internal.NewNotFoundError("page not found", internal.ErrCodeNotFound)
	}
	return PageFromDataModel(row), nil
}

func (s *Service) CreatePage(page *Page) (*Page, error) {
	if strings.TrimSpace(page.Slug) == "" || strings.TrimSpace(page.Title) == "" {
		return nil, internal.NewValidationError("slug and title are required", internal.ErrCodeValidationFailed)
	}
	existing, err := s.pages.GetBySlug(page.Slug)
	if err != nil {
		return nil, internal.NewInternalError("failed to check slug", err)
	}
	if existing != nil {
		return nil, internal.ErrSlugTaken
	}

	row := PageToDataModel(page)
	row.ID = ""
	if err := s.pages.Create(row); err != nil {
		s.logger.Error("failed to create page", "slug", page.Slug, "error", err)
		return nil, internal.NewInternalError("failed to create page", err)
	}
	return PageFromDataModel(row), nil
}

func (s *Service) UpdatePage(id string, page *Page) (*Page, error) {
	row, err := s.pages.GetByID(id)
	if err != nil {
		return nil, err
	}
	if page.Slug != row.Slug {
		existing, err := s.pages.GetBySlug(page.Slug)
		if err != nil {
			return nil, internal.NewInternalError("failed to check slug", err)
		}
		if existing != nil && existing.ID != id {
			return nil, internal.ErrSlugTaken
		}
	}
	row.Slug = page.Slug
	row.Title = page.Title
	row.Body = page.Body
	row.IsPublished = page.IsPublished
	if err := s.pages.Update(row); err != nil {
		return nil, internal.NewInternalError("failed to update page", err)
	}
	return PageFromDataModel(row), nil
}

func (s *Service) DeletePage(id string) error {
	if _, err := s.pages.GetByID(id); err != nil {
		return err
	}
	return s.pages.Delete(id)
}

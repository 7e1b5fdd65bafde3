package content

import (
	"encoding/json"
	"time"

	contentDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/content"
)

// Domain views of the portfolio content records. Tags are stored as a
// JSON text column and surfaced as a slice.

type PortfolioItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	ProjectURL  *string   `json:"projectUrl"`
	Tags        []string  `json:"tags"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Skill struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Level     int       `json:"level"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Experience struct {
	ID          string     `json:"id"`
	Company     string     `json:"company"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Order       int        `json:"order"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Page struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func decodeTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return []string{}
	}
	return tags
}

func encodeTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func PortfolioItemFromDataModel(m *contentDatamodel.PortfolioItem) *PortfolioItem {
	return &PortfolioItem{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		ProjectURL:  m.ProjectURL,
		Tags:        decodeTags(m.Tags),
		Order:       m.Order,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func PortfolioItemToDataModel(p *PortfolioItem) *contentDatamodel.PortfolioItem {
	return &contentDatamodel.PortfolioItem{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		ProjectURL:  p.ProjectURL,
		Tags:        encodeTags(p.Tags),
		Order:       p.Order,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func SkillFromDataModel(m *contentDatamodel.Skill) *Skill {
	return &Skill{
		ID:        m.ID,
		Name:      m.Name,
		Category:  m.Category,
		Level:     m.Level,
		Order:     m.Order,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func SkillToDataModel(s *Skill) *contentDatamodel.Skill {
	return &contentDatamodel.Skill{
		ID:       s.ID,
		Name:     s.Name,
		Category: s.Category,
		Level:    s.Level,
		Order:    s.Order,
	}
}

func ExperienceFromDataModel(m *contentDatamodel.Experience) *Experience {
	return &Experience{
		ID:          m.ID,
		Company:     m.Company,
		Title:       m.Title,
		Description: m.Description,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Order:       m.Order,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ExperienceToDataModel(e *Experience) *contentDatamodel.Experience {
	return &contentDatamodel.Experience{
		ID:          e.ID,
		Company:     e.Company,
		Title:       e.Title,
		Description: e.Description,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Order:       e.Order,
	}
}

func PageFromDataModel(m *contentDatamodel.Page) *Page {
	return &Page{
		ID:          m.ID,
		Slug:        m.Slug,
		Title:       m.Title,
		Body:        m.Body,
		IsPublished: m.IsPublished,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func PageToDataModel(p *Page) *contentDatamodel.Page {
	return &contentDatamodel.Page{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Body:        p.Body,
		IsPublished: p.IsPublished,
	}
}

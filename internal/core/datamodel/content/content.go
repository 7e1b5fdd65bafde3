package content

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PortfolioItem struct {
	ID          string    `gorm:"primaryKey"`
	Title       string    `gorm:"column:title;not null"`
	Description string    `gorm:"column:description"`
	ImageURL    *string   `gorm:"column:image_url"`
	ProjectURL  *string   `gorm:"column:project_url"`
	Tags        string    `gorm:"column:tags;not null;default:[]"`
	Order       int       `gorm:"column:display_order;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (PortfolioItem) TableName() string {
	return "portfolio_items"
}

func (p *PortfolioItem) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type Skill struct {
	ID        string    `gorm:"primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Category  string    `gorm:"column:category"`
	Level     int       `gorm:"column:level;not null;default:0"`
	Order     int       `gorm:"column:display_order;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Skill) TableName() string {
	return "skills"
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type Experience struct {
	ID          string     `gorm:"primaryKey"`
	Company     string     `gorm:"column:company;not null"`
	Title       string     `gorm:"column:title;not null"`
	Description string     `gorm:"column:description"`
	StartDate   time.Time  `gorm:"column:start_date;not null"`
	EndDate     *time.Time `gorm:"column:end_date"`
	Order       int        `gorm:"column:display_order;not null;default:0"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (Experience) TableName() string {
	return "experiences"
}

func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

type Page struct {
	ID          string    `gorm:"primaryKey"`
	Slug        string    `gorm:"column:slug;uniqueIndex;not null"`
	Title       string    `gorm:"column:title;not null"`
	Body        string    `gorm:"column:body"`
	IsPublished bool      `gorm:"column:is_published;not null;default:false"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Page) TableName() string {
	return "pages"
}

func (p *Page) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

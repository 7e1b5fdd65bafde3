package postgres

import (
	"errors"

	"github.com/sevginserbest/portal/internal"
	"github.com/sevginserbest/portal/internal/content"
	contentDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/content"
	"gorm.io/gorm"
)

// CrudRepository is a generic gorm-backed store. The four content tables
// share identical access patterns, so one implementation serves them all.
type CrudRepository[M any] struct {
	db       *gorm.DB
	ordering string
}

func NewCrudRepository[M any](db *gorm.DB, ordering string) *CrudRepository[M] {
	return &CrudRepository[M]{db: db, ordering: ordering}
}

func (r *CrudRepository[M]) List() ([]*M, error) {
	var rows []*M
	err := r.db.Order(r.ordering).Find(&rows).Error
	return rows, err
}

func (r *CrudRepository[M]) GetByID(id string) (*M, error) {
	var row M
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.NewNotFoundError("record not found", internal.ErrCodeNotFound)
		}
		return nil, err
	}
	return &row, nil
}

func (r *CrudRepository[M]) Create(row *M) error {
	return r.db.Create(row).Error
}

func (r *CrudRepository[M]) Update(row *M) error {
	return r.db.Save(row).Error
}

func (r *CrudRepository[M]) Delete(id string) error {
	var row M
	return r.db.Where("id = ?", id).Delete(&row).Error
}

// PageRepository adds the slug lookup the public site needs.
type PageRepository struct {
	*CrudRepository[contentDatamodel.Page]
}

func NewPageRepository(db *gorm.DB) content.PageRepositoryAPI {
	return &PageRepository{
		CrudRepository: NewCrudRepository[contentDatamodel.Page](db, "title ASC"),
	}
}

func (r *PageRepository) GetBySlug(slug string) (*contentDatamodel.Page, error) {
	var row contentDatamodel.Page
	err := r.db.Where("slug = ?", slug).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func NewPortfolioRepository(db *gorm.DB) content.CrudRepository[contentDatamodel.PortfolioItem] {
	return NewCrudRepository[contentDatamodel.PortfolioItem](db, "display_order ASC, created_at DESC")
}

func NewSkillRepository(db *gorm.DB) content.CrudRepository[contentDatamodel.Skill] {
	return NewCrudRepository[contentDatamodel.Skill](db, "display_order ASC, name ASC")
}

func NewExperienceRepository(db *gorm.DB) content.CrudRepository[contentDatamodel.Experience] {
	return NewCrudRepository[contentDatamodel.Experience](db, "display_order ASC, start_date DESC")
}

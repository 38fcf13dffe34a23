package repository

import (
	"context"
	"strings"
	"time"

	"fixitnow/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

type categoryModel struct {
	ID          string                     `gorm:"column:id;primaryKey;size:36"`
	Name        string                     `gorm:"column:name;not null;uniqueIndex:idx_categories_name"`
	Subservices []domain.CatalogSubservice `gorm:"column:subservices;type:text;serializer:json"`
	CreatedAt   time.Time                  `gorm:"column:created_at"`
	UpdatedAt   time.Time                  `gorm:"column:updated_at"`
}

func (categoryModel) TableName() string { return "categories" }

func toDomainCategory(m categoryModel) domain.Category {
	subs := m.Subservices
	if subs == nil {
		subs = []domain.CatalogSubservice{}
	}
	return domain.Category{
		ID:          m.ID,
		Name:        m.Name,
		Subservices: subs,
	}
}

func (r *CatalogRepository) List(ctx context.Context) ([]domain.Category, error) {
	var rows []categoryModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Category, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainCategory(m))
	}
	return out, nil
}

func (r *CatalogRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	var m categoryModel
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&m).Error; err != nil {
		return nil, err
	}
	c := toDomainCategory(m)
	return &c, nil
}

// Upsert inserts the category or replaces the sub-service list of the entry with the same name.
func (r *CatalogRepository) Upsert(ctx context.Context, c *domain.Category) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	m := categoryModel{
		ID:          c.ID,
		Name:        strings.TrimSpace(c.Name),
		Subservices: c.Subservices,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"subservices", "updated_at"}),
	}).Create(&m).Error
	if err != nil {
		return err
	}

	stored, err := r.GetByName(ctx, m.Name)
	if err != nil {
		return err
	}
	*c = *stored
	return nil
}

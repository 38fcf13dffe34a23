package repository

import (
	"context"
	"strings"
	"time"

	"fixitnow/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProviderRepository struct {
	db *gorm.DB
}

func NewProviderRepository(db *gorm.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

type providerModel struct {
	ID           string    `gorm:"column:id;primaryKey;size:36"`
	Name         string    `gorm:"column:name;not null"`
	Email        string    `gorm:"column:email;not null;uniqueIndex:idx_providers_email"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Phone        *string   `gorm:"column:phone"`
	Address      *string   `gorm:"column:address"`
	Experience   *string   `gorm:"column:experience;type:text"`
	Rating       float64   `gorm:"column:rating;not null;default:0"`
	RatingCount  int       `gorm:"column:rating_count;not null;default:0"`
	Role         string    `gorm:"column:role;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (providerModel) TableName() string { return "providers" }

// One row per offered sub-service. A category listed without sub-services is kept as a
// single row with an empty subservice so that it still matches category filters.
type providerOfferingModel struct {
	ID         int64   `gorm:"column:id;primaryKey;autoIncrement"`
	ProviderID string  `gorm:"column:provider_id;size:36;not null;index:idx_provider_offerings_provider"`
	Category   string  `gorm:"column:category;not null;index:idx_provider_offerings_category"`
	Subservice string  `gorm:"column:subservice"`
	Price      float64 `gorm:"column:price"`
	Position   int     `gorm:"column:position"`
}

func (providerOfferingModel) TableName() string { return "provider_offerings" }

// ProviderProfileUpdate carries the optional fields of a provider profile edit.
type ProviderProfileUpdate struct {
	Name       *string
	Phone      *string
	Address    *string
	Experience *string
	Services   *[]domain.Offering
}

func toDomainProvider(m providerModel, offerings []providerOfferingModel) *domain.Provider {
	return &domain.Provider{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Phone:        derefString(m.Phone),
		Address:      derefString(m.Address),
		Services:     groupOfferings(offerings),
		Experience:   derefString(m.Experience),
		Rating:       m.Rating,
		RatingCount:  m.RatingCount,
		Role:         domain.UserRole(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toProviderModel(p *domain.Provider) providerModel {
	return providerModel{
		ID:           p.ID,
		Name:         strings.TrimSpace(p.Name),
		Email:        normalizeEmail(p.Email),
		PasswordHash: p.PasswordHash,
		Phone:        nullableString(p.Phone),
		Address:      nullableString(p.Address),
		Experience:   nullableString(p.Experience),
		Rating:       p.Rating,
		RatingCount:  p.RatingCount,
		Role:         string(domain.RoleProvider),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toOfferingModels(providerID string, services []domain.Offering) []providerOfferingModel {
	out := make([]providerOfferingModel, 0, len(services))
	pos := 0
	for _, o := range services {
		category := strings.TrimSpace(o.Category)
		if category == "" {
			continue
		}
		if len(o.Subservices) == 0 {
			out = append(out, providerOfferingModel{ProviderID: providerID, Category: category, Position: pos})
			pos++
			continue
		}
		for _, s := range o.Subservices {
			out = append(out, providerOfferingModel{
				ProviderID: providerID,
				Category:   category,
				Subservice: strings.TrimSpace(s.Name),
				Price:      s.Price,
				Position:   pos,
			})
			pos++
		}
	}
	return out
}

// groupOfferings rebuilds the nested offerings list, keeping first-appearance order.
func groupOfferings(rows []providerOfferingModel) []domain.Offering {
	out := make([]domain.Offering, 0)
	index := map[string]int{}
	for _, row := range rows {
		i, ok := index[row.Category]
		if !ok {
			out = append(out, domain.Offering{Category: row.Category, Subservices: []domain.OfferedSubservice{}})
			i = len(out) - 1
			index[row.Category] = i
		}
		if row.Subservice == "" {
			continue
		}
		out[i].Subservices = append(out[i].Subservices, domain.OfferedSubservice{Name: row.Subservice, Price: row.Price})
	}
	return out
}

func (r *ProviderRepository) Create(ctx context.Context, p *domain.Provider) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	m := toProviderModel(p)
	offerings := toOfferingModels(p.ID, p.Services)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		if len(offerings) > 0 {
			if err := tx.Create(&offerings).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}

	*p = *toDomainProvider(m, offerings)
	return nil
}

func (r *ProviderRepository) GetByID(ctx context.Context, id string) (*domain.Provider, error) {
	var m providerModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return r.withOfferings(ctx, m)
}

func (r *ProviderRepository) GetByEmail(ctx context.Context, email string) (*domain.Provider, error) {
	var m providerModel
	if err := r.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&m).Error; err != nil {
		return nil, err
	}
	return r.withOfferings(ctx, m)
}

func (r *ProviderRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&providerModel{}).
		Where("email = ?", normalizeEmail(email)).
		Count(&count).Error
	return count > 0, err
}

// FindOffering returns providers whose offerings contain category and, when subservice is
// non-empty, a sub-service of that name. Both comparisons ignore case.
func (r *ProviderRepository) FindOffering(ctx context.Context, category, subservice string) ([]domain.Provider, error) {
	sub := r.db.Table("provider_offerings AS o").
		Select("1").
		Where("o.provider_id = providers.id").
		Where("LOWER(o.category) = ?", strings.ToLower(strings.TrimSpace(category)))
	if s := strings.TrimSpace(subservice); s != "" {
		sub = sub.Where("LOWER(o.subservice) = ?", strings.ToLower(s))
	}

	var rows []providerModel
	tx := r.db.WithContext(ctx).
		Model(&providerModel{}).
		Where("EXISTS (?)", sub).
		Order("rating DESC, name ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if len(rows) == 0 {
		return []domain.Provider{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, m := range rows {
		ids = append(ids, m.ID)
	}
	var offerings []providerOfferingModel
	if err := r.db.WithContext(ctx).
		Where("provider_id IN ?", ids).
		Order("position ASC").
		Find(&offerings).Error; err != nil {
		return nil, err
	}
	byProvider := make(map[string][]providerOfferingModel, len(rows))
	for _, o := range offerings {
		byProvider[o.ProviderID] = append(byProvider[o.ProviderID], o)
	}

	out := make([]domain.Provider, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainProvider(m, byProvider[m.ID]))
	}
	return out, nil
}

// UpdateProfile applies the non-nil fields; Services, when set, replaces all offerings.
func (r *ProviderRepository) UpdateProfile(ctx context.Context, id string, u ProviderProfileUpdate) (*domain.Provider, error) {
	updates := map[string]any{}
	if u.Name != nil {
		updates["name"] = strings.TrimSpace(*u.Name)
	}
	if u.Phone != nil {
		updates["phone"] = nullableString(*u.Phone)
	}
	if u.Address != nil {
		updates["address"] = nullableString(*u.Address)
	}
	if u.Experience != nil {
		updates["experience"] = nullableString(*u.Experience)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&providerModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		if len(updates) > 0 {
			if err := tx.Model(&providerModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}
		if u.Services != nil {
			if err := tx.Where("provider_id = ?", id).Delete(&providerOfferingModel{}).Error; err != nil {
				return err
			}
			offerings := toOfferingModels(id, *u.Services)
			if len(offerings) > 0 {
				if err := tx.Create(&offerings).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// UpdateRating stores the cached rating summary. The row is matched by id only.
func (r *ProviderRepository) UpdateRating(ctx context.Context, id string, rating float64, count int) error {
	tx := r.db.WithContext(ctx).
		Model(&providerModel{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"rating":       rating,
			"rating_count": count,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProviderRepository) withOfferings(ctx context.Context, m providerModel) (*domain.Provider, error) {
	var offerings []providerOfferingModel
	if err := r.db.WithContext(ctx).
		Where("provider_id = ?", m.ID).
		Order("position ASC").
		Find(&offerings).Error; err != nil {
		return nil, err
	}
	return toDomainProvider(m, offerings), nil
}

package repository

import (
	"context"
	"time"

	"fixitnow/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

type feedbackModel struct {
	ID         string    `gorm:"column:id;primaryKey;size:36"`
	CustomerID string    `gorm:"column:customer_id;size:36;not null;index:idx_feedback_customer"`
	ProviderID string    `gorm:"column:provider_id;size:36;not null;index:idx_feedback_provider"`
	RequestID  *string   `gorm:"column:request_id;size:36"`
	Rating     int       `gorm:"column:rating;not null"`
	Comment    string    `gorm:"column:comment;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at;index:idx_feedback_created"`
}

func (feedbackModel) TableName() string { return "feedback" }

// BeforeCreate keeps stored ratings inside [1,5] whatever path inserted them.
func (m *feedbackModel) BeforeCreate(tx *gorm.DB) error {
	m.Rating = domain.ClampRating(float64(m.Rating))
	return nil
}

type feedbackRow struct {
	Feedback     feedbackModel `gorm:"embedded"`
	CustomerName *string       `gorm:"column:customer_name"`
	ProviderName *string       `gorm:"column:provider_name"`
}

type FeedbackFilter struct {
	CustomerID string
	ProviderID string
}

func toDomainFeedback(m feedbackModel) *domain.Feedback {
	return &domain.Feedback{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		ProviderID: m.ProviderID,
		RequestID:  m.RequestID,
		Rating:     m.Rating,
		Comment:    m.Comment,
		CreatedAt:  m.CreatedAt,
	}
}

func (r *FeedbackRepository) Create(ctx context.Context, f *domain.Feedback) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	m := feedbackModel{
		ID:         f.ID,
		CustomerID: f.CustomerID,
		ProviderID: f.ProviderID,
		RequestID:  f.RequestID,
		Rating:     f.Rating,
		Comment:    f.Comment,
		CreatedAt:  f.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*f = *toDomainFeedback(m)
	return nil
}

// List returns feedback newest first with the rater and ratee names attached.
func (r *FeedbackRepository) List(ctx context.Context, f FeedbackFilter) ([]domain.FeedbackDetails, error) {
	q := r.db.WithContext(ctx).
		Table("feedback").
		Select("feedback.*, customers.name AS customer_name, providers.name AS provider_name").
		Joins("LEFT JOIN customers ON customers.id = feedback.customer_id").
		Joins("LEFT JOIN providers ON providers.id = feedback.provider_id")
	if f.CustomerID != "" {
		q = q.Where("feedback.customer_id = ?", f.CustomerID)
	}
	if f.ProviderID != "" {
		q = q.Where("feedback.provider_id = ?", f.ProviderID)
	}

	var rows []feedbackRow
	if err := q.Order("feedback.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.FeedbackDetails, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.FeedbackDetails{
			Feedback:     *toDomainFeedback(row.Feedback),
			UserName:     derefString(row.CustomerName),
			ProviderName: derefString(row.ProviderName),
		})
	}
	return out, nil
}

// Aggregate returns the raw mean and count of ratings for a provider; (0, 0) when there are none.
func (r *FeedbackRepository) Aggregate(ctx context.Context, providerID string) (float64, int, error) {
	var agg struct {
		Avg   float64
		Count int64
	}
	err := r.db.WithContext(ctx).
		Model(&feedbackModel{}).
		Select("COALESCE(CAST(AVG(rating) AS FLOAT), 0) AS avg, COUNT(*) AS count").
		Where("provider_id = ?", providerID).
		Scan(&agg).Error
	if err != nil {
		return 0, 0, err
	}
	return agg.Avg, int(agg.Count), nil
}

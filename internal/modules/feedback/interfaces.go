package feedback

import (
	"context"

	"fixitnow/internal/domain"
	"fixitnow/internal/repository"
)

type FeedbackRepositoryInterface interface {
	Create(ctx context.Context, f *domain.Feedback) error
	List(ctx context.Context, f repository.FeedbackFilter) ([]domain.FeedbackDetails, error)
}

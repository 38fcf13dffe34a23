package request

import (
	"context"

	"fixitnow/internal/domain"
	"fixitnow/internal/modules/rating"
	"fixitnow/internal/repository"
)

type RequestRepositoryInterface interface {
	Create(ctx context.Context, r *domain.Request) error
	GetByID(ctx context.Context, id string) (*domain.Request, error)
	GetDetails(ctx context.Context, id string) (*domain.RequestDetails, error)
	List(ctx context.Context, f repository.RequestFilter) ([]domain.RequestDetails, error)
	RecentDecisions(ctx context.Context, customerID string, limit int) ([]domain.RequestDetails, error)
	UpdateStatusIf(ctx context.Context, id string, from []domain.RequestStatus, updates map[string]any) (bool, error)
}

type ProviderLookup interface {
	GetByID(ctx context.Context, id string) (*domain.Provider, error)
}

type FeedbackSubmitter interface {
	Submit(ctx context.Context, customerID, providerID string, requestID *string, rating float64, comment string) (*domain.Feedback, error)
}

type RatingRefresher interface {
	Refresh(ctx context.Context, providerID string) (rating.Summary, error)
}

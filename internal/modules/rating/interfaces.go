package rating

import (
	"context"

	"fixitnow/internal/domain"
)

type FeedbackAggregator interface {
	Aggregate(ctx context.Context, providerID string) (avg float64, count int, err error)
}

type ProviderRatingStore interface {
	GetByID(ctx context.Context, id string) (*domain.Provider, error)
	UpdateRating(ctx context.Context, id string, rating float64, count int) error
}

package provider

import (
	"context"

	"fixitnow/internal/domain"
	"fixitnow/internal/repository"
)

type ProviderRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*domain.Provider, error)
	UpdateProfile(ctx context.Context, id string, u repository.ProviderProfileUpdate) (*domain.Provider, error)
}

// RatingRepairer re-syncs the cached rating of a provider with its feedback rows.
type RatingRepairer interface {
	Repair(ctx context.Context, p *domain.Provider) (bool, error)
}

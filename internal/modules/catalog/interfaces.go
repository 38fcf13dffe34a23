package catalog

import (
	"context"

	"fixitnow/internal/domain"
)

type CategoryRepositoryInterface interface {
	List(ctx context.Context) ([]domain.Category, error)
}

type ProviderFinder interface {
	FindOffering(ctx context.Context, category, subservice string) ([]domain.Provider, error)
}

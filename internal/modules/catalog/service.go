package catalog

import (
	"context"
	"strings"

	"fixitnow/internal/domain"
)

type Service struct {
	categories CategoryRepositoryInterface
	providers  ProviderFinder
}

func NewService(categories CategoryRepositoryInterface, providers ProviderFinder) *Service {
	return &Service{categories: categories, providers: providers}
}

// ListCategories returns the catalog ordered by category name.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// FindProviders lists providers offering the category and, if given, the named sub-service.
func (s *Service) FindProviders(ctx context.Context, q FindProvidersQuery) (*ProvidersResponse, error) {
	service := strings.TrimSpace(q.Service)
	if service == "" {
		return nil, ErrServiceRequired
	}

	providers, err := s.providers.FindOffering(ctx, service, strings.TrimSpace(q.Subservice))
	if err != nil {
		return nil, err
	}
	for i := range providers {
		providers[i].PasswordHash = ""
	}

	out := &ProvidersResponse{Providers: providers}
	if len(providers) == 0 {
		out.Providers = []domain.Provider{}
		out.Message = noProvidersMessage
	}
	return out, nil
}

package auth

import (
	"context"

	"fixitnow/internal/domain"
)

// CustomerRepositoryInterface lists only the methods the auth service uses.
type CustomerRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, id string, name, phone, address *string) (*domain.Customer, error)
}

type ProviderRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Provider) error
	GetByEmail(ctx context.Context, email string) (*domain.Provider, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type jwtService interface {
	GenerateToken(userID string, role string) (string, error)
}

package auth

import (
	"context"
	"errors"
	"strings"

	"fixitnow/internal/domain"
	"fixitnow/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Kind selects which identity tables a login looks at.
type Kind int

const (
	KindCustomer Kind = iota
	KindProvider
)

// Service contains all business logic for authentication
type Service struct {
	customers CustomerRepositoryInterface
	providers ProviderRepositoryInterface
	jwt       jwtService
}

func NewService(customers CustomerRepositoryInterface, providers ProviderRepositoryInterface, jwt jwtService) *Service {
	return &Service{
		customers: customers,
		providers: providers,
		jwt:       jwt,
	}
}

func (s *Service) RegisterCustomer(ctx context.Context, req RegisterCustomerRequest) (*AuthResult, error) {
	exists, err := s.customers.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Phone:        strings.TrimSpace(req.Phone),
		Address:      strings.TrimSpace(req.Address),
		Role:         domain.RoleUser,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	token, err := s.jwt.GenerateToken(customer.ID, string(customer.Role))
	if err != nil {
		return nil, err
	}

	customer.PasswordHash = ""
	return &AuthResult{Token: token, User: customer}, nil
}

func (s *Service) RegisterProvider(ctx context.Context, req RegisterProviderRequest) (*domain.Provider, error) {
	exists, err := s.providers.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	provider := &domain.Provider{
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Phone:        strings.TrimSpace(req.Phone),
		Address:      strings.TrimSpace(req.Address),
		Services:     req.Services,
		Experience:   strings.TrimSpace(req.Experience),
		Role:         domain.RoleProvider,
	}
	if err := s.providers.Create(ctx, provider); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	provider.PasswordHash = ""
	return provider, nil
}

// Login checks the customer table first and then the provider table, in the order given by kinds.
// A customer record whose password does not match does not stop the provider lookup, since
// the same email may be registered once per kind.
func (s *Service) Login(ctx context.Context, req LoginRequest, kinds ...Kind) (*AuthResult, error) {
	for _, kind := range kinds {
		var (
			id, role, hash string
			user           any
		)
		switch kind {
		case KindCustomer:
			c, err := s.customers.GetByEmail(ctx, req.Email)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			id, role, hash = c.ID, string(c.Role), c.PasswordHash
			c.PasswordHash = ""
			user = c
		case KindProvider:
			p, err := s.providers.GetByEmail(ctx, req.Email)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			id, role, hash = p.ID, string(domain.RoleProvider), p.PasswordHash
			p.PasswordHash = ""
			p.Role = domain.RoleProvider
			user = p
		}

		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
			continue
		}

		token, err := s.jwt.GenerateToken(id, role)
		if err != nil {
			return nil, err
		}
		return &AuthResult{Token: token, User: user}, nil
	}
	return nil, ErrInvalidCredentials
}

func (s *Service) UpdateCustomer(ctx context.Context, id string, req UpdateCustomerRequest) (*domain.Customer, error) {
	customer, err := s.customers.UpdateProfile(ctx, id, req.Name, req.Phone, req.Address)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	customer.PasswordHash = ""
	return customer, nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

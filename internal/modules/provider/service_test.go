package provider

import (
	"context"
	"errors"
	"testing"

	"fixitnow/internal/domain"
	"fixitnow/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockProviderRepo struct {
	mock.Mock
}

func (m *mockProviderRepo) GetByID(ctx context.Context, id string) (*domain.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *mockProviderRepo) UpdateProfile(ctx context.Context, id string, u repository.ProviderProfileUpdate) (*domain.Provider, error) {
	args := m.Called(ctx, id, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

type mockRepairer struct {
	mock.Mock
}

func (m *mockRepairer) Repair(ctx context.Context, p *domain.Provider) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}

func TestService_Get_RepairsRating(t *testing.T) {
	repo := new(mockProviderRepo)
	ratings := new(mockRepairer)
	stored := &domain.Provider{ID: "p1", Name: "Bob", PasswordHash: "digest", Rating: 0, RatingCount: 0}
	repo.On("GetByID", mock.Anything, "p1").Return(stored, nil)
	ratings.On("Repair", mock.Anything, stored).Run(func(args mock.Arguments) {
		p := args.Get(1).(*domain.Provider)
		p.Rating = 5
		p.RatingCount = 1
	}).Return(true, nil)

	svc := NewService(repo, ratings, nil)
	got, err := svc.Get(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, 5.0, got.Rating)
	assert.Equal(t, 1, got.RatingCount)
	assert.Empty(t, got.PasswordHash)
}

func TestService_Get_RepairFailureStillReturns(t *testing.T) {
	repo := new(mockProviderRepo)
	ratings := new(mockRepairer)
	stored := &domain.Provider{ID: "p1", Rating: 4.5, RatingCount: 2}
	repo.On("GetByID", mock.Anything, "p1").Return(stored, nil)
	ratings.On("Repair", mock.Anything, stored).Return(false, errors.New("db down"))

	svc := NewService(repo, ratings, nil)
	got, err := svc.Get(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, 4.5, got.Rating)
}

func TestService_Get_NotFound(t *testing.T) {
	repo := new(mockProviderRepo)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo, new(mockRepairer), nil)
	_, err := svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update(t *testing.T) {
	repo := new(mockProviderRepo)
	exp := "5 years"
	services := []domain.Offering{{Category: "Painter"}}
	repo.On("UpdateProfile", mock.Anything, "p1", repository.ProviderProfileUpdate{Experience: &exp, Services: &services}).
		Return(&domain.Provider{ID: "p1", Experience: exp, Services: services, PasswordHash: "digest"}, nil)
	repo.On("UpdateProfile", mock.Anything, "missing", mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo, new(mockRepairer), nil)

	got, err := svc.Update(context.Background(), "p1", UpdateProviderRequest{Experience: &exp, Services: &services})
	require.NoError(t, err)
	assert.Equal(t, "5 years", got.Experience)
	assert.Empty(t, got.PasswordHash)

	_, err = svc.Update(context.Background(), "missing", UpdateProviderRequest{Experience: &exp})
	assert.ErrorIs(t, err, ErrNotFound)
}

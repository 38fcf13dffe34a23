package provider

import (
	"context"
	"errors"

	"fixitnow/internal/domain"
	"fixitnow/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	providers ProviderRepositoryInterface
	ratings   RatingRepairer
	log       *zap.Logger
}

func NewService(providers ProviderRepositoryInterface, ratings RatingRepairer, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{providers: providers, ratings: ratings, log: log}
}

// Get returns the provider profile after bringing its rating summary in line with feedback.
// A failed repair is logged and the stored values are returned.
func (s *Service) Get(ctx context.Context, id string) (*domain.Provider, error) {
	p, err := s.providers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	repaired, err := s.ratings.Repair(ctx, p)
	if err != nil {
		s.log.Warn("rating read-repair failed", zap.String("provider_id", id), zap.Error(err))
	} else if repaired {
		s.log.Info("rating repaired",
			zap.String("provider_id", id),
			zap.Float64("rating", p.Rating),
			zap.Int("rating_count", p.RatingCount),
		)
	}

	p.PasswordHash = ""
	return p, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateProviderRequest) (*domain.Provider, error) {
	p, err := s.providers.UpdateProfile(ctx, id, repository.ProviderProfileUpdate{
		Name:       req.Name,
		Phone:      req.Phone,
		Address:    req.Address,
		Experience: req.Experience,
		Services:   req.Services,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p.PasswordHash = ""
	return p, nil
}

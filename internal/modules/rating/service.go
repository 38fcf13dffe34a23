package rating

import (
	"context"
	"fmt"
	"math"

	"fixitnow/internal/domain"
)

// Summary is the cached rating of a provider.
type Summary struct {
	Rating float64 `json:"rating"`
	Count  int     `json:"ratingCount"`
}

// Service keeps provider.rating and provider.ratingCount in line with the feedback rows.
// The cache is refreshed eagerly after a rated completion and repaired lazily on reads.
type Service struct {
	feedback  FeedbackAggregator
	providers ProviderRatingStore
}

func NewService(feedback FeedbackAggregator, providers ProviderRatingStore) *Service {
	return &Service{feedback: feedback, providers: providers}
}

// Recompute returns the mean rating rounded to two decimals and the row count.
func (s *Service) Recompute(ctx context.Context, providerID string) (Summary, error) {
	avg, count, err := s.feedback.Aggregate(ctx, providerID)
	if err != nil {
		return Summary{}, fmt.Errorf("aggregate feedback: %w", err)
	}
	if count == 0 {
		return Summary{}, nil
	}
	return Summary{Rating: Round2(avg), Count: count}, nil
}

// Refresh recomputes and stores the summary unconditionally.
func (s *Service) Refresh(ctx context.Context, providerID string) (Summary, error) {
	sum, err := s.Recompute(ctx, providerID)
	if err != nil {
		return Summary{}, err
	}
	if err := s.providers.UpdateRating(ctx, providerID, sum.Rating, sum.Count); err != nil {
		return Summary{}, fmt.Errorf("store rating: %w", err)
	}
	return sum, nil
}

// Repair compares p's cached fields with a fresh recompute and writes only when they differ.
// p is updated in place. It reports whether a write happened.
func (s *Service) Repair(ctx context.Context, p *domain.Provider) (bool, error) {
	sum, err := s.Recompute(ctx, p.ID)
	if err != nil {
		return false, err
	}
	if Round2(p.Rating) == sum.Rating && p.RatingCount == sum.Count {
		return false, nil
	}
	if err := s.providers.UpdateRating(ctx, p.ID, sum.Rating, sum.Count); err != nil {
		return false, fmt.Errorf("store rating: %w", err)
	}
	p.Rating = sum.Rating
	p.RatingCount = sum.Count
	return true, nil
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

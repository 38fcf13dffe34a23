package feedback

import (
	"context"
	"strings"

	"fixitnow/internal/domain"
	"fixitnow/internal/repository"
)

type Service struct {
	feedback FeedbackRepositoryInterface
}

func NewService(feedback FeedbackRepositoryInterface) *Service {
	return &Service{feedback: feedback}
}

// Submit stores a rating from customerID for providerID. The rating is rounded and clamped
// into [1,5]; it is never rejected for being out of range.
func (s *Service) Submit(ctx context.Context, customerID, providerID string, requestID *string, rating float64, comment string) (*domain.Feedback, error) {
	if customerID == "" || providerID == "" {
		return nil, ErrInvalidRequest
	}
	f := &domain.Feedback{
		CustomerID: customerID,
		ProviderID: providerID,
		RequestID:  requestID,
		Rating:     domain.ClampRating(rating),
		Comment:    strings.TrimSpace(comment),
	}
	if err := s.feedback.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// List returns feedback given by a customer or received by a provider, newest first.
// Feedback received by a provider is public; feedback given by a customer is visible to
// that customer and to admins.
func (s *Service) List(ctx context.Context, actor domain.Actor, q ListQuery) ([]domain.FeedbackDetails, error) {
	userID := strings.TrimSpace(q.UserID)
	providerID := strings.TrimSpace(q.ProviderID)
	if userID == "" && providerID == "" {
		return nil, ErrFilterRequired
	}
	if userID != "" && userID != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.feedback.List(ctx, repository.FeedbackFilter{CustomerID: userID, ProviderID: providerID})
}

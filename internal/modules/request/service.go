package request

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fixitnow/internal/domain"
	"fixitnow/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const fallbackProviderName = "Provider"

type Service struct {
	requests  RequestRepositoryInterface
	providers ProviderLookup
	feedback  FeedbackSubmitter
	ratings   RatingRefresher
	log       *zap.Logger
	now       func() time.Time
}

func NewService(
	requests RequestRepositoryInterface,
	providers ProviderLookup,
	feedback FeedbackSubmitter,
	ratings RatingRefresher,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		requests:  requests,
		providers: providers,
		feedback:  feedback,
		ratings:   ratings,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Book creates a Pending request from the calling customer to a provider that offers the service.
func (s *Service) Book(ctx context.Context, actor domain.Actor, req BookRequest) (*domain.Request, error) {
	provider, err := s.providers.GetByID(ctx, strings.TrimSpace(req.ProviderID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}
	if !provider.Offers(req.Service, req.Subservice) {
		return nil, ErrServiceNotOffered
	}
	if req.ScheduledFor == nil || !req.ScheduledFor.After(s.now()) {
		return nil, ErrScheduleInPast
	}

	scheduled := req.ScheduledFor.UTC()
	r := &domain.Request{
		CustomerID:   actor.ID,
		ProviderID:   provider.ID,
		Service:      strings.TrimSpace(req.Service),
		Subservice:   strings.TrimSpace(req.Subservice),
		Address:      strings.TrimSpace(req.Address),
		Description:  strings.TrimSpace(req.Description),
		Status:       domain.RequestPending,
		ScheduledFor: &scheduled,
	}
	if err := s.requests.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.log.Info("request booked",
		zap.String("request_id", r.ID),
		zap.String("customer_id", r.CustomerID),
		zap.String("provider_id", r.ProviderID),
	)
	return r, nil
}

// List returns requests matching the query, newest first. Status values are normalized
// (case and synonyms) and combined as a union. Non-admin callers only see their own requests.
func (s *Service) List(ctx context.Context, actor domain.Actor, q ListQuery) ([]domain.RequestDetails, error) {
	f := repository.RequestFilter{
		CustomerID: strings.TrimSpace(q.UserID),
		ProviderID: strings.TrimSpace(q.ProviderID),
		Query:      strings.TrimSpace(q.Q),
	}
	for _, raw := range q.Status {
		for _, part := range strings.Split(raw, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			f.Statuses = append(f.Statuses, domain.NormalizeRequestStatus(part))
		}
	}
	if err := scopeToCaller(actor, &f); err != nil {
		return nil, err
	}
	return s.requests.List(ctx, f)
}

// scopeToCaller pins the filter to the caller's side of the request.
func scopeToCaller(actor domain.Actor, f *repository.RequestFilter) error {
	switch {
	case actor.IsAdmin():
	case actor.Role == domain.RoleProvider:
		if f.ProviderID != "" && f.ProviderID != actor.ID {
			return ErrForbidden
		}
		f.ProviderID = actor.ID
	default:
		if f.CustomerID != "" && f.CustomerID != actor.ID {
			return ErrForbidden
		}
		f.CustomerID = actor.ID
	}
	return nil
}

// Accept moves a Pending request to Accepted. Only the request's provider may accept.
func (s *Service) Accept(ctx context.Context, actor domain.Actor, id string) (*domain.RequestDetails, error) {
	authorize := func(r *domain.Request) error {
		if actor.ID != r.ProviderID {
			return ErrForbidden
		}
		return nil
	}
	updates := map[string]any{
		"status":        string(domain.RequestAccepted),
		"accepted_at":   s.now(),
		"declined_at":   nil,
		"cancel_reason": nil,
	}
	return s.transition(ctx, id, authorize, []domain.RequestStatus{domain.RequestPending}, updates)
}

// Decline moves a Pending request to Declined. The request's provider or an admin may decline.
func (s *Service) Decline(ctx context.Context, actor domain.Actor, id string, reason string) (*domain.RequestDetails, error) {
	authorize := func(r *domain.Request) error {
		if actor.ID != r.ProviderID && !actor.IsAdmin() {
			return ErrForbidden
		}
		return nil
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = domain.ReasonProviderDeclined
		if actor.IsAdmin() {
			reason = domain.ReasonAdminDeclined
		}
	}
	updates := map[string]any{
		"status":        string(domain.RequestDeclined),
		"declined_at":   s.now(),
		"cancel_reason": reason,
	}
	return s.transition(ctx, id, authorize, []domain.RequestStatus{domain.RequestPending}, updates)
}

// Complete moves an Accepted (or In Progress) request to Completed. With a rating, a feedback row
// is stored and the provider's rating summary is refreshed. The two writes are not atomic; a failed
// refresh is logged and left for the read-repair on the provider profile.
func (s *Service) Complete(ctx context.Context, actor domain.Actor, id string, req CompleteRequest) (*domain.RequestDetails, *domain.Feedback, error) {
	authorize := func(r *domain.Request) error {
		if actor.ID != r.CustomerID {
			return ErrForbidden
		}
		if (req.UserID != "" && req.UserID != r.CustomerID) || (req.ProviderID != "" && req.ProviderID != r.ProviderID) {
			return ErrPartyMismatch
		}
		return nil
	}
	updates := map[string]any{"status": string(domain.RequestCompleted)}
	details, err := s.transition(ctx, id, authorize,
		[]domain.RequestStatus{domain.RequestAccepted, domain.RequestInProgress}, updates)
	if err != nil {
		return nil, nil, err
	}
	if req.Rating == nil {
		return details, nil, nil
	}

	requestID := details.ID
	fb, err := s.feedback.Submit(ctx, details.CustomerID, details.ProviderID, &requestID, *req.Rating, req.Comment)
	if err != nil {
		return nil, nil, fmt.Errorf("submit feedback: %w", err)
	}

	if _, err := s.ratings.Refresh(ctx, details.ProviderID); err != nil {
		s.log.Warn("rating refresh after completion failed",
			zap.String("request_id", details.ID),
			zap.String("provider_id", details.ProviderID),
			zap.Error(err),
		)
	}
	return details, fb, nil
}

// Notifications lists the customer's most recent accept and decline decisions.
func (s *Service) Notifications(ctx context.Context, actor domain.Actor, q NotificationsQuery) ([]domain.Notification, error) {
	userID := strings.TrimSpace(q.UserID)
	if userID == "" {
		return nil, ErrUserIDRequired
	}
	if userID != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	rows, err := s.requests.RecentDecisions(ctx, userID, notificationLimit(q.Limit))
	if err != nil {
		return nil, err
	}

	out := make([]domain.Notification, 0, len(rows))
	for _, r := range rows {
		out = append(out, toNotification(r))
	}
	return out, nil
}

func (s *Service) transition(
	ctx context.Context,
	id string,
	authorize func(*domain.Request) error,
	from []domain.RequestStatus,
	updates map[string]any,
) (*domain.RequestDetails, error) {
	current, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := authorize(current); err != nil {
		return nil, err
	}
	if current.Status.IsTerminal() {
		return nil, ErrInvalidStatusTransition
	}

	// the status guard lives in the UPDATE itself, so a concurrent transition cannot be overwritten
	ok, err := s.requests.UpdateStatusIf(ctx, id, from, updates)
	if err != nil {
		return nil, fmt.Errorf("update request status: %w", err)
	}
	if !ok {
		return nil, ErrInvalidStatusTransition
	}

	details, err := s.requests.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info("request status changed",
		zap.String("request_id", id),
		zap.String("from", string(current.Status)),
		zap.String("to", string(details.Status)),
	)
	return details, nil
}

func notificationLimit(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return defaultNotificationLimit
	}
	if n > maxNotificationLimit {
		return maxNotificationLimit
	}
	return n
}

func toNotification(r domain.RequestDetails) domain.Notification {
	name := r.ProviderName
	if name == "" {
		name = fallbackProviderName
	}
	return domain.Notification{
		RequestID:    r.ID,
		ProviderID:   r.ProviderID,
		ProviderName: name,
		Service:      r.Service,
		Subservice:   r.Subservice,
		Status:       r.Status,
		Reason:       r.CancelReason,
		At:           notificationTime(r.Request),
	}
}

func notificationTime(r domain.Request) time.Time {
	switch {
	case r.AcceptedAt != nil:
		return *r.AcceptedAt
	case r.DeclinedAt != nil:
		return *r.DeclinedAt
	case !r.UpdatedAt.IsZero():
		return r.UpdatedAt
	}
	return r.CreatedAt
}

package request

import "errors"

var (
	ErrNotFound                = errors.New("not_found")
	ErrForbidden               = errors.New("forbidden")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrProviderNotFound        = errors.New("provider not found")
	ErrServiceNotOffered       = errors.New("provider does not offer this service")
	ErrScheduleInPast          = errors.New("scheduledFor must be in the future")
	ErrUserIDRequired          = errors.New("userId is required")
	ErrPartyMismatch           = errors.New("userId or providerId does not match the request")
)

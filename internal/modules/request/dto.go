package request

import (
	"time"

	"fixitnow/internal/domain"
)

const (
	defaultNotificationLimit = 20
	maxNotificationLimit     = 100
)

type BookRequest struct {
	ProviderID   string     `json:"providerId" binding:"required"`
	Service      string     `json:"service" binding:"required"`
	Subservice   string     `json:"subservice"`
	Address      string     `json:"address" binding:"required"`
	Description  string     `json:"description"`
	ScheduledFor *time.Time `json:"scheduledFor" binding:"required"`
}

type ListQuery struct {
	UserID     string   `form:"userId"`
	ProviderID string   `form:"providerId"`
	Status     []string `form:"status"`
	Q          string   `form:"q"`
}

type NotificationsQuery struct {
	UserID string `form:"userId"`
	Limit  string `form:"limit"`
}

type DeclineRequest struct {
	Reason string `json:"reason"`
}

// CompleteRequest: a nil Rating means no feedback is recorded. UserID and ProviderID are
// optional cross-checks against the stored request.
type CompleteRequest struct {
	Rating     *float64 `json:"rating"`
	Comment    string   `json:"comment"`
	UserID     string   `json:"userId"`
	ProviderID string   `json:"providerId"`
}

type BookResponse struct {
	Message string          `json:"message"`
	Request *domain.Request `json:"request"`
}

type TransitionResponse struct {
	Message string                 `json:"message"`
	Request *domain.RequestDetails `json:"request"`
}

type CompleteResponse struct {
	Message  string                 `json:"message"`
	Request  *domain.RequestDetails `json:"request"`
	Feedback *domain.Feedback       `json:"feedback"`
}

type NotificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
}

package domain

import (
	"strings"
	"time"
)

type RequestStatus string

const (
	RequestPending    RequestStatus = "Pending"
	RequestAccepted   RequestStatus = "Accepted"
	RequestInProgress RequestStatus = "In Progress"
	RequestCompleted  RequestStatus = "Completed"
	RequestCancelled  RequestStatus = "Cancelled"
	RequestDeclined   RequestStatus = "Declined"
)

const (
	ReasonProviderDeclined = "provider_declined"
	ReasonAdminDeclined    = "admin_declined"
)

// IsTerminal reports whether no transition leaves this status.
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case RequestCompleted, RequestCancelled, RequestDeclined:
		return true
	}
	return false
}

var statusSynonyms = map[string]RequestStatus{
	"pending":     RequestPending,
	"accepted":    RequestAccepted,
	"in progress": RequestInProgress,
	"in_progress": RequestInProgress,
	"in-progress": RequestInProgress,
	"completed":   RequestCompleted,
	"cancelled":   RequestCancelled,
	"canceled":    RequestCancelled,
	"declined":    RequestDeclined,
}

// NormalizeRequestStatus maps user input such as "in_progress" or "ACCEPTED" onto the
// canonical status. Unknown values are returned trimmed but otherwise untouched.
func NormalizeRequestStatus(raw string) RequestStatus {
	v := strings.TrimSpace(raw)
	if s, ok := statusSynonyms[strings.ToLower(v)]; ok {
		return s
	}
	return RequestStatus(v)
}

// Request is a booking of a provider by a customer.
type Request struct {
	ID           string        `json:"id"`
	CustomerID   string        `json:"userId"`
	ProviderID   string        `json:"providerId"`
	Service      string        `json:"service"`
	Subservice   string        `json:"subservice"`
	Address      string        `json:"address"`
	Description  string        `json:"description"`
	Status       RequestStatus `json:"status"`
	ScheduledFor *time.Time    `json:"scheduledFor,omitempty"`
	AcceptedAt   *time.Time    `json:"acceptedAt,omitempty"`
	DeclinedAt   *time.Time    `json:"declinedAt,omitempty"`
	CancelReason string        `json:"cancelReason"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// RequestDetails is a request with the display names of both parties joined at read time.
type RequestDetails struct {
	Request
	ProviderName string `json:"providerName"`
	UserName     string `json:"userName"`
}

// Notification reports an accept or decline decision to the customer who booked.
type Notification struct {
	RequestID    string        `json:"requestId"`
	ProviderID   string        `json:"providerId"`
	ProviderName string        `json:"providerName"`
	Service      string        `json:"service"`
	Subservice   string        `json:"subservice"`
	Status       RequestStatus `json:"status"`
	Reason       string        `json:"reason"`
	At           time.Time     `json:"at"`
}

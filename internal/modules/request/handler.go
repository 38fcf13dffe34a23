package request

import (
	"errors"
	"io"
	"net/http"

	"fixitnow/internal/domain"
	"fixitnow/internal/middleware"
	"fixitnow/internal/pkg/response"
	"fixitnow/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/services/book", middleware.CustomerOnly(), h.Book)

	requests := protected.Group("/requests")
	{
		requests.GET("", h.List)
		requests.GET("/notifications", h.Notifications)
		requests.PATCH("/:id/accept", middleware.ProviderOnly(), h.Accept)
		requests.PATCH("/:id/decline", middleware.RequireRole(domain.RoleProvider, domain.RoleAdmin), h.Decline)
		requests.PATCH("/:id/complete", middleware.CustomerOnly(), h.Complete)
	}
}

// Book handles POST /services/book.
func (h *Handler) Book(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.FieldErrors(err))
		return
	}

	r, err := h.svc.Book(c.Request.Context(), actor, req)
	if err != nil {
		h.fail(c, err, "BOOKING_FAILED")
		return
	}
	response.Success(c, http.StatusCreated, BookResponse{Message: "Request created successfully", Request: r})
}

// List handles GET /requests with optional userId, providerId, status (repeatable) and q.
func (h *Handler) List(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	items, err := h.svc.List(c.Request.Context(), actor, q)
	if err != nil {
		h.fail(c, err, "FETCH_FAILED")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Notifications(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var q NotificationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	items, err := h.svc.Notifications(c.Request.Context(), actor, q)
	if err != nil {
		h.fail(c, err, "FETCH_FAILED")
		return
	}
	response.Success(c, http.StatusOK, NotificationsResponse{Notifications: items})
}

func (h *Handler) Accept(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	r, err := h.svc.Accept(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.fail(c, err, "UPDATE_FAILED")
		return
	}
	response.Success(c, http.StatusOK, TransitionResponse{Message: "Request accepted", Request: r})
}

func (h *Handler) Decline(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req DeclineRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.FieldErrors(err))
		return
	}

	r, err := h.svc.Decline(c.Request.Context(), actor, c.Param("id"), req.Reason)
	if err != nil {
		h.fail(c, err, "UPDATE_FAILED")
		return
	}
	response.Success(c, http.StatusOK, TransitionResponse{Message: "Request declined", Request: r})
}

func (h *Handler) Complete(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req CompleteRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.FieldErrors(err))
		return
	}

	r, fb, err := h.svc.Complete(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		h.fail(c, err, "UPDATE_FAILED")
		return
	}
	response.Success(c, http.StatusOK, CompleteResponse{Message: "Request marked as completed", Request: r, Feedback: fb})
}

func (h *Handler) fail(c *gin.Context, err error, code string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Request not found")
	case errors.Is(err, ErrProviderNotFound):
		response.Error(c, http.StatusNotFound, "PROVIDER_NOT_FOUND", "Provider not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You may only access your own requests")
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", "Request is not in a state that allows this action")
	case errors.Is(err, ErrServiceNotOffered):
		response.Error(c, http.StatusBadRequest, "SERVICE_NOT_OFFERED", err.Error())
	case errors.Is(err, ErrScheduleInPast):
		response.Error(c, http.StatusBadRequest, "INVALID_SCHEDULE", err.Error())
	case errors.Is(err, ErrUserIDRequired):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrPartyMismatch):
		response.Error(c, http.StatusBadRequest, "PARTY_MISMATCH", err.Error())
	default:
		response.Internal(c, code, err)
	}
}

// bindOptionalJSON treats an empty body as the zero value.
func bindOptionalJSON(c *gin.Context, dst any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

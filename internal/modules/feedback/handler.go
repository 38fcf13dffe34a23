package feedback

import (
	"errors"
	"net/http"

	"fixitnow/internal/middleware"
	"fixitnow/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/feedback", h.List)
}

// List handles GET /feedback?userId= or ?providerId=.
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
	switch {
	case errors.Is(err, ErrFilterRequired):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "userId or providerId is required")
		return
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You may only read your own feedback")
		return
	case err != nil:
		response.Internal(c, "FETCH_FAILED", err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

package provider

import (
	"errors"
	"net/http"

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

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/provider/:id", h.Get)
	}
	if protected != nil {
		protected.PATCH("/provider/:id", middleware.RequireSelf("id"), h.Update)
	}
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Provider not found")
			return
		}
		response.Internal(c, "FETCH_FAILED", err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.FieldErrors(err))
		return
	}

	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Provider not found")
			return
		}
		response.Internal(c, "UPDATE_FAILED", err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

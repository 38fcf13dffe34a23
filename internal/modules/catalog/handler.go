package catalog

import (
	"errors"
	"net/http"

	"fixitnow/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/services", h.ListCategories)
	r.GET("/services/providers", h.FindProviders)
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		response.Internal(c, "FETCH_FAILED", err)
		return
	}
	response.Success(c, http.StatusOK, categories)
}

func (h *Handler) FindProviders(c *gin.Context) {
	var q FindProvidersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	out, err := h.service.FindProviders(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, ErrServiceRequired) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "service is required")
			return
		}
		response.Internal(c, "FETCH_FAILED", err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

package auth

import (
	"errors"
	"net/http"

	"fixitnow/internal/middleware"
	"fixitnow/internal/pkg/response"
	"fixitnow/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.RegisterCustomer)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/provider-login", h.ProviderLogin)
		authGroup.POST("/provider-register", h.RegisterProvider)
	}
	r.POST("/provider/register", h.RegisterProvider)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.PATCH("/auth/user/:id", middleware.RequireSelf("id"), h.UpdateCustomer)
}

// RegisterCustomer creates a customer account and signs a token for it.
func (h *Handler) RegisterCustomer(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.FieldErrors(err))
		return
	}

	result, err := h.service.RegisterCustomer(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
			return
		}
		response.Internal(c, "REGISTRATION_FAILED", err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) RegisterProvider(c *gin.Context) {
	var req RegisterProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.FieldErrors(err))
		return
	}

	provider, err := h.service.RegisterProvider(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
			return
		}
		response.Internal(c, "REGISTRATION_FAILED", err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":  "Provider registered successfully",
		"provider": provider,
	})
}

// Login accepts customer or provider credentials.
func (h *Handler) Login(c *gin.Context) {
	h.login(c, KindCustomer, KindProvider)
}

func (h *Handler) ProviderLogin(c *gin.Context) {
	h.login(c, KindProvider)
}

func (h *Handler) login(c *gin.Context, kinds ...Kind) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.FieldErrors(err))
		return
	}

	result, err := h.service.Login(c.Request.Context(), req, kinds...)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
			return
		}
		response.Internal(c, "LOGIN_FAILED", err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) UpdateCustomer(c *gin.Context) {
	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.FieldErrors(err))
		return
	}

	customer, err := h.service.UpdateCustomer(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Internal(c, "UPDATE_FAILED", err)
		return
	}

	response.Success(c, http.StatusOK, customer)
}

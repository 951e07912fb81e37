package auth

import (
	"errors"
	"net/http"

	"festivalapi/internal/pkg/response"
	"festivalapi/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for user accounts.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the account endpoints. anonymous must reject
// authenticated callers with 403; protected must reject unauthenticated
// callers with 403.
func (h *Handler) RegisterRoutes(anonymous, protected *gin.RouterGroup) {
	anonymous.POST("/user", h.Register)
	anonymous.PUT("/user/login", h.Login)
	anonymous.PATCH("/user/login", h.Login)
	protected.DELETE("/user/logout", h.Logout)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", fields)
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPasswordMismatch):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input",
				gin.H{"password": "Password fields didn't match"})
		case errors.Is(err, ErrWeakPassword):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input",
				gin.H{"password": "Password must be at least 8 characters and not entirely numeric"})
		case errors.Is(err, ErrUsernameTaken):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input",
				gin.H{"username": "This username is already taken"})
		case errors.Is(err, ErrEmailTaken):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input",
				gin.H{"email": "This email is already registered"})
		default:
			response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register user")
		}
		return
	}

	response.Success(c, http.StatusCreated, UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsStaff:  user.IsStaff,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", fields)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInactiveAccount):
			response.Error(c, http.StatusBadRequest, "INVALID_CREDENTIALS", "Username or password is incorrect")
		default:
			response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		}
		return
	}

	response.Success(c, http.StatusAccepted, gin.H{
		"user": UserResponse{
			ID:       result.User.ID,
			Username: result.User.Username,
			Email:    result.User.Email,
			IsStaff:  result.User.IsStaff,
		},
		"token": result.AccessToken,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	jti := c.GetString("session_jti")

	if err := h.service.Logout(c.Request.Context(), jti); err != nil {
		response.Error(c, http.StatusInternalServerError, "LOGOUT_FAILED", "Failed to logout")
		return
	}

	c.Status(http.StatusNoContent)
}

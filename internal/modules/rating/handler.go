package rating

import (
	"errors"
	"net/http"
	"strconv"

	"festivalapi/internal/pkg/response"
	"festivalapi/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(authed *gin.RouterGroup) {
	authed.GET("/ratings", h.List)
	authed.GET("/ratings/:id", h.Get)
	authed.POST("/ratings", h.Create)
	authed.PUT("/ratings/:id", h.Update)
	authed.PATCH("/ratings/:id", h.PartialUpdate)
	authed.DELETE("/ratings/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	items, total, err := h.service.List(c.Request.Context(), c.Query("festival"), c.Query("ordering"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list ratings")
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Items: items, Total: total})
}

func (h *Handler) Get(c *gin.Context) {
	rating, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err, "Failed to fetch rating")
		return
	}

	response.Success(c, http.StatusOK, rating)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", fields)
		return
	}

	rating, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.renderError(c, err, "Failed to create rating")
		return
	}

	response.Success(c, http.StatusCreated, rating)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", fields)
		return
	}

	rating, err := h.service.Update(c.Request.Context(), c.Param("id"), c.GetInt64("user_id"), req)
	if err != nil {
		h.renderError(c, err, "Failed to update rating")
		return
	}

	response.Success(c, http.StatusOK, rating)
}

func (h *Handler) PartialUpdate(c *gin.Context) {
	var req PatchRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", fields)
		return
	}

	rating, err := h.service.PartialUpdate(c.Request.Context(), c.Param("id"), c.GetInt64("user_id"), req)
	if err != nil {
		h.renderError(c, err, "Failed to update rating")
		return
	}

	response.Success(c, http.StatusOK, rating)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), c.GetInt64("user_id")); err != nil {
		h.renderError(c, err, "Failed to delete rating")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) renderError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Rating not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not the owner of this rating")
	case errors.Is(err, ErrAlreadyRated):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input",
			gin.H{"festival": "You have already rated this festival"})
	case errors.Is(err, ErrFestivalNotFound):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input",
			gin.H{"festival": "Unknown festival"})
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", fallback)
	}
}

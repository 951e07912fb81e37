package festival

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

// RegisterRoutes mounts read endpoints on authed and mutating endpoints on
// staff (JWTAuth + StaffOnly).
func (h *Handler) RegisterRoutes(authed, staff *gin.RouterGroup) {
	authed.GET("/festivals", h.List)
	authed.GET("/festivals/:id", h.Get)
	authed.GET("/festivals/:id/rating", h.AverageRating)
	authed.GET("/festivals/:id/comments", h.Comments)

	staff.POST("/festivals", h.Create)
	staff.PUT("/festivals/:id", h.Update)
	staff.PATCH("/festivals/:id", h.PartialUpdate)
	staff.DELETE("/festivals/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	items, total, err := h.service.List(c.Request.Context(), c.Query("search"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list festivals")
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Items: items, Total: total})
}

func (h *Handler) Get(c *gin.Context) {
	festival, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Festival not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to fetch festival")
		return
	}

	response.Success(c, http.StatusOK, festival)
}

func (h *Handler) AverageRating(c *gin.Context) {
	average, err := h.service.AverageRating(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNoRatings):
			c.Status(http.StatusNoContent)
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Festival not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to compute rating")
		}
		return
	}

	response.Success(c, http.StatusOK, AverageRatingResponse{Average: average})
}

func (h *Handler) Comments(c *gin.Context) {
	comments, err := h.service.Comments(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Festival not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to fetch comments")
		return
	}

	response.Success(c, http.StatusOK, comments)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateFestivalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", fields)
		return
	}

	festival, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input",
				gin.H{"id": "A festival with this id already exists"})
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to create festival")
		return
	}

	response.Success(c, http.StatusCreated, festival)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateFestivalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", fields)
		return
	}

	festival, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Festival not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to update festival")
		return
	}

	response.Success(c, http.StatusOK, festival)
}

func (h *Handler) PartialUpdate(c *gin.Context) {
	var req PatchFestivalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", fields)
		return
	}

	festival, err := h.service.PartialUpdate(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Festival not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to update festival")
		return
	}

	response.Success(c, http.StatusOK, festival)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Festival not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to delete festival")
		return
	}

	c.Status(http.StatusNoContent)
}

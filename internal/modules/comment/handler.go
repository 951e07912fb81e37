package comment

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
	authed.GET("/comments", h.List)
	authed.GET("/comments/:id", h.Get)
	authed.POST("/comments", h.Create)
	authed.PUT("/comments/:id", h.Update)
	authed.PATCH("/comments/:id", h.PartialUpdate)
	authed.DELETE("/comments/:id", h.Delete)

	authed.POST("/comments/:id/like", h.Like)
	authed.DELETE("/comments/:id/unlike", h.Unlike)
	authed.GET("/comments/:id/likes", h.Likes)
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	search, searchSet := c.GetQuery("search")

	items, total, err := h.service.List(c.Request.Context(), ListParams{
		FestivalID: c.Query("festival"),
		Search:     search,
		SearchSet:  searchSet,
		Ordering:   c.Query("ordering"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list comments")
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Items: items, Total: total})
}

func (h *Handler) Get(c *gin.Context) {
	comment, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err, "Failed to fetch comment")
		return
	}

	response.Success(c, http.StatusOK, comment)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", fields)
		return
	}

	comment, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrFestivalNotFound) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input",
				gin.H{"festival": "Unknown festival"})
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to create comment")
		return
	}

	response.Success(c, http.StatusCreated, comment)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", fields)
		return
	}

	comment, err := h.service.Update(c.Request.Context(), c.Param("id"), c.GetInt64("user_id"), req)
	if err != nil {
		h.renderError(c, err, "Failed to update comment")
		return
	}

	response.Success(c, http.StatusOK, comment)
}

func (h *Handler) PartialUpdate(c *gin.Context) {
	var req PatchCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", fields)
		return
	}

	comment, err := h.service.PartialUpdate(c.Request.Context(), c.Param("id"), c.GetInt64("user_id"), req)
	if err != nil {
		h.renderError(c, err, "Failed to update comment")
		return
	}

	response.Success(c, http.StatusOK, comment)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), c.GetInt64("user_id")); err != nil {
		h.renderError(c, err, "Failed to delete comment")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Like(c *gin.Context) {
	total, err := h.service.Like(c.Request.Context(), c.Param("id"), c.GetInt64("user_id"))
	if err != nil {
		h.renderError(c, err, "Failed to like comment")
		return
	}

	response.Success(c, http.StatusCreated, TotalLikesResponse{Total: total})
}

func (h *Handler) Unlike(c *gin.Context) {
	total, err := h.service.Unlike(c.Request.Context(), c.Param("id"), c.GetInt64("user_id"))
	if err != nil {
		h.renderError(c, err, "Failed to unlike comment")
		return
	}

	response.Success(c, http.StatusOK, TotalLikesResponse{Total: total})
}

func (h *Handler) Likes(c *gin.Context) {
	total, err := h.service.Likes(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err, "Failed to count likes")
		return
	}

	response.Success(c, http.StatusOK, TotalLikesResponse{Total: total})
}

func (h *Handler) renderError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Comment not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not the author of this comment")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", fallback)
	}
}

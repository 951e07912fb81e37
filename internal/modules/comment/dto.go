package comment

import "festivalapi/internal/domain"

// CreateCommentRequest carries no author field on purpose: the author is
// always the requesting user.
type CreateCommentRequest struct {
	Festival string `json:"festival" validate:"required,max=20"`
	Content  string `json:"content" validate:"required,max=255"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,max=255"`
}

type PatchCommentRequest struct {
	Content *string `json:"content,omitempty" validate:"omitempty,max=255"`
}

type TotalLikesResponse struct {
	Total int64 `json:"total"`
}

type ListResponse struct {
	Items []domain.Comment `json:"items"`
	Total int64            `json:"total"`
}

package rating

import "festivalapi/internal/domain"

// CreateRatingRequest carries no user field on purpose: the owner is always
// the requesting user.
type CreateRatingRequest struct {
	Festival string `json:"festival" validate:"required,max=20"`
	Rating   *int   `json:"rating" validate:"required,gte=0,lte=5"`
}

type UpdateRatingRequest struct {
	Festival string `json:"festival" validate:"required,max=20"`
	Rating   *int   `json:"rating" validate:"required,gte=0,lte=5"`
}

type PatchRatingRequest struct {
	Festival *string `json:"festival,omitempty" validate:"omitempty,max=20"`
	Rating   *int    `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

type ListResponse struct {
	Items []domain.Rating `json:"items"`
	Total int64           `json:"total"`
}

package festival

import "festivalapi/internal/domain"

type CreateFestivalRequest struct {
	ID          string  `json:"id" validate:"required,max=20"`
	Name        string  `json:"name" validate:"required,max=100"`
	Discipline  string  `json:"discipline" validate:"required,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Website     *string `json:"website,omitempty" validate:"omitempty,url"`
	Period      *string `json:"period,omitempty" validate:"omitempty,max=100"`
	Region      *string `json:"region,omitempty" validate:"omitempty,max=100"`
	Department  *string `json:"department,omitempty" validate:"omitempty,max=100"`
	Commune     *string `json:"commune,omitempty" validate:"omitempty,max=100"`
	Postcode    *string `json:"postcode,omitempty" validate:"omitempty,postcode"`
}

// UpdateFestivalRequest fully replaces every mutable field.
type UpdateFestivalRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Discipline  string  `json:"discipline" validate:"required,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Website     *string `json:"website,omitempty" validate:"omitempty,url"`
	Period      *string `json:"period,omitempty" validate:"omitempty,max=100"`
	Region      *string `json:"region,omitempty" validate:"omitempty,max=100"`
	Department  *string `json:"department,omitempty" validate:"omitempty,max=100"`
	Commune     *string `json:"commune,omitempty" validate:"omitempty,max=100"`
	Postcode    *string `json:"postcode,omitempty" validate:"omitempty,postcode"`
}

// PatchFestivalRequest updates only the fields present in the body.
type PatchFestivalRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Discipline  *string `json:"discipline,omitempty" validate:"omitempty,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Website     *string `json:"website,omitempty" validate:"omitempty,url"`
	Period      *string `json:"period,omitempty" validate:"omitempty,max=100"`
	Region      *string `json:"region,omitempty" validate:"omitempty,max=100"`
	Department  *string `json:"department,omitempty" validate:"omitempty,max=100"`
	Commune     *string `json:"commune,omitempty" validate:"omitempty,max=100"`
	Postcode    *string `json:"postcode,omitempty" validate:"omitempty,postcode"`
}

type AverageRatingResponse struct {
	Average float64 `json:"average"`
}

type ListResponse struct {
	Items []domain.Festival `json:"items"`
	Total int64             `json:"total"`
}

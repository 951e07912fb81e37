package rating

import "errors"

var (
	ErrNotFound         = errors.New("not_found")
	ErrForbidden        = errors.New("forbidden")
	ErrAlreadyRated     = errors.New("already_rated")
	ErrFestivalNotFound = errors.New("festival_not_found")
)

package comment

import "errors"

var (
	ErrNotFound         = errors.New("not_found")
	ErrForbidden        = errors.New("forbidden")
	ErrFestivalNotFound = errors.New("festival_not_found")
)

package festival

import "errors"

var (
	ErrNotFound      = errors.New("not_found")
	ErrAlreadyExists = errors.New("already_exists")
	ErrNoRatings     = errors.New("no_ratings")
)

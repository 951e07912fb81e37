package ticketing

import "errors"

var (
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
	ErrSoldOut        = errors.New("sold_out")
)

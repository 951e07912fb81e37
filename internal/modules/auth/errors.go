package auth

import "errors"

var (
	ErrUsernameTaken      = errors.New("username_taken")
	ErrEmailTaken         = errors.New("email_taken")
	ErrPasswordMismatch   = errors.New("password_mismatch")
	ErrWeakPassword       = errors.New("weak_password")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInactiveAccount    = errors.New("inactive_account")
)

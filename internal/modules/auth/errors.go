package auth

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid_request")
	ErrEmailTaken         = errors.New("email_taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

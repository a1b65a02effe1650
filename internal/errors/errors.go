package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("too many failed login attempts")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrAPIKeyNotFound     = errors.New("api key not found")
)

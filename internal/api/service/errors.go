package service

import "errors"

var (
	ErrTokenMalformed     = errors.New("token_malformed")
	ErrTokenExpired       = errors.New("token_expired")
	ErrTokenReused        = errors.New("token_reused")
	ErrIdentityNotFound   = errors.New("identity_not_found")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrSelfTarget         = errors.New("self_target")
	ErrInvalidInput       = errors.New("invalid_input")
)

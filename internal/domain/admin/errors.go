package admin

import "errors"

var (
	ErrInvalidCredentials = errors.New("unknown user or invalid password")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrEmailTaken         = errors.New("email already in use")
)

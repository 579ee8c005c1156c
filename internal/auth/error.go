package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotActive is returned only after a successful credential
	// match, so the distinct wording does not leak account existence.
	ErrUserNotActive = errors.New("user is not active")
)

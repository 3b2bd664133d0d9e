package domain

import "errors"

var (
	// ErrInvalidToken covers every bearer-credential verification failure:
	// malformed token, expired, bad signature, unreachable key set. Callers
	// always see the same generic message.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrIdentityUnresolved means the credential verified but no email could
	// be obtained from either the claims or the provider lookup.
	ErrIdentityUnresolved = errors.New("could not resolve user email")

	ErrForbidden = errors.New("access forbidden")

	// ErrNotFound is returned both when an owned entity does not exist and
	// when it exists but belongs to someone else. The two cases stay
	// indistinguishable to prevent enumeration.
	ErrNotFound = errors.New("not found")

	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

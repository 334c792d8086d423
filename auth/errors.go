package auth

import "errors"

// Sentinel errors for token verification. Verify always returns exactly one
// of these so callers can map failures to a response class without inspecting
// library error chains.
var (
	ErrTokenMissing   = errors.New("auth: access token missing")
	ErrTokenMalformed = errors.New("auth: token malformed")
	ErrTokenSignature = errors.New("auth: token signature invalid")
	ErrTokenExpired   = errors.New("auth: token expired")
)

package gate

import "errors"

// Sentinel errors returned by resolvers and permission checks.
var (
	ErrUserNotFound           = errors.New("gate: user not found")
	ErrNoRoleAssigned         = errors.New("gate: no role assigned")
	ErrInsufficientPermission = errors.New("gate: insufficient permission")
)

package constants

import "time"

const (
	AuthTokenDuration = 7 * 24 * time.Hour // sessions are never refreshed, they simply run out
	PasswordHashCost  = 10                 // bcrypt cost for new password hashes
)

// Context keys set by the auth middleware
const (
	ContextKeyIdentity = "identity"
)

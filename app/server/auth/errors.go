package auth

import "errors"

// Classified failures. Anything else returned by this package is an internal error
// and must not be shown to the caller.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrRUTTaken           = errors.New("rut already registered")
	ErrMissingToken       = errors.New("missing auth token")
	ErrMalformedToken     = errors.New("malformed auth token")
	ErrExpiredToken       = errors.New("expired auth token")
	ErrInvalidAccount     = errors.New("invalid or inactive account")
)

var classified = []error{
	ErrInvalidCredentials,
	ErrUsernameTaken,
	ErrRUTTaken,
	ErrMissingToken,
	ErrMalformedToken,
	ErrExpiredToken,
	ErrInvalidAccount,
}

// Classify returns the sentinel err belongs to, or nil for internal errors.
func Classify(err error) error {
	for _, kind := range classified {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

var messages = map[error]string{
	ErrInvalidCredentials: "invalid username or password",
	ErrUsernameTaken:      "username is already in use",
	ErrRUTTaken:           "a member with this rut already exists",
	ErrMissingToken:       "no authentication token provided",
	ErrMalformedToken:     "invalid token",
	ErrExpiredToken:       "token expired",
	ErrInvalidAccount:     "invalid or inactive user",
}

// Message is the text shown to the caller for err. Internal errors get a generic text.
func Message(err error) string {
	if msg, ok := messages[Classify(err)]; ok {
		return msg
	}
	return "internal server error"
}

var kinds = map[error]string{
	ErrInvalidCredentials: "invalid_credentials",
	ErrUsernameTaken:      "username_taken",
	ErrRUTTaken:           "rut_taken",
	ErrMissingToken:       "missing_token",
	ErrMalformedToken:     "malformed_token",
	ErrExpiredToken:       "expired_token",
	ErrInvalidAccount:     "invalid_account",
}

// Kind names the outcome of an auth operation for metrics labels.
func Kind(err error) string {
	if err == nil {
		return "success"
	}
	if kind, ok := kinds[Classify(err)]; ok {
		return kind
	}
	return "internal"
}

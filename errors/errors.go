package errors

import "fmt"

var (
	// ErrInvalidCredentials is deliberately generic: it never reveals whether
	// the username or the password was wrong.
	ErrInvalidCredentials = fmt.Errorf("login failed, contact an admin for account support")

	ErrRateLimited       = fmt.Errorf("rate limit active, wait between messages")
	ErrInvalidContent    = fmt.Errorf("only plain text messages are allowed")
	ErrRouteDenied       = fmt.Errorf("this message route is not allowed")
	ErrUnauthorized      = fmt.Errorf("action reserved to admins")
	ErrDuplicateUsername = fmt.Errorf("username already exists")
	ErrUnknownMessage    = fmt.Errorf("no such message")
	ErrInvalidAccount    = fmt.Errorf("invalid account details")
)

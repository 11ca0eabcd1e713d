package errs

import "errors"

// Everything here is recovered at the request boundary: the handler turns the
// error into a flash message and a redirect, nothing propagates as fatal.
var (
	ErrDuplicateEmail          = errors.New("email already registered")
	ErrInvalidInviteCode       = errors.New("invalid invite code")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrInvalidAdminCredentials = errors.New("invalid admin credentials")
	ErrNotFound                = errors.New("not found")
	ErrUnauthenticated         = errors.New("login required")
	ErrUnauthorized            = errors.New("admin access required")
)

package services

import (
	"errors"

	"github.com/google/uuid"
)

// Errors returned by the services. Controllers translate them into HTTP
// responses; anything else is an unexpected failure.
var (
	ErrContentMissing     = errors.New("content missing")
	ErrBlogFieldsMissing  = errors.New("author, title or url is missing")
	ErrMalformedID        = errors.New("malformatted id")
	ErrNotFound           = errors.New("not found")
	ErrPasswordTooShort   = errors.New("password must be 3 or more characters long")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("token missing or invalid")
	ErrNotAllowed         = errors.New("not allowed to remove blog")
	ErrOwnerLinkFailed    = errors.New("blog stored but owner not updated")
)

// parseID rejects identifiers that are not well-formed UUIDs.
func parseID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrMalformedID
	}
	return nil
}

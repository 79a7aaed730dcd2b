package services

import "errors"

var (
	// ErrNotFound covers lookups for records that do not exist or are not
	// owned by the requesting user. Mutating calls hitting it are no-ops.
	ErrNotFound = errors.New("not found")

	// ErrForbidden marks operations on records the caller is not linked to.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidJoinCode is returned when student registration carries a code
	// that matches no coach.
	ErrInvalidJoinCode = errors.New("invalid coach join code")

	// ErrAlreadyAnnotated guards the one-shot coach comment on an exchange.
	ErrAlreadyAnnotated = errors.New("exchange already has a coach comment")
)

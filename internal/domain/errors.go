package domain

import "errors"

var (
	// ErrBadRequest reports a missing or invalid argument, detected before
	// any remote call is issued.
	ErrBadRequest = errors.New("bad request")

	// ErrForbidden reports an operation that would violate an invariant,
	// such as leaving a room without another accepted moderator.
	ErrForbidden = errors.New("forbidden")

	// ErrRemoteFailure reports an opaque failure surfaced by a collaborator.
	ErrRemoteFailure = errors.New("remote failure")
)

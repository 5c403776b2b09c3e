package errors

import "errors"

var (
	// ErrInvitationNotFound indicates the invitation token matched nothing
	ErrInvitationNotFound = errors.New("invitation not found")

	// ErrInvitationExpired indicates the invitation passed its expiry date
	ErrInvitationExpired = errors.New("invitation has expired")

	// ErrInvitationAlreadyValidated indicates the invitation was already used
	ErrInvitationAlreadyValidated = errors.New("invitation already validated")
)

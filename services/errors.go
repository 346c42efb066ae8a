package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map these onto
// the HTTP taxonomy: not found -> 404, forbidden -> 403, the rest -> 400.
var (
	ErrNotFound      = errors.New("referenced record not found")
	ErrLimitExceeded = errors.New("daily pink card limit exceeded")
	ErrStateConflict = errors.New("operation not valid in current state")
	ErrForbidden     = errors.New("actor role does not permit this operation")
	ErrAlreadyFired  = errors.New("employee is already deactivated")
	ErrNothingToPay  = errors.New("no calculated salaries for month")
)

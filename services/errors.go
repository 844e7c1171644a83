package services

import "errors"

// Precondition failures surfaced by the group services. Controllers map
// these to HTTP statuses; none of them are retried and none leave a
// partially mutated store behind.
var (
	ErrGroupNotFound   = errors.New("prayer group not found")
	ErrNotMember       = errors.New("only group members can do this")
	ErrRequestNotFound = errors.New("prayer request not found")
	ErrForbidden       = errors.New("only facilitators or the author can archive this request")
)

// ValidationError carries a field-level message for bad request input.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

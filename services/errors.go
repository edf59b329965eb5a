package services

// Typed errors let the controllers map service failures onto the response
// envelope in one place. User-facing messages only; no internal identifiers.

// ValidationError means the input was missing or malformed (400).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError means the record is absent or owned by a different tenant (404).
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// ConflictError means the operation lost to an earlier state change, e.g.
// re-converting an already-converted estimate (400).
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// UnauthorizedError means the caller has no valid identity (401).
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string { return e.Msg }

// LimitError means the caller's plan does not allow the operation (400, with
// an upgrade hint in the message).
type LimitError struct {
	Msg string
}

func (e *LimitError) Error() string { return e.Msg }

func errValidation(msg string) error { return &ValidationError{Msg: msg} }
func errNotFound(msg string) error   { return &NotFoundError{Msg: msg} }
func errConflict(msg string) error   { return &ConflictError{Msg: msg} }
func errLimit(msg string) error      { return &LimitError{Msg: msg} }

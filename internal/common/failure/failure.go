// Package failure defines the typed failures returned by lifecycle operations.
//
// Every command returns either success or a *Error carrying a Kind. Callers
// branch on the kind with errors.Is:
//
//	if errors.Is(err, failure.PreconditionFailed) { ... }
//
// The Reason is a stable machine code that the messaging service turns into
// an operator-facing message.
package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a failure
type Kind string

// Error implements the error interface so a Kind can be used as an errors.Is target
func (k Kind) Error() string {
	return string(k)
}

const (
	// PreconditionFailed indicates the operation is not allowed in the current state of the venue
	PreconditionFailed Kind = "precondition failed"

	// InvalidTransition indicates a state machine operation called out of order
	InvalidTransition Kind = "invalid transition"

	// InvalidDuration indicates a requested or additional duration is out of range
	InvalidDuration Kind = "invalid duration"

	// InvalidPaymentMethod indicates a missing or unknown payment method
	InvalidPaymentMethod Kind = "invalid payment method"

	// AlreadyTerminated is the non-fatal result of terminating a completed session
	AlreadyTerminated Kind = "already terminated"

	// PersistenceContention indicates the store stayed busy or locked
	PersistenceContention Kind = "persistence contention"

	// PersistenceFailure indicates a write could not be persisted
	PersistenceFailure Kind = "persistence failure"

	// NotFound indicates a referenced entity does not exist
	NotFound Kind = "not found"

	// InvalidInput indicates a malformed request
	InvalidInput Kind = "invalid input"
)

// Reason is a machine-readable failure code
type Reason string

const (
	ReasonStationOccupied       Reason = "station_occupied"
	ReasonStationOutOfService   Reason = "station_out_of_service"
	ReasonReservationNotPending Reason = "reservation_not_pending"
	ReasonReservationActive     Reason = "reservation_active"
	ReasonDuplicateSession      Reason = "duplicate_session"
	ReasonSessionNotActive      Reason = "session_not_active"
	ReasonSessionNotPaused      Reason = "session_not_paused"
	ReasonSessionCompleted      Reason = "session_completed"
	ReasonDurationTooShort      Reason = "duration_too_short"
	ReasonDurationNotPositive   Reason = "duration_not_positive"
	ReasonPaymentMethodMissing  Reason = "payment_method_missing"
	ReasonPaymentMethodUnknown  Reason = "payment_method_unknown"
	ReasonDatabaseBusy          Reason = "database_busy"
	ReasonConstraintViolation   Reason = "constraint_violation"
	ReasonReservationNotFound   Reason = "reservation_not_found"
	ReasonSessionNotFound       Reason = "session_not_found"
	ReasonStationNotFound       Reason = "station_not_found"
	ReasonClientNotFound        Reason = "client_not_found"
	ReasonReferrerNotFound      Reason = "referrer_not_found"
	ReasonGameNotFound          Reason = "game_not_found"
	ReasonPromotionNotFound     Reason = "promotion_not_found"
	ReasonGameNotSupported      Reason = "game_not_supported"
	ReasonMissingField          Reason = "missing_field"
	ReasonInvalidValue          Reason = "invalid_value"
)

// Error is a typed failure
type Error struct {
	// Kind is the failure class
	Kind Kind

	// Reason is the machine code for the specific cause
	Reason Reason

	// Detail is free text for logs
	Detail string

	// Err is the underlying cause, if any
	Err error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Reason != "" {
		msg += ": " + string(e.Reason)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches a Kind target against this failure's kind
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// New creates a failure of the given kind and reason
func New(kind Kind, reason Reason, detail string) *Error {
	return &Error{Kind: kind, Reason: reason, Detail: detail}
}

// Newf creates a failure with a formatted detail
func Newf(kind Kind, reason Reason, format string, args ...any) *Error {
	return New(kind, reason, fmt.Sprintf(format, args...))
}

// Wrap creates a failure around an underlying cause
func Wrap(kind Kind, reason Reason, err error) *Error {
	return &Error{Kind: kind, Reason: reason, Err: err}
}

// KindOf returns the kind of the outermost failure in err's chain, or "" if none
func KindOf(err error) Kind {
	var f *Error
	if errors.As(err, &f) {
		return f.Kind
	}
	return ""
}

// ReasonOf returns the first non-empty reason in err's chain
func ReasonOf(err error) Reason {
	for err != nil {
		var f *Error
		if !errors.As(err, &f) {
			return ""
		}
		if f.Reason != "" {
			return f.Reason
		}
		err = f.Err
	}
	return ""
}

// IsFatal reports whether err must be surfaced as a failed operation.
// AlreadyTerminated is an idempotent no-op and is not fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, AlreadyTerminated)
}

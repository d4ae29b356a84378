package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/entity"
)

// Every persistence call is bounded so a stalled store surfaces as an error
// instead of a hung request.
const dbTimeout = 5 * time.Second

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrAlreadyCheckedIn   = errors.New("already checked in for today")
	ErrAlreadyCheckedOut  = errors.New("already checked out for today")
	ErrNoCheckInToday     = errors.New("no check-in found for today")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidTransition  = errors.New("order status transition not allowed")
	ErrNoActiveSession    = errors.New("no active session for this table")
	ErrTotalMismatch      = errors.New("submitted total does not match order items")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// TableOccupiedError carries the occupying party's summary so the client can
// show who holds the table without a follow-up request.
type TableOccupiedError struct {
	Session entity.SessionSummary
}

func (e *TableOccupiedError) Error() string {
	return "this table is currently occupied"
}

// ValidationError marks malformed input; the message is user-facing.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

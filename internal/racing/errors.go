package racing

import (
	"errors"
	"fmt"
)

// RaceError represents a lifecycle or argument error raised by a Game.
//
// Lifecycle errors (ErrCodeInvalidState) are programmer errors: the caller
// used the Game out of order. They are not meant to be retried.
type RaceError struct {
	// Code identifies the error category.
	Code RaceErrorCode

	// Message is a human-readable description.
	Message string

	// RaceID identifies the affected race, if one was assigned.
	RaceID string
}

// RaceErrorCode categorizes race errors.
type RaceErrorCode string

const (
	// ErrCodeInvalidState indicates a method was called out of lifecycle order.
	ErrCodeInvalidState RaceErrorCode = "INVALID_STATE"

	// ErrCodeInvalidArgument indicates a rejected argument (e.g. rounds <= 0).
	ErrCodeInvalidArgument RaceErrorCode = "INVALID_ARGUMENT"

	// ErrCodeDrawOutOfRange indicates the DrawSource returned a value outside
	// [DrawMin, DrawMax]. The race is failed.
	ErrCodeDrawOutOfRange RaceErrorCode = "DRAW_OUT_OF_RANGE"
)

// Error implements the error interface.
func (e *RaceError) Error() string {
	if e.RaceID != "" {
		return fmt.Sprintf("%s: %s (race=%s)", e.Code, e.Message, e.RaceID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidState returns true if err is, or wraps, an INVALID_STATE error.
func IsInvalidState(err error) bool {
	return hasCode(err, ErrCodeInvalidState)
}

// IsInvalidArgument returns true if err is, or wraps, an INVALID_ARGUMENT error.
func IsInvalidArgument(err error) bool {
	return hasCode(err, ErrCodeInvalidArgument)
}

// IsDrawOutOfRange returns true if err is, or wraps, a DRAW_OUT_OF_RANGE error.
func IsDrawOutOfRange(err error) bool {
	return hasCode(err, ErrCodeDrawOutOfRange)
}

func hasCode(err error, code RaceErrorCode) bool {
	var re *RaceError
	if errors.As(err, &re) {
		return re.Code == code
	}
	return false
}

func newStateError(raceID, format string, args ...any) *RaceError {
	return &RaceError{
		Code:    ErrCodeInvalidState,
		Message: fmt.Sprintf(format, args...),
		RaceID:  raceID,
	}
}

func newArgumentError(raceID, format string, args ...any) *RaceError {
	return &RaceError{
		Code:    ErrCodeInvalidArgument,
		Message: fmt.Sprintf(format, args...),
		RaceID:  raceID,
	}
}

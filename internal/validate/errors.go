package validate

import (
	"errors"
	"fmt"
)

// ErrorPrefix starts every message shown to the player.
const ErrorPrefix = "[ERROR]"

// Error codes, shared with harness scenarios and JSON output.
const (
	CodeLengthOverflow  = "LENGTH_OVERFLOW"
	CodeInvalidArgument = "INVALID_ARGUMENT"
)

// LengthOverflowError is returned for a car name that is empty or longer
// than MaxNameLength.
type LengthOverflowError struct {
	Name string
	Max  int
}

func (e *LengthOverflowError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s 자동차 이름은 비어 있을 수 없습니다. (최대 %d자)", ErrorPrefix, e.Max)
	}
	return fmt.Sprintf("%s 자동차 이름은 %d자 이하만 가능합니다. (입력: %s)", ErrorPrefix, e.Max, e.Name)
}

// InvalidArgumentError is returned for malformed input other than name length:
// a non-numeric or non-positive round count, or a duplicated car name.
type InvalidArgumentError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s %s (입력: %s)", ErrorPrefix, e.Reason, e.Value)
}

// Code returns the error code for a validation error, or "" if err is not one.
func Code(err error) string {
	var lengthErr *LengthOverflowError
	if errors.As(err, &lengthErr) {
		return CodeLengthOverflow
	}
	var argErr *InvalidArgumentError
	if errors.As(err, &argErr) {
		return CodeInvalidArgument
	}
	return ""
}

// IsValidationError reports whether err is a user-recoverable input error.
func IsValidationError(err error) bool {
	return Code(err) != ""
}

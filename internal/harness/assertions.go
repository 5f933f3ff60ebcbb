package harness

import (
	"fmt"
	"slices"
	"strings"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type       string // Assertion type for categorization
	Expected   string // Human-readable expected outcome
	Actual     string // Human-readable actual outcome
	Transcript string // Full transcript for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if e.Transcript != "" {
		fmt.Fprintf(&buf, "\nTranscript:\n")
		for _, line := range strings.Split(e.Transcript, "\n") {
			fmt.Fprintf(&buf, "  %s\n", line)
		}
	}

	return buf.String()
}

// assertWinners checks the winners exactly, order included.
func assertWinners(result *Result, assertion Assertion) error {
	if slices.Equal(result.Winners, assertion.Names) {
		return nil
	}
	return &AssertionError{
		Type:       AssertWinners,
		Expected:   fmt.Sprintf("winners %v", assertion.Names),
		Actual:     fmt.Sprintf("winners %v", result.Winners),
		Transcript: result.Transcript,
	}
}

// assertDistance checks one car's final distance.
func assertDistance(result *Result, assertion Assertion) error {
	got, ok := result.Distance(assertion.Car)
	if !ok {
		return &AssertionError{
			Type:     AssertDistance,
			Expected: fmt.Sprintf("car %s in roster", assertion.Car),
			Actual:   "car not found",
		}
	}
	if got != *assertion.Distance {
		return &AssertionError{
			Type:       AssertDistance,
			Expected:   fmt.Sprintf("%s at distance %d", assertion.Car, *assertion.Distance),
			Actual:     fmt.Sprintf("%s at distance %d", assertion.Car, got),
			Transcript: result.Transcript,
		}
	}
	return nil
}

// assertLineCount checks how many lines the transcript splits into.
func assertLineCount(result *Result, assertion Assertion) error {
	got := len(strings.Split(result.Transcript, "\n"))
	if got != assertion.Count {
		return &AssertionError{
			Type:       AssertLineCount,
			Expected:   fmt.Sprintf("%d lines", assertion.Count),
			Actual:     fmt.Sprintf("%d lines", got),
			Transcript: result.Transcript,
		}
	}
	return nil
}

// assertTranscriptContains checks for a substring in the transcript.
func assertTranscriptContains(result *Result, assertion Assertion) error {
	if strings.Contains(result.Transcript, assertion.Text) {
		return nil
	}
	return &AssertionError{
		Type:       AssertTranscriptContains,
		Expected:   fmt.Sprintf("transcript containing %q", assertion.Text),
		Actual:     "not found",
		Transcript: result.Transcript,
	}
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errs []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertWinners:
			err = assertWinners(result, assertion)
		case AssertDistance:
			if assertion.Distance == nil {
				err = fmt.Errorf("assertion[%d]: distance is required", i)
			} else {
				err = assertDistance(result, assertion)
			}
		case AssertLineCount:
			err = assertLineCount(result, assertion)
		case AssertTranscriptContains:
			err = assertTranscriptContains(result, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	return errs
}

package validate

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Name limits and the input delimiter.
const (
	MinNameLength = 1
	MaxNameLength = 5
	NameDelimiter = ","
)

// SplitCarNames splits comma-delimited input into trimmed names, in order.
//
// Names are NFC-normalised so that a precomposed and a decomposed Hangul
// syllable count as one character each. Empty segments are kept; they fail
// ValidateCarName.
func SplitCarNames(raw string) []string {
	parts := strings.Split(raw, NameDelimiter)
	names := make([]string, len(parts))
	for i, p := range parts {
		names[i] = norm.NFC.String(strings.TrimSpace(p))
	}
	return names
}

// ValidateCarName rejects names shorter than MinNameLength or longer than
// MaxNameLength characters.
func ValidateCarName(name string) error {
	n := utf8.RuneCountInString(norm.NFC.String(name))
	if n < MinNameLength || n > MaxNameLength {
		return &LengthOverflowError{Name: name, Max: MaxNameLength}
	}
	return nil
}

// ValidateCarNames validates each name and rejects duplicates.
// The first failing name determines the error.
func ValidateCarNames(names []string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if err := ValidateCarName(name); err != nil {
			return err
		}
		key := norm.NFC.String(name)
		if seen[key] {
			return &InvalidArgumentError{
				Field:  "cars",
				Value:  name,
				Reason: "자동차 이름은 중복될 수 없습니다.",
			}
		}
		seen[key] = true
	}
	return nil
}

// ParseCarNames splits and validates raw input in one step.
func ParseCarNames(raw string) ([]string, error) {
	names := SplitCarNames(raw)
	if err := ValidateCarNames(names); err != nil {
		return nil, err
	}
	return names, nil
}

// ValidateTotalRounds parses a positive decimal integer.
func ValidateTotalRounds(raw string) (int, error) {
	value := strings.TrimSpace(raw)
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &InvalidArgumentError{
			Field:  "rounds",
			Value:  raw,
			Reason: "시도 횟수는 숫자여야 합니다.",
		}
	}
	if n <= 0 {
		return 0, &InvalidArgumentError{
			Field:  "rounds",
			Value:  raw,
			Reason: "시도 횟수는 1 이상이어야 합니다.",
		}
	}
	return n, nil
}

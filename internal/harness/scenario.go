package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/racing/internal/racing"
	"github.com/roach88/racing/internal/validate"
)

// Scenario defines one scripted race.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Cars is the raw comma-delimited name input.
	Cars string `yaml:"cars"`

	// Rounds is the raw round-count input.
	Rounds string `yaml:"rounds"`

	// Draws is the scripted draw sequence, round-major, roster order.
	Draws []int `yaml:"draws"`

	// RaceID pins the race ID. Defaults to testutil.DefaultRaceID.
	RaceID string `yaml:"race_id,omitempty"`

	// ExpectError names the error code the game must stop with.
	// Empty means the race must complete.
	ExpectError string `yaml:"expect_error,omitempty"`

	// Assertions validate the finished race.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Assertion validates one property of a finished race.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Names are the expected winners (winners).
	Names []string `yaml:"names,omitempty"`

	// Car and Distance name a car and its final distance (distance).
	Car      string `yaml:"car,omitempty"`
	Distance *int   `yaml:"distance,omitempty"`

	// Count is the expected transcript line count (line_count).
	Count int `yaml:"count,omitempty"`

	// Text must appear in the transcript (transcript_contains).
	Text string `yaml:"text,omitempty"`
}

// Assertion type constants.
const (
	AssertWinners            = "winners"
	AssertDistance           = "distance"
	AssertLineCount          = "line_count"
	AssertTranscriptContains = "transcript_contains"
)

// knownErrorCodes are the values ExpectError may take.
var knownErrorCodes = map[string]bool{
	validate.CodeLengthOverflow:          true,
	validate.CodeInvalidArgument:         true,
	string(racing.ErrCodeInvalidState):   true,
	string(racing.ErrCodeDrawOutOfRange): true,
}

// LoadScenario reads and parses a scenario YAML file.
// Unknown fields are rejected so typos fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.Cars == "" {
		return fmt.Errorf("cars is required")
	}
	if s.Rounds == "" {
		return fmt.Errorf("rounds is required")
	}

	if s.ExpectError != "" {
		if !knownErrorCodes[s.ExpectError] {
			return fmt.Errorf("expect_error: unknown error code %q", s.ExpectError)
		}
	} else if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required unless expect_error is set")
	}

	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i]); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertWinners:
		if len(a.Names) == 0 {
			return fmt.Errorf("assertions[%d]: names is required for winners", index)
		}
	case AssertDistance:
		if a.Car == "" {
			return fmt.Errorf("assertions[%d]: car is required for distance", index)
		}
		if a.Distance == nil {
			return fmt.Errorf("assertions[%d]: distance is required for distance", index)
		}
		if *a.Distance < 0 {
			return fmt.Errorf("assertions[%d]: distance must be non-negative", index)
		}
	case AssertLineCount:
		if a.Count <= 0 {
			return fmt.Errorf("assertions[%d]: count must be positive for line_count", index)
		}
	case AssertTranscriptContains:
		if a.Text == "" {
			return fmt.Errorf("assertions[%d]: text is required for transcript_contains", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/racing/internal/validate"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
	Cars   string
	Rounds string
}

// InputError describes one rejected input.
type InputError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool         `json:"valid"`
	Cars   []string     `json:"cars,omitempty"`
	Rounds int          `json:"rounds,omitempty"`
	Errors []InputError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check race input without racing",
		Long: `Check car names and/or a round count without running a race.

Every given input is checked and every problem is reported, so a script
can fix all of them at once.

Examples:
  racing validate --cars pobi,crong,honux
  racing validate --cars pobi,pengoose --rounds 0 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Cars, "cars", "", "comma-separated car names")
	cmd.Flags().StringVar(&opts.Rounds, "rounds", "", "number of rounds")

	return cmd
}

func runValidate(opts *ValidateOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	carsGiven := cmd.Flags().Changed("cars")
	roundsGiven := cmd.Flags().Changed("rounds")
	if !carsGiven && !roundsGiven {
		return outputValidateError(formatter, ErrCodeGeneric, "nothing to validate: pass --cars and/or --rounds", nil)
	}

	result := ValidationResult{Valid: true}

	if carsGiven {
		names, err := validate.ParseCarNames(opts.Cars)
		if err != nil {
			result.Errors = append(result.Errors, toInputError("cars", err))
		} else {
			formatter.VerboseLog("%d car name(s) valid", len(names))
			result.Cars = names
		}
	}
	if roundsGiven {
		rounds, err := validate.ValidateTotalRounds(opts.Rounds)
		if err != nil {
			result.Errors = append(result.Errors, toInputError("rounds", err))
		} else {
			formatter.VerboseLog("round count %d valid", rounds)
			result.Rounds = rounds
		}
	}

	if len(result.Errors) > 0 {
		result.Valid = false
		return outputValidationErrors(formatter, result)
	}
	return outputValidateSuccess(formatter, result)
}

func toInputError(field string, err error) InputError {
	return InputError{Field: field, Code: errorCode(err), Message: err.Error()}
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, result ValidationResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintln(formatter.Writer, "✓ Input valid")
	return nil
}

// outputValidateError outputs a single command error.
func outputValidateError(formatter *OutputFormatter, code, message string, details any) error {
	_ = formatter.Error(code, message, details)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}

// outputValidationErrors outputs every rejected input.
func outputValidationErrors(formatter *OutputFormatter, result ValidationResult) error {
	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data:   result,
			Error: &CLIError{
				Code:    result.Errors[0].Code,
				Message: result.Errors[0].Message,
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(result.Errors)))
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, e := range result.Errors {
		fmt.Fprintf(formatter.Writer, "%s\n  %s: %s\n\n", e.Field, e.Code, e.Message)
	}

	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(result.Errors)))
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/racing/internal/racing"
	"github.com/roach88/racing/internal/random"
	"github.com/roach88/racing/internal/validate"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Cars   string
	Rounds string

	// Source and IDGenerator allow overriding randomness and race IDs
	// (for testing). If nil, random.Uniform and racing.UUIDv7Generator.
	Source      racing.DrawSource
	IDGenerator racing.IDGenerator
}

// RaceReport is the JSON payload of a finished race.
type RaceReport struct {
	RaceID      string                 `json:"race_id"`
	TotalRounds int                    `json:"total_rounds"`
	Cars        []racing.Position      `json:"cars"`
	Rounds      []racing.RoundSnapshot `json:"rounds"`
	Winners     []string               `json:"winners"`
	Draws       []int                  `json:"draws"`
	Transcript  string                 `json:"transcript"`
}

// NewRunCommand creates the non-interactive run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a race from flags",
		Long: `Run a race without prompting.

Car names and the round count are taken from flags and validated once;
invalid input exits with code 2 instead of asking again.

Examples:
  racing run --cars pobi,crong,honux --rounds 5
  racing run --cars pobi,crong --rounds 3 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRace(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Cars, "cars", "", "comma-separated car names (required)")
	cmd.Flags().StringVar(&opts.Rounds, "rounds", "", "number of rounds (required)")
	_ = cmd.MarkFlagRequired("cars")
	_ = cmd.MarkFlagRequired("rounds")

	return cmd
}

func runRace(opts *RunOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	names, err := validate.ParseCarNames(opts.Cars)
	if err != nil {
		return inputError(formatter, "cars", err)
	}
	rounds, err := validate.ValidateTotalRounds(opts.Rounds)
	if err != nil {
		return inputError(formatter, "rounds", err)
	}

	src := opts.Source
	if src == nil {
		src = random.Uniform{}
	}
	recorder := random.NewRecorder(src)
	game := newGame(recorder, opts.IDGenerator)
	formatter.VerboseLog("race %s: %d car(s), %d round(s)", game.ID(), len(names), rounds)

	if err := game.SetCars(names); err != nil {
		return WrapExitError(ExitFailure, "setting cars", err)
	}
	if err := game.SetTotalRounds(rounds); err != nil {
		return WrapExitError(ExitFailure, "setting rounds", err)
	}
	if err := game.StartRace(); err != nil {
		_ = formatter.Error(errorCode(err), err.Error(), map[string]string{"race_id": game.ID()})
		return WrapExitError(ExitFailure, "race failed", err)
	}

	transcript, err := game.Result()
	if err != nil {
		return WrapExitError(ExitFailure, "rendering result", err)
	}

	if opts.Format != "json" {
		return formatter.Success(transcript)
	}

	winners, err := game.Winners()
	if err != nil {
		return WrapExitError(ExitFailure, "reading winners", err)
	}
	winnerNames := make([]string, len(winners))
	for i, w := range winners {
		winnerNames[i] = w.Name
	}

	return formatter.Success(RaceReport{
		RaceID:      game.ID(),
		TotalRounds: game.TotalRounds(),
		Cars:        game.Cars(),
		Rounds:      game.Rounds(),
		Winners:     winnerNames,
		Draws:       recorder.Draws(),
		Transcript:  transcript,
	})
}

// inputError reports a validation failure and exits with ExitCommandError.
func inputError(formatter *OutputFormatter, field string, err error) error {
	if outErr := formatter.Error(errorCode(err), err.Error(), map[string]string{"field": field}); outErr != nil {
		return outErr
	}
	return WrapExitError(ExitCommandError, "invalid "+field, err)
}

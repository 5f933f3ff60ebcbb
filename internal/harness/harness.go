package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/racing/internal/racing"
	"github.com/roach88/racing/internal/testutil"
	"github.com/roach88/racing/internal/validate"
)

// Run executes a scenario and returns the result.
//
// Execution flow:
//  1. Split and validate the raw car names and round count
//  2. Race with the scenario's scripted draws and a fixed race ID
//  3. Compare the stopping error (if any) against expect_error
//  4. Evaluate assertions against the finished race
//
// The returned error is reserved for harness failures (e.g. the script ran
// out of draws); scenario failures are reported through Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	draws := testutil.NewScriptedDraws(scenario.Draws...)
	game := racing.New(draws,
		racing.WithIDGenerator(testutil.NewFixedRaceID(scenario.RaceID)),
		racing.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))), // Suppress logs in tests
	)

	result := NewResult()
	result.RaceID = game.ID()

	raceErr, err := race(game, scenario)
	result.DrawsUsed = draws.Used()
	if err != nil {
		return nil, err
	}

	if raceErr != nil {
		result.ErrorCode = errorCode(raceErr)
		if scenario.ExpectError == "" {
			result.AddError(fmt.Sprintf("unexpected error: %v", raceErr))
		} else if result.ErrorCode != scenario.ExpectError {
			result.AddError(fmt.Sprintf("expected error %s, got %s: %v", scenario.ExpectError, result.ErrorCode, raceErr))
		}
		return result, nil
	}

	if scenario.ExpectError != "" {
		result.AddError(fmt.Sprintf("expected error %s, race completed", scenario.ExpectError))
	}
	if remaining := draws.Remaining(); remaining > 0 {
		result.AddError(fmt.Sprintf("%d scripted draws left unused", remaining))
	}

	result.Cars = game.Cars()
	winners, err := game.Winners()
	if err != nil {
		return nil, fmt.Errorf("reading winners: %w", err)
	}
	for _, w := range winners {
		result.Winners = append(result.Winners, w.Name)
	}
	result.Transcript, err = game.Result()
	if err != nil {
		return nil, fmt.Errorf("rendering transcript: %w", err)
	}

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}
	return result, nil
}

// race configures and runs the game. raceErr is the validation or race
// error that stopped the game; err means the script itself was broken.
func race(game *racing.Game, scenario *Scenario) (raceErr error, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scenario %s: %v", scenario.Name, r)
		}
	}()

	names, raceErr := validate.ParseCarNames(scenario.Cars)
	if raceErr != nil {
		return raceErr, nil
	}
	rounds, raceErr := validate.ValidateTotalRounds(scenario.Rounds)
	if raceErr != nil {
		return raceErr, nil
	}
	if raceErr = game.SetCars(names); raceErr != nil {
		return raceErr, nil
	}
	if raceErr = game.SetTotalRounds(rounds); raceErr != nil {
		return raceErr, nil
	}
	return game.StartRace(), nil
}

// errorCode maps a validation or race error to its code.
func errorCode(err error) string {
	if code := validate.Code(err); code != "" {
		return code
	}
	var re *racing.RaceError
	if errors.As(err, &re) {
		return string(re.Code)
	}
	return "UNKNOWN"
}

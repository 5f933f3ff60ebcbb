// Package controller drives one game from raw input to printed transcript.
//
// Each input stage is read and validated in a loop: a validation failure is
// reported through the view and the same stage is asked again. Anything
// else (end of input, cancellation, a race lifecycle error) ends the game.
package controller

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/racing/internal/racing"
	"github.com/roach88/racing/internal/validate"
)

// View is the input/output surface the controller talks to.
type View interface {
	ReadCarNames() (string, error)
	ReadTotalRounds() (string, error)
	PrintError(message string)
	PrintResult(transcript string)
}

// Controller connects a Game to a View.
type Controller struct {
	game   *racing.Game
	view   View
	logger *slog.Logger
}

// New creates a controller. A nil logger uses slog.Default().
func New(game *racing.Game, view View, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{game: game, view: view, logger: logger}
}

// Run plays one game: names, rounds, race, transcript. It returns the
// transcript that was printed.
func (c *Controller) Run(ctx context.Context) (string, error) {
	names, err := readUntilValid(ctx, c, "cars", c.view.ReadCarNames, validate.ParseCarNames)
	if err != nil {
		return "", err
	}
	if err := c.game.SetCars(names); err != nil {
		return "", fmt.Errorf("setting cars: %w", err)
	}

	rounds, err := readUntilValid(ctx, c, "rounds", c.view.ReadTotalRounds, validate.ValidateTotalRounds)
	if err != nil {
		return "", err
	}
	if err := c.game.SetTotalRounds(rounds); err != nil {
		return "", fmt.Errorf("setting rounds: %w", err)
	}

	if err := c.game.StartRace(); err != nil {
		return "", fmt.Errorf("running race: %w", err)
	}

	transcript, err := c.game.Result()
	if err != nil {
		return "", fmt.Errorf("rendering result: %w", err)
	}
	c.view.PrintResult(transcript)
	return transcript, nil
}

// readUntilValid repeats read+parse until parse succeeds. Validation errors
// are printed and retried; read errors and cancellation stop the loop.
func readUntilValid[T any](
	ctx context.Context,
	c *Controller,
	stage string,
	read func() (string, error),
	parse func(string) (T, error),
) (T, error) {
	var zero T
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		raw, err := read()
		if err != nil {
			return zero, fmt.Errorf("reading %s: %w", stage, err)
		}

		value, err := parse(raw)
		if err == nil {
			return value, nil
		}
		if !validate.IsValidationError(err) {
			return zero, fmt.Errorf("validating %s: %w", stage, err)
		}

		c.logger.Debug("input rejected", "stage", stage, "attempt", attempt, "code", validate.Code(err))
		c.view.PrintError(err.Error())
	}
}

package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/racing/internal/controller"
	"github.com/roach88/racing/internal/racing"
	"github.com/roach88/racing/internal/random"
	"github.com/roach88/racing/internal/view"
)

// PlayOptions holds flags for the play command.
type PlayOptions struct {
	*RootOptions

	// Source and IDGenerator allow overriding randomness and race IDs
	// (for testing). If nil, random.Uniform and racing.UUIDv7Generator.
	Source      racing.DrawSource
	IDGenerator racing.IDGenerator
}

// NewPlayCommand creates the interactive play command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a race interactively",
		Long: `Play a race interactively.

Asks for comma-separated car names (1-5 characters each), then for the
number of rounds. Invalid input is reported and asked for again. The
race transcript is printed when all rounds are done.

Example:
  racing play`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(opts, cmd)
		},
	}

	return cmd
}

func runPlay(opts *PlayOptions, cmd *cobra.Command) error {
	if opts.Format != "text" {
		return NewExitError(ExitCommandError, "play is interactive and only supports --format text")
	}

	game := newGame(opts.Source, opts.IDGenerator)
	console := view.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	ctrl := controller.New(game, console, slog.Default())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if _, err := ctrl.Run(ctx); err != nil {
		if errors.Is(err, io.EOF) {
			return WrapExitError(ExitCommandError, "input ended before the race could start", err)
		}
		return WrapExitError(ExitFailure, "race failed", err)
	}
	return nil
}

// newGame builds a game from optional overrides.
func newGame(src racing.DrawSource, ids racing.IDGenerator) *racing.Game {
	if src == nil {
		src = random.Uniform{}
	}
	if ids == nil {
		ids = racing.UUIDv7Generator{}
	}
	return racing.New(src, racing.WithIDGenerator(ids), racing.WithLogger(slog.Default()))
}

package cli

import (
	"io"
	"log/slog"
)

// configureLogging installs the default slog handler: text to w, Warn and
// above normally, everything with --verbose. Logs never go to stdout, which
// carries the transcript or JSON.
func configureLogging(opts *RootOptions, w io.Writer) {
	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
